//go:build e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "oficina-agenda/internal/handler/dto/request"
	resdto "oficina-agenda/internal/handler/dto/response"
	commonhttp "oficina-agenda/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// RegisterWorkshop creates a workshop with its admin operator through the
// public API and returns the new workshop id.
func RegisterWorkshop(t *testing.T, router *gin.Engine, name, operatorEmail, password string) uuid.UUID {
	t.Helper()

	req := reqdto.RegisterWorkshopRequest{
		Name:             name,
		Address:          "Av. Paulista, 1000",
		Phone:            "1133334444",
		OperatorEmail:    operatorEmail,
		OperatorPassword: password,
	}

	w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/workshops", req, "")
	require.Equal(t, http.StatusCreated, w.Code, "workshop registration failed: %s", w.Body.String())

	var resp resdto.RegisteredWorkshopResponse
	commonhttp.DecodeEnvelopeData(t, w, &resp)
	require.NotEqual(t, uuid.Nil, resp.WorkshopID)

	return resp.WorkshopID
}

// LoginOperator signs in and returns the bearer token.
func LoginOperator(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	req := reqdto.LoginRequest{Email: email, Password: password}

	w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/auth/login", req, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	commonhttp.DecodeEnvelopeData(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)

	return resp.AccessToken
}
