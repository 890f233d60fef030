//go:build e2e

package auth_test

import (
	"net/http"
	"testing"
	"time"

	reqdto "oficina-agenda/internal/handler/dto/request"
	"oficina-agenda/internal/pkg/cookie"
	"oficina-agenda/tests/common/authtest"
	commonhttp "oficina-agenda/tests/common/httptest"
	"oficina-agenda/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestWorkshopRegistration() {
	s.Run("registers workshop and admin operator atomically", func() {
		t := s.T()

		workshopID := authtest.RegisterWorkshop(t, s.Router, "Oficina Nova", "admin@nova.com", "password123")
		require.NotEmpty(t, workshopID)

		// The operator credential works right away
		token := authtest.LoginOperator(t, s.Router, "admin@nova.com", "password123")
		require.NotEmpty(t, token)
	})

	s.Run("duplicate operator email is rejected", func() {
		t := s.T()
		authtest.RegisterWorkshop(t, s.Router, "Oficina Alfa", "dup@example.com", "password123")

		req := reqdto.RegisterWorkshopRequest{
			Name:             "Oficina Beta",
			Address:          "Rua B, 2",
			Phone:            "1199998888",
			OperatorEmail:    "dup@example.com",
			OperatorPassword: "password123",
		}

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/workshops", req, "")
		require.Equal(t, http.StatusConflict, w.Code)

		env := commonhttp.DecodeEnvelope(t, w.Body)
		require.False(t, env.Success)
	})

	s.Run("short operator password is rejected", func() {
		t := s.T()

		req := reqdto.RegisterWorkshopRequest{
			Name:             "Oficina Curta",
			Address:          "Rua C, 3",
			Phone:            "1199997777",
			OperatorEmail:    "curta@example.com",
			OperatorPassword: "short",
		}

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/workshops", req, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *AuthSuite) TestLogin() {
	s.Run("sets the session cookie", func() {
		t := s.T()
		authtest.RegisterWorkshop(t, s.Router, "Oficina Cookie", "cookie@example.com", "password123")

		req := reqdto.LoginRequest{Email: "cookie@example.com", Password: "password123"}
		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", req, "")
		require.Equal(t, http.StatusOK, w.Code)

		sessionCookie := commonhttp.ExtractCookie(w, cookie.SessionCookieName)
		require.NotNil(t, sessionCookie)
		require.NotEmpty(t, sessionCookie.Value)
		require.True(t, sessionCookie.HttpOnly)
	})

	s.Run("wrong password", func() {
		t := s.T()
		authtest.RegisterWorkshop(t, s.Router, "Oficina Senha", "senha@example.com", "password123")

		req := reqdto.LoginRequest{Email: "senha@example.com", Password: "wrong-password"}
		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", req, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("unknown email gets the same answer as wrong password", func() {
		t := s.T()

		req := reqdto.LoginRequest{Email: "ghost@example.com", Password: "password123"}
		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", req, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestSession() {
	s.Run("me returns the operator identity", func() {
		t := s.T()
		workshopID := authtest.RegisterWorkshop(t, s.Router, "Oficina Eu", "eu@example.com", "password123")
		token := authtest.LoginOperator(t, s.Router, "eu@example.com", "password123")

		w := commonhttp.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			WorkshopID string `json:"workshop_id"`
			Role       string `json:"role"`
		}
		commonhttp.DecodeEnvelopeData(t, w, &resp)
		require.Equal(t, workshopID.String(), resp.WorkshopID)
		require.Equal(t, "admin", resp.Role)
	})

	s.Run("me without a session", func() {
		t := s.T()
		w := commonhttp.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("logout clears the cookie", func() {
		t := s.T()
		authtest.RegisterWorkshop(t, s.Router, "Oficina Sair", "sair@example.com", "password123")
		token := authtest.LoginOperator(t, s.Router, "sair@example.com", "password123")

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/logout", nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := commonhttp.ExtractCookie(w, cookie.SessionCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
		require.True(t, cleared.MaxAge < 0 || !cleared.Expires.After(time.Now()))
	})
}

func (s *AuthSuite) TestReminders() {
	s.Run("set then get, last write wins", func() {
		t := s.T()

		due := time.Now().Add(90 * 24 * time.Hour).UTC().Truncate(time.Second)
		body := reqdto.SetReminderRequest{CustomerID: "52998224725", Vehicle: "Fiat Uno", DueDate: due}

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPut, "/api/reminders", body, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body.Vehicle = "VW Gol"
		w = commonhttp.PerformRequest(t, s.Router, http.MethodPut, "/api/reminders", body, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = commonhttp.PerformRequest(t, s.Router, http.MethodGet, "/api/reminders/52998224725", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			CustomerID string    `json:"customer_id"`
			Vehicle    string    `json:"vehicle"`
			DueDate    time.Time `json:"due_date"`
		}
		commonhttp.DecodeEnvelopeData(t, w, &resp)
		require.Equal(t, "52998224725", resp.CustomerID)
		require.Equal(t, "VW Gol", resp.Vehicle)
		require.True(t, due.Equal(resp.DueDate))
	})

	s.Run("unknown customer", func() {
		t := s.T()
		w := commonhttp.PerformRequest(t, s.Router, http.MethodGet, "/api/reminders/00000000000", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
