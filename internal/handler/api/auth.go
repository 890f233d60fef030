package api

import (
	"errors"
	"net/http"

	reqdto "oficina-agenda/internal/handler/dto/request"
	resdto "oficina-agenda/internal/handler/dto/response"
	"oficina-agenda/internal/handler/httperr"
	"oficina-agenda/internal/handler/middleware"
	"oficina-agenda/internal/pkg/config"
	"oficina-agenda/internal/pkg/cookie"
	"oficina-agenda/internal/pkg/jwt"
	"oficina-agenda/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	jwtService   *jwt.Service
	cookieConfig config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, jwtService *jwt.Service, cookieConfig config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		jwtService:   jwtService,
		cookieConfig: cookieConfig,
	}
}

// @Summary Operator login
// @Description Login with email and password; sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password")
		case errors.Is(err, commands.ErrOperatorInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookieConfig, result.Token, h.jwtService.TokenDuration())

	httperr.OK(c, http.StatusOK, gin.H{
		"access_token": result.Token,
		"operator":     resdto.FromOperatorSnapshot(result.Operator),
	})
}

// @Summary Operator logout
// @Description Clears the session cookie; the JWT itself stays stateless
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieConfig)
	c.Status(http.StatusNoContent)
}

// @Summary Current operator
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("operator id missing from context"), "Internal server error")
		return
	}
	workshopID, _ := middleware.GetWorkshopID(c)
	role, _ := middleware.GetOperatorRole(c)

	httperr.OK(c, http.StatusOK, gin.H{
		"operator_id": operatorID,
		"workshop_id": workshopID,
		"role":        role,
	})
}
