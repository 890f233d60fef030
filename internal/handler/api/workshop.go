package api

import (
	"errors"
	"net/http"

	reqdto "oficina-agenda/internal/handler/dto/request"
	resdto "oficina-agenda/internal/handler/dto/response"
	"oficina-agenda/internal/handler/httperr"
	"oficina-agenda/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WorkshopHandler struct {
	workshopCommands commands.WorkshopCommands
}

func NewWorkshopHandler(workshopCommands commands.WorkshopCommands) *WorkshopHandler {
	return &WorkshopHandler{
		workshopCommands: workshopCommands,
	}
}

// @Summary Register workshop
// @Description Creates the workshop profile and its admin operator atomically
// @Tags workshops
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterWorkshopRequest true "Workshop registration"
// @Success 201 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/workshops [post]
func (h *WorkshopHandler) Register(c *gin.Context) {
	var req reqdto.RegisterWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.workshopCommands.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailAlreadyInUse):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already in use")
		case errors.Is(err, commands.ErrWorkshopValidationFail):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Workshop validation failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	httperr.OK(c, http.StatusCreated, resdto.FromRegisterResult(result))
}
