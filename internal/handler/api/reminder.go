package api

import (
	"errors"
	"net/http"

	reqdto "oficina-agenda/internal/handler/dto/request"
	resdto "oficina-agenda/internal/handler/dto/response"
	"oficina-agenda/internal/handler/httperr"
	"oficina-agenda/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	reminderUseCase usecase.ReminderUseCase
}

func NewReminderHandler(reminderUseCase usecase.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{
		reminderUseCase: reminderUseCase,
	}
}

// @Summary Set reminder
// @Description Stores the customer's next oil-change due note; last write wins
// @Tags reminders
// @Accept json
// @Produce json
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Router /api/reminders [put]
func (h *ReminderHandler) Set(c *gin.Context) {
	var req reqdto.SetReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	r, err := h.reminderUseCase.Set(c.Request.Context(), req.CustomerID, req.Vehicle, req.DueDate)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Reminder validation failed")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromReminder(r))
}

// @Summary Get reminder
// @Tags reminders
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reminders/{customer_id} [get]
func (h *ReminderHandler) Get(c *gin.Context) {
	customerID := c.Param("customer_id")

	r, err := h.reminderUseCase.Get(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, usecase.ErrReminderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reminder not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromReminder(r))
}
