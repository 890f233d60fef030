package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "oficina-agenda/internal/handler/dto/request"
	resdto "oficina-agenda/internal/handler/dto/response"
	"oficina-agenda/internal/handler/httperr"
	"oficina-agenda/internal/handler/middleware"
	"oficina-agenda/internal/usecase/commands"
	"oficina-agenda/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentCommands commands.AppointmentCommands
	appointmentQueries  queries.AppointmentQueries
}

func NewAppointmentHandler(
	appointmentCommands commands.AppointmentCommands,
	appointmentQueries queries.AppointmentQueries,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentCommands: appointmentCommands,
		appointmentQueries:  appointmentQueries,
	}
}

// @Summary Create appointment
// @Description Book an oil-change appointment; returns the generated protocol code
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Router /api/appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.appointmentCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Appointment validation failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	httperr.OK(c, http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrAppointmentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List appointments
// @Description Filter by status, workshop or customer (CPF or email)
// @Tags appointments
// @Produce json
// @Param status query string false "Status filter"
// @Param workshop_id query string false "Workshop UUID filter"
// @Param customer query string false "Customer CPF or email"
// @Success 200 {object} httperr.Response
// @Router /api/appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	items, err := h.appointmentQueries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromAppointmentListItems(items))
}

// @Summary Cancel appointment (customer)
// @Description Soft-cancel by the customer; the record stays with status cancelado
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id} [delete]
func (h *AppointmentHandler) CustomerCancel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	// Body is optional on DELETE
	var req reqdto.CustomerCancelRequest
	_ = c.ShouldBindJSON(&req)

	view, err := h.appointmentCommands.CancelByCustomer(c.Request.Context(), id, req.Motivo)
	if err != nil {
		h.abortTransitionError(c, err)
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Attach service-order protocol
// @Description Operator records the protocol; moves pendente to confirmado
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Param request body reqdto.AttachProtocolRequest true "Protocol"
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id}/protocol [put]
func (h *AppointmentHandler) AttachProtocol(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.AttachProtocolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.appointmentCommands.AttachProtocol(c.Request.Context(), actor, id, req.Protocolo)
	if err != nil {
		h.abortTransitionError(c, err)
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Flag divergence
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Param request body reqdto.FlagDivergenceRequest true "Divergence note"
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id}/divergence [put]
func (h *AppointmentHandler) FlagDivergence(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.FlagDivergenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.appointmentCommands.FlagDivergence(c.Request.Context(), actor, id, req.Divergencia)
	if err != nil {
		h.abortTransitionError(c, err)
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Conclude appointment
// @Description Requires a previously attached protocol
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id}/conclude [put]
func (h *AppointmentHandler) Conclude(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	view, err := h.appointmentCommands.Conclude(c.Request.Context(), actor, id)
	if err != nil {
		h.abortTransitionError(c, err)
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Cancel appointment (workshop)
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Param request body reqdto.CancelAppointmentRequest true "Cancellation reason"
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id}/cancel [put]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.appointmentCommands.Cancel(c.Request.Context(), actor, id, req.Motivo)
	if err != nil {
		h.abortTransitionError(c, err)
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromAppointmentView(view))
}

func (h *AppointmentHandler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID")
		return 0, false
	}
	return id, true
}

func (h *AppointmentHandler) actorAndID(c *gin.Context) (commands.Actor, int64, bool) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("operator id missing from context"), "Internal server error")
		return commands.Actor{}, 0, false
	}
	workshopID, ok := middleware.GetWorkshopID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("workshop id missing from context"), "Internal server error")
		return commands.Actor{}, 0, false
	}
	role, _ := middleware.GetOperatorRole(c)

	id, ok := h.pathID(c)
	if !ok {
		return commands.Actor{}, 0, false
	}

	return commands.Actor{OperatorID: operatorID, WorkshopID: workshopID, Role: string(role)}, id, true
}

// abortTransitionError maps the shared command errors; guard failures surface
// the underlying domain message so the caller knows which rule blocked it.
func (h *AppointmentHandler) abortTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAppointmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found")
	case errors.Is(err, commands.ErrTransitionNotAllowed):
		// the marked error keeps the domain guard's own message, e.g.
		// "cannot conclude without a protocol on file"
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
	case errors.Is(err, commands.ErrConcurrentTransition):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Appointment status changed, please reload")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

func (h *AppointmentHandler) listFilter(c *gin.Context) (queries.ListFilter, bool) {
	var filter queries.ListFilter

	if s := c.Query("status"); s != "" {
		filter.Status = &s
	}
	if w := c.Query("workshop_id"); w != "" {
		id, err := uuid.Parse(w)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid workshop ID")
			return queries.ListFilter{}, false
		}
		filter.WorkshopID = &id
	}
	if cu := c.Query("customer"); cu != "" {
		filter.Customer = &cu
	}

	return filter, true
}
