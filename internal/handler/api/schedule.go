package api

import (
	"net/http"

	reqdto "booking-core/internal/handler/dto/request"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/httperr"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	cmds commands.ScheduleCommands
	q    queries.ScheduleQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q}
}

// @Summary Assign staff to a service
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AssignStaffRequest true "Assignment"
// @Success 201 {object} resdto.AssignmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /schedule/assignments [post]
func (h *ScheduleHandler) Assign(c *gin.Context) {
	partyID, ok := requireParty(c)
	if !ok {
		return
	}
	var req reqdto.AssignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	view, err := h.cmds.Assign(c.Request.Context(), req.ToCommand(), partyID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAssignmentView(view))
}

// @Summary Remove an assignment and its windows
// @Tags schedule
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /schedule/assignments/{id} [delete]
func (h *ScheduleHandler) Unassign(c *gin.Context) {
	partyID, ok := requireParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Unassign(c.Request.Context(), id, partyID); err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add an availability window
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Param request body reqdto.SetWindowRequest true "Window"
// @Success 201 {object} resdto.WindowResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /schedule/assignments/{id}/windows [post]
func (h *ScheduleHandler) SetWindow(c *gin.Context) {
	partyID, ok := requireParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	view, err := h.cmds.SetWindow(c.Request.Context(), id, req.ToCommand(), partyID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromWindowView(view))
}

// @Summary Remove an availability window
// @Tags schedule
// @Security BearerAuth
// @Param id path string true "Window ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /schedule/windows/{id} [delete]
func (h *ScheduleHandler) RemoveWindow(c *gin.Context) {
	partyID, ok := requireParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.RemoveWindow(c.Request.Context(), id, partyID); err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List the caller's staff assignments
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param service_id query string false "Service filter"
// @Success 200 {array} resdto.AssignmentResponse
// @Router /schedule/assignments [get]
func (h *ScheduleHandler) ListAssignments(c *gin.Context) {
	partyID, ok := requireParty(c)
	if !ok {
		return
	}
	var q reqdto.ListAssignmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.q.ListAssignments(c.Request.Context(), partyID, q.ServiceUUID())
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssignmentViews(views))
}

// @Summary Check staffability
// @Description Whether any staff member assigned to the service is available at the given instant
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param provider_id query string true "Provider ID"
// @Param service_id query string true "Service ID"
// @Param at query string true "RFC3339 instant"
// @Success 200 {object} resdto.StaffableResponse
// @Router /schedule/staffable [get]
func (h *ScheduleHandler) Staffable(c *gin.Context) {
	var q reqdto.StaffableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	providerID := uuid.MustParse(q.ProviderID)
	serviceID := uuid.MustParse(q.ServiceID)

	ok, err := h.cmds.CheckStaffable(c.Request.Context(), providerID, serviceID, q.At)
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.StaffableResponse{
		ProviderID: providerID,
		ServiceID:  serviceID,
		At:         q.At,
		Staffable:  ok,
	})
}
