package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nurturebloom/models"
	"nurturebloom/services/webinar"
	"nurturebloom/utils"
)

// WebinarHandler serves the webinar endpoints.
type WebinarHandler struct {
	Service webinar.WebinarService
}

func (h *WebinarHandler) respondList(c *gin.Context, op string, list []models.WebinarView, err error) {
	if err != nil {
		utils.RespondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListUpcomingHandler handles GET /api/webinars.
func (h *WebinarHandler) ListUpcomingHandler(c *gin.Context) {
	list, err := h.Service.ListUpcoming(c.Request.Context())
	h.respondList(c, "ListUpcomingWebinars", list, err)
}

// ListAllHandler handles GET /api/webinars/all.
func (h *WebinarHandler) ListAllHandler(c *gin.Context) {
	list, err := h.Service.ListAll(c.Request.Context())
	h.respondList(c, "ListWebinars", list, err)
}

// ListRecordedHandler handles GET /api/webinars/recorded.
func (h *WebinarHandler) ListRecordedHandler(c *gin.Context) {
	list, err := h.Service.ListRecorded(c.Request.Context())
	h.respondList(c, "ListRecordedWebinars", list, err)
}

// ListByTagHandler handles GET /api/webinars/tags/:tag.
func (h *WebinarHandler) ListByTagHandler(c *gin.Context) {
	list, err := h.Service.ListByTag(c.Request.Context(), c.Param("tag"))
	h.respondList(c, "ListWebinarsByTag", list, err)
}

// ListRegisteredHandler handles GET /api/webinars/user/registered.
func (h *WebinarHandler) ListRegisteredHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	list, err := h.Service.ListRegistered(c.Request.Context(), actor)
	h.respondList(c, "ListRegisteredWebinars", list, err)
}

// GetHandler handles GET /api/webinars/:id.
func (h *WebinarHandler) GetHandler(c *gin.Context) {
	v, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, "GetWebinar", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// CreateHandler handles POST /api/webinars.
func (h *WebinarHandler) CreateHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.CreateWebinarInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	v, err := h.Service.Create(c.Request.Context(), actor, req)
	if err != nil {
		utils.RespondError(c, "CreateWebinar", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// UpdateHandler handles PUT /api/webinars/:id.
func (h *WebinarHandler) UpdateHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.UpdateWebinarInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	v, err := h.Service.Update(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		utils.RespondError(c, "UpdateWebinar", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DeleteHandler handles DELETE /api/webinars/:id.
func (h *WebinarHandler) DeleteHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), c.Param("id"), actor); err != nil {
		utils.RespondError(c, "DeleteWebinar", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Webinar removed"})
}

// RegisterHandler handles POST /api/webinars/:id/register.
func (h *WebinarHandler) RegisterHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	v, err := h.Service.Register(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		utils.RespondError(c, "RegisterForWebinar", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// CancelRegistrationHandler handles DELETE /api/webinars/:id/register.
func (h *WebinarHandler) CancelRegistrationHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	v, err := h.Service.CancelRegistration(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		utils.RespondError(c, "CancelWebinarRegistration", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// AttendanceHandler handles POST /api/webinars/:id/attendance.
func (h *WebinarHandler) AttendanceHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.AttendanceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	v, err := h.Service.MarkAttendance(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		utils.RespondError(c, "MarkAttendance", err)
		return
	}
	c.JSON(http.StatusOK, v)
}
