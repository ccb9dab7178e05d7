package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nurturebloom/models"
	"nurturebloom/services/booking"
	"nurturebloom/utils"
)

// ConsultationHandler serves the consultation endpoints.
type ConsultationHandler struct {
	Service booking.ConsultationService
}

// BookHandler handles POST /api/consultations.
func (h *ConsultationHandler) BookHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.BookConsultationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	v, err := h.Service.Book(c.Request.Context(), actor, req)
	if err != nil {
		utils.RespondError(c, "BookConsultation", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// ListMineHandler handles GET /api/consultations.
func (h *ConsultationHandler) ListMineHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	list, err := h.Service.ListMine(c.Request.Context(), actor)
	if err != nil {
		utils.RespondError(c, "ListConsultations", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListForProfessionalHandler handles GET /api/consultations/professional.
func (h *ConsultationHandler) ListForProfessionalHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	list, err := h.Service.ListForProfessional(c.Request.Context(), actor)
	if err != nil {
		utils.RespondError(c, "ListProfessionalConsultations", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListProfessionalsHandler handles GET /api/consultations/professionals/list.
func (h *ConsultationHandler) ListProfessionalsHandler(c *gin.Context) {
	pros, err := h.Service.ListProfessionals(c.Request.Context())
	if err != nil {
		utils.RespondError(c, "ListProfessionals", err)
		return
	}
	c.JSON(http.StatusOK, pros)
}

// GetHandler handles GET /api/consultations/:id.
func (h *ConsultationHandler) GetHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	v, err := h.Service.Get(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		utils.RespondError(c, "GetConsultation", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// UpdateHandler handles PUT /api/consultations/:id. A new date reschedules.
func (h *ConsultationHandler) UpdateHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.UpdateConsultationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	v, err := h.Service.Update(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		utils.RespondError(c, "UpdateConsultation", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DeleteHandler handles DELETE /api/consultations/:id.
func (h *ConsultationHandler) DeleteHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), c.Param("id"), actor); err != nil {
		utils.RespondError(c, "DeleteConsultation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Consultation removed"})
}
