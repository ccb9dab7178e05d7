package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nurturebloom/models"
	"nurturebloom/services/triage"
	"nurturebloom/utils"
)

// SymptomHandler serves the symptom catalogue and symptom checks.
type SymptomHandler struct {
	Service triage.TriageService
}

// ListHandler handles GET /api/symptoms.
func (h *SymptomHandler) ListHandler(c *gin.Context) {
	list, err := h.Service.ListSymptoms(c.Request.Context())
	if err != nil {
		utils.RespondError(c, "ListSymptoms", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListByCategoryHandler handles GET /api/symptoms/category/:category.
func (h *SymptomHandler) ListByCategoryHandler(c *gin.Context) {
	list, err := h.Service.ListByCategory(c.Request.Context(), models.SymptomCategory(c.Param("category")))
	if err != nil {
		utils.RespondError(c, "ListSymptomsByCategory", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CheckHandler handles POST /api/symptoms/check.
func (h *SymptomHandler) CheckHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.SymptomCheckInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	v, err := h.Service.Check(c.Request.Context(), actor, req)
	if err != nil {
		utils.RespondError(c, "SymptomCheck", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// HistoryHandler handles GET /api/symptoms/history.
func (h *SymptomHandler) HistoryHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	list, err := h.Service.History(c.Request.Context(), actor)
	if err != nil {
		utils.RespondError(c, "SymptomHistory", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetCheckHandler handles GET /api/symptoms/check/:id.
func (h *SymptomHandler) GetCheckHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	v, err := h.Service.GetCheck(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		utils.RespondError(c, "GetSymptomCheck", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// SeedHandler handles POST /api/symptoms/seed.
func (h *SymptomHandler) SeedHandler(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	n, err := h.Service.Seed(c.Request.Context(), actor)
	if err != nil {
		utils.RespondError(c, "SeedSymptoms", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Symptoms seeded successfully", "count": n})
}
