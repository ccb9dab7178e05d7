// File: handlers/bundle.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nurturebloom/middleware"
	"nurturebloom/services/booking"
	"nurturebloom/services/triage"
	"nurturebloom/services/user"
	"nurturebloom/services/webinar"
	"nurturebloom/utils"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Authenticator middleware.Authenticator

	Auth          *AuthHandler
	Consultations *ConsultationHandler
	Webinars      *WebinarHandler
	Symptoms      *SymptomHandler

	// Health endpoint
	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handlers to their services.
func NewHandlerBundle(
	users user.UserService,
	consultations booking.ConsultationService,
	webinars webinar.WebinarService,
	symptoms triage.TriageService,
) *HandlerBundle {
	return &HandlerBundle{
		Authenticator: users,
		Auth:          &AuthHandler{UserService: users},
		Consultations: &ConsultationHandler{Service: consultations},
		Webinars:      &WebinarHandler{Service: webinars},
		Symptoms:      &SymptomHandler{Service: symptoms},
		HealthHandler: HealthHandler,
	}
}

// HealthHandler handles GET /health with the last dependency snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
}
