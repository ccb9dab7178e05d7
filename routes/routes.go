package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"nurturebloom/handlers"
	"nurturebloom/middleware"
	"nurturebloom/models"
)

// RegisterAuthRoutes registers registration and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.GET("/user", auth, hb.Auth.MeHandler)
		api.POST("/logout", auth, hb.Auth.LogoutHandler)
	}
}

// RegisterUserRoutes registers user directory and role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/users")
	{
		api.GET("/professionals", hb.Auth.ListProfessionalsHandler)
		api.PATCH("/:id/role", auth, middleware.RequireRole(models.RoleAdmin), hb.Auth.SetRoleHandler)
	}
}

// RegisterConsultationRoutes registers the consultation booking endpoints.
func RegisterConsultationRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/consultations")
	api.Use(auth)
	{
		api.POST("", hb.Consultations.BookHandler)
		api.GET("", hb.Consultations.ListMineHandler)
		api.GET("/professional", hb.Consultations.ListForProfessionalHandler)
		api.GET("/professionals/list", hb.Consultations.ListProfessionalsHandler)
		api.GET("/:id", hb.Consultations.GetHandler)
		api.PUT("/:id", hb.Consultations.UpdateHandler)
		api.DELETE("/:id", hb.Consultations.DeleteHandler)
	}
}

// RegisterWebinarRoutes registers public listings and the protected webinar endpoints.
func RegisterWebinarRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/webinars")
	{
		api.GET("", hb.Webinars.ListUpcomingHandler)
		api.GET("/all", hb.Webinars.ListAllHandler)
		api.GET("/recorded", hb.Webinars.ListRecordedHandler)
		api.GET("/tags/:tag", hb.Webinars.ListByTagHandler)
		api.GET("/:id", hb.Webinars.GetHandler)

		protected := api.Group("")
		protected.Use(auth)
		protected.GET("/user/registered", hb.Webinars.ListRegisteredHandler)
		protected.POST("", middleware.RequireRole(models.RoleProfessional, models.RoleAdmin), hb.Webinars.CreateHandler)
		protected.PUT("/:id", hb.Webinars.UpdateHandler)
		protected.DELETE("/:id", hb.Webinars.DeleteHandler)
		protected.POST("/:id/register", hb.Webinars.RegisterHandler)
		protected.DELETE("/:id/register", hb.Webinars.CancelRegistrationHandler)
		protected.POST("/:id/attendance", hb.Webinars.AttendanceHandler)
	}
}

// RegisterSymptomRoutes registers the catalogue and symptom check endpoints.
func RegisterSymptomRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/symptoms")
	{
		api.GET("", hb.Symptoms.ListHandler)
		api.GET("/category/:category", hb.Symptoms.ListByCategoryHandler)

		protected := api.Group("")
		protected.Use(auth)
		protected.POST("/check", hb.Symptoms.CheckHandler)
		protected.GET("/history", hb.Symptoms.HistoryHandler)
		protected.GET("/check/:id", hb.Symptoms.GetCheckHandler)
		protected.POST("/seed", middleware.RequireRole(models.RoleAdmin), hb.Symptoms.SeedHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	auth := middleware.JWTAuthMiddleware(hb.Authenticator)

	RegisterHealthRoute(r, hb)
	RegisterAuthRoutes(r, hb, auth)
	RegisterUserRoutes(r, hb, auth)
	RegisterConsultationRoutes(r, hb, auth)
	RegisterWebinarRoutes(r, hb, auth)
	RegisterSymptomRoutes(r, hb, auth)
}
