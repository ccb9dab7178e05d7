package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nurturebloom/middleware"
	"nurturebloom/models"
	"nurturebloom/utils"
)

// getLogger returns the process logger tagged with the request's actor, if any.
func getLogger(c *gin.Context) *zap.Logger {
	logger := utils.GetLogger()
	if actor, ok := middleware.ActorFrom(c); ok {
		return logger.With(zap.String("actorId", actor.ID))
	}
	return logger
}

// currentActor reads the authenticated actor, answering 401 when absent.
func currentActor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		getLogger(c).Error("Actor missing from context", zap.String("path", c.FullPath()))
		utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied")
	}
	return actor, ok
}
