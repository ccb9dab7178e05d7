package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nurturebloom/models"
	"nurturebloom/utils"
)

const (
	actorKey = "actor"
	tokenKey = "token"
)

// Authenticator resolves a raw token to the actor it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.Actor, error)
}

// TokenFromRequest reads the bearer token, falling back to the session cookie.
func TokenFromRequest(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := c.Cookie(utils.TokenCookieName); err == nil {
		return cookie
	}
	return ""
}

// JWTAuthMiddleware rejects requests without a valid, unrevoked token and
// stores the actor on the context.
func JWTAuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := TokenFromRequest(c)
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		actor, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if !errors.Is(err, utils.ErrInvalidToken) {
				utils.GetLogger().Error("Token check failed", zap.Error(err))
			}
			utils.JSONError(c, http.StatusUnauthorized, "Token is not valid")
			return
		}

		c.Set(actorKey, actor)
		c.Set(tokenKey, tokenString)
		c.Next()
	}
}

// RequireRole admits only actors holding one of the roles.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied")
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, utils.ErrNotAuthorized.Message)
	}
}

// ActorFrom returns the actor set by JWTAuthMiddleware.
func ActorFrom(c *gin.Context) (models.Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}

// TokenFrom returns the raw token accepted by JWTAuthMiddleware.
func TokenFrom(c *gin.Context) string {
	return c.GetString(tokenKey)
}
