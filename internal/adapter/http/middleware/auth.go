package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
	"github.com/Abdullah-yafai/project-managment/pkg/apierrors"
)

const identityKey = "identity"

// AuthMiddleware resolves the bearer token to an active user and stores it
// on the context for GetIdentity.
func AuthMiddleware(auth ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		user, err := auth.ResolveIdentity(c.Request.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrAccountDisabled):
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgAccountDisabled, lang),
			)
			return
		case errors.Is(err, domain.ErrUnauthorized):
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		default:
			zap.L().Error("failed to resolve identity", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
			)
			return
		}

		c.Set(identityKey, user)
		c.Next()
	}
}

// GetIdentity returns the user stored by AuthMiddleware.
func GetIdentity(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}
