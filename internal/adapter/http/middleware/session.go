package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapp/internal/auth"
	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
	"todoapp/pkg/apierrors"
)

const identityKey = "identity"

// SessionMiddleware resolves the access-token cookie to an identity.
// A missing cookie leaves the request anonymous; a cookie that fails
// validation aborts with 401. Handlers decide what anonymous means for
// their surface (redirect for HTML, 401 for JSON).
func SessionMiddleware(sessions ports.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil {
			c.Next()
			return
		}

		identity, err := sessions.Validate(token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				lang := GetLang(c)
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidSession, lang),
				)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		if identity != nil {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

// CurrentIdentity returns the resolved identity, or nil for anonymous
// requests.
func CurrentIdentity(c *gin.Context) *domain.Identity {
	if value, exists := c.Get(identityKey); exists {
		if identity, ok := value.(*domain.Identity); ok {
			return identity
		}
	}
	return nil
}
