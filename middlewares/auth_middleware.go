package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sushimonsters/restaurant-app/models"
	"github.com/sushimonsters/restaurant-app/utils"
)

// SessionCookieName holds the JWT session token set at login.
const SessionCookieName = "session_token"

// PrincipalKey is the context key the resolved principal is stored under.
const PrincipalKey = "principal"

// sessionToken extracts the raw token from the session cookie, falling back
// to a Bearer header for non-browser clients.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// AuthMiddleware requires an authenticated principal and stores it in the
// request context. The admin capability check itself lives in the service
// layer, not here.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			utils.RespondJSON(c, http.StatusUnauthorized, "login_required", nil)
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			utils.RespondJSON(c, http.StatusUnauthorized, "login_required", nil)
			c.Abort()
			return
		}
		if claims.UserID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid user id in token"))
			c.Abort()
			return
		}

		c.Set(PrincipalKey, models.Principal{
			ID:      claims.UserID,
			IsAdmin: claims.IsAdmin,
		})
		c.Next()
	}
}

// CurrentPrincipal reads the principal resolved by AuthMiddleware.
func CurrentPrincipal(c *gin.Context) (models.Principal, bool) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := value.(models.Principal)
	return principal, ok
}
