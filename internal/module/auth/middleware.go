package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/digimenu/digimenu/internal/domain"
	"github.com/digimenu/digimenu/internal/pkg"
)

const claimsContextKey = "auth_claims"

// RequireAuth returns a gin middleware that rejects requests without a valid
// session token. On success the verified claims are stored in the context.
func RequireAuth(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			pkg.Error(c, domain.NewAppError(domain.CodeUnauthorized, "authentication required", nil))
			c.Abort()
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			pkg.Error(c, err)
			c.Abort()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// OptionalAuth returns a gin middleware that stores verified claims when a
// valid token is present and continues anonymously otherwise. Used by public
// reads whose response projection depends on whether the caller is the owner.
func OptionalAuth(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := tokenFromRequest(c); raw != "" {
			if claims, err := tokens.Verify(raw); err == nil {
				c.Set(claimsContextKey, claims)
			}
		}
		c.Next()
	}
}

// CurrentClaims extracts the verified claims from the gin context.
// Returns nil for anonymous requests.
func CurrentClaims(c *gin.Context) *Claims {
	if v, exists := c.Get(claimsContextKey); exists {
		if claims, ok := v.(*Claims); ok {
			return claims
		}
	}
	return nil
}

// CurrentUserID returns the acting user's id, or 0 for anonymous requests.
func CurrentUserID(c *gin.Context) uint {
	if claims := CurrentClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}

func tokenFromRequest(c *gin.Context) string {
	cookie, _ := c.Cookie(CookieName)
	return ExtractToken(cookie, c.GetHeader("Authorization"))
}
