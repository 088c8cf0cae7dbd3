package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Jim-flores/odontosys-bk/internal/apierror"
)

const ClaimsKey = "claims"

// Claims are the custom claims embedded in every access token. The
// permission set is a snapshot taken at login; guards trust it verbatim
// and never re-query the store.
type Claims struct {
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// ParseToken validates the signature and expiry and returns the typed
// claims. Shared by the HTTP guard and the WebSocket gateway.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.Unauthorized("Invalid or expired token")
	}
	return claims, nil
}

// JWTAuth validates the Bearer token on every protected route.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			_ = c.Error(apierror.Unauthorized("Authentication required"))
			c.Abort()
			return
		}

		claims, err := ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequirePermission rejects requests whose token carries none of the
// given permission keys (OR semantics: one match is enough).
func RequirePermission(keys ...string) gin.HandlerFunc {
	required := make(map[string]bool, len(keys))
	for _, k := range keys {
		required[k] = true
	}
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			_ = c.Error(apierror.Unauthorized("Authentication required"))
			c.Abort()
			return
		}
		for _, p := range claims.Permissions {
			if required[p] {
				c.Next()
				return
			}
		}
		_ = c.Error(apierror.Forbidden("Insufficient permissions"))
		c.Abort()
	}
}

// GetClaims retrieves typed claims from the Gin context; nil when the
// request never passed JWTAuth.
func GetClaims(c *gin.Context) *Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}
