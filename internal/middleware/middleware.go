package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sayed725/express-server/internal/response"
	"github.com/sayed725/express-server/pkg/logger"
)

// Claims is the token payload the guard understands: the registered claims
// plus the caller's role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RequestID attaches a request ID to the per-request logger and echoes it in
// the X-Request-ID response header. An inbound header is reused so IDs stay
// stable across proxies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		ctx := logger.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequireRoles gates a route by the caller's role claim. With no roles listed
// the route is unrestricted and the token is never consulted. Otherwise the
// request must carry a valid bearer token whose role is in the allowed set:
// a missing or invalid token is 401, a valid token with the wrong role is 403.
func RequireRoles(secret string, roles ...string) gin.HandlerFunc {
	if len(roles) == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		auth := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if auth == "" || !strings.HasPrefix(auth, prefix) {
			logger.Debug(ctx, "Missing or invalid Authorization header")
			response.Unauthorized(c, "Unauthorized")
			return
		}
		if secret == "" {
			logger.Error(ctx, "JWT_SECRET is not set but a guarded route was hit")
			response.Unauthorized(c, "Unauthorized")
			return
		}
		tokenStr := strings.TrimSpace(auth[len(prefix):])
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			logger.Debug(ctx, "JWT parse failed", "error", err)
			response.Unauthorized(c, "Unauthorized")
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			logger.Debug(ctx, "Role not permitted", "role", claims.Role)
			response.Forbidden(c, "Forbidden")
			return
		}
		c.Set("user", claims.Subject)
		c.Set("role", claims.Role)
		c.Next()
	}
}
