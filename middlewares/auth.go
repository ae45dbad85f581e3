package middlewares

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/imalriyad/bistro-boss-server/entity"
	"github.com/imalriyad/bistro-boss-server/pkg/resp"
	"github.com/imalriyad/bistro-boss-server/utils"
)

// UserFinder is the single read the admin gate performs per request.
// Implementations return (nil, nil) when no user exists for the email.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// AuthMiddleware rejects requests without a valid bearer token and attaches
// the decoded claims (and the email claim) to the context.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c)
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c)
			c.Abort()
			return
		}

		email, _ := claims["email"].(string)
		c.Set("claims", claims)
		c.Set("email", email)
		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware. The role is read from the
// users collection on every invocation, never from the token.
func AdminMiddleware(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}
		if user == nil || user.Role != "admin" {
			resp.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
