package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/imalriyad/bistro-boss-server/pkg/resp"
	"github.com/imalriyad/bistro-boss-server/services"
	"github.com/imalriyad/bistro-boss-server/utils"
)

type AuthController struct {
	Secret []byte
	TTL    time.Duration
	Users  *services.UserService
}

func NewAuthController(secret []byte, ttl time.Duration, users *services.UserService) *AuthController {
	return &AuthController{Secret: secret, TTL: ttl, Users: users}
}

// POST /api/v1/jwt
// The body is an arbitrary claims object; whatever the client sends is
// signed as-is with a one hour expiry.
func (a *AuthController) IssueToken(c *gin.Context) {
	var claims jwt.MapClaims
	if err := c.ShouldBindJSON(&claims); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, err := utils.GenerateToken(claims, a.Secret, a.TTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GET /api/v1/getUserRole/:email
// Callers may only ask about their own email.
func (a *AuthController) UserRole(c *gin.Context) {
	queryMail := c.Param("email")
	if queryMail != c.GetString("email") {
		resp.Forbidden(c)
		return
	}
	admin, err := a.Users.IsAdmin(c.Request.Context(), queryMail)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}
