package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imalriyad/bistro-boss-server/entity"
	"github.com/imalriyad/bistro-boss-server/pkg/resp"
	"github.com/imalriyad/bistro-boss-server/services"
)

type UserController struct{ Svc *services.UserService }

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

// POST /api/v1/create-user
// Idempotent: a second create with the same email stores nothing and
// answers 200 with a plain message.
func (u *UserController) Create(c *gin.Context) {
	var user entity.User
	if err := c.ShouldBindJSON(&user); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, err := u.Svc.Create(c.Request.Context(), &user)
	if errors.Is(err, services.ErrUserExists) {
		c.String(http.StatusOK, "Already have an account with this email")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

// GET /api/v1/users
func (u *UserController) List(c *gin.Context) {
	users, err := u.Svc.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// PATCH /api/v1/make-admin/:id
func (u *UserController) MakeAdmin(c *gin.Context) {
	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	matched, modified, err := u.Svc.AssignRole(c.Request.Context(), c.Param("id"), body.Role)
	if errors.Is(err, services.ErrInvalidID) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": matched, "modifiedCount": modified})
}

// DELETE /api/v1/user/:id
func (u *UserController) Delete(c *gin.Context) {
	deleted, err := u.Svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrInvalidID) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
