package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imalriyad/bistro-boss-server/entity"
	"github.com/imalriyad/bistro-boss-server/pkg/resp"
	"github.com/imalriyad/bistro-boss-server/services"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// POST /api/v1/add-to-cart
func (h *CartController) Add(c *gin.Context) {
	var item entity.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, err := h.Svc.Add(c.Request.Context(), &item)
	if errors.Is(err, services.ErrDuplicateItem) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item already added to the cart"})
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// GET /api/v1/get-cart?email=
func (h *CartController) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// DELETE /api/v1/delete-from-cart/:id
func (h *CartController) Remove(c *gin.Context) {
	deleted, err := h.Svc.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
