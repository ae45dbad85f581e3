package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imalriyad/bistro-boss-server/entity"
	"github.com/imalriyad/bistro-boss-server/pkg/resp"
)

// FoodStore is the slice of the foods collection the menu endpoints use.
type FoodStore interface {
	Insert(ctx context.Context, f *entity.Food) (string, error)
	List(ctx context.Context) ([]entity.Food, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type FoodController struct{ Foods FoodStore }

func NewFoodController(foods FoodStore) *FoodController {
	return &FoodController{Foods: foods}
}

// POST /api/v1/add-item
func (h *FoodController) Add(c *gin.Context) {
	var food entity.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, err := h.Foods.Insert(c.Request.Context(), &food)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

// GET /api/v1/get-all-foods
func (h *FoodController) List(c *gin.Context) {
	foods, err := h.Foods.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// DELETE /api/v1/delete-from-foods/:id
func (h *FoodController) Remove(c *gin.Context) {
	deleted, err := h.Foods.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
