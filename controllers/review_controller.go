package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imalriyad/bistro-boss-server/entity"
	"github.com/imalriyad/bistro-boss-server/pkg/resp"
)

type ReviewStore interface {
	List(ctx context.Context) ([]entity.Review, error)
}

type ReviewController struct{ Reviews ReviewStore }

func NewReviewController(reviews ReviewStore) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// GET /api/v1/get-reviews
func (h *ReviewController) List(c *gin.Context) {
	reviews, err := h.Reviews.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
