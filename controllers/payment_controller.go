package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imalriyad/bistro-boss-server/entity"
	"github.com/imalriyad/bistro-boss-server/pkg/resp"
	"github.com/imalriyad/bistro-boss-server/services"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

// POST /api/v1/create-payment-intent
func (h *PaymentController) CreateIntent(c *gin.Context) {
	var body struct {
		Price float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	secret, err := h.Svc.CreateIntent(c.Request.Context(), body.Price)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// POST /api/v1/save-payment-details
func (h *PaymentController) Save(c *gin.Context) {
	var payment entity.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, err := h.Svc.Save(c.Request.Context(), &payment)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}
