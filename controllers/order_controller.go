package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/resp"
	"github.com/parthdk16/Restaurant-Management-System-sub001/services"
)

type OrderController struct {
	Checkout *services.CheckoutService
}

func NewOrderController(checkout *services.CheckoutService) *OrderController {
	return &OrderController{Checkout: checkout}
}

func (oc *OrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	orders, total, err := oc.Checkout.ListOrders(limit, offset)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders, "page": page, "limit": limit, "total": total})
}

func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := oc.Checkout.GetOrder(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}
