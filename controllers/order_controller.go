package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muhwezim78/Nashiecom-sub000/pkg/resp"
	"github.com/muhwezim78/Nashiecom-sub000/services"
	"github.com/muhwezim78/Nashiecom-sub000/utils"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{s}
}

// POST /checkout
func (c *OrderController) Checkout(ctx *gin.Context) {
	var req struct {
		Address    string `json:"address" binding:"required"`
		CouponCode string `json:"couponCode"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(ctx, "invalid request")
		return
	}

	order, err := c.service.Checkout(utils.CurrentUserID(ctx), req.Address, req.CouponCode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			resp.BadRequest(ctx, err.Error())
		case errors.Is(err, services.ErrOutOfStock), errors.Is(err, services.ErrCouponInvalid):
			resp.Conflict(ctx, err.Error())
		default:
			resp.ServerError(ctx, err)
		}
		return
	}
	resp.Created(ctx, order)
}

// GET /orders
func (c *OrderController) ListForMe(ctx *gin.Context) {
	orders, err := c.service.ListForUser(utils.CurrentUserID(ctx))
	if err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, orders)
}

// GET /orders/:id
func (c *OrderController) Detail(ctx *gin.Context) {
	id, _ := strconv.Atoi(ctx.Param("id"))
	order, err := c.service.Detail(uint(id), utils.CurrentUserID(ctx), utils.CurrentRole(ctx))
	if err != nil {
		resp.NotFound(ctx, "order not found")
		return
	}
	resp.OK(ctx, order)
}
