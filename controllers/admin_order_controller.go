package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muhwezim78/Nashiecom-sub000/pkg/resp"
	"github.com/muhwezim78/Nashiecom-sub000/services"
)

type AdminOrderController struct {
	service *services.OrderService
}

func NewAdminOrderController(s *services.OrderService) *AdminOrderController {
	return &AdminOrderController{s}
}

// GET /admin/orders?status=
func (c *AdminOrderController) List(ctx *gin.Context) {
	orders, err := c.service.ListAll(ctx.Query("status"))
	if err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, orders)
}

// PATCH /admin/orders/:id/status
func (c *AdminOrderController) UpdateStatus(ctx *gin.Context) {
	id, _ := strconv.Atoi(ctx.Param("id"))
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(ctx, "invalid request")
		return
	}

	order, err := c.service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.Conflict(ctx, err.Error())
			return
		}
		resp.NotFound(ctx, "order not found")
		return
	}
	resp.OK(ctx, order)
}
