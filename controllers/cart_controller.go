package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muhwezim78/Nashiecom-sub000/pkg/resp"
	"github.com/muhwezim78/Nashiecom-sub000/services"
	"github.com/muhwezim78/Nashiecom-sub000/utils"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{s}
}

// GET /cart
func (c *CartController) Get(ctx *gin.Context) {
	cart, err := c.service.Get(utils.CurrentUserID(ctx))
	if err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, cart)
}

// POST /cart/items
func (c *CartController) AddItem(ctx *gin.Context) {
	var req struct {
		ProductID uint `json:"productId" binding:"required"`
		Quantity  int  `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(ctx, "invalid request")
		return
	}

	cart, err := c.service.AddItem(utils.CurrentUserID(ctx), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrOutOfStock) {
			resp.Conflict(ctx, err.Error())
			return
		}
		resp.NotFound(ctx, "product not found")
		return
	}
	resp.OK(ctx, cart)
}

// PATCH /cart/items/:id
func (c *CartController) UpdateItem(ctx *gin.Context) {
	itemID, _ := strconv.Atoi(ctx.Param("id"))
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(ctx, "invalid request")
		return
	}

	cart, err := c.service.UpdateItem(utils.CurrentUserID(ctx), uint(itemID), req.Quantity)
	if err != nil {
		resp.NotFound(ctx, "cart item not found")
		return
	}
	resp.OK(ctx, cart)
}

// DELETE /cart/items/:id
func (c *CartController) RemoveItem(ctx *gin.Context) {
	itemID, _ := strconv.Atoi(ctx.Param("id"))
	cart, err := c.service.RemoveItem(utils.CurrentUserID(ctx), uint(itemID))
	if err != nil {
		resp.NotFound(ctx, "cart item not found")
		return
	}
	resp.OK(ctx, cart)
}
