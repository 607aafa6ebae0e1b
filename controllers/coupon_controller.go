package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"github.com/muhwezim78/Nashiecom-sub000/pkg/resp"
	"github.com/muhwezim78/Nashiecom-sub000/services"
)

type CouponController struct {
	service *services.CouponService
}

func NewCouponController(s *services.CouponService) *CouponController {
	return &CouponController{s}
}

// POST /coupons/preview
func (c *CouponController) Preview(ctx *gin.Context) {
	var req struct {
		Code     string `json:"code" binding:"required"`
		Subtotal int64  `json:"subtotal" binding:"required,gt=0"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(ctx, "invalid request")
		return
	}

	discount, coupon, err := c.service.Preview(req.Code, req.Subtotal)
	if err != nil {
		resp.Conflict(ctx, err.Error())
		return
	}
	resp.OK(ctx, gin.H{"discount": discount, "coupon": coupon})
}

// GET /admin/coupons
func (c *CouponController) List(ctx *gin.Context) {
	coupons, err := c.service.List()
	if err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, coupons)
}

// POST /admin/coupons
func (c *CouponController) Create(ctx *gin.Context) {
	var req struct {
		Code        string    `json:"code" binding:"required"`
		DiscountPct int       `json:"discountPct" binding:"required"`
		MinSpend    int64     `json:"minSpend"`
		UsageLimit  int       `json:"usageLimit"`
		ExpiresAt   time.Time `json:"expiresAt"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(ctx, "invalid request")
		return
	}

	coupon := &entity.Coupon{
		Code:        req.Code,
		DiscountPct: req.DiscountPct,
		MinSpend:    req.MinSpend,
		UsageLimit:  req.UsageLimit,
		ExpiresAt:   req.ExpiresAt,
	}
	if err := c.service.Create(coupon); err != nil {
		resp.BadRequest(ctx, err.Error())
		return
	}
	resp.Created(ctx, coupon)
}

// DELETE /admin/coupons/:id
func (c *CouponController) Delete(ctx *gin.Context) {
	id, _ := strconv.Atoi(ctx.Param("id"))
	if err := c.service.Delete(uint(id)); err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, gin.H{"deleted": id})
}
