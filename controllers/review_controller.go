package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muhwezim78/Nashiecom-sub000/pkg/resp"
	"github.com/muhwezim78/Nashiecom-sub000/services"
	"github.com/muhwezim78/Nashiecom-sub000/utils"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{s}
}

// GET /products/:id/reviews
func (c *ReviewController) ListForProduct(ctx *gin.Context) {
	productID, _ := strconv.Atoi(ctx.Param("id"))
	reviews, err := c.service.ListForProduct(uint(productID))
	if err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, reviews)
}

// POST /products/:id/reviews
func (c *ReviewController) Create(ctx *gin.Context) {
	productID, _ := strconv.Atoi(ctx.Param("id"))
	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(ctx, "invalid request")
		return
	}

	review, err := c.service.Create(utils.CurrentUserID(ctx), uint(productID), req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			resp.BadRequest(ctx, err.Error())
		case errors.Is(err, services.ErrNotEligible):
			resp.Forbidden(ctx, err.Error())
		case errors.Is(err, services.ErrAlreadyReviewed):
			resp.Conflict(ctx, err.Error())
		default:
			resp.ServerError(ctx, err)
		}
		return
	}
	resp.Created(ctx, review)
}
