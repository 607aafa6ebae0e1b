package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/muhwezim78/Nashiecom-sub000/pkg/resp"
	"github.com/muhwezim78/Nashiecom-sub000/services"
	"github.com/muhwezim78/Nashiecom-sub000/utils"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{s}
}

// POST /auth/register
func (c *AuthController) Register(ctx *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=8"`
		FirstName   string `json:"firstName" binding:"required"`
		LastName    string `json:"lastName"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(ctx, "invalid request")
		return
	}

	user, err := c.service.Register(req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.Conflict(ctx, err.Error())
			return
		}
		resp.ServerError(ctx, err)
		return
	}
	resp.Created(ctx, user)
}

// POST /auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(ctx, "invalid request")
		return
	}

	token, user, err := c.service.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(ctx, "invalid credentials")
		return
	}
	resp.OK(ctx, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (c *AuthController) Me(ctx *gin.Context) {
	user, err := c.service.Me(utils.CurrentUserID(ctx))
	if err != nil {
		resp.NotFound(ctx, "user not found")
		return
	}
	resp.OK(ctx, user)
}

// PATCH /auth/me
func (c *AuthController) UpdateMe(ctx *gin.Context) {
	var req services.ProfileUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(ctx, "invalid request")
		return
	}
	user, err := c.service.UpdateMe(utils.CurrentUserID(ctx), req)
	if err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, user)
}
