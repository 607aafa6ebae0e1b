package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muhwezim78/Nashiecom-sub000/pkg/resp"
	"github.com/muhwezim78/Nashiecom-sub000/services"
	"github.com/muhwezim78/Nashiecom-sub000/utils"
)

type NotificationController struct {
	service *services.NotificationService
}

func NewNotificationController(s *services.NotificationService) *NotificationController {
	return &NotificationController{s}
}

// GET /notifications
func (c *NotificationController) List(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	items, err := c.service.List(utils.CurrentUserID(ctx), limit)
	if err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, items)
}

// GET /notifications/unread-count
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	count, err := c.service.UnreadCount(utils.CurrentUserID(ctx))
	if err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, gin.H{"count": count})
}

// PATCH /notifications/:id/read
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	id, _ := strconv.Atoi(ctx.Param("id"))
	if err := c.service.MarkRead(utils.CurrentUserID(ctx), uint(id)); err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, gin.H{"read": id})
}

// POST /notifications/read-all
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	if err := c.service.MarkAllRead(utils.CurrentUserID(ctx)); err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, gin.H{"read": "all"})
}
