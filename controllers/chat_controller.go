package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muhwezim78/Nashiecom-sub000/pkg/resp"
	"github.com/muhwezim78/Nashiecom-sub000/services"
	"github.com/muhwezim78/Nashiecom-sub000/utils"
	"github.com/muhwezim78/Nashiecom-sub000/ws"
)

type ChatController struct {
	service *services.ChatService
}

func NewChatController(s *services.ChatService) *ChatController {
	return &ChatController{s}
}

// GET /orders/:id/messages is the history load when the chat opens.
func (c *ChatController) ListMessages(ctx *gin.Context) {
	orderID, _ := strconv.Atoi(ctx.Param("id"))
	userID := utils.CurrentUserID(ctx)
	role := utils.CurrentRole(ctx)

	ok, err := c.service.CanAccess(userID, role, uint(orderID))
	if err != nil {
		resp.NotFound(ctx, "order not found")
		return
	}
	if !ok {
		resp.Forbidden(ctx, "no access to this order chat")
		return
	}

	msgs, err := c.service.History(uint(orderID))
	if err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, gin.H{"messages": msgs})
}

// POST /orders/:id/messages is the persistence endpoint. No broadcast happens
// here; the socket relay is the broadcasting path.
func (c *ChatController) SendMessage(ctx *gin.Context) {
	orderID, _ := strconv.Atoi(ctx.Param("id"))
	userID := utils.CurrentUserID(ctx)
	role := utils.CurrentRole(ctx)

	ok, err := c.service.CanAccess(userID, role, uint(orderID))
	if err != nil {
		resp.NotFound(ctx, "order not found")
		return
	}
	if !ok {
		resp.Forbidden(ctx, "no access to this order chat")
		return
	}

	var req struct {
		Content  string `json:"content"`
		ImageURL string `json:"imageUrl"`
		Location string `json:"location"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(ctx, "invalid request")
		return
	}

	msg, err := c.service.SaveMessage(ctx.Request.Context(), uint(orderID),
		ws.Identity{UserID: userID, Role: role},
		ws.Draft{Content: req.Content, ImageURL: req.ImageURL, Location: req.Location})
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			resp.BadRequest(ctx, err.Error())
			return
		}
		resp.ServerError(ctx, err)
		return
	}
	resp.Created(ctx, gin.H{"message": msg})
}
