package controllers

import (
	"strconv"

	"quickbite-backend/pkg/resp"
	"quickbite-backend/services"
	"quickbite-backend/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	service *services.ChatService
}

func NewChatController(s *services.ChatService) *ChatController {
	return &ChatController{s}
}

// GET /chatrooms — ห้องแชทของ user ที่ login
func (cc *ChatController) ListRooms(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	rooms, err := cc.service.GetRoomsByUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rooms})
}

// POST /orders/:id/chatroom — เปิด (หรือหยิบ) ห้องของ order นั้น
func (cc *ChatController) RoomForOrder(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orderID, _ := strconv.Atoi(c.Param("id"))

	room, err := cc.service.GetOrCreateRoom(uint(orderID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	ok, err := cc.service.CanJoin(room.ID, uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.Forbidden(c, "not a participant of this order")
		return
	}
	resp.OK(c, room)
}

// GET /chatrooms/:id/messages — ประวัติแชท
func (cc *ChatController) ListMessages(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	roomID, _ := strconv.Atoi(c.Param("id"))

	ok, err := cc.service.CanJoin(uint(roomID), uid)
	if err != nil {
		resp.NotFound(c, "room not found")
		return
	}
	if !ok {
		resp.Forbidden(c, "not a participant of this room")
		return
	}

	msgs, err := cc.service.GetMessages(uint(roomID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": msgs})
}
