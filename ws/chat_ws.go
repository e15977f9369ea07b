package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"

	"quickbite-backend/entity"
	"quickbite-backend/services"
	"quickbite-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ChatHub คือศูนย์กลางของระบบแชทผ่าน WebSocket
type ChatHub struct {
	clients    map[uint]map[*websocket.Conn]bool // roomID -> set of clients
	broadcast  chan BroadcastMessage
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	service    *services.ChatService
}

// Subscription = การสมัครสมาชิกห้อง (1 user ต่อ 1 connection)
type Subscription struct {
	Conn   *websocket.Conn
	RoomID uint
	UserID uint
}

// BroadcastMessage = ข้อความที่จะส่งกระจายให้ทุกคนในห้อง
type BroadcastMessage struct {
	RoomID  uint
	Message *entity.Message
}

func NewChatHub(service *services.ChatService) *ChatHub {
	return &ChatHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan BroadcastMessage),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		service:    service,
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *ChatHub) Run() {
	for {
		select {
		// มี client ใหม่เข้าห้อง
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RoomID] == nil {
				h.clients[sub.RoomID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RoomID][sub.Conn] = true
			h.mu.Unlock()

		// client ออกจากห้อง
		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RoomID][sub.Conn]; ok {
				delete(h.clients[sub.RoomID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		// มีข้อความใหม่ → กระจายให้ทุกคนในห้อง
		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.RoomID] {
				if err := conn.WriteJSON(msg.Message); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.RoomID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/chat/:roomId
func (h *ChatHub) HandleWebSocket(c *gin.Context) {
	roomID64, err := strconv.ParseUint(c.Param("roomId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}
	roomID := uint(roomID64)

	// userId มาจาก JWT ที่ WSAuthMiddleware ใส่ไว้
	userID := utils.CurrentUserID(c)

	// ตรวจสิทธิ์: เจ้าของ order หรือเจ้าของร้านเท่านั้น
	ok, err := h.service.CanJoin(roomID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, RoomID: roomID, UserID: userID}
	h.register <- sub

	go h.listenMessages(sub)
}

// listenMessages ฟังข้อความใหม่จาก client ทาง WS
func (h *ChatHub) listenMessages(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		_, msgData, err := sub.Conn.ReadMessage()
		if err != nil {
			break
		}

		var payload struct {
			Body string `json:"body"`
		}
		if err := json.Unmarshal(msgData, &payload); err != nil || payload.Body == "" {
			continue
		}

		// ผู้ส่งมาจาก JWT เสมอ ไม่เชื่อ FE
		msg, err := h.service.SendMessage(sub.RoomID, sub.UserID, payload.Body)
		if err != nil {
			log.Printf("save msg error: %v", err)
			continue
		}

		h.broadcast <- BroadcastMessage{RoomID: sub.RoomID, Message: msg}
	}
}
