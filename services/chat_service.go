// services/chat_service.go
package services

import (
	"errors"

	"quickbite-backend/entity"
	"quickbite-backend/repository"

	"gorm.io/gorm"
)

type ChatService struct {
	repo      *repository.ChatRepository
	orderRepo *repository.OrderRepository
	restRepo  *repository.RestaurantRepository
}

func NewChatService(repo *repository.ChatRepository, orderRepo *repository.OrderRepository, restRepo *repository.RestaurantRepository) *ChatService {
	return &ChatService{repo, orderRepo, restRepo}
}

// GetOrCreateRoom: หนึ่ง order มีห้องเดียว สร้างให้ตอนเปิดครั้งแรก
func (s *ChatService) GetOrCreateRoom(orderID uint) (*entity.ChatRoom, error) {
	room, err := s.repo.FindRoomByOrder(orderID)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	room = &entity.ChatRoom{OrderID: orderID}
	if err := s.repo.CreateRoom(room); err != nil {
		return nil, err
	}
	return room, nil
}

// คนในห้อง = ลูกค้าเจ้าของ order หรือเจ้าของร้านของ order นั้น
func (s *ChatService) CanJoin(roomID, userID uint) (bool, error) {
	room, err := s.repo.FindRoomByID(roomID)
	if err != nil {
		return false, err
	}
	order, err := s.orderRepo.GetOrder(room.OrderID)
	if err != nil {
		return false, err
	}
	if order.UserID == userID {
		return true, nil
	}
	return s.restRepo.IsOwnedBy(order.RestaurantID, userID)
}

func (s *ChatService) GetRoomsByUser(userID uint) ([]entity.ChatRoom, error) {
	return s.repo.FindRoomsByUser(userID)
}

func (s *ChatService) GetMessages(roomID uint) ([]entity.Message, error) {
	return s.repo.FindMessagesByRoom(roomID)
}

func (s *ChatService) SendMessage(roomID, userID uint, body string) (*entity.Message, error) {
	msg := &entity.Message{
		Body:     body,
		SenderID: userID,
		RoomID:   roomID,
	}
	err := s.repo.CreateMessage(msg)
	return msg, err
}
