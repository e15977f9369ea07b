// services/order_transitions.go
package services

import (
	"errors"

	"gorm.io/gorm"
)

var ErrInvalidTransition = errors.New("invalid_or_conflict")

// ----- Owner actions -----
// ทุก transition ใช้ guard update (where สถานะปัจจุบัน) กันกดซ้ำ/ข้ามสถานะ

func (s *OrderService) OwnerAccept(ownerID, orderID uint) error {
	return s.transition(ownerID, orderID, s.Status.Pending, s.Status.Preparing)
}

func (s *OrderService) OwnerHandoff(ownerID, orderID uint) error {
	return s.transition(ownerID, orderID, s.Status.Preparing, s.Status.Delivering)
}

func (s *OrderService) OwnerComplete(ownerID, orderID uint) error {
	return s.transition(ownerID, orderID, s.Status.Delivering, s.Status.Completed)
}

// ยกเลิกได้เฉพาะตอนยัง Pending
func (s *OrderService) OwnerCancel(ownerID, orderID uint) error {
	return s.transition(ownerID, orderID, s.Status.Pending, s.Status.Cancelled)
}

func (s *OrderService) transition(ownerID, orderID, fromID, toID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}
		ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, ownerID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrForbidden
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, fromID, toID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}
