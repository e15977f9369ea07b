// services/menu_service.go
package services

import (
	"quickbite-backend/entity"
	"quickbite-backend/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository

	// status id ของ "Available" จาก lookup — cache ไว้ตอนสร้าง service
	AvailableStatusID uint
}

func NewMenuService(repo *repository.MenuRepository, availableStatusID uint) *MenuService {
	return &MenuService{Repo: repo, AvailableStatusID: availableStatusID}
}

// ฝั่งลูกค้า: เฉพาะเมนูที่สั่งได้
func (s *MenuService) ListAvailable(restID uint) ([]entity.Menu, error) {
	return s.Repo.FindAvailableByRestaurant(restID, s.AvailableStatusID)
}

// ฝั่ง owner: ทุกเมนูทุกสถานะ
func (s *MenuService) ListByRestaurant(restID uint) ([]entity.Menu, error) {
	return s.Repo.FindByRestaurant(restID)
}

func (s *MenuService) Get(id uint) (*entity.Menu, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) Create(menu *entity.Menu) error {
	if menu.MenuStatusID == 0 {
		menu.MenuStatusID = s.AvailableStatusID
	}
	return s.Repo.Create(menu)
}

func (s *MenuService) Update(menu *entity.Menu) error {
	return s.Repo.Update(menu)
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
