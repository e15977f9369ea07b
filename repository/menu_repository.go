// repository/menu_repository.go
package repository

import (
	"quickbite-backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ดึงเมนูทั้งหมดของร้าน (owner เห็นทุกสถานะ)
func (r *MenuRepository) FindByRestaurant(restID uint) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.
		Preload("MenuStatus").
		Where("restaurant_id = ?", restID).
		Find(&menus).Error
	return menus, err
}

// เมนูที่ลูกค้าสั่งได้ (Available เท่านั้น)
func (r *MenuRepository) FindAvailableByRestaurant(restID, availableStatusID uint) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.
		Where("restaurant_id = ? AND menu_status_id = ?", restID, availableStatusID).
		Find(&menus).Error
	return menus, err
}

// ดึงเมนูเดียว
func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.
		Preload("MenuStatus").
		First(&menu, id).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// เอา menu พื้นฐานไว้ seed ตะกร้า (id, ชื่อ, ราคา, ร้าน)
func (r *MenuRepository) GetBasics(id uint) (entity.Menu, error) {
	var m entity.Menu
	err := r.DB.Select("id, menu_name, price, restaurant_id, menu_status_id, image_size").First(&m, id).Error
	return m, err
}

// สร้างเมนูใหม่
func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

// อัปเดตเมนู
func (r *MenuRepository) Update(menu *entity.Menu) error {
	return r.DB.Save(menu).Error
}

// ลบเมนู
func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Menu{}, id).Error
}
