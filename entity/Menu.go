package entity

import (
	"fmt"

	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	MenuName string `json:"menuName"`
	Detail   string `json:"detail"`
	Price    int64  `json:"price"` // หน่วยสตางค์

	// --- รูปแบบ BLOB ---
	Image     []byte `gorm:"type:blob" json:"-"` // เก็บเนื้อรูป (ไม่ serialize ออกใน JSON)
	ImageType string `json:"-"`                  // เช่น "image/jpeg"
	ImageSize int64  `json:"-"`                  // ขนาดเป็น byte

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload เมื่อจำเป็น

	MenuStatusID uint       `json:"menuStatusId"`
	MenuStatus   MenuStatus `json:"-"` // preload เฉพาะ endpoint จัดการเมนู

	OrderItems []OrderItem `json:"-"`
}

// ImageRef คืน path สำหรับโหลดรูปเมนู ("" ถ้ายังไม่มีรูป)
func (m *Menu) ImageRef() string {
	if m.ImageSize == 0 {
		return ""
	}
	return fmt.Sprintf("/menus/%d/image", m.ID)
}

