package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	RefCode     string `gorm:"size:36;uniqueIndex" json:"refCode"` // รหัสอ้างอิงสำหรับลูกค้า
	Subtotal    int64  `json:"subtotal"`
	Discount    int64  `json:"discount"`
	DeliveryFee int64  `json:"deliveryFee"`
	Total       int64  `json:"total"`

	// snapshot ตอน checkout
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
	Note          string `json:"note"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload เฉพาะตอนต้องการ user detail

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload เมื่อจำเป็น

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	// preload แค่ตอน detail
	OrderItems []OrderItem `json:"-"`
	Reviews    []Review    `json:"-"`

	ChatRoom *ChatRoom `gorm:"foreignKey:OrderID;references:ID" json:"-"`
}
