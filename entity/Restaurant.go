package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Logo        string `json:"logo"`

	RestaurantCategoryID uint               `json:"restaurantCategoryId"`
	RestaurantCategory   RestaurantCategory `json:"restaurantCategory"`
	RestaurantStatusID   uint               `json:"restaurantStatusId"`
	RestaurantStatus     RestaurantStatus   `json:"restaurantStatus"`

	UserID uint `json:"userId"` // owner (users.id)
	User   User `json:"-"`

	Menus   []Menu   `json:"-"`
	Orders  []Order  `json:"-"`
	Reviews []Review `json:"-"`
}
