package configs

import (
	"quickbite-backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.RestaurantCategory{}, &entity.RestaurantStatus{}, &entity.Restaurant{},
		&entity.MenuStatus{}, &entity.Menu{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
		&entity.ChatRoom{}, &entity.Message{},
	)
}
