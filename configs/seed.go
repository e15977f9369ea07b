package configs

import (
	"log"

	"quickbite-backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("ℹ️ admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// Seed ค่า lookup/status เริ่มต้น
func SeedLookups() error {
	db := DB()

	// Restaurant
	db.FirstOrCreate(&entity.RestaurantStatus{}, entity.RestaurantStatus{StatusName: "Open"})
	db.FirstOrCreate(&entity.RestaurantStatus{}, entity.RestaurantStatus{StatusName: "Closed"})
	db.FirstOrCreate(&entity.RestaurantCategory{}, entity.RestaurantCategory{CategoryName: "Cafe"})
	db.FirstOrCreate(&entity.RestaurantCategory{}, entity.RestaurantCategory{CategoryName: "Fast Food"})
	db.FirstOrCreate(&entity.RestaurantCategory{}, entity.RestaurantCategory{CategoryName: "Street Food"})

	// Menu
	db.FirstOrCreate(&entity.MenuStatus{}, entity.MenuStatus{StatusName: "Available"})
	db.FirstOrCreate(&entity.MenuStatus{}, entity.MenuStatus{StatusName: "Out of Stock"})

	// Order
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Pending"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Preparing"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Delivering"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Completed"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Cancelled"})

	log.Println("✅ Lookup tables seeded")
	return nil
}
