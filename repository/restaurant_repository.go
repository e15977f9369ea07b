// repository/restaurant_repository.go
package repository

import (
	"quickbite-backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// ดึงร้านทั้งหมด (filter category/คำค้นได้)
func (r *RestaurantRepository) FindAll(categoryID uint, search string) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	db := r.DB.
		Preload("RestaurantCategory").
		Preload("RestaurantStatus")
	if categoryID != 0 {
		db = db.Where("restaurant_category_id = ?", categoryID)
	}
	if search != "" {
		db = db.Where("name LIKE ?", "%"+search+"%")
	}
	err := db.Find(&rests).Error
	return rests, err
}

// ดึงร้านตาม ID
func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("RestaurantCategory").
		Preload("RestaurantStatus").
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// เช็คว่า user เป็นเจ้าของร้านนี้มั้ย
func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

// คะแนนรีวิวเฉลี่ย + จำนวน สำหรับหน้า detail
func (r *RestaurantRepository) RatingAggregate(restID uint) (float64, int64, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err := r.DB.Model(&entity.Review{}).
		Where("restaurant_id = ?", restID).
		Select("COALESCE(AVG(rating),0) AS avg, COUNT(*) AS count").
		Scan(&row).Error
	return row.Avg, row.Count, err
}

// อัปเดตร้าน
func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}
