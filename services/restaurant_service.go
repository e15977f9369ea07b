// services/restaurant_service.go
package services

import (
	"quickbite-backend/entity"
	"quickbite-backend/repository"
)

type RestaurantService struct {
	Repo      *repository.RestaurantRepository
	OrderRepo *repository.OrderRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository, orderRepo *repository.OrderRepository) *RestaurantService {
	return &RestaurantService{Repo: repo, OrderRepo: orderRepo}
}

// ดึงร้านทั้งหมด (filter ด้วย category / คำค้น)
func (s *RestaurantService) List(categoryID uint, search string) ([]entity.Restaurant, error) {
	return s.Repo.FindAll(categoryID, search)
}

type RestaurantDetail struct {
	Restaurant  *entity.Restaurant `json:"restaurant"`
	AvgRating   float64            `json:"avgRating"`
	ReviewCount int64              `json:"reviewCount"`
}

// ดึงร้านตาม ID พร้อมคะแนนรีวิว
func (s *RestaurantService) Get(id uint) (*RestaurantDetail, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	avg, count, err := s.Repo.RatingAggregate(id)
	if err != nil {
		return nil, err
	}
	return &RestaurantDetail{Restaurant: rest, AvgRating: avg, ReviewCount: count}, nil
}

// อัปเดตร้าน (owner เท่านั้น — ตรวจที่ controller)
func (s *RestaurantService) Update(rest *entity.Restaurant) error {
	return s.Repo.Update(rest)
}

func (s *RestaurantService) IsOwnedBy(restID, userID uint) (bool, error) {
	return s.Repo.IsOwnedBy(restID, userID)
}

// Dashboard เจ้าของร้าน: ยอดวันนี้
func (s *RestaurantService) Dashboard(restID, pendingStatusID uint) (*repository.DailyStats, error) {
	return s.OrderRepo.StatsForRestaurantToday(restID, pendingStatusID)
}
