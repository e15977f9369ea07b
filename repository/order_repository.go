package repository

import (
	"strings"
	"time"

	"quickbite-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders (CRUD หลัก) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /profile/order (ลูกค้า) → รายการ order ของ user
// ดึงข้อมูลตามนี้ แล้วส่งไป
type OrderSummary struct {
	ID            uint      `json:"id"`
	RefCode       string    `json:"refCode"`
	RestaurantID  uint      `json:"restaurantId"`
	Total         int64     `json:"total"`
	OrderStatusID uint      `json:"orderStatusId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, ref_code, restaurant_id, total, order_status_id, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// GET /orders/:id (ลูกค้า) → รายละเอียด order
func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /partner/restaurant/order → รายการ order ของร้าน
type OwnerOrderSummary struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"userId"`
	CustomerName  string    `json:"customerName"`
	Total         int64     `json:"total"`
	OrderStatusID uint      `json:"orderStatusId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForRestaurant(restID uint, statusID *uint, page, limit int) ([]OwnerOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	// count orders
	var total int64
	dbCount := r.DB.Table("orders AS o").Where("o.restaurant_id = ?", restID)
	if statusID != nil && *statusID != 0 {
		dbCount = dbCount.Where("o.order_status_id = ?", *statusID)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// join users → ดึงชื่อลูกค้า
	var rows []struct {
		ID            uint
		UserID        uint
		Total         int64
		OrderStatusID uint
		CreatedAt     time.Time
		FirstName     string
		LastName      string
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.user_id, o.total, o.order_status_id, o.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.restaurant_id = ?", restID)
	if statusID != nil && *statusID != 0 {
		db = db.Where("o.order_status_id = ?", *statusID)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]OwnerOrderSummary, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.FirstName + " " + row.LastName)
		out = append(out, OwnerOrderSummary{
			ID:            row.ID,
			UserID:        row.UserID,
			CustomerName:  name,
			Total:         row.Total,
			OrderStatusID: row.OrderStatusID,
			CreatedAt:     row.CreatedAt,
		})
	}
	return out, total, nil
}

// รายละเอียด order ฝั่งร้าน
func (r *OrderRepository) GetOrderForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// PATCH status แบบมี guard: อัปเดตเฉพาะตอนสถานะปัจจุบันตรงกับ from
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, fromID, toID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, fromID).
		Update("order_status_id", toID)
	return res.RowsAffected, res.Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, qty, unit_price, total, menu_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// ---------------- Validations / Helpers ----------------

// เช็คร้านว่ามีอยู่จริงมั้ย
func (r *OrderRepository) RestaurantExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// หาค่า status id จากชื่อ
func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.OrderStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}

// สรุปยอดวันนี้ของร้าน (dashboard เจ้าของร้าน)
type DailyStats struct {
	OrderCount   int64 `json:"orderCount"`
	Revenue      int64 `json:"revenue"`
	PendingCount int64 `json:"pendingCount"`
}

func (r *OrderRepository) StatsForRestaurantToday(restID, pendingStatusID uint) (*DailyStats, error) {
	start := time.Now().Truncate(24 * time.Hour)

	var s DailyStats
	base := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND created_at >= ?", restID, start)
	if err := base.Count(&s.OrderCount).Error; err != nil {
		return nil, err
	}

	var rev struct{ Revenue int64 }
	if err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND created_at >= ?", restID, start).
		Select("COALESCE(SUM(total),0) AS revenue").
		Scan(&rev).Error; err != nil {
		return nil, err
	}
	s.Revenue = rev.Revenue

	if err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND order_status_id = ?", restID, pendingStatusID).
		Count(&s.PendingCount).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
