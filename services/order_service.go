package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"quickbite-backend/entity"
	"quickbite-backend/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ค่าส่งคงที่ (สตางค์) — บวกตอนแสดงผลและตอน checkout เท่านั้น
const DeliveryFee int64 = 2000

var (
	ErrCartEmpty       = errors.New("cart is empty")
	ErrAddressRequired = errors.New("delivery address is required")
	ErrForbidden       = errors.New("forbidden")
)

type StatusIDs struct {
	Pending    uint
	Preparing  uint
	Delivering uint
	Completed  uint
	Cancelled  uint
}

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
	Cart *CartService

	RestRepo *repository.RestaurantRepository
	Status   StatusIDs
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cart *CartService,
	restRepo *repository.RestaurantRepository,
) *OrderService {
	s := &OrderService{DB: db, Repo: repo, Cart: cart, RestRepo: restRepo}

	if id, err := repo.GetStatusIDByName("Pending"); err == nil {
		s.Status.Pending = id
	}
	if id, err := repo.GetStatusIDByName("Preparing"); err == nil {
		s.Status.Preparing = id
	}
	if id, err := repo.GetStatusIDByName("Delivering"); err == nil {
		s.Status.Delivering = id
	}
	if id, err := repo.GetStatusIDByName("Completed"); err == nil {
		s.Status.Completed = id
	}
	if id, err := repo.GetStatusIDByName("Cancelled"); err == nil {
		s.Status.Cancelled = id
	}

	return s
}

// ----- DTOs from Controller -----

type PlaceOrderReq struct {
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"omitempty,oneof='PromptPay' 'Credit Card' 'Cash on Delivery'"`
	Note          string `json:"note"`
}

type PlaceOrderRes struct {
	ID      uint   `json:"id"`
	RefCode string `json:"refCode"`
	Total   int64  `json:"total"`
}

// PlaceOrder สร้างออเดอร์จาก snapshot ในตะกร้า
// เงื่อนไขก่อนแตะ DB: ตะกร้าไม่ว่าง + address ไม่ blank
// order + items เขียนใน transaction เดียว → ไม่มี order กำพร้า
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint, in *PlaceOrderReq) (*PlaceOrderRes, error) {
	if strings.TrimSpace(in.Address) == "" {
		return nil, ErrAddressRequired
	}

	cart, err := s.Cart.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, ErrCartEmpty
	}
	primary := cart.PrimaryRestaurant()

	// คำนวณราคารวมจาก snapshot ใน cart — ราคา catalog เปลี่ยนทีหลังไม่มีผล
	subtotal := cart.Total()
	discount := int64(0)
	total := subtotal - discount + DeliveryFee

	var out PlaceOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			RefCode:       uuid.NewString(),
			UserID:        userID,
			RestaurantID:  primary.ID,
			OrderStatusID: s.Status.Pending,
			Subtotal:      subtotal,
			Discount:      discount,
			DeliveryFee:   DeliveryFee,
			Total:         total,
			Address:       strings.TrimSpace(in.Address), // snapshot address ลงออเดอร์
			PaymentMethod: in.PaymentMethod,
			Note:          in.Note,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		// ย้ายรายการจาก cart -> order
		for _, l := range cart.Lines {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				MenuID:    l.MenuID,
				Qty:       l.Qty,
				UnitPrice: l.Price,
				Total:     l.Price * int64(l.Qty),
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		out = PlaceOrderRes{ID: order.ID, RefCode: order.RefCode, Total: order.Total}
		return nil
	})
	if err != nil {
		// insert ล้ม → ตะกร้าอยู่ครบ ให้ user ลองใหม่ได้
		return nil, err
	}

	// เคลียร์ cart หลัง commit — order เกิดแล้ว ถ้าลบไม่ได้แค่ log ไว้
	if err := s.Cart.Clear(ctx, userID); err != nil {
		log.Printf("clear cart after checkout failed for user %d: %v", userID, err)
	}
	return &out, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	ID            uint               `json:"id"`
	RefCode       string             `json:"refCode"`
	Subtotal      int64              `json:"subtotal"`
	Discount      int64              `json:"discount"`
	DeliveryFee   int64              `json:"deliveryFee"`
	Total         int64              `json:"total"`
	OrderStatusID uint               `json:"orderStatusId"`
	RestaurantID  uint               `json:"restaurantId"`
	Address       string             `json:"address"`
	PaymentMethod string             `json:"paymentMethod"`
	Note          string             `json:"note"`
	Items         []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, RefCode: o.RefCode,
		Subtotal: o.Subtotal, Discount: o.Discount, DeliveryFee: o.DeliveryFee, Total: o.Total,
		OrderStatusID: o.OrderStatusID, RestaurantID: o.RestaurantID,
		Address: o.Address, PaymentMethod: o.PaymentMethod, Note: o.Note,
		Items: items,
	}, nil
}

// ----- Owner side -----

func (s *OrderService) ownerCheck(restID, userID uint) (bool, error) {
	return s.RestRepo.IsOwnedBy(restID, userID)
}

type OwnerOrderListOut struct {
	Items []repository.OwnerOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) ListForRestaurant(userID, restID uint, statusID *uint, page, limit int) (*OwnerOrderListOut, error) {
	// ยืนยันความเป็นเจ้าของร้าน
	ok, err := s.ownerCheck(restID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	items, total, err := s.Repo.ListOrdersForRestaurant(restID, statusID, page, limit)
	if err != nil {
		return nil, err
	}

	return &OwnerOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

type OwnerOrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForRestaurant(userID, restID, orderID uint) (*OwnerOrderDetail, error) {
	ok, err := s.ownerCheck(restID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	o, err := s.Repo.GetOrderForRestaurant(restID, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}

	return &OwnerOrderDetail{Order: *o, Items: items}, nil
}
