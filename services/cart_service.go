package services

import (
	"context"
	"errors"
	"sync"

	"quickbite-backend/entity"
	"quickbite-backend/repository"
)

// ตะกร้าข้ามร้านไม่ได้ ต้องล้างก่อน
var ErrAnotherRestaurant = errors.New("cart has another restaurant")

// CartService เป็นเจ้าของ state ตะกร้าแต่ผู้เดียว — component อื่นห้ามแก้ตรง ๆ
// ทุก mutation โหลดจาก storage, แก้ใน memory, แล้ว save กลับทันที
type CartService struct {
	Repo     *repository.CartRepository
	MenuRepo *repository.MenuRepository
	RestRepo *repository.RestaurantRepository

	// UI flag ของ cart panel ต่อ user — อยู่แค่ใน process ไม่ persist
	mu   sync.Mutex
	open map[uint]bool
}

func NewCartService(repo *repository.CartRepository, mr *repository.MenuRepository, rr *repository.RestaurantRepository) *CartService {
	return &CartService{Repo: repo, MenuRepo: mr, RestRepo: rr, open: make(map[uint]bool)}
}

type AddToCartIn struct {
	MenuID uint `json:"menuId" binding:"required"`
	Qty    int  `json:"qty" binding:"omitempty,min=1"`
}

// มุมมองตะกร้าสำหรับ panel: state + ค่าที่คำนวณแล้ว
type CartView struct {
	Cart       *entity.Cart             `json:"cart"`
	Subtotal   int64                    `json:"subtotal"`
	ItemCount  int                      `json:"itemCount"`
	Restaurant *entity.RestaurantRef    `json:"restaurant"`
	Groups     []entity.RestaurantGroup `json:"groups"`
	IsOpen     bool                     `json:"isOpen"`
}

func (s *CartService) Get(ctx context.Context, userID uint) (*CartView, error) {
	c, err := s.Repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(userID, c), nil
}

// Snapshot ให้ checkout อ่าน — ไม่ผ่าน view
func (s *CartService) Snapshot(ctx context.Context, userID uint) (*entity.Cart, error) {
	return s.Repo.Load(ctx, userID)
}

// Add หยิบเมนูลงตะกร้า: เมนูเดิม → บวกจำนวน (ไม่ refresh ราคา/ชื่อ),
// เมนูใหม่ → ต่อท้ายพร้อม snapshot ร้าน
func (s *CartService) Add(ctx context.Context, userID uint, in *AddToCartIn) (*CartView, error) {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	m, err := s.MenuRepo.GetBasics(in.MenuID)
	if err != nil {
		return nil, err
	}

	c, err := s.Repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	// ตะกร้าล็อกร้านจาก line แรก — ร้านอื่นต้องล้างก่อน
	if primary := c.PrimaryRestaurant(); primary != nil && primary.ID != m.RestaurantID {
		return nil, ErrAnotherRestaurant
	}

	if i := c.FindLine(m.ID); i >= 0 {
		c.Lines[i].Qty += in.Qty
	} else {
		rest, err := s.RestRepo.FindByID(m.RestaurantID)
		if err != nil {
			return nil, err
		}
		c.Lines = append(c.Lines, entity.CartLine{
			MenuID:  m.ID,
			Name:    m.MenuName,
			Price:   m.Price,
			Picture: m.ImageRef(),
			Qty:     in.Qty,
			Restaurant: entity.RestaurantRef{
				ID:   rest.ID,
				Name: rest.Name,
				Logo: rest.Logo,
			},
		})
	}

	if err := s.Repo.Save(ctx, userID, c); err != nil {
		return nil, err
	}
	return s.view(userID, c), nil
}

// UpdateQty: qty <= 0 = ลบ line ทิ้ง, ไม่มีเพดานบน (ระบบไม่มี stock)
func (s *CartService) UpdateQty(ctx context.Context, userID, menuID uint, qty int) (*CartView, error) {
	if qty <= 0 {
		return s.RemoveItem(ctx, userID, menuID)
	}

	c, err := s.Repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if i := c.FindLine(menuID); i >= 0 {
		c.Lines[i].Qty = qty
		if err := s.Repo.Save(ctx, userID, c); err != nil {
			return nil, err
		}
	}
	return s.view(userID, c), nil
}

// RemoveItem: ไม่มี line นั้น = no-op ไม่ใช่ error
func (s *CartService) RemoveItem(ctx context.Context, userID, menuID uint) (*CartView, error) {
	c, err := s.Repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if i := c.FindLine(menuID); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		if err := s.Repo.Save(ctx, userID, c); err != nil {
			return nil, err
		}
	}
	return s.view(userID, c), nil
}

// Clear ล้างตะกร้าทั้งใบ — เรียกซ้ำบนตะกร้าว่างได้
func (s *CartService) Clear(ctx context.Context, userID uint) error {
	return s.Repo.Delete(ctx, userID)
}

// SetOpen เปิด/ปิด panel เท่านั้น ไม่แตะ storage
func (s *CartService) SetOpen(userID uint, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open[userID] = open
}

func (s *CartService) isOpen(userID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open[userID]
}

func (s *CartService) view(userID uint, c *entity.Cart) *CartView {
	c.IsOpen = s.isOpen(userID)
	return &CartView{
		Cart:       c,
		Subtotal:   c.Total(),
		ItemCount:  c.ItemCount(),
		Restaurant: c.PrimaryRestaurant(),
		Groups:     c.GroupedByRestaurant(),
		IsOpen:     c.IsOpen,
	}
}
