package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"quickbite-backend/entity"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// CartRepository เก็บตะกร้าเป็น JSON ใน redis หนึ่ง key ต่อ user
// store เป็นคนเดียวที่เขียน key นี้ (ผ่าน CartService)
type CartRepository struct {
	Client *redis.Client
}

func NewCartRepository(client *redis.Client) *CartRepository {
	return &CartRepository{Client: client}
}

func cartKey(userID uint) string {
	return fmt.Sprintf("%s%d", cartKeyPrefix, userID)
}

// Load อ่านตะกร้าของ user — key หาย หรือ payload พัง = ตะกร้าว่าง ไม่ error
func (r *CartRepository) Load(ctx context.Context, userID uint) (*entity.Cart, error) {
	data, err := r.Client.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return &entity.Cart{}, nil
		}
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	var c entity.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		// payload เสีย → เริ่มตะกร้าใหม่ (log ไว้ดู ไม่โยน error ให้ caller)
		log.Printf("cart payload corrupt for user %d: %v", userID, err)
		return &entity.Cart{}, nil
	}
	return &c, nil
}

// Save เขียนตะกร้าทั้งก้อนทับของเดิม — เรียกหลังทุก mutation
func (r *CartRepository) Save(ctx context.Context, userID uint, c *entity.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := r.Client.Set(ctx, cartKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}

// Delete ลบตะกร้าทิ้ง (หลัง checkout สำเร็จ หรือ user กดล้าง)
func (r *CartRepository) Delete(ctx context.Context, userID uint) error {
	if err := r.Client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}
	return nil
}
