package repository

import (
	"context"
	"encoding/json"
	"testing"

	"quickbite-backend/entity"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartRepo(t *testing.T) (*CartRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCartRepository(client), mr
}

func sampleCart() *entity.Cart {
	return &entity.Cart{Lines: []entity.CartLine{
		{
			MenuID:     1,
			Name:       "ข้าวผัดกะเพรา",
			Price:      5900,
			Picture:    "menu-1.jpg",
			Qty:        2,
			Restaurant: entity.RestaurantRef{ID: 3, Name: "ครัวคุณยาย", Logo: "logo.png"},
		},
		{
			MenuID:     2,
			Name:       "ชาเย็น",
			Price:      2500,
			Qty:        1,
			Restaurant: entity.RestaurantRef{ID: 3, Name: "ครัวคุณยาย", Logo: "logo.png"},
		},
	}}
}

// serialize → hydrate ต้องได้ lines เท่าเดิมทุก field
func TestCartRepository_RoundTrip(t *testing.T) {
	repo, _ := setupCartRepo(t)
	ctx := context.Background()

	cart := sampleCart()
	require.NoError(t, repo.Save(ctx, 42, cart))

	got, err := repo.Load(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, cart.Lines, got.Lines)
}

func TestCartRepository_Load_MissingKey(t *testing.T) {
	repo, _ := setupCartRepo(t)

	got, err := repo.Load(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, got.Lines)
}

// payload เสียต้อง degrade เป็นตะกร้าว่าง ไม่ error
func TestCartRepository_Load_CorruptPayload(t *testing.T) {
	repo, mr := setupCartRepo(t)
	require.NoError(t, mr.Set("cart:42", "{not json"))

	got, err := repo.Load(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, got.Lines)
}

func TestCartRepository_Delete(t *testing.T) {
	repo, mr := setupCartRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, 42, sampleCart()))
	require.NoError(t, repo.Delete(ctx, 42))
	assert.False(t, mr.Exists("cart:42"))

	// ลบซ้ำก็ไม่ error
	require.NoError(t, repo.Delete(ctx, 42))
}

// IsOpen เป็น UI flag — ห้ามหลุดลง storage
func TestCartRepository_Save_DoesNotPersistIsOpen(t *testing.T) {
	repo, mr := setupCartRepo(t)
	ctx := context.Background()

	cart := sampleCart()
	cart.IsOpen = true
	require.NoError(t, repo.Save(ctx, 42, cart))

	raw, err := mr.Get("cart:42")
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.NotContains(t, decoded, "IsOpen")

	got, err := repo.Load(ctx, 42)
	require.NoError(t, err)
	assert.False(t, got.IsOpen)
}
