package services

import (
	"context"
	"path/filepath"
	"testing"

	"quickbite-backend/entity"
	"quickbite-backend/repository"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ---- helpers ----

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.RestaurantCategory{}, &entity.RestaurantStatus{}, &entity.Restaurant{},
		&entity.MenuStatus{}, &entity.Menu{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
	))
	return db
}

func seedStatuses(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, name := range []string{"Pending", "Preparing", "Delivering", "Completed", "Cancelled"} {
		require.NoError(t, db.Create(&entity.OrderStatus{StatusName: name}).Error)
	}
	require.NoError(t, db.Create(&entity.MenuStatus{StatusName: "Available"}).Error)
}

type cartEnv struct {
	svc *CartService
	mr  *miniredis.Miniredis
	db  *gorm.DB
}

func setupCartEnv(t *testing.T) *cartEnv {
	t.Helper()
	db := setupTestDB(t)
	seedStatuses(t, db)

	// สองร้าน สองเมนูที่ร้านแรก หนึ่งเมนูที่ร้านสอง
	owner := entity.User{Email: "owner@test.local", Role: "owner"}
	require.NoError(t, db.Create(&owner).Error)
	r1 := entity.Restaurant{Name: "ครัวคุณยาย", Logo: "r1.png", UserID: owner.ID}
	r2 := entity.Restaurant{Name: "ก๋วยเตี๋ยวเรือ", Logo: "r2.png", UserID: owner.ID}
	require.NoError(t, db.Create(&r1).Error)
	require.NoError(t, db.Create(&r2).Error)
	require.NoError(t, db.Create(&entity.Menu{MenuName: "ข้าวผัดกะเพรา", Price: 5900, RestaurantID: r1.ID, MenuStatusID: 1}).Error)
	require.NoError(t, db.Create(&entity.Menu{MenuName: "ชาเย็น", Price: 2500, RestaurantID: r1.ID, MenuStatusID: 1}).Error)
	require.NoError(t, db.Create(&entity.Menu{MenuName: "เรือน้ำตก", Price: 2000, RestaurantID: r2.ID, MenuStatusID: 1}).Error)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := NewCartService(
		repository.NewCartRepository(client),
		repository.NewMenuRepository(db),
		repository.NewRestaurantRepository(db),
	)
	return &cartEnv{svc: svc, mr: mr, db: db}
}

const testUser uint = 42

// ---- tests ----

func TestCartAdd_NewLine(t *testing.T) {
	env := setupCartEnv(t)
	ctx := context.Background()

	view, err := env.svc.Add(ctx, testUser, &AddToCartIn{MenuID: 1})
	require.NoError(t, err)

	require.Len(t, view.Cart.Lines, 1)
	line := view.Cart.Lines[0]
	assert.Equal(t, uint(1), line.MenuID)
	assert.Equal(t, "ข้าวผัดกะเพรา", line.Name)
	assert.Equal(t, int64(5900), line.Price)
	assert.Equal(t, 1, line.Qty)
	assert.Equal(t, "ครัวคุณยาย", line.Restaurant.Name)
	assert.Equal(t, int64(5900), view.Subtotal)
	assert.Equal(t, 1, view.ItemCount)
}

// เมนูเดิมซ้ำ = รวม line เดียว จำนวนบวกกัน
func TestCartAdd_MergeExisting(t *testing.T) {
	env := setupCartEnv(t)
	ctx := context.Background()

	_, err := env.svc.Add(ctx, testUser, &AddToCartIn{MenuID: 1})
	require.NoError(t, err)
	view, err := env.svc.Add(ctx, testUser, &AddToCartIn{MenuID: 1})
	require.NoError(t, err)

	require.Len(t, view.Cart.Lines, 1)
	assert.Equal(t, 2, view.Cart.Lines[0].Qty)
	assert.Equal(t, int64(11800), view.Subtotal)
}

func TestCartAdd_AnotherRestaurantRejected(t *testing.T) {
	env := setupCartEnv(t)
	ctx := context.Background()

	_, err := env.svc.Add(ctx, testUser, &AddToCartIn{MenuID: 1})
	require.NoError(t, err)

	_, err = env.svc.Add(ctx, testUser, &AddToCartIn{MenuID: 3})
	assert.ErrorIs(t, err, ErrAnotherRestaurant)

	// ตะกร้าเดิมต้องไม่ถูกแตะ
	view, err := env.svc.Get(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, view.Cart.Lines, 1)
	assert.Equal(t, uint(1), view.Cart.Lines[0].MenuID)
}

// ราคาใน catalog เปลี่ยนหลัง add → snapshot ในตะกร้าไม่ขยับ
func TestCartAdd_SnapshotNotRefreshed(t *testing.T) {
	env := setupCartEnv(t)
	ctx := context.Background()

	_, err := env.svc.Add(ctx, testUser, &AddToCartIn{MenuID: 1})
	require.NoError(t, err)

	require.NoError(t, env.db.Model(&entity.Menu{}).Where("id = ?", 1).Update("price", 9900).Error)

	view, err := env.svc.Add(ctx, testUser, &AddToCartIn{MenuID: 1})
	require.NoError(t, err)
	require.Len(t, view.Cart.Lines, 1)
	assert.Equal(t, int64(5900), view.Cart.Lines[0].Price)
	assert.Equal(t, int64(11800), view.Subtotal)
}

func TestCartUpdateQty(t *testing.T) {
	env := setupCartEnv(t)
	ctx := context.Background()

	_, err := env.svc.Add(ctx, testUser, &AddToCartIn{MenuID: 1})
	require.NoError(t, err)

	view, err := env.svc.UpdateQty(ctx, testUser, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Cart.Lines[0].Qty)
	assert.Equal(t, int64(29500), view.Subtotal)
}

// qty <= 0 = ลบ line ทิ้ง ไม่มี line จำนวนศูนย์ค้างในตะกร้า
func TestCartUpdateQty_ZeroRemovesLine(t *testing.T) {
	env := setupCartEnv(t)
	ctx := context.Background()

	_, err := env.svc.Add(ctx, testUser, &AddToCartIn{MenuID: 1})
	require.NoError(t, err)

	view, err := env.svc.UpdateQty(ctx, testUser, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, view.Cart.Lines)
	assert.Equal(t, int64(0), view.Subtotal)

	view, err = env.svc.UpdateQty(ctx, testUser, 1, -3)
	require.NoError(t, err)
	assert.Empty(t, view.Cart.Lines)
}

func TestCartRemoveItem_AbsentIsNoop(t *testing.T) {
	env := setupCartEnv(t)
	ctx := context.Background()

	_, err := env.svc.Add(ctx, testUser, &AddToCartIn{MenuID: 1})
	require.NoError(t, err)

	view, err := env.svc.RemoveItem(ctx, testUser, 999)
	require.NoError(t, err)
	assert.Len(t, view.Cart.Lines, 1)
}

func TestCartClear_Idempotent(t *testing.T) {
	env := setupCartEnv(t)
	ctx := context.Background()

	_, err := env.svc.Add(ctx, testUser, &AddToCartIn{MenuID: 1})
	require.NoError(t, err)

	require.NoError(t, env.svc.Clear(ctx, testUser))
	require.NoError(t, env.svc.Clear(ctx, testUser)) // ล้างซ้ำบนตะกร้าว่าง

	view, err := env.svc.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, view.Cart.Lines)
}

// mutation ทุกครั้ง persist ทันที — service ใหม่ต่อ storage เดิมเห็นตะกร้าเดิม
func TestCartPersistence_RoundTrip(t *testing.T) {
	env := setupCartEnv(t)
	ctx := context.Background()

	_, err := env.svc.Add(ctx, testUser, &AddToCartIn{MenuID: 1})
	require.NoError(t, err)
	_, err = env.svc.Add(ctx, testUser, &AddToCartIn{MenuID: 2, Qty: 3})
	require.NoError(t, err)

	client := goredis.NewClient(&goredis.Options{Addr: env.mr.Addr()})
	t.Cleanup(func() { client.Close() })
	fresh := NewCartService(repository.NewCartRepository(client), env.svc.MenuRepo, env.svc.RestRepo)

	view, err := fresh.Get(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, view.Cart.Lines, 2)
	assert.Equal(t, uint(1), view.Cart.Lines[0].MenuID)
	assert.Equal(t, uint(2), view.Cart.Lines[1].MenuID)
	assert.Equal(t, 3, view.Cart.Lines[1].Qty)
	assert.Equal(t, int64(5900+3*2500), view.Subtotal)
}

// payload พังใน storage → ตะกร้าว่าง ไม่ error
func TestCartPersistence_CorruptFallsBackToEmpty(t *testing.T) {
	env := setupCartEnv(t)
	require.NoError(t, env.mr.Set("cart:42", "???not-json???"))

	view, err := env.svc.Get(context.Background(), testUser)
	require.NoError(t, err)
	assert.Empty(t, view.Cart.Lines)
	assert.Equal(t, int64(0), view.Subtotal)
}

func TestCartSetOpen(t *testing.T) {
	env := setupCartEnv(t)
	ctx := context.Background()

	env.svc.SetOpen(testUser, true)
	view, err := env.svc.Get(ctx, testUser)
	require.NoError(t, err)
	assert.True(t, view.IsOpen)

	env.svc.SetOpen(testUser, false)
	view, err = env.svc.Get(ctx, testUser)
	require.NoError(t, err)
	assert.False(t, view.IsOpen)
}
