package services

import (
	"context"
	"testing"

	"quickbite-backend/entity"
	"quickbite-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderEnv struct {
	*cartEnv
	svc     *OrderService
	ownerID uint
}

func setupOrderEnv(t *testing.T) *orderEnv {
	t.Helper()
	ce := setupCartEnv(t)

	// ลูกค้าแยกจาก owner ที่ seed ไว้แล้ว
	customer := entity.User{Email: "customer@test.local", FirstName: "Somchai", Role: "customer"}
	require.NoError(t, ce.db.Create(&customer).Error)

	svc := NewOrderService(
		ce.db,
		repository.NewOrderRepository(ce.db),
		ce.svc,
		repository.NewRestaurantRepository(ce.db),
	)
	return &orderEnv{cartEnv: ce, svc: svc, ownerID: 1}
}

func (e *orderEnv) customerID() uint { return 2 }

func countRows(t *testing.T, env *orderEnv, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, env.db.Model(model).Count(&n).Error)
	return n
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	env := setupOrderEnv(t)

	_, err := env.svc.PlaceOrder(context.Background(), env.customerID(),
		&PlaceOrderReq{Address: "123 Main St"})
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.Zero(t, countRows(t, env, &entity.Order{}))
}

// address ว่าง (รวมช่องว่างล้วน) ต้องไม่แตะ DB เลย และตะกร้าอยู่ครบ
func TestPlaceOrder_BlankAddress(t *testing.T) {
	env := setupOrderEnv(t)
	ctx := context.Background()

	_, err := env.svc.Cart.Add(ctx, env.customerID(), &AddToCartIn{MenuID: 1})
	require.NoError(t, err)

	_, err = env.svc.PlaceOrder(ctx, env.customerID(), &PlaceOrderReq{Address: "   "})
	assert.ErrorIs(t, err, ErrAddressRequired)

	assert.Zero(t, countRows(t, env, &entity.Order{}))
	assert.Zero(t, countRows(t, env, &entity.OrderItem{}))

	view, err := env.svc.Cart.Get(ctx, env.customerID())
	require.NoError(t, err)
	assert.Len(t, view.Cart.Lines, 1)
}

func TestPlaceOrder_Success(t *testing.T) {
	env := setupOrderEnv(t)
	ctx := context.Background()

	_, err := env.svc.Cart.Add(ctx, env.customerID(), &AddToCartIn{MenuID: 1, Qty: 2})
	require.NoError(t, err)
	_, err = env.svc.Cart.Add(ctx, env.customerID(), &AddToCartIn{MenuID: 2})
	require.NoError(t, err)

	res, err := env.svc.PlaceOrder(ctx, env.customerID(), &PlaceOrderReq{
		Address:       "123 Main St",
		PaymentMethod: "Cash on Delivery",
		Note:          "ไม่เผ็ด",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.RefCode)

	subtotal := int64(2*5900 + 2500)
	assert.Equal(t, subtotal+DeliveryFee, res.Total)

	var order entity.Order
	require.NoError(t, env.db.First(&order, res.ID).Error)
	assert.Equal(t, env.customerID(), order.UserID)
	assert.Equal(t, uint(1), order.RestaurantID)
	assert.Equal(t, env.svc.Status.Pending, order.OrderStatusID)
	assert.Equal(t, subtotal, order.Subtotal)
	assert.Equal(t, DeliveryFee, order.DeliveryFee)
	assert.Equal(t, "123 Main St", order.Address)
	assert.Equal(t, "Cash on Delivery", order.PaymentMethod)
	assert.Equal(t, "ไม่เผ็ด", order.Note)

	// หนึ่ง OrderItem ต่อหนึ่ง line ราคาตาม snapshot
	var items []entity.OrderItem
	require.NoError(t, env.db.Where("order_id = ?", order.ID).Order("id").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, int64(5900), items[0].UnitPrice)
	assert.Equal(t, int64(11800), items[0].Total)
	assert.Equal(t, 1, items[1].Qty)
	assert.Equal(t, int64(2500), items[1].UnitPrice)

	// ตะกร้าถูกล้างหลังสำเร็จ
	view, err := env.svc.Cart.Get(ctx, env.customerID())
	require.NoError(t, err)
	assert.Equal(t, 0, view.ItemCount)
}

// ราคาขึ้นหลังหยิบลงตะกร้า → คิดเงินตาม snapshot เดิม
func TestPlaceOrder_ChargesSnapshotPrice(t *testing.T) {
	env := setupOrderEnv(t)
	ctx := context.Background()

	_, err := env.svc.Cart.Add(ctx, env.customerID(), &AddToCartIn{MenuID: 1})
	require.NoError(t, err)
	require.NoError(t, env.db.Model(&entity.Menu{}).Where("id = ?", 1).Update("price", 9900).Error)

	res, err := env.svc.PlaceOrder(ctx, env.customerID(), &PlaceOrderReq{Address: "123 Main St"})
	require.NoError(t, err)
	assert.Equal(t, int64(5900)+DeliveryFee, res.Total)
}

// insert ล้มกลางทาง → transaction rollback ทั้งก้อน ตะกร้าไม่ถูกแตะ
func TestPlaceOrder_InsertFailureKeepsCart(t *testing.T) {
	env := setupOrderEnv(t)
	ctx := context.Background()

	_, err := env.svc.Cart.Add(ctx, env.customerID(), &AddToCartIn{MenuID: 1})
	require.NoError(t, err)

	// ทำให้ insert order items พัง
	require.NoError(t, env.db.Migrator().DropTable(&entity.OrderItem{}))

	_, err = env.svc.PlaceOrder(ctx, env.customerID(), &PlaceOrderReq{Address: "123 Main St"})
	require.Error(t, err)

	// ไม่มี order กำพร้าเหลือ (rollback) และตะกร้ายังอยู่ให้ retry
	assert.Zero(t, countRows(t, env, &entity.Order{}))
	view, err := env.svc.Cart.Get(ctx, env.customerID())
	require.NoError(t, err)
	assert.Len(t, view.Cart.Lines, 1)
}

func TestOwnerTransitions(t *testing.T) {
	env := setupOrderEnv(t)
	ctx := context.Background()

	_, err := env.svc.Cart.Add(ctx, env.customerID(), &AddToCartIn{MenuID: 1})
	require.NoError(t, err)
	res, err := env.svc.PlaceOrder(ctx, env.customerID(), &PlaceOrderReq{Address: "123 Main St"})
	require.NoError(t, err)

	// ไม่ใช่เจ้าของร้าน
	err = env.svc.OwnerAccept(env.customerID(), res.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// Pending → Preparing
	require.NoError(t, env.svc.OwnerAccept(env.ownerID, res.ID))

	// กดรับซ้ำไม่ได้แล้ว
	err = env.svc.OwnerAccept(env.ownerID, res.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// ยกเลิกได้เฉพาะตอน Pending
	err = env.svc.OwnerCancel(env.ownerID, res.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, env.svc.OwnerHandoff(env.ownerID, res.ID))
	require.NoError(t, env.svc.OwnerComplete(env.ownerID, res.ID))

	var order entity.Order
	require.NoError(t, env.db.First(&order, res.ID).Error)
	assert.Equal(t, env.svc.Status.Completed, order.OrderStatusID)
}

func TestListForUser(t *testing.T) {
	env := setupOrderEnv(t)
	ctx := context.Background()

	_, err := env.svc.Cart.Add(ctx, env.customerID(), &AddToCartIn{MenuID: 1})
	require.NoError(t, err)
	res, err := env.svc.PlaceOrder(ctx, env.customerID(), &PlaceOrderReq{Address: "123 Main St"})
	require.NoError(t, err)

	list, err := env.svc.ListForUser(env.customerID(), 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, res.ID, list[0].ID)
	assert.Equal(t, res.Total, list[0].Total)

	// user อื่นไม่เห็น order นี้
	other, err := env.svc.ListForUser(999, 0)
	require.NoError(t, err)
	assert.Empty(t, other)
}
