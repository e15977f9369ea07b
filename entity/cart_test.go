package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartTotal(t *testing.T) {
	c := &Cart{Lines: []CartLine{
		{MenuID: 1, Price: 800, Qty: 1},
		{MenuID: 2, Price: 600, Qty: 2},
	}}
	assert.Equal(t, int64(2000), c.Total())
	assert.Equal(t, 3, c.ItemCount())
}

func TestCartTotal_Empty(t *testing.T) {
	c := &Cart{}
	assert.Equal(t, int64(0), c.Total())
	assert.Equal(t, 0, c.ItemCount())
}

func TestFindLine(t *testing.T) {
	c := &Cart{Lines: []CartLine{
		{MenuID: 10},
		{MenuID: 20},
	}}
	assert.Equal(t, 0, c.FindLine(10))
	assert.Equal(t, 1, c.FindLine(20))
	assert.Equal(t, -1, c.FindLine(99))
}

func TestPrimaryRestaurant(t *testing.T) {
	empty := &Cart{}
	assert.Nil(t, empty.PrimaryRestaurant())

	c := &Cart{Lines: []CartLine{
		{MenuID: 1, Restaurant: RestaurantRef{ID: 7, Name: "ครัวคุณยาย"}},
		{MenuID: 2, Restaurant: RestaurantRef{ID: 7, Name: "ครัวคุณยาย"}},
	}}
	r := c.PrimaryRestaurant()
	require.NotNil(t, r)
	assert.Equal(t, uint(7), r.ID)
	assert.Equal(t, "ครัวคุณยาย", r.Name)
}

func TestGroupedByRestaurant_SingleGroup(t *testing.T) {
	c := &Cart{Lines: []CartLine{
		{MenuID: 1, Price: 5000, Qty: 1, Restaurant: RestaurantRef{ID: 1, Name: "A"}},
		{MenuID: 2, Price: 3000, Qty: 2, Restaurant: RestaurantRef{ID: 1, Name: "A"}},
	}}
	groups := c.GroupedByRestaurant()
	require.Len(t, groups, 1)
	assert.Equal(t, uint(1), groups[0].Restaurant.ID)
	assert.Len(t, groups[0].Lines, 2)
	assert.Equal(t, int64(11000), groups[0].Subtotal)
}

// ตะกร้าปนร้าน: ปกติ flow ไม่สร้างเคสนี้ แต่ grouping ต้องรับมือได้
func TestGroupedByRestaurant_MixedCart(t *testing.T) {
	c := &Cart{Lines: []CartLine{
		{MenuID: 1, Price: 5000, Qty: 1, Restaurant: RestaurantRef{ID: 1, Name: "A"}},
		{MenuID: 9, Price: 2000, Qty: 1, Restaurant: RestaurantRef{ID: 2, Name: "B"}},
		{MenuID: 2, Price: 3000, Qty: 1, Restaurant: RestaurantRef{ID: 1, Name: "A"}},
	}}
	groups := c.GroupedByRestaurant()
	require.Len(t, groups, 2)

	// เรียงตามลำดับที่เจอครั้งแรก
	assert.Equal(t, uint(1), groups[0].Restaurant.ID)
	assert.Equal(t, int64(8000), groups[0].Subtotal)
	assert.Len(t, groups[0].Lines, 2)

	assert.Equal(t, uint(2), groups[1].Restaurant.ID)
	assert.Equal(t, int64(2000), groups[1].Subtotal)
	assert.Len(t, groups[1].Lines, 1)
}

func TestGroupedByRestaurant_Empty(t *testing.T) {
	c := &Cart{}
	assert.Empty(t, c.GroupedByRestaurant())
}
