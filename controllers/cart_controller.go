package controllers

import (
	"errors"

	"quickbite-backend/pkg/resp"
	"quickbite-backend/services"
	"quickbite-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	view, err := h.Svc.Get(c.Request.Context(), uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	// ค่าส่งบวกตอนแสดงผลเท่านั้น
	resp.OK(c, gin.H{
		"cart":        view,
		"deliveryFee": services.DeliveryFee,
		"grandTotal":  view.Subtotal + services.DeliveryFee,
	})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := h.Svc.Add(c.Request.Context(), uid, &req)
	if err != nil {
		if errors.Is(err, services.ErrAnotherRestaurant) {
			resp.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		// ที่เหลือเป็น 400
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, view)
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var body struct {
		MenuID uint `json:"menuId" binding:"required"`
		Qty    int  `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := h.Svc.UpdateQty(c.Request.Context(), uid, body.MenuID, body.Qty)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var body struct {
		MenuID uint `json:"menuId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := h.Svc.RemoveItem(c.Request.Context(), uid, body.MenuID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := h.Svc.Clear(c.Request.Context(), uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

// PATCH /cart/open — toggle panel เฉย ๆ ไม่แตะ storage
func (h *CartController) SetOpen(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var body struct {
		Open *bool `json:"open" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	h.Svc.SetOpen(uid, *body.Open)
	resp.OK(c, gin.H{"open": *body.Open})
}
