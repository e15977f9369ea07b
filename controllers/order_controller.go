package controllers

import (
	"errors"
	"strconv"

	"quickbite-backend/pkg/resp"
	"quickbite-backend/services"
	"quickbite-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders — สร้างออเดอร์จากตะกร้า
func (oc *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Svc.PlaceOrder(c.Request.Context(), uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartEmpty), errors.Is(err, services.ErrAddressRequired):
			resp.BadRequest(c, err.Error())
		default:
			// network/DB ล้ม → ข้อความกลาง ๆ ตะกร้ายังอยู่ให้ retry
			resp.ServerError(c, errors.New("order could not be placed, please try again"))
		}
		return
	}
	resp.Created(c, out)
}

// GET /profile/order — รายการ order ของฉัน
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := oc.Svc.ListForUser(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id (เฉพาะเจ้าของออเดอร์)
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := oc.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}
