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

// OwnerOrderController — ฝั่งหลังร้าน ต้องเป็นเจ้าของร้านเท่านั้น
type OwnerOrderController struct {
	Svc  *services.OrderService
	Auth *services.AuthService
}

func NewOwnerOrderController(svc *services.OrderService, auth *services.AuthService) *OwnerOrderController {
	return &OwnerOrderController{Svc: svc, Auth: auth}
}

// restaurantOf หา restaurant ของ user ที่ login อยู่
func (oc *OwnerOrderController) restaurantOf(c *gin.Context) (uint, bool) {
	uid := utils.CurrentUserID(c)
	rest, err := oc.Auth.GetRestaurantByUserID(uid)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return 0, false
	}
	return rest.ID, true
}

// GET /partner/restaurant/orders?statusId=&page=&limit=
func (oc *OwnerOrderController) List(c *gin.Context) {
	restID, ok := oc.restaurantOf(c)
	if !ok {
		return
	}

	var statusID *uint
	if raw := c.Query("statusId"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			resp.BadRequest(c, "invalid statusId")
			return
		}
		id := uint(v)
		statusID = &id
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := oc.Svc.ListForRestaurant(utils.CurrentUserID(c), restID, statusID, page, limit)
	if err != nil {
		oc.writeErr(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /partner/restaurant/orders/:id
func (oc *OwnerOrderController) Detail(c *gin.Context) {
	restID, ok := oc.restaurantOf(c)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(c.Param("id"))

	out, err := oc.Svc.DetailForRestaurant(utils.CurrentUserID(c), restID, uint(id))
	if err != nil {
		oc.writeErr(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /partner/restaurant/orders/:id/accept
func (oc *OwnerOrderController) Accept(c *gin.Context) { oc.doTransition(c, oc.Svc.OwnerAccept) }

// PATCH /partner/restaurant/orders/:id/handoff
func (oc *OwnerOrderController) Handoff(c *gin.Context) { oc.doTransition(c, oc.Svc.OwnerHandoff) }

// PATCH /partner/restaurant/orders/:id/complete
func (oc *OwnerOrderController) Complete(c *gin.Context) { oc.doTransition(c, oc.Svc.OwnerComplete) }

// PATCH /partner/restaurant/orders/:id/cancel
func (oc *OwnerOrderController) Cancel(c *gin.Context) { oc.doTransition(c, oc.Svc.OwnerCancel) }

func (oc *OwnerOrderController) doTransition(c *gin.Context, fn func(ownerID, orderID uint) error) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := fn(uid, uint(id)); err != nil {
		oc.writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"orderId": id})
}

func (oc *OwnerOrderController) writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "not your restaurant")
	case errors.Is(err, services.ErrInvalidTransition):
		// สถานะเปลี่ยนไปแล้ว (กดซ้ำ / race กันเอง)
		resp.Conflict(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	default:
		resp.ServerError(c, err)
	}
}
