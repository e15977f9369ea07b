package controllers

import (
	"errors"
	"strconv"

	"quickbite-backend/entity"
	"quickbite-backend/pkg/resp"
	"quickbite-backend/services"
	"quickbite-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct {
	Svc      *services.RestaurantService
	Auth     *services.AuthService
	OrderSvc *services.OrderService
}

func NewRestaurantController(svc *services.RestaurantService, auth *services.AuthService, orderSvc *services.OrderService) *RestaurantController {
	return &RestaurantController{Svc: svc, Auth: auth, OrderSvc: orderSvc}
}

// GET /restaurants?categoryId=&search= — หน้า browse ลูกค้า
func (rc *RestaurantController) List(c *gin.Context) {
	var categoryID uint
	if raw := c.Query("categoryId"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		categoryID = uint(v)
	}

	items, err := rc.Svc.List(categoryID, c.Query("search"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /restaurants/:id — รายละเอียดร้าน + คะแนนรีวิวเฉลี่ย
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := rc.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

// GET /partner/restaurant — ข้อมูลร้านของ owner ที่ login
func (rc *RestaurantController) MyRestaurant(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	rest, err := rc.Auth.GetRestaurantByUserID(uid)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, rest)
}

type updateRestaurantReq struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`

	RestaurantCategoryID *uint `json:"restaurantCategoryId"`
	RestaurantStatusID   *uint `json:"restaurantStatusId"` // เปิด/ปิดร้านก็มาทางนี้
}

// PATCH /partner/restaurant — owner แก้ข้อมูลร้านตัวเอง
func (rc *RestaurantController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	rest, err := rc.Auth.GetRestaurantByUserID(uid)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	var req updateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	applyRestaurantPatch(rest, &req)
	if err := rc.Svc.Update(rest); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

func applyRestaurantPatch(rest *entity.Restaurant, req *updateRestaurantReq) {
	if req.Name != nil {
		rest.Name = *req.Name
	}
	if req.Address != nil {
		rest.Address = *req.Address
	}
	if req.Description != nil {
		rest.Description = *req.Description
	}
	if req.Logo != nil {
		rest.Logo = *req.Logo
	}
	if req.RestaurantCategoryID != nil {
		rest.RestaurantCategoryID = *req.RestaurantCategoryID
	}
	if req.RestaurantStatusID != nil {
		rest.RestaurantStatusID = *req.RestaurantStatusID
	}
}

// GET /partner/restaurant/dashboard — สรุปยอดวันนี้ + ออเดอร์ค้าง
func (rc *RestaurantController) Dashboard(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	rest, err := rc.Auth.GetRestaurantByUserID(uid)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	stats, err := rc.Svc.Dashboard(rest.ID, rc.OrderSvc.Status.Pending)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}
