package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"quickbite-backend/entity"
	"quickbite-backend/pkg/resp"
	"quickbite-backend/services"
	"quickbite-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxMenuImageSize = 5 << 20 // 5MB

type MenuController struct {
	Svc  *services.MenuService
	Auth *services.AuthService
}

func NewMenuController(svc *services.MenuService, auth *services.AuthService) *MenuController {
	return &MenuController{Svc: svc, Auth: auth}
}

// menuView — แนบ imageUrl ให้ frontend ใช้โหลดรูปจาก endpoint แยก
type menuView struct {
	entity.Menu
	ImageURL string `json:"imageUrl"`
}

func toMenuViews(menus []entity.Menu) []menuView {
	out := make([]menuView, 0, len(menus))
	for i := range menus {
		out = append(out, menuView{Menu: menus[i], ImageURL: menus[i].ImageRef()})
	}
	return out
}

// GET /restaurants/:id/menus — ลูกค้าเห็นเฉพาะเมนู Available
func (mc *MenuController) ListAvailable(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))

	menus, err := mc.Svc.ListAvailable(uint(restID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": toMenuViews(menus)})
}

// GET /menus/:id/image — เสิร์ฟรูปจาก blob ตรง ๆ
func (mc *MenuController) GetImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	menu, err := mc.Svc.Get(uint(id))
	if err != nil || menu.ImageSize == 0 {
		resp.NotFound(c, "image not found")
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, menu.ImageType, menu.Image)
}

// ----- ฝั่ง owner -----

// ownedMenu โหลดเมนูแล้วตรวจว่าอยู่ใต้ร้านของ user นี้จริง
func (mc *MenuController) ownedMenu(c *gin.Context) (*entity.Menu, bool) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	rest, err := mc.Auth.GetRestaurantByUserID(uid)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return nil, false
	}
	menu, err := mc.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
		} else {
			resp.ServerError(c, err)
		}
		return nil, false
	}
	if menu.RestaurantID != rest.ID {
		resp.Forbidden(c, "not your menu")
		return nil, false
	}
	return menu, true
}

// GET /partner/restaurant/menus — owner เห็นทุกสถานะ
func (mc *MenuController) ListForOwner(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	rest, err := mc.Auth.GetRestaurantByUserID(uid)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	menus, err := mc.Svc.ListByRestaurant(rest.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": toMenuViews(menus)})
}

// readMenuForm อ่านฟิลด์จาก multipart form ลง menu (ฟิลด์ว่าง = ไม่แตะ)
func readMenuForm(c *gin.Context, menu *entity.Menu) error {
	if v := c.PostForm("menuName"); v != "" {
		menu.MenuName = v
	}
	if v := c.PostForm("detail"); v != "" {
		menu.Detail = v
	}
	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseInt(v, 10, 64)
		if err != nil || price < 0 {
			return errors.New("invalid price")
		}
		menu.Price = price
	}
	if v := c.PostForm("menuStatusId"); v != "" {
		sid, err := strconv.Atoi(v)
		if err != nil || sid <= 0 {
			return errors.New("invalid menuStatusId")
		}
		menu.MenuStatusID = uint(sid)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return nil // ไม่ได้ส่งรูปมา
	}
	if file.Size > maxMenuImageSize {
		return errors.New("image too large (max 5MB)")
	}
	f, err := file.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	menu.Image = data
	menu.ImageType = file.Header.Get("Content-Type")
	menu.ImageSize = file.Size
	return nil
}

// POST /partner/restaurant/menus (multipart)
func (mc *MenuController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	rest, err := mc.Auth.GetRestaurantByUserID(uid)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	menu := entity.Menu{RestaurantID: rest.ID}
	if err := readMenuForm(c, &menu); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if menu.MenuName == "" || menu.Price <= 0 {
		resp.BadRequest(c, "menuName and price are required")
		return
	}

	if err := mc.Svc.Create(&menu); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, menuView{Menu: menu, ImageURL: menu.ImageRef()})
}

// PATCH /partner/restaurant/menus/:id (multipart, ส่งเฉพาะฟิลด์ที่แก้)
func (mc *MenuController) Update(c *gin.Context) {
	menu, ok := mc.ownedMenu(c)
	if !ok {
		return
	}
	if err := readMenuForm(c, menu); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := mc.Svc.Update(menu); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menuView{Menu: *menu, ImageURL: menu.ImageRef()})
}

// DELETE /partner/restaurant/menus/:id
func (mc *MenuController) Delete(c *gin.Context) {
	menu, ok := mc.ownedMenu(c)
	if !ok {
		return
	}
	if err := mc.Svc.Delete(menu.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": menu.ID})
}
