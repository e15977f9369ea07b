package controllers

import (
	"errors"
	"strconv"
	"time"

	"quickbite-backend/entity"
	"quickbite-backend/pkg/resp"
	"quickbite-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReviewController คุยกับ DB ตรง ๆ — งานรีวิวเป็น CRUD บาง ๆ ไม่คุ้มแยก service
type ReviewController struct{ DB *gorm.DB }

func NewReviewController(db *gorm.DB) *ReviewController { return &ReviewController{DB: db} }

type CreateReviewReq struct {
	OrderID  uint   `json:"orderId" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comments string `json:"comments"`
}

// POST /reviews (Protected)
// รีวิวผูกกับ order ของ user เท่านั้น — เคยรีวิวร้านเดียวกันแล้วจะอัปเดตทับ
func (rc *ReviewController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// ตรวจว่า order เป็นของ user จริง
	var ord entity.Order
	if err := rc.DB.Where("id = ? AND user_id = ?", req.OrderID, uid).First(&ord).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.BadRequest(c, "order not found or not belong to user")
		} else {
			resp.ServerError(c, err)
		}
		return
	}

	// รีวิวได้เฉพาะ order ที่จบแล้ว
	var completed entity.OrderStatus
	if err := rc.DB.Where("status_name = ?", "Completed").First(&completed).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if ord.OrderStatusID != completed.ID {
		resp.BadRequest(c, "order is not completed yet")
		return
	}

	// upsert ต่อ user+restaurant
	var exist entity.Review
	err := rc.DB.Where("user_id = ? AND restaurant_id = ?", uid, ord.RestaurantID).
		Order("review_date DESC").First(&exist).Error
	if err == nil {
		exist.Rating = req.Rating
		exist.Comments = req.Comments
		exist.ReviewDate = time.Now()
		exist.OrderID = req.OrderID
		if err := rc.DB.Save(&exist).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, exist)
		return
	}

	rev := entity.Review{
		Rating:       req.Rating,
		Comments:     req.Comments,
		ReviewDate:   time.Now(),
		UserID:       uid,
		RestaurantID: ord.RestaurantID,
		OrderID:      req.OrderID,
	}
	if err := rc.DB.Create(&rev).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, rev)
}

// GET /restaurants/:id/reviews (Public)
func (rc *ReviewController) ListForRestaurant(c *gin.Context) {
	rid, _ := strconv.Atoi(c.Param("id"))
	limit, offset := pageParams(c)

	var reviews []entity.Review
	if err := rc.DB.Where("restaurant_id = ?", rid).
		Order("review_date DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	type agg struct {
		Avg   float64
		Count int64
	}
	var a agg
	_ = rc.DB.Model(&entity.Review{}).
		Where("restaurant_id = ?", rid).
		Select("AVG(rating) AS avg, COUNT(*) AS count").
		Scan(&a).Error

	resp.OK(c, gin.H{
		"items":     reviews,
		"meta":      gin.H{"limit": limit, "offset": offset},
		"aggregate": gin.H{"avgRating": a.Avg, "total": a.Count},
	})
}

// GET /profile/reviews (Protected)
func (rc *ReviewController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, offset := pageParams(c)

	var reviews []entity.Review
	if err := rc.DB.Where("user_id = ?", uid).
		Order("review_date DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews, "meta": gin.H{"limit": limit, "offset": offset}})
}

func pageParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return
}
