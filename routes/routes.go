// routes/routes.go
package routes

import (
	"quickbite-backend/configs"
	"quickbite-backend/controllers"
	"quickbite-backend/entity"
	"quickbite-backend/middlewares"
	"quickbite-backend/repository"
	"quickbite-backend/services"
	"quickbite-backend/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// RegisterRoutes ประกอบทุกชั้นเข้าด้วยกัน (composition root)
func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *configs.Config) {
	// ----- repositories -----
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(rdb)
	chatRepo := repository.NewChatRepository(db)

	// ----- services -----
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo, orderRepo)
	cartSvc := services.NewCartService(cartRepo, menuRepo, restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartSvc, restRepo)
	chatSvc := services.NewChatService(chatRepo, orderRepo, restRepo)

	// lookup id ของสถานะเมนู "Available" ใช้ filter ฝั่งลูกค้า
	var available entity.MenuStatus
	db.Where("status_name = ?", "Available").First(&available)
	menuSvc := services.NewMenuService(menuRepo, available.ID)

	// ----- controllers -----
	authCtl := controllers.NewAuthController(authSvc)
	restCtl := controllers.NewRestaurantController(restSvc, authSvc, orderSvc)
	menuCtl := controllers.NewMenuController(menuSvc, authSvc)
	cartCtl := controllers.NewCartController(cartSvc)
	orderCtl := controllers.NewOrderController(orderSvc)
	ownerOrderCtl := controllers.NewOwnerOrderController(orderSvc, authSvc)
	reviewCtl := controllers.NewReviewController(db)
	chatCtl := controllers.NewChatController(chatSvc)

	hub := ws.NewChatHub(chatSvc)
	go hub.Run()

	// ----- public -----
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	r.GET("/restaurants", restCtl.List)
	r.GET("/restaurants/:id", restCtl.Detail)
	r.GET("/restaurants/:id/menus", menuCtl.ListAvailable)
	r.GET("/restaurants/:id/reviews", reviewCtl.ListForRestaurant)
	r.GET("/menus/:id/image", menuCtl.GetImage)

	// ----- protected (ทุก role) -----
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		authed.GET("/profile", authCtl.Me)
		authed.PATCH("/profile", authCtl.UpdateMe)
		authed.POST("/profile/avatar", authCtl.UploadAvatar)
		authed.GET("/profile/avatar", authCtl.GetAvatar)
		authed.GET("/profile/order", orderCtl.ListForMe)
		authed.GET("/profile/reviews", reviewCtl.ListForMe)

		authed.GET("/cart", cartCtl.Get)
		authed.POST("/cart/items", cartCtl.Add)
		authed.PATCH("/cart/items/qty", cartCtl.UpdateQty)
		authed.DELETE("/cart/items", cartCtl.RemoveItem)
		authed.DELETE("/cart", cartCtl.Clear)
		authed.PATCH("/cart/open", cartCtl.SetOpen)

		authed.POST("/orders", orderCtl.Checkout)
		authed.GET("/orders/:id", orderCtl.Detail)
		authed.POST("/orders/:id/chatroom", chatCtl.RoomForOrder)

		authed.POST("/reviews", reviewCtl.Create)

		authed.GET("/chatrooms", chatCtl.ListRooms)
		authed.GET("/chatrooms/:id/messages", chatCtl.ListMessages)
	}

	// ----- partner (เจ้าของร้านเท่านั้น) -----
	partner := r.Group("/partner/restaurant")
	partner.Use(middlewares.AuthMiddleware(cfg.JWTSecret, "owner"))
	{
		partner.GET("", restCtl.MyRestaurant)
		partner.PATCH("", restCtl.Update)
		partner.GET("/dashboard", restCtl.Dashboard)

		partner.GET("/menus", menuCtl.ListForOwner)
		partner.POST("/menus", menuCtl.Create)
		partner.PATCH("/menus/:id", menuCtl.Update)
		partner.DELETE("/menus/:id", menuCtl.Delete)

		partner.GET("/orders", ownerOrderCtl.List)
		partner.GET("/orders/:id", ownerOrderCtl.Detail)
		partner.PATCH("/orders/:id/accept", ownerOrderCtl.Accept)
		partner.PATCH("/orders/:id/handoff", ownerOrderCtl.Handoff)
		partner.PATCH("/orders/:id/complete", ownerOrderCtl.Complete)
		partner.PATCH("/orders/:id/cancel", ownerOrderCtl.Cancel)
	}

	// ----- websocket -----
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WSAuthMiddleware(cfg.JWTSecret))
	{
		wsGroup.GET("/chat/:roomId", hub.HandleWebSocket)
	}
}
