package main

import (
	"fmt"
	"log"

	"quickbite-backend/configs"
	"quickbite-backend/middlewares"
	"quickbite-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// Redis (เก็บตะกร้า)
	configs.ConnectionRedis(cfg.RedisAddr)
	rdb := configs.Redis()

	// HTTP
	r := gin.Default()

	// ✅ Enable CORS
	r.Use(middlewares.CORSMiddleware())

	// ✅ Register API routes
	routes.RegisterRoutes(r, db, rdb, cfg)

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
