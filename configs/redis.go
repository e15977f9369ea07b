package configs

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

func Redis() *redis.Client {
	return rdb
}

// ต่อ redis สำหรับเก็บตะกร้า (key-value slot)
func ConnectionRedis(addr string) {
	rdb = redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		// ไม่ fatal: ตะกร้าจะว่างจนกว่า redis จะกลับมา
		log.Println("⚠️ redis ping failed:", err)
	}
}
