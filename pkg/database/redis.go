package database

import (
	"context"
	"fmt"
	"time"

	"train-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis membuat client Redis untuk penyimpanan wizard booking
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s failed: %w", config.Addr, err)
	}

	return client, nil
}
