package config

import (
	"context"

	"hotel-management/services/logger"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis tạo client Redis và kiểm tra kết nối
func ConnectRedis(ctx context.Context, settings *Settings, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     settings.RedisAddr,
		Username: settings.RedisUser,
		Password: settings.RedisPassword,
		DB:       settings.RedisDB,
	})

	res, err := rdb.Ping(ctx).Result()
	if err != nil {
		_ = rdb.Close()
		return nil, err
	}

	log.Info("Kết nối Redis thành công: %s", res)
	return rdb, nil
}
