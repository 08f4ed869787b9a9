package services

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

// Hàm lấy data từ Redis, trả về ErrCacheMiss khi key không tồn tại
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}

	// Parse JSON thành object
	return json.Unmarshal(cachedData, target)
}

// Hàm lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

// Hàm xóa key khỏi Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err()
}

// Session là một phiên đăng nhập còn hiệu lực
type Session struct {
	ID         string    `json:"id"`
	OperatorID string    `json:"operatorId"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

const sessionKeyPrefix = "session:"

// RedisSessionStore lưu session trong Redis, TTL bằng thời hạn của access token
type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) Save(ctx context.Context, session Session, ttl time.Duration) error {
	return SetToRedis(ctx, s.rdb, sessionKeyPrefix+session.ID, session, ttl)
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	var session Session
	if err := GetFromRedis(ctx, s.rdb, sessionKeyPrefix+id, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return DeleteFromRedis(ctx, s.rdb, sessionKeyPrefix+id)
}

func (s *RedisSessionStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
