package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// presenceTTL 防止異常關機留下殘留的名單
const presenceTTL = 24 * time.Hour

// RedisPresence 把每個房間目前的連線名單鏡射到 Redis,
// 供外部監看工具查詢。房間的真實狀態仍然只存在於程序記憶體中。
type RedisPresence struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisPresence(addr, password string, db int) (*RedisPresence, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisPresence{client: client, ctx: ctx}, nil
}

func (s *RedisPresence) Joined(debateID, connID string) {
	key := presenceKey(debateID)
	if err := s.client.SAdd(s.ctx, key, connID).Err(); err != nil {
		log.Printf("presence add failed: %v", err)
		return
	}
	s.client.Expire(s.ctx, key, presenceTTL)
}

func (s *RedisPresence) Left(debateID, connID string) {
	if err := s.client.SRem(s.ctx, presenceKey(debateID), connID).Err(); err != nil {
		log.Printf("presence remove failed: %v", err)
	}
}

// Count 回傳 Redis 中記錄的房間人數
func (s *RedisPresence) Count(debateID string) int {
	n, err := s.client.SCard(s.ctx, presenceKey(debateID)).Result()
	if err != nil {
		log.Printf("presence count failed: %v", err)
		return 0
	}
	return int(n)
}

func (s *RedisPresence) Close() error {
	return s.client.Close()
}

func presenceKey(debateID string) string {
	return "debate:" + debateID + ":peers"
}
