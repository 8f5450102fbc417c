// File: service/ai/answer_cache.go
package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const answerPrefix = "ai:answer:"

// AnswerCache remembers recent answers to the same question about the same
// vendor. It holds no conversation state.
type AnswerCache interface {
	Get(ctx context.Context, vendorSlug, prompt string) (string, bool)
	Set(ctx context.Context, vendorSlug, prompt, answer string)
}

type RedisAnswerCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAnswerCache(client *redis.Client, ttl time.Duration) *RedisAnswerCache {
	return &RedisAnswerCache{client: client, ttl: ttl}
}

func answerKey(vendorSlug, prompt string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(prompt))))
	return answerPrefix + vendorSlug + ":" + hex.EncodeToString(sum[:])
}

func (c *RedisAnswerCache) Get(ctx context.Context, vendorSlug, prompt string) (string, bool) {
	answer, err := c.client.Get(ctx, answerKey(vendorSlug, prompt)).Result()
	if err != nil {
		return "", false
	}
	return answer, true
}

func (c *RedisAnswerCache) Set(ctx context.Context, vendorSlug, prompt, answer string) {
	c.client.Set(ctx, answerKey(vendorSlug, prompt), answer, c.ttl)
}
