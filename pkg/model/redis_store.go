package model

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis model store settings
type RedisConfig struct {
	RedisURL    string `json:"redis_url" yaml:"redis_url"`
	KeyPrefix   string `json:"key_prefix" yaml:"key_prefix"`
	DatabaseNum int    `json:"database_num" yaml:"database_num"`
	BatchSize   int    `json:"batch_size" yaml:"batch_size"`
}

// DefaultRedisConfig returns default Redis store settings
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		RedisURL:    "redis://localhost:6379",
		KeyPrefix:   "smsguard:model",
		DatabaseNum: 0,
		BatchSize:   500,
	}
}

// RedisStore persists trained models in Redis so multiple processes can
// share one training run. Token counts live in per-token hashes and the
// corpus totals in a stats hash; like the file store, probabilities are
// re-estimated on load.
type RedisStore struct {
	client *redis.Client
	config *RedisConfig
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(config *RedisConfig) (*RedisStore, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	opt, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %v", err)
	}

	opt.DB = config.DatabaseNum
	client := redis.NewClient(opt)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("Redis connection failed: %v", err)
	}

	return &RedisStore{client: client, config: config}, nil
}

// Save writes a model's vocabulary counts and totals to Redis, replacing
// any previously stored model under the same key prefix
func (rs *RedisStore) Save(ctx context.Context, m *Model) error {
	if err := rs.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear previous model: %v", err)
	}

	pipe := rs.client.Pipeline()
	count := 0

	for token, wc := range m.Vocab.Words {
		pipe.HSet(ctx, rs.tokenKey(token), "ham", wc.Ham, "spam", wc.Spam)
		count++

		if count >= rs.config.BatchSize {
			if _, err := pipe.Exec(ctx); err != nil {
				return fmt.Errorf("failed to write token counts: %v", err)
			}
			pipe = rs.client.Pipeline()
			count = 0
		}
	}

	pipe.HSet(ctx, rs.statsKey(),
		"ham_tokens", m.Vocab.HamTokens,
		"spam_tokens", m.Vocab.SpamTokens,
		"ham_messages", m.Vocab.HamMessages,
		"spam_messages", m.Vocab.SpamMessages,
		"smoothing", m.Smoothing,
		"saved_at", time.Now().Unix(),
	)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write model stats: %v", err)
	}

	return nil
}

// Load reads the stored vocabulary back and re-estimates the model
func (rs *RedisStore) Load(ctx context.Context) (*Model, error) {
	stats, err := rs.client.HGetAll(ctx, rs.statsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read model stats: %v", err)
	}
	if len(stats) == 0 {
		return nil, fmt.Errorf("no model stored under prefix %s", rs.config.KeyPrefix)
	}

	vocab := NewVocabulary()
	vocab.HamTokens, _ = strconv.Atoi(stats["ham_tokens"])
	vocab.SpamTokens, _ = strconv.Atoi(stats["spam_tokens"])
	vocab.HamMessages, _ = strconv.Atoi(stats["ham_messages"])
	vocab.SpamMessages, _ = strconv.Atoi(stats["spam_messages"])

	smoothing, err := strconv.ParseFloat(stats["smoothing"], 64)
	if err != nil {
		smoothing = DefaultSmoothing
	}

	prefixLen := len(rs.tokenKey(""))
	iter := rs.client.Scan(ctx, 0, rs.tokenKey("*"), int64(rs.config.BatchSize)).Iterator()

	for iter.Next(ctx) {
		key := iter.Val()
		counts, err := rs.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to read token counts: %v", err)
		}

		hamCount, _ := strconv.Atoi(counts["ham"])
		spamCount, _ := strconv.Atoi(counts["spam"])

		token := key[prefixLen:]
		vocab.Words[token] = &WordCounts{Ham: hamCount, Spam: spamCount}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan token keys: %v", err)
	}

	return Estimate(vocab, smoothing), nil
}

// Clear deletes the stored model
func (rs *RedisStore) Clear(ctx context.Context) error {
	if err := rs.client.Del(ctx, rs.statsKey()).Err(); err != nil {
		return err
	}

	iter := rs.client.Scan(ctx, 0, rs.tokenKey("*"), int64(rs.config.BatchSize)).Iterator()

	pipe := rs.client.Pipeline()
	count := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		count++

		if count >= rs.config.BatchSize {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
			pipe = rs.client.Pipeline()
			count = 0
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if count > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Close closes the Redis connection
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

func (rs *RedisStore) tokenKey(token string) string {
	return fmt.Sprintf("%s:token:%s", rs.config.KeyPrefix, token)
}

func (rs *RedisStore) statsKey() string {
	return fmt.Sprintf("%s:stats", rs.config.KeyPrefix)
}
