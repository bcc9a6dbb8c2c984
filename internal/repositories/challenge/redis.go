package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/castbot/castbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	challengeKeyPrefix = "challenge:"

	// defaultTTL bounds how long an unanswered challenge survives
	defaultTTL = 24 * time.Hour
)

// ErrChallengeNotFound is returned when a challenge is not found or has
// already been resolved.
var ErrChallengeNotFound = errors.New("challenge not found")

// Config holds configuration for the Redis challenge repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Optional TTL override for unanswered challenges
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed challenge repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

// SaveChallenge persists a challenge to Redis with the store's TTL
func (r *redisRepository) SaveChallenge(ctx context.Context, input *SaveChallengeInput) error {
	if input == nil || input.Challenge == nil {
		return errors.New("input and challenge cannot be nil")
	}

	if input.Challenge.ID == "" {
		return errors.New("challenge ID cannot be empty")
	}

	// Marshal the challenge to JSON
	challengeJSON, err := json.Marshal(input.Challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	key := fmt.Sprintf("%s%s", challengeKeyPrefix, input.Challenge.ID)
	if err := r.client.Set(ctx, key, challengeJSON, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save challenge: %w", err)
	}

	return nil
}

// GetChallenge retrieves a challenge by ID from Redis
func (r *redisRepository) GetChallenge(ctx context.Context, input *GetChallengeInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", challengeKeyPrefix, input.ChallengeID)
	challengeJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	var c models.Challenge
	if err := json.Unmarshal([]byte(challengeJSON), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &c, nil
}

// DeleteChallenge removes a challenge from Redis
func (r *redisRepository) DeleteChallenge(ctx context.Context, input *DeleteChallengeInput) error {
	if input == nil || input.ChallengeID == "" {
		return errors.New("input and challenge ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", challengeKeyPrefix, input.ChallengeID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}

	return nil
}
