package cache

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // Key building
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// AccountListKey is the logical view key for one user's account list
func AccountListKey(userID uint) string {
	return "view:accounts:user:" + strconv.Itoa(int(userID))
}

// AccountDetailKey is the logical view key for one account's detail view.
// Keys are owner-scoped so a cached detail is never served across users.
func AccountDetailKey(userID, id uint) string {
	return "view:account:" + strconv.Itoa(int(userID)) + ":" + strconv.Itoa(int(id))
}

// Views is the Redis-backed cache of rendered view data. It doubles as the
// invalidation sink the account service signals after mutations.
type Views struct {
	rdb *redis.Client
}

func NewViews(rdb *redis.Client) *Views {
	return &Views{rdb: rdb}
}

// Get retrieves a cached view and unmarshals it into dest
func (v *Views) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := v.rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// Put caches a view value with the given TTL
func (v *Views) Put(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err
	}
	return v.rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// Invalidate drops the given view keys so they are recomputed on next access
func (v *Views) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return v.rdb.Del(ctx, keys...).Err() // Delete keys from Redis
}
