package data

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	contextualPrefix = "contextual:"
	contextualTTL    = time.Hour
)

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// StoreContextualResult caches the contextual analysis block for the poll
// endpoint, keyed by request id.
func StoreContextualResult(ctx context.Context, rdb *redis.Client, requestID string, report interface{}) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, contextualPrefix+requestID, payload, contextualTTL).Err()
}

// GetContextualResult returns the cached block, or redis.Nil when the request
// id is unknown or expired.
func GetContextualResult(ctx context.Context, rdb *redis.Client, requestID string) (json.RawMessage, error) {
	raw, err := rdb.Get(ctx, contextualPrefix+requestID).Bytes()
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}
