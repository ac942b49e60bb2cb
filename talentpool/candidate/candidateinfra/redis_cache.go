package candidateinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/talentpool/talentpool/candidate"
	"github.com/go-redis/redis/v8"
)

// RedisCandidateCache caches the full anonymized list as one JSON blob. The
// pool changes rarely (profile pipeline runs upstream) so a short TTL keeps
// the dashboard's fetch-once path off Postgres almost entirely.
type RedisCandidateCache struct {
	client *redis.Client
	key    string
}

func NewRedisCandidateCache(client *redis.Client) candidate.Cache {
	return &RedisCandidateCache{
		client: client,
		key:    "talentpool:candidates:list",
	}
}

// GetList returns the cached list and whether the cache was warm.
func (c *RedisCandidateCache) GetList(ctx context.Context) ([]candidate.Candidate, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached candidate list: %w", err)
	}

	var candidates []candidate.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		// A corrupt entry behaves like a miss; the next SetList overwrites it.
		return nil, false, nil
	}

	return candidates, true, nil
}

// SetList stores the list with a TTL.
func (c *RedisCandidateCache) SetList(ctx context.Context, candidates []candidate.Candidate, ttl time.Duration) error {
	data, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("marshal candidate list: %w", err)
	}

	if err := c.client.Set(ctx, c.key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache candidate list: %w", err)
	}

	return nil
}

// Invalidate drops the cached list.
func (c *RedisCandidateCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("invalidate candidate list cache: %w", err)
	}
	return nil
}
