package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"attrition-risk/internal/domain"
)

// PopulationStatsCache guarda los agregados ya calculados de cada poblacion.
type PopulationStatsCache interface {
	Get(ctx context.Context, populationID string) (*domain.PopulationStats, bool, error)
	Set(ctx context.Context, populationID string, stats *domain.PopulationStats) error
}

type memoryStatsEntry struct {
	stats     *domain.PopulationStats
	expiresAt time.Time
}

type memoryStatsCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]memoryStatsEntry
}

func NewMemoryStatsCache(ttl time.Duration) PopulationStatsCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &memoryStatsCache{
		ttl:   ttl,
		items: make(map[string]memoryStatsEntry),
	}
}

func (c *memoryStatsCache) Get(_ context.Context, populationID string) (*domain.PopulationStats, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[populationID]
	if !ok {
		return nil, false, nil
	}
	if time.Now().UTC().After(e.expiresAt) {
		delete(c.items, populationID)
		return nil, false, nil
	}
	return e.stats, true, nil
}

func (c *memoryStatsCache) Set(_ context.Context, populationID string, stats *domain.PopulationStats) error {
	if strings.TrimSpace(populationID) == "" || stats == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[populationID] = memoryStatsEntry{stats: stats, expiresAt: time.Now().UTC().Add(c.ttl)}
	return nil
}

type redisGetSetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisStatsCache struct {
	client redisGetSetter
	ttl    time.Duration
	prefix string
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) PopulationStatsCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisStatsCache{
		client: client,
		ttl:    ttl,
		prefix: "population:stats:",
	}
}

func (c *redisStatsCache) Get(ctx context.Context, populationID string) (*domain.PopulationStats, bool, error) {
	if strings.TrimSpace(populationID) == "" {
		return nil, false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	raw, err := c.client.Get(ctx, c.prefix+populationID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var stats domain.PopulationStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false, err
	}
	return &stats, true, nil
}

func (c *redisStatsCache) Set(ctx context.Context, populationID string, stats *domain.PopulationStats) error {
	if strings.TrimSpace(populationID) == "" || stats == nil {
		return nil
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, c.prefix+populationID, payload, c.ttl).Err()
}
