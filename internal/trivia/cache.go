package trivia

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultCacheTTL = 10 * time.Minute
	categoriesKey   = "trivia:categories"
)

// CategoryCache stores the category list. A nil slice with a nil error is a miss.
type CategoryCache interface {
	Categories(ctx context.Context) ([]Category, error)
	SetCategories(ctx context.Context, categories []Category) error
}

// Cache keeps the category list in Redis. Categories never change at runtime so a TTL is
// the only invalidation.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ CategoryCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Categories(ctx context.Context) ([]Category, error) {
	data, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	categories := []Category{}
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Cache) SetCategories(ctx context.Context, categories []Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, categoriesKey, data, c.ttl).Err()
}

type noopCache struct{}

func (noopCache) Categories(context.Context) ([]Category, error) { return nil, nil }
func (noopCache) SetCategories(context.Context, []Category) error { return nil }
