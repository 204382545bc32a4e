// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/domain/entity"
	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/usecase"
)

// CachingFormRepository decorates a FormRepository with Redis caching for the
// review reads. It implements the decorator pattern, transparently adding
// caching without modifying the underlying repository. Writes invalidate the
// namespace; with a nil client every call passes straight through.
type CachingFormRepository struct {
	inner     usecase.FormRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingFormRepository decorates a FormRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "userforms".
func NewCachingFormRepository(rdb *redis.Client, ttl time.Duration, inner usecase.FormRepository, namespace string) *CachingFormRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "userforms"
	}
	return &CachingFormRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

var _ usecase.FormRepository = (*CachingFormRepository)(nil)

// Create appends the submission and invalidates cached reads.
func (c *CachingFormRepository) Create(ctx context.Context, form *entity.UserForm) error {
	if err := c.inner.Create(ctx, form); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: a failed invalidation only shortens cache freshness.
	_ = c.deleteByPattern(ctx, c.namespace+":*")
	return nil
}

// List retrieves all submissions, checking the cache first then falling back
// to the database.
func (c *CachingFormRepository) List(ctx context.Context) ([]entity.UserForm, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.namespace + ":all"

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.UserForm
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry.
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID retrieves one submission, checking the cache first. Not-found is
// never cached so a sentinel error always comes from the inner repository.
func (c *CachingFormRepository) FindByID(ctx context.Context, id uint) (*entity.UserForm, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := fmt.Sprintf("%s:id:%d", c.namespace, id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.UserForm
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingFormRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
