package privcache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/easyscheduler/admin-backend/internal/domain/privilege"
)

const keyPrefix = "privileges:"

// Cache is a redis read-through decorator over a privilege store. The gate
// does one role lookup per check, so pages that gate every request hit this
// instead of the database. Redis being down degrades to plain store reads;
// only successful lookups are cached, never not-found.
type Cache struct {
	store privilege.Store
	rdb   *redis.Client
	ttl   time.Duration
}

func New(store privilege.Store, rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{store: store, rdb: rdb, ttl: ttl}
}

func (c *Cache) PrivilegeMap(
	ctx context.Context,
	roleSlug string,
) (map[privilege.Page]privilege.Level, error) {

	key := keyPrefix + roleSlug

	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var privileges map[privilege.Page]privilege.Level
		if jsonErr := json.Unmarshal([]byte(cached), &privileges); jsonErr == nil {
			return privileges, nil
		}
		// Unreadable entry, fall through and rewrite it.
	} else if err != redis.Nil {
		log.Println("privilege cache read error:", err)
	}

	privileges, err := c.store.PrivilegeMap(ctx, roleSlug)
	if err != nil {
		return nil, err
	}

	if encoded, jsonErr := json.Marshal(privileges); jsonErr == nil {
		if setErr := c.rdb.Set(ctx, key, encoded, c.ttl).Err(); setErr != nil {
			log.Println("privilege cache write error:", setErr)
		}
	}

	return privileges, nil
}

// Invalidate drops a role's cached map, for callers that edit role rows.
func (c *Cache) Invalidate(ctx context.Context, roleSlug string) {
	if err := c.rdb.Del(ctx, keyPrefix+roleSlug).Err(); err != nil {
		log.Println("privilege cache invalidate error:", err)
	}
}

// Compile-time check
var _ privilege.Store = (*Cache)(nil)
