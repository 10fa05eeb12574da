package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/careerguide/internal/pkg/cache"
	"github.com/yigit/careerguide/internal/pkg/logger"
)

// Services defined in this package:
// - AuthService: registration and credential checks
// - UserService: user listing and profile updates
// - InstitutionService, FacultyService, CourseService: the catalog
// - ApplicationService: application intake
// - AdmissionService: admission publishing

// Catalog cache keys
const (
	cacheKeyInstitutions = "catalog:institutions"
	cacheKeyUniversities = "catalog:universities"
	cacheKeyFaculties    = "catalog:faculties"
	cacheKeyCourses      = "catalog:courses"
)

// catalogCache is the read-through cache shared by the catalog services.
// A nil store disables caching.
//
// Entries live under <key>@<generation>. Writers move a key to a fresh
// generation once their change is committed, so a reader that fetched rows
// before the write can only fill a generation nobody reads any more.
type catalogCache struct {
	store cache.Store
	ttl   time.Duration
}

func newCatalogCache(store cache.Store, ttl time.Duration) catalogCache {
	return catalogCache{store: store, ttl: ttl}
}

func generationKey(key string) string {
	return key + ":gen"
}

func entryKey(key, generation string) string {
	return key + "@" + generation
}

// generation returns the current generation of key; "0" until the first write
func (c catalogCache) generation(ctx context.Context, key string) string {
	if c.store == nil {
		return ""
	}
	raw, err := c.store.Get(ctx, generationKey(key))
	if err != nil || len(raw) == 0 {
		return "0"
	}
	return string(raw)
}

// load reads key at its current generation. The returned generation must be
// passed to save when the caller fills a miss.
func (c catalogCache) load(ctx context.Context, key string, dst interface{}) (string, bool) {
	generation := c.generation(ctx, key)
	if c.store == nil {
		return generation, false
	}
	return generation, cache.GetJSON(ctx, c.store, entryKey(key, generation), dst)
}

func (c catalogCache) save(ctx context.Context, key, generation string, value interface{}) {
	cache.SetJSON(ctx, c.store, entryKey(key, generation), value, c.ttl)
}

// invalidate retires the current generation of each key. Call it after the
// write has been committed.
func (c catalogCache) invalidate(ctx context.Context, keys ...string) {
	if c.store == nil {
		return
	}
	for _, key := range keys {
		if err := c.store.Set(ctx, generationKey(key), []byte(uuid.NewString()), 0); err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("Failed to invalidate catalog cache")
		}
	}
}
