package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	cacheSizeBytes = 10 * 1024 * 1024
	cacheTTLSecs   = 15 * 60
)

// CachedRepo is a read-through cache in front of the catalog repo. The catalog
// is static reference data, so short TTLs are only there to pick up admin
// edits without a restart. Cache failures fall through to the repo.
type CachedRepo struct {
	*Repo
	cache *freecache.Cache
}

func NewCachedRepo(repo *Repo) *CachedRepo {
	return &CachedRepo{
		Repo:  repo,
		cache: freecache.NewCache(cacheSizeBytes),
	}
}

func (c *CachedRepo) Proficiency(ctx context.Context, variationID int64, level IntensityLevel) (Proficiency, error) {
	key := []byte(fmt.Sprintf("proficiency:%d:%d", variationID, int(level)))
	if raw, err := c.cache.Get(key); err == nil {
		var p Proficiency
		if err := json.Unmarshal(raw, &p); err == nil {
			return p, nil
		}
		log.Warnf("catalog cache: unmarshal proficiency %d/%s failed, falling through", variationID, level)
	}

	p, err := c.Repo.Proficiency(ctx, variationID, level)
	if err != nil {
		return Proficiency{}, err
	}

	if raw, err := json.Marshal(p); err == nil {
		if err := c.cache.Set(key, raw, cacheTTLSecs); err != nil {
			log.Tracef("catalog cache: set proficiency: %s", err)
		}
	}
	return p, nil
}

func (c *CachedRepo) Variation(ctx context.Context, id int64) (Variation, error) {
	key := []byte(fmt.Sprintf("variation:%d", id))
	if raw, err := c.cache.Get(key); err == nil {
		var v Variation
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
	}

	v, err := c.Repo.Variation(ctx, id)
	if err != nil {
		return Variation{}, err
	}

	if raw, err := json.Marshal(v); err == nil {
		if err := c.cache.Set(key, raw, cacheTTLSecs); err != nil {
			log.Tracef("catalog cache: set variation: %s", err)
		}
	}
	return v, nil
}

func (c *CachedRepo) Prerequisites(ctx context.Context) ([]Prerequisite, error) {
	key := []byte("prerequisites")
	if raw, err := c.cache.Get(key); err == nil {
		var prereqs []Prerequisite
		if err := json.Unmarshal(raw, &prereqs); err == nil {
			return prereqs, nil
		}
	}

	prereqs, err := c.Repo.Prerequisites(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(prereqs); err == nil {
		if err := c.cache.Set(key, raw, cacheTTLSecs); err != nil {
			log.Tracef("catalog cache: set prerequisites: %s", err)
		}
	}
	return prereqs, nil
}
