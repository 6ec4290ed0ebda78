package ledger

import (
	"github.com/budget-steps/backend/internal/models"
	"github.com/dgraph-io/ristretto"
)

// stepCache holds steps by ID. Steps are never updated, so entries
// never need to be invalidated.
//
// A nil cache is valid and caches nothing.
type stepCache struct {
	cache *ristretto.Cache
}

func newStepCache(size int64) (*stepCache, error) {
	if size <= 0 {
		return &stepCache{}, nil
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: size * 10, // number of keys to track frequency of
		MaxCost:     size,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, err
	}

	return &stepCache{cache: cache}, nil
}

func (c *stepCache) get(id uint) (models.Step, bool) {
	if c.cache == nil {
		return models.Step{}, false
	}

	value, ok := c.cache.Get(uint64(id))
	if !ok {
		return models.Step{}, false
	}

	step, ok := value.(models.Step)
	return step, ok
}

func (c *stepCache) set(step models.Step) {
	if c.cache == nil {
		return
	}

	c.cache.Set(uint64(step.ID), step, 1)
}

// wait blocks until all buffered writes are applied.
func (c *stepCache) wait() {
	if c.cache != nil {
		c.cache.Wait()
	}
}

func (c *stepCache) close() {
	if c.cache != nil {
		c.cache.Close()
	}
}
