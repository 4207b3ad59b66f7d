package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"mvp-challenge/internal/domain"
)

// AwardLoader fetches the award table from a backing store (e.g., Postgres).
type AwardLoader interface {
	LoadTable(ctx context.Context) (domain.AwardTable, error)
}

// AwardRepository caches the award table with a TTL to avoid repeated
// backing-store hits.
type AwardRepository struct {
	loader AwardLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	table     domain.AwardTable
	expiresAt time.Time
}

func NewAwardRepository(loader AwardLoader, ttl time.Duration) *AwardRepository {
	return &AwardRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *AwardRepository) GetTable(ctx context.Context) (domain.AwardTable, error) {
	now := r.clock()

	r.mu.RLock()
	if r.table != nil && r.expiresAt.After(now) {
		table := r.table
		r.mu.RUnlock()
		return table, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("awards", func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.table != nil && r.expiresAt.After(now) {
			table := r.table
			r.mu.RUnlock()
			return table, nil
		}
		r.mu.RUnlock()

		table, err := r.loader.LoadTable(ctx)
		if err != nil {
			return domain.AwardTable(nil), err
		}

		r.mu.Lock()
		r.table = table
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(domain.AwardTable), nil
}

// StaticAwardLoader serves a fixed in-memory table (the default dataset, tests).
type StaticAwardLoader struct {
	table domain.AwardTable
}

func NewStaticAwardLoader(table domain.AwardTable) *StaticAwardLoader {
	return &StaticAwardLoader{table: table}
}

func (l *StaticAwardLoader) LoadTable(_ context.Context) (domain.AwardTable, error) {
	if len(l.table) == 0 {
		return nil, domain.ErrAwardTableNotFound
	}
	return l.table, nil
}

func (r *AwardRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
