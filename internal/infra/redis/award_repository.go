package redis

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"mvp-challenge/internal/domain"
)

// AwardLoader fetches the award table from a backing store (e.g., Postgres).
type AwardLoader interface {
	LoadTable(ctx context.Context) (domain.AwardTable, error)
}

// AwardRepository caches the award table in a Redis hash and falls back to
// the loader on cache miss.
// The table is stored as: HSET mvp:awards {year} {winner}
type AwardRepository struct {
	client *redis.Client
	loader AwardLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewAwardRepository(client *redis.Client, loader AwardLoader, ttl time.Duration) *AwardRepository {
	return &AwardRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

const awardsKey = "mvp:awards"

func (r *AwardRepository) GetTable(ctx context.Context) (domain.AwardTable, error) {
	cached, err := r.client.HGetAll(ctx, awardsKey).Result()
	if err == nil && len(cached) > 0 {
		return buildTableFromCache(cached), nil
	}

	result, err, _ := r.sf.Do(awardsKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		cached, err := r.client.HGetAll(ctx, awardsKey).Result()
		if err == nil && len(cached) > 0 {
			return buildTableFromCache(cached), nil
		}

		table, err := r.loader.LoadTable(ctx)
		if err != nil {
			return domain.AwardTable(nil), err
		}

		ttl := r.ttlWithJitter()
		pipe := r.client.Pipeline()
		for year, winner := range table {
			pipe.HSet(ctx, awardsKey, strconv.Itoa(year), winner)
		}
		if ttl > 0 {
			pipe.Expire(ctx, awardsKey, ttl)
		}
		_, _ = pipe.Exec(ctx)

		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(domain.AwardTable), nil
}

func buildTableFromCache(cached map[string]string) domain.AwardTable {
	table := make(domain.AwardTable, len(cached))
	for yearStr, winner := range cached {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			continue
		}
		table[year] = winner
	}
	return table
}

func (r *AwardRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
