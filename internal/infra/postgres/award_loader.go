package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"mvp-challenge/internal/domain"
)

// AwardLoader loads the year-to-winner table from Postgres.
type AwardLoader struct {
	pool *pgxpool.Pool
}

func NewAwardLoader(pool *pgxpool.Pool) *AwardLoader {
	return &AwardLoader{pool: pool}
}

func (l *AwardLoader) LoadTable(ctx context.Context) (domain.AwardTable, error) {
	rows, err := l.pool.Query(ctx, `SELECT year, winner FROM award_winners`)
	if err != nil {
		return nil, fmt.Errorf("load award table: %w", err)
	}
	defer rows.Close()

	table := make(domain.AwardTable)
	for rows.Next() {
		var year int
		var winner string
		if err := rows.Scan(&year, &winner); err != nil {
			return nil, fmt.Errorf("scan award row: %w", err)
		}
		table[year] = winner
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read award rows: %w", err)
	}
	if len(table) == 0 {
		return nil, domain.ErrAwardTableNotFound
	}
	return table, nil
}
