package postgres

import (
	"context"
	"fmt"
	"secondchance/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	queueTable = "queue"
)

func (p *PgSQL) Enqueue(ctx context.Context, URL string) (bool, error) {
	res, err := p.Builder.Insert(queueTable).
		Rows(PgQueueEntry{URL: URL}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not enqueue url in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}

// OldestQueued breaks ties between entries added on the same day by URL.
func (p *PgSQL) OldestQueued(ctx context.Context) (*domain.QueueEntry, error) {
	var row PgQueueEntry
	found, err := p.Builder.From(queueTable).
		Order(goqu.I("date_added").Asc(), goqu.I("url").Asc()).
		Limit(1).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get oldest queue entry from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) QueueLength(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(queueTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count queue entries in pg: %w", err)
	}

	return count, nil
}
