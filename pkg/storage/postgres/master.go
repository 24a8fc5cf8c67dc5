package postgres

import (
	"context"
	"fmt"
	"secondchance/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	masterTable = "master"
)

func (p *PgSQL) MasterByURL(ctx context.Context, URL string) (*domain.Verdict, error) {
	var row PgMaster
	found, err := p.Builder.From(masterTable).
		Where(goqu.I("url").Eq(URL)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get master row from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// UpsertMaster refreshes date_added on conflict so the row reflects the latest classification.
func (p *PgSQL) UpsertMaster(ctx context.Context, URL string, score int, safe bool) error {
	_, err := p.Builder.Insert(masterTable).
		Rows(PgMaster{URL: URL, Score: score, Safe: safe}).
		OnConflict(goqu.DoUpdate("url", goqu.Record{
			"score":      goqu.L("EXCLUDED.score"),
			"safe":       goqu.L("EXCLUDED.safe"),
			"date_added": goqu.L("CURRENT_DATE"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not upsert master row in pg: %w", err)
	}

	return nil
}

// ForceSafe leaves date_added untouched for rows that already exist.
func (p *PgSQL) ForceSafe(ctx context.Context, URL string) error {
	_, err := p.Builder.Insert(masterTable).
		Rows(PgMaster{URL: URL, Score: domain.OverrideScore, Safe: true}).
		OnConflict(goqu.DoUpdate("url", goqu.Record{
			"score": goqu.L("EXCLUDED.score"),
			"safe":  goqu.L("EXCLUDED.safe"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not force safe master row in pg: %w", err)
	}

	return nil
}
