package postgres

import (
	"secondchance/pkg/domain"
	"time"
)

// PgMaster is a row of the master table.
type PgMaster struct {
	URL       string    `db:"url"`
	Score     int       `db:"score"`
	Safe      bool      `db:"safe"`
	DateAdded time.Time `db:"date_added" goqu:"skipinsert"`
}

func (p *PgMaster) ToDomain() *domain.Verdict {
	return &domain.Verdict{
		URL:     p.URL,
		Score:   p.Score,
		Safe:    p.Safe,
		Success: true,
	}
}

// PgQueueEntry is a row of the queue table.
type PgQueueEntry struct {
	URL       string    `db:"url"`
	DateAdded time.Time `db:"date_added" goqu:"skipinsert"`
}

func (p *PgQueueEntry) ToDomain() *domain.QueueEntry {
	return &domain.QueueEntry{
		URL:       p.URL,
		DateAdded: p.DateAdded,
	}
}
