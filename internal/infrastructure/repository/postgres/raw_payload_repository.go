package postgres

import (
	"context"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/courtsight/nba-analytics/internal/domain/rawdata"
	qb "github.com/courtsight/nba-analytics/internal/platform/querybuilder"
	"github.com/courtsight/nba-analytics/internal/usecase"
	"github.com/jmoiron/sqlx"
)

// RawPayloadRepository archives every provider response so pipeline runs can
// be audited or replayed without re-hitting the provider.
type RawPayloadRepository struct {
	db *sqlx.DB
}

func NewRawPayloadRepository(db *sqlx.DB) *RawPayloadRepository {
	return &RawPayloadRepository{db: db}
}

func (r *RawPayloadRepository) UpsertMany(ctx context.Context, items []rawdata.Payload) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert raw payloads: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		fetchedAt := item.FetchedAt
		if fetchedAt.IsZero() {
			fetchedAt = time.Now().UTC()
		}
		insertModel := rawPayloadInsertModel{
			Source:    item.Source,
			EntityKey: item.EntityKey,
			Payload:   string(item.Body),
			FetchedAt: fetchedAt,
		}

		query, args, err := qb.InsertModel("raw_api_payloads", insertModel, `ON CONFLICT (source, entity_key)
DO UPDATE SET
    payload = EXCLUDED.payload,
    fetched_at = EXCLUDED.fetched_at`)
		if err != nil {
			return fmt.Errorf("build upsert raw payload query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert raw payload source=%s key=%s: %w", item.Source, item.EntityKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert raw payloads tx: %w", err)
	}

	return nil
}

func (r *RawPayloadRepository) GetByEntityKey(ctx context.Context, source, entityKey string) (rawdata.Payload, error) {
	query, args, err := qb.Select("id", "source", "entity_key", "payload", "fetched_at").
		From("raw_api_payloads").
		Where(qb.Eq("source", source), qb.Eq("entity_key", entityKey)).
		Limit(1).
		ToSQL()
	if err != nil {
		return rawdata.Payload{}, fmt.Errorf("build get raw payload query: %w", err)
	}

	var row rawPayloadRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return rawdata.Payload{}, crerr.Wrapf(usecase.ErrNotFound, "raw payload source=%s key=%s", source, entityKey)
		}
		return rawdata.Payload{}, fmt.Errorf("get raw payload source=%s key=%s: %w", source, entityKey, err)
	}

	return rawdata.Payload{
		ID:        row.ID,
		Source:    row.Source,
		EntityKey: row.EntityKey,
		Body:      []byte(row.Payload),
		FetchedAt: row.FetchedAt,
	}, nil
}

type rawPayloadInsertModel struct {
	Source    string    `db:"source"`
	EntityKey string    `db:"entity_key"`
	Payload   string    `db:"payload"`
	FetchedAt time.Time `db:"fetched_at"`
}

type rawPayloadRow struct {
	ID        int64     `db:"id"`
	Source    string    `db:"source"`
	EntityKey string    `db:"entity_key"`
	Payload   string    `db:"payload"`
	FetchedAt time.Time `db:"fetched_at"`
}
