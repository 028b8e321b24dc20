package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"liveclient-replay/internal/constants"
)

// Document kinds stored in the cache.
const (
	KindMatch     = "match"
	KindTimeline  = "timeline"
	KindChampions = "champions"
	KindItems     = "items"
)

// DocumentRepository caches downloaded JSON documents on disk so a replay can
// be restarted without refetching. Match records are immutable and cached
// forever; catalogs carry a TTL.
type DocumentRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewDocumentRepository(db *sql.DB, logger zerolog.Logger) *DocumentRepository {
	return &DocumentRepository{db: db, logger: logger}
}

// Get returns the cached body for the document, or ok=false when absent or
// older than maxAge (0 = never expires).
func (r *DocumentRepository) Get(ctx context.Context, kind, key, patch, locale string, maxAge time.Duration) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	var body []byte
	var fetchedAt time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT body, fetched_at FROM documents WHERE kind = ? AND doc_key = ? AND patch = ? AND locale = ?`,
		kind, key, patch, locale,
	).Scan(&body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cached %s: %w", kind, err)
	}

	if maxAge > 0 && time.Since(fetchedAt) > maxAge {
		r.logger.Debug().Str("kind", kind).Str("key", key).Time("fetched_at", fetchedAt).Msg("cached document expired")
		return nil, false, nil
	}

	r.logger.Debug().Str("kind", kind).Str("key", key).Int("bytes", len(body)).Msg("cache hit")
	return body, true, nil
}

// Put stores or replaces the document body.
func (r *DocumentRepository) Put(ctx context.Context, kind, key, patch, locale string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	id, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("generating document id: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO documents (id, kind, doc_key, patch, locale, body, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (kind, doc_key, patch, locale)
		 DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		id, kind, key, patch, locale, body, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("caching %s: %w", kind, err)
	}

	r.logger.Debug().Str("kind", kind).Str("key", key).Int("bytes", len(body)).Msg("document cached")
	return nil
}
