package datastore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/courtsight/nba-analytics/internal/domain/rawdata"
	"github.com/courtsight/nba-analytics/internal/usecase"
)

// FileRawArchive implements rawdata.Repository on the local filesystem for
// deployments without a database. One file per (source, entity_key);
// re-archiving overwrites.
type FileRawArchive struct {
	dir string
}

func NewFileRawArchive(dir string) *FileRawArchive {
	return &FileRawArchive{dir: dir}
}

func (a *FileRawArchive) UpsertMany(_ context.Context, payloads []rawdata.Payload) error {
	if len(payloads) == 0 {
		return nil
	}
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("create raw archive dir: %w", err)
	}
	for _, p := range payloads {
		path := a.path(p.Source, p.EntityKey)
		if err := os.WriteFile(path, p.Body, 0o644); err != nil {
			return fmt.Errorf("archive payload source=%s key=%s: %w", p.Source, p.EntityKey, err)
		}
	}
	return nil
}

func (a *FileRawArchive) GetByEntityKey(_ context.Context, source, entityKey string) (rawdata.Payload, error) {
	path := a.path(source, entityKey)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rawdata.Payload{}, crerr.Wrapf(usecase.ErrNotFound, "raw payload source=%s key=%s", source, entityKey)
		}
		return rawdata.Payload{}, fmt.Errorf("read archived payload: %w", err)
	}
	info, err := os.Stat(path)
	fetchedAt := time.Time{}
	if err == nil {
		fetchedAt = info.ModTime().UTC()
	}
	return rawdata.Payload{
		Source:    source,
		EntityKey: entityKey,
		Body:      raw,
		FetchedAt: fetchedAt,
	}, nil
}

func (a *FileRawArchive) path(source, entityKey string) string {
	return filepath.Join(a.dir, sanitizeFileName(source)+"__"+sanitizeFileName(entityKey)+".json")
}

// sanitizeFileName keeps entity keys filesystem-safe.
func sanitizeFileName(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
