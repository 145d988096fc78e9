package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/tcn-coffee/fieldbook/internal/domain/models"
	"github.com/tcn-coffee/fieldbook/internal/repository/recordstore"
)

// ErrInvalidDocument marks a restore document that failed the _meta.app
// gate. No writes happen when this is returned.
var ErrInvalidDocument = errors.New("invalid backup document")

// CollectionError wraps a failure scoped to one collection during export.
type CollectionError struct {
	Collection models.Collection
	Err        error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("collection %s: %v", e.Collection, e.Err)
}

func (e *CollectionError) Unwrap() error { return e.Err }

// exportStripped are backend bookkeeping fields removed from each record on
// export; they describe the source backend, not the data.
var exportStripped = []string{"collectionId", "collectionName", "expand"}

// restoreStripped are identity and server-assigned fields removed from each
// record before re-insertion; the target store assigns fresh ones.
var restoreStripped = []string{"id", "_id", "created", "updated"}

// Service implements the backup/restore exchange protocol over a record
// store.
type Service struct {
	store  recordstore.Store
	logger *zap.Logger
}

// NewService wires a backup service instance.
func NewService(store recordstore.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// Export reads every managed collection, in the fixed order, into a fresh
// backup document. The export is not transactional across collections: any
// fetch failure aborts the whole run with a CollectionError and nothing is
// emitted.
func (s *Service) Export(ctx context.Context, user string) (*models.BackupDocument, error) {
	doc := models.NewBackupDocument(time.Now().UTC(), user)

	for _, collection := range models.Collections {
		records, err := s.store.ListAll(ctx, collection)
		if err != nil {
			return nil, &CollectionError{Collection: collection, Err: err}
		}

		cleaned := make([]models.Record, 0, len(records))
		for _, record := range records {
			cleaned = append(cleaned, stripFields(record, exportStripped))
		}
		doc.Collections[collection] = cleaned

		s.logger.Debug("collection exported",
			zap.String("collection", string(collection)),
			zap.Int("records", len(cleaned)))
	}

	return doc, nil
}

// Restore imports a backup document additively. The _meta.app gate is
// checked before any write; after that, every record of every managed
// collection present in the document is attempted in order. A failed create
// is logged and skipped, it never aborts the run. Existing records are never
// touched, and restoring the same document twice creates duplicates; there
// is no deduplication key.
func (s *Service) Restore(ctx context.Context, doc *models.BackupDocument) (*models.RestoreReport, error) {
	if doc == nil || doc.Meta.App != models.BackupAppTag {
		return nil, fmt.Errorf("%w: _meta.app must be %q", ErrInvalidDocument, models.BackupAppTag)
	}

	report := &models.RestoreReport{Created: make(map[models.Collection]int, len(models.Collections))}

	for _, collection := range models.Collections {
		records, ok := doc.Collections[collection]
		if !ok {
			continue
		}

		for i, record := range records {
			fields := stripFields(record, restoreStripped)
			if _, err := s.store.Create(ctx, collection, fields); err != nil {
				s.logger.Warn("record skipped during restore",
					zap.String("collection", string(collection)),
					zap.Int("index", i),
					zap.Error(err))
				continue
			}
			report.Created[collection]++
			report.TotalCreated++
		}

		s.logger.Info("collection restored",
			zap.String("collection", string(collection)),
			zap.Int("created", report.Created[collection]),
			zap.Int("source", len(records)))
	}

	return report, nil
}

// Filename returns the conventional backup file name for an export taken at
// t: <app>_backup_<YYYYMMDD>.json. Collisions within a day overwrite; that
// is the caller's concern.
func Filename(t time.Time) string {
	return fmt.Sprintf("%s_backup_%s.json", models.BackupAppTag, t.Format("20060102"))
}

// WriteFile exports a backup and writes it to dir using the conventional
// file name. It returns the full path of the written file and the exported
// document.
func (s *Service) WriteFile(ctx context.Context, dir, user string) (string, *models.BackupDocument, error) {
	doc, err := s.Export(ctx, user)
	if err != nil {
		return "", nil, err
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("marshal backup document: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", nil, fmt.Errorf("create backup directory: %w", err)
	}

	path := filepath.Join(dir, Filename(doc.Meta.Date))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", nil, fmt.Errorf("write backup file: %w", err)
	}

	s.logger.Info("backup written", zap.String("path", path), zap.String("user", user))
	return path, doc, nil
}

func stripFields(record models.Record, fields []string) models.Record {
	cleaned := make(models.Record, len(record))
	for k, v := range record {
		cleaned[k] = v
	}
	for _, f := range fields {
		delete(cleaned, f)
	}
	return cleaned
}
