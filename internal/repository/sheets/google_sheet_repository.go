package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/tcn-coffee/fieldbook/internal/config"
	"github.com/tcn-coffee/fieldbook/internal/domain/models"
)

const backupLogRange = "BackupLog!A:I"

// BackupLog appends one summary row per backup run to the program
// spreadsheet, so coordinators can see nightly export health without shell
// access to the server.
type BackupLog interface {
	AppendBackupSummary(ctx context.Context, doc *models.BackupDocument, path string) error
}

// GoogleSheetRepository implements BackupLog using the official Google
// Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed backup log.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (BackupLog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendBackupSummary writes one row: date, file path, then the record
// count of each managed collection in the fixed order.
func (r *GoogleSheetRepository) AppendBackupSummary(ctx context.Context, doc *models.BackupDocument, path string) error {
	values := []interface{}{
		doc.Meta.Date.Format("2006-01-02"),
		path,
	}
	for _, collection := range models.Collections {
		values = append(values, len(doc.Collections[collection]))
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, backupLogRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append backup summary row: %w", err)
	}

	r.logger.Debug("backup summary appended", zap.String("path", path))
	return nil
}
