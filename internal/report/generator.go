// Package report renders pipeline snapshots and reporting-ready aggregates
// for operators: JSON for tooling, CSV for spreadsheets. It serializes raw
// values only; currency formatting is a display concern of the client.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mc2tc/tallyNative-sub002/internal/dateutils"
	"github.com/mc2tc/tallyNative-sub002/internal/logging"
	"github.com/mc2tc/tallyNative-sub002/internal/models"
	"github.com/mc2tc/tallyNative-sub002/internal/pipelineerror"
	"github.com/mc2tc/tallyNative-sub002/internal/snapshot"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Global CSV delimiter - can be configured via centralized config or
// environment variable
var delimiter rune = ','

func init() {
	// Fallback to environment variable for backward compatibility
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	delimiter = delim
}

// Generator renders snapshots in the supported output formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a Generator. A nil logger falls back to the process
// default.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{logger: logger}
}

// snapshotRow is the flat CSV shape of one record within a stage.
type snapshotRow struct {
	Category        string          `csv:"Category"`
	Stage           string          `csv:"Stage"`
	RecordID        string          `csv:"RecordID"`
	ThirdPartyName  string          `csv:"ThirdPartyName"`
	TotalAmount     decimal.Decimal `csv:"TotalAmount"`
	Currency        string          `csv:"Currency"`
	TransactionDate string          `csv:"TransactionDate"`
}

// GenerateSnapshot renders a snapshot in the specified format (json or
// csv). Stages appear in the category's fixed order; CSV rows list the
// full, uncapped stage contents.
func (g *Generator) GenerateSnapshot(snap snapshot.Snapshot, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(snap)
	case "csv":
		return g.generateCSV(snap)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// GenerateReportingReady renders the flat cross-category reporting-ready
// list in the specified format.
func (g *Generator) GenerateReportingReady(records []models.TransactionRecord, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return data, nil
	case "csv":
		rows := make([]snapshotRow, 0, len(records))
		for _, tx := range records {
			rows = append(rows, recordToRow("", "ReportingReady", tx))
		}
		return marshalCSV(rows)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteFile renders to path, creating parent directories as needed.
func (g *Generator) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return &pipelineerror.WriteError{Path: path, Format: filepath.Ext(path), Err: err}
	}
	if err := os.WriteFile(path, data, models.PermissionReportFile); err != nil {
		return &pipelineerror.WriteError{Path: path, Format: filepath.Ext(path), Err: err}
	}

	g.logger.Info("wrote report",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
	)
	return nil
}

func (g *Generator) generateJSON(snap snapshot.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) generateCSV(snap snapshot.Snapshot) ([]byte, error) {
	var rows []snapshotRow
	for _, st := range snap.Order {
		for _, tx := range snap.View(st).Full {
			rows = append(rows, recordToRow(string(snap.Category), string(st), tx))
		}
	}
	return marshalCSV(rows)
}

func recordToRow(category, stage string, tx models.TransactionRecord) snapshotRow {
	row := snapshotRow{
		Category:       category,
		Stage:          stage,
		RecordID:       tx.ID,
		ThirdPartyName: tx.Summary.ThirdPartyName,
		TotalAmount:    tx.Summary.TotalAmount,
		Currency:       tx.Summary.Currency,
	}
	row.TransactionDate = dateutils.ToISODate(tx.Summary.TransactionDate)
	return row
}

func marshalCSV(rows []snapshotRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(w)); err != nil {
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return buf.Bytes(), nil
}

// StageCounts summarizes a snapshot as stage name to record count, in
// stage order, for log lines and terminal summaries.
func StageCounts(snap snapshot.Snapshot) string {
	var buf bytes.Buffer
	for i, st := range snap.Order {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s=%d", st, len(snap.View(st).Full))
	}
	return buf.String()
}
