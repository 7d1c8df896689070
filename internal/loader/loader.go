// Package loader reads already-materialized transaction record collections
// from disk so the CLI can feed them to the classification core. It is
// input plumbing only: no statement parsing, no OCR, no network.
package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/mc2tc/tallyNative-sub002/internal/logging"
	"github.com/mc2tc/tallyNative-sub002/internal/models"
	"github.com/mc2tc/tallyNative-sub002/internal/pipelineerror"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Loader reads transaction record collections from JSON, YAML or CSV files.
type Loader struct {
	logger logging.Logger
}

// NewLoader creates a Loader. A nil logger falls back to the process
// default.
func NewLoader(logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Loader{logger: logger}
}

// LoadFile reads a record collection, choosing the format from the file
// extension (.json, .yaml/.yml, .csv). Records without an ID are assigned
// one so downstream deduplication stays well-defined.
func (l *Loader) LoadFile(path string) ([]models.TransactionRecord, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		records []models.TransactionRecord
		err     error
	)
	switch ext {
	case ".json":
		records, err = l.loadJSON(path)
	case ".yaml", ".yml":
		records, err = l.loadYAML(path)
	case ".csv":
		records, err = l.loadCSV(path)
	default:
		return nil, &pipelineerror.LoadError{
			Path:   path,
			Format: strings.TrimPrefix(ext, "."),
			Err:    os.ErrInvalid,
		}
	}
	if err != nil {
		return nil, err
	}

	assigned := 0
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
			assigned++
		}
	}
	if assigned > 0 {
		l.logger.Debug("assigned IDs to records without one",
			logging.Field{Key: logging.FieldCount, Value: assigned},
			logging.Field{Key: logging.FieldInputFile, Value: path},
		)
	}

	l.logger.Info("loaded transaction records",
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: logging.FieldInputFile, Value: path},
	)
	return records, nil
}

func (l *Loader) loadJSON(path string) ([]models.TransactionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &pipelineerror.LoadError{Path: path, Format: "json", Err: err}
	}

	var records []models.TransactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &pipelineerror.LoadError{Path: path, Format: "json", Err: err}
	}
	return records, nil
}

func (l *Loader) loadYAML(path string) ([]models.TransactionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &pipelineerror.LoadError{Path: path, Format: "yaml", Err: err}
	}

	var records []models.TransactionRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, &pipelineerror.LoadError{Path: path, Format: "yaml", Err: err}
	}
	return records, nil
}

func (l *Loader) loadCSV(path string) ([]models.TransactionRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &pipelineerror.LoadError{Path: path, Format: "csv", Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			l.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []recordRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, &pipelineerror.LoadError{Path: path, Format: "csv", Err: err}
	}

	records := make([]models.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		record, err := row.toRecord()
		if err != nil {
			return nil, &pipelineerror.LoadError{Path: path, Format: "csv", Err: err}
		}
		records = append(records, record)
	}
	return records, nil
}
