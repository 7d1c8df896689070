package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mc2tc/tallyNative-sub002/internal/logging"
	"github.com/mc2tc/tallyNative-sub002/internal/models"
	"github.com/mc2tc/tallyNative-sub002/internal/snapshot"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestSnapshot(t *testing.T) snapshot.Snapshot {
	t.Helper()

	records := []models.TransactionRecord{
		{
			ID: "tx-1",
			Summary: models.Summary{
				ThirdPartyName:  "Acme Supplies",
				TotalAmount:     decimal.RequireFromString("125.50"),
				Currency:        "GBP",
				TransactionDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			},
			Capture:      models.Capture{Source: models.SourcePurchaseInvoiceOCR},
			Verification: models.Verification{Status: models.VerificationUnverified},
		},
		{
			ID: "tx-2",
			Summary: models.Summary{
				ThirdPartyName: "Beta Traders",
				TotalAmount:    decimal.RequireFromString("42.00"),
				Currency:       "GBP",
			},
			Capture:        models.Capture{Source: models.SourcePurchaseInvoiceOCR},
			Verification:   models.Verification{Status: models.VerificationVerified},
			Reconciliation: models.Reconciliation{Status: models.ReconciliationReconciled},
		},
	}

	builder := snapshot.NewBuilder(nil, 3)
	snap, err := builder.Build(models.CategoryPurchase, records)
	require.NoError(t, err)
	return snap
}

func TestGenerateSnapshot_JSON(t *testing.T) {
	generator := NewGenerator(logging.NewMockLogger())
	snap := buildTestSnapshot(t)

	data, err := generator.GenerateSnapshot(snap, "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "purchase", decoded["category"])
	assert.Contains(t, decoded, "groups")
}

func TestGenerateSnapshot_CSV(t *testing.T) {
	generator := NewGenerator(logging.NewMockLogger())
	snap := buildTestSnapshot(t)

	data, err := generator.GenerateSnapshot(snap, "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3) // header + two records
	assert.Contains(t, lines[0], "Category")
	assert.Contains(t, lines[0], "Stage")
	assert.Contains(t, lines[1], "NeedsVerification")
	assert.Contains(t, lines[1], "tx-1")
	assert.Contains(t, lines[2], "AuditReady")
	assert.Contains(t, lines[2], "tx-2")
}

func TestGenerateSnapshot_CSVDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')

	generator := NewGenerator(logging.NewMockLogger())
	data, err := generator.GenerateSnapshot(buildTestSnapshot(t), "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Contains(t, lines[0], "Category;Stage")
}

func TestGenerateSnapshot_UnsupportedFormat(t *testing.T) {
	generator := NewGenerator(logging.NewMockLogger())
	_, err := generator.GenerateSnapshot(buildTestSnapshot(t), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestGenerateReportingReady(t *testing.T) {
	generator := NewGenerator(logging.NewMockLogger())
	records := []models.TransactionRecord{
		{ID: "r-1", Summary: models.Summary{ThirdPartyName: "Acme", Currency: "GBP"}},
	}

	jsonData, err := generator.GenerateReportingReady(records, "json")
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), `"r-1"`)

	csvData, err := generator.GenerateReportingReady(records, "csv")
	require.NoError(t, err)
	assert.Contains(t, string(csvData), "ReportingReady")
	assert.Contains(t, string(csvData), "r-1")
}

func TestWriteFile_CreatesDirectories(t *testing.T) {
	generator := NewGenerator(logging.NewMockLogger())
	path := filepath.Join(t.TempDir(), "nested", "out", "report.json")

	require.NoError(t, generator.WriteFile(path, []byte(`{}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestStageCounts(t *testing.T) {
	counts := StageCounts(buildTestSnapshot(t))
	assert.Contains(t, counts, "NeedsVerification=1")
	assert.Contains(t, counts, "AuditReady=1")
	assert.Contains(t, counts, "Unclassified=0")
}
