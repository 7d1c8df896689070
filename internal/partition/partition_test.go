package partition

import (
	"testing"
	"time"

	"github.com/mc2tc/tallyNative-sub002/internal/logging"
	"github.com/mc2tc/tallyNative-sub002/internal/models"
	"github.com/mc2tc/tallyNative-sub002/internal/pipelineerror"
	"github.com/mc2tc/tallyNative-sub002/internal/stage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordAt(id string, status models.VerificationStatus, updated time.Time) models.TransactionRecord {
	return models.TransactionRecord{
		ID:           id,
		Capture:      models.Capture{Source: models.SourcePurchaseInvoiceOCR},
		Verification: models.Verification{Status: status},
		Metadata:     models.Metadata{UpdatedAt: updated},
	}
}

func ids(records []models.TransactionRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestPartition_GroupsByStage(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []models.TransactionRecord{
		recordAt("unverified-1", models.VerificationUnverified, base),
		{
			ID:             "reconciled-1",
			Capture:        models.Capture{Source: models.SourcePurchaseInvoiceOCR},
			Verification:   models.Verification{Status: models.VerificationVerified},
			Reconciliation: models.Reconciliation{Status: models.ReconciliationReconciled},
			Metadata:       models.Metadata{UpdatedAt: base.Add(time.Hour)},
		},
		recordAt("unverified-2", models.VerificationUnverified, base.Add(2*time.Hour)),
	}

	p := NewPartitioner(stage.NewClassifier(logging.NewMockLogger()))
	groups, err := p.Partition(records, models.CategoryPurchase)
	require.NoError(t, err)

	assert.Equal(t, []string{"unverified-2", "unverified-1"}, ids(groups[stage.StageNeedsVerification].Full))
	assert.Equal(t, []string{"reconciled-1"}, ids(groups[stage.StageAuditReady].Full))

	// Every stage of the category is present, empty ones included.
	stages, err := stage.Stages(models.CategoryPurchase)
	require.NoError(t, err)
	for _, s := range stages {
		_, ok := groups[s]
		assert.True(t, ok, "stage %s missing from partition", s)
	}
	assert.Equal(t, 0, groups[stage.StageAccountsPayable].Len())
}

func TestPartition_SortIsStableOnTies(t *testing.T) {
	ts := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []models.TransactionRecord{
		recordAt("first", models.VerificationUnverified, ts),
		recordAt("second", models.VerificationUnverified, ts),
		recordAt("third", models.VerificationUnverified, ts),
	}

	p := NewPartitioner(nil)
	groups, err := p.Partition(records, models.CategoryPurchase)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "third"}, ids(groups[stage.StageNeedsVerification].Full))
}

func TestPartition_Deterministic(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []models.TransactionRecord{
		recordAt("a", models.VerificationUnverified, base.Add(3*time.Hour)),
		recordAt("b", models.VerificationUnverified, base),
		recordAt("c", models.VerificationUnverified, base.Add(time.Hour)),
	}

	p := NewPartitioner(nil)
	first, err := p.Partition(records, models.CategoryPurchase)
	require.NoError(t, err)
	second, err := p.Partition(records, models.CategoryPurchase)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPartition_InvalidCategory(t *testing.T) {
	p := NewPartitioner(nil)
	_, err := p.Partition(nil, models.Category("receipts"))
	require.Error(t, err)

	var invalidErr *pipelineerror.InvalidCategoryError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestStageGroup_Preview(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	var records []models.TransactionRecord
	for i, id := range []string{"e", "d", "c", "b", "a"} {
		records = append(records, recordAt(id, models.VerificationUnverified, base.Add(time.Duration(i)*time.Hour)))
	}

	p := NewPartitioner(nil)
	groups, err := p.Partition(records, models.CategoryPurchase)
	require.NoError(t, err)

	group := groups[stage.StageNeedsVerification]
	require.Equal(t, 5, group.Len())

	// Preview is a prefix of the full list.
	preview := group.Preview(3)
	assert.Equal(t, ids(group.Full[:3]), ids(preview))
	assert.Equal(t, []string{"a", "b", "c"}, ids(preview))

	// n larger than the group returns the whole group.
	assert.Len(t, group.Preview(10), 5)

	// Non-positive n falls back to the default preview size.
	assert.Len(t, group.Preview(0), DefaultPreviewSize)
}

func TestSortByRecency_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []models.TransactionRecord{
		recordAt("old", models.VerificationUnverified, base),
		recordAt("new", models.VerificationUnverified, base.Add(time.Hour)),
	}

	sorted := SortByRecency(records)
	assert.Equal(t, []string{"new", "old"}, ids(sorted))
	assert.Equal(t, []string{"old", "new"}, ids(records))
}

func TestSortByRecency_FallbackTimestamps(t *testing.T) {
	txDate := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	records := []models.TransactionRecord{
		{ID: "date-only", Summary: models.Summary{TransactionDate: txDate}},
		{ID: "created-only", Metadata: models.Metadata{CreatedAt: created}},
		{ID: "no-timestamps"},
	}

	sorted := SortByRecency(records)
	assert.Equal(t, []string{"created-only", "date-only", "no-timestamps"}, ids(sorted))
}
