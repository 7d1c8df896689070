// Package partition groups a flat collection of transaction records into
// ordered pipeline stage lists for one business category.
package partition

import (
	"sort"

	"github.com/mc2tc/tallyNative-sub002/internal/models"
	"github.com/mc2tc/tallyNative-sub002/internal/stage"
)

// DefaultPreviewSize is the number of records shown per stage on the
// pipeline overview before "view all" is used.
const DefaultPreviewSize = 3

// StageGroup holds the records of one stage, most recent first. Preview
// views are always derived from Full, never computed independently.
type StageGroup struct {
	Full []models.TransactionRecord
}

// Preview returns the first n records of the group. n smaller than one
// falls back to DefaultPreviewSize.
func (g StageGroup) Preview(n int) []models.TransactionRecord {
	if n < 1 {
		n = DefaultPreviewSize
	}
	if n > len(g.Full) {
		n = len(g.Full)
	}
	return g.Full[:n]
}

// Len returns the number of records in the group.
func (g StageGroup) Len() int {
	return len(g.Full)
}

// StageMap maps each stage of a category to its ordered record group.
type StageMap map[stage.Stage]StageGroup

// Partitioner classifies and groups records.
type Partitioner struct {
	classifier *stage.Classifier
}

// NewPartitioner creates a Partitioner using the given classifier. A nil
// classifier gets a default one.
func NewPartitioner(classifier *stage.Classifier) *Partitioner {
	if classifier == nil {
		classifier = stage.NewClassifier(nil)
	}
	return &Partitioner{classifier: classifier}
}

// Partition classifies every record under the category's rule table and
// groups them by stage, each group sorted descending by effective
// timestamp. The sort is stable: records with equal timestamps keep their
// input order. Every stage of the category appears in the result, empty
// groups included, so callers can render fixed stage lists without nil
// checks.
func (p *Partitioner) Partition(records []models.TransactionRecord, category models.Category) (StageMap, error) {
	stages, err := stage.Stages(category)
	if err != nil {
		return nil, err
	}

	grouped := make(map[stage.Stage][]models.TransactionRecord, len(stages))
	for _, tx := range records {
		s, err := p.classifier.Classify(tx, category)
		if err != nil {
			return nil, err
		}
		grouped[s] = append(grouped[s], tx)
	}

	result := make(StageMap, len(stages))
	for _, s := range stages {
		group := grouped[s]
		sortByRecency(group)
		result[s] = StageGroup{Full: group}
	}
	return result, nil
}

// sortByRecency orders records most recent first, preserving input order
// for equal timestamps.
func sortByRecency(records []models.TransactionRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].EffectiveTimestamp().After(records[j].EffectiveTimestamp())
	})
}

// SortByRecency returns a copy of records ordered most recent first with
// input order preserved on ties. The input slice is not modified.
func SortByRecency(records []models.TransactionRecord) []models.TransactionRecord {
	sorted := append([]models.TransactionRecord{}, records...)
	sortByRecency(sorted)
	return sorted
}
