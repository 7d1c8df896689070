// Package snapshot assembles the per-category pipeline views the
// presentation layer renders: every stage with its preview and full record
// lists, plus the cross-source "reporting ready" aggregate.
package snapshot

import (
	"github.com/mc2tc/tallyNative-sub002/internal/models"
	"github.com/mc2tc/tallyNative-sub002/internal/partition"
	"github.com/mc2tc/tallyNative-sub002/internal/stage"
)

// StageView is the render shape of one stage: a capped preview and the
// uncapped list behind "view all". Preview is always a prefix of Full.
type StageView struct {
	Preview []models.TransactionRecord `json:"preview"`
	Full    []models.TransactionRecord `json:"full"`
}

// Snapshot is the full pipeline view for one business category.
type Snapshot struct {
	Category models.Category           `json:"category"`
	Order    []stage.Stage             `json:"order"`
	Groups   map[stage.Stage]StageView `json:"groups"`
}

// View returns the stage's view, empty when the stage is not part of the
// category.
func (s Snapshot) View(st stage.Stage) StageView {
	return s.Groups[st]
}

// Builder builds pipeline snapshots. It holds no mutable state; building
// the same inputs twice yields identical snapshots, so callers can discard
// a stale result and rebuild from fresher collections at any time.
type Builder struct {
	partitioner *partition.Partitioner
	previewSize int
}

// NewBuilder creates a Builder. A nil partitioner gets a default one; a
// preview size smaller than one falls back to the default.
func NewBuilder(partitioner *partition.Partitioner, previewSize int) *Builder {
	if partitioner == nil {
		partitioner = partition.NewPartitioner(nil)
	}
	if previewSize < 1 {
		previewSize = partition.DefaultPreviewSize
	}
	return &Builder{partitioner: partitioner, previewSize: previewSize}
}

// Build merges one or more source collections (pending and source-of-truth
// fetches may both be passed), deduplicates by record ID with the first
// occurrence winning, and partitions the merged set into the category's
// stage views.
func (b *Builder) Build(category models.Category, collections ...[]models.TransactionRecord) (Snapshot, error) {
	merged := dedupeByID(collections...)

	groups, err := b.partitioner.Partition(merged, category)
	if err != nil {
		return Snapshot{}, err
	}

	order, err := stage.Stages(category)
	if err != nil {
		return Snapshot{}, err
	}

	views := make(map[stage.Stage]StageView, len(order))
	for _, st := range order {
		group := groups[st]
		views[st] = StageView{
			Preview: group.Preview(b.previewSize),
			Full:    group.Full,
		}
	}

	return Snapshot{Category: category, Order: order, Groups: views}, nil
}

// ReportingReady unions the audit-ready equivalent stages of every supplied
// category (purchase and bank/card AuditReady, sale PaidAndReconciled) into
// one flat list for the reports screen, deduplicated by ID and re-sorted by
// the same recency rule the stage groups use. Categories are visited in
// their fixed display order so the union is deterministic.
func (b *Builder) ReportingReady(byCategory map[models.Category][]models.TransactionRecord) ([]models.TransactionRecord, error) {
	var ready []models.TransactionRecord
	for _, category := range models.Categories {
		records, ok := byCategory[category]
		if !ok {
			continue
		}
		groups, err := b.partitioner.Partition(records, category)
		if err != nil {
			return nil, err
		}
		ready = append(ready, groups[stage.AuditReadyStage(category)].Full...)
	}

	return partition.SortByRecency(dedupeByID(ready)), nil
}

// dedupeByID flattens the collections keeping the first occurrence of each
// record ID. Conflicting content under a duplicate ID is resolved the same
// way, deterministically, rather than raising.
func dedupeByID(collections ...[]models.TransactionRecord) []models.TransactionRecord {
	seen := make(map[string]struct{})
	var merged []models.TransactionRecord
	for _, collection := range collections {
		for _, tx := range collection {
			if _, dup := seen[tx.ID]; dup {
				continue
			}
			seen[tx.ID] = struct{}{}
			merged = append(merged, tx)
		}
	}
	return merged
}
