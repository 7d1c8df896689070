package stage

import (
	"github.com/mc2tc/tallyNative-sub002/internal/logging"
	"github.com/mc2tc/tallyNative-sub002/internal/models"
	"github.com/mc2tc/tallyNative-sub002/internal/pipelineerror"
)

// Classifier assigns records to pipeline stages. It holds no mutable state
// beyond its logger; classification is deterministic and side-effect-free,
// so a Classifier can be shared and re-invoked freely.
type Classifier struct {
	logger logging.Logger
}

// NewClassifier creates a Classifier. A nil logger falls back to the
// process default.
func NewClassifier(logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Classifier{logger: logger}
}

// Classify assigns tx to exactly one stage of the category's table,
// first-match-wins. A record matching no rule is routed to
// StageUnclassified and logged, never dropped silently. An invalid
// category is a programmer error and fails fast.
func (c *Classifier) Classify(tx models.TransactionRecord, category models.Category) (Stage, error) {
	rules, ok := rulesByCategory[category]
	if !ok {
		return "", &pipelineerror.InvalidCategoryError{Category: string(category)}
	}

	for _, rule := range rules {
		if rule.Match(tx) {
			return rule.Stage, nil
		}
	}

	c.logger.Warn("record matched no pipeline stage",
		logging.Field{Key: logging.FieldRecordID, Value: tx.ID},
		logging.Field{Key: logging.FieldCategory, Value: string(category)},
	)
	return StageUnclassified, nil
}

// Stages returns the category's fixed stage ordering as rendered by the
// presentation layer, with the Unclassified sentinel last.
func Stages(category models.Category) ([]Stage, error) {
	rules, ok := rulesByCategory[category]
	if !ok {
		return nil, &pipelineerror.InvalidCategoryError{Category: string(category)}
	}

	stages := make([]Stage, 0, len(rules)+1)
	for _, rule := range rules {
		stages = append(stages, rule.Stage)
	}
	return append(stages, StageUnclassified), nil
}
