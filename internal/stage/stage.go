// Package stage implements the pipeline stage classifier. Each business
// category carries an ordered rule table; a record is assigned the first
// stage whose predicate matches, which makes priority between overlapping
// conditions explicit and testable.
package stage

import (
	"github.com/mc2tc/tallyNative-sub002/internal/models"
	"github.com/mc2tc/tallyNative-sub002/internal/predicate"
)

// Stage names a step of the verification/reconciliation pipeline.
type Stage string

// Pipeline stages across all categories.
const (
	// Purchase stages
	StageNeedsVerification Stage = "NeedsVerification"
	StageAccountsPayable   Stage = "AccountsPayable"
	StageReconcileToBank   Stage = "ReconcileToBank"
	StageReconcileToCard   Stage = "ReconcileToCard"
	StageAuditReady        Stage = "AuditReady"

	// Bank/card statement-entry stages (NeedsVerification and AuditReady
	// are shared with purchases)
	StageNeedsReconciliation     Stage = "NeedsReconciliation"
	StageConfirmedUnreconcilable Stage = "ConfirmedUnreconcilable"

	// Sale stages
	StagePendingPayment    Stage = "PendingPayment"
	StagePaidNeedsMatch    Stage = "PaidNeedsMatch"
	StagePaidAndReconciled Stage = "PaidAndReconciled"

	// StageUnclassified is the sentinel for records matching no rule of
	// their category. It signals a data-quality problem and is excluded
	// from counted stages.
	StageUnclassified Stage = "Unclassified"
)

// Rule pairs a stage with the predicate that routes records into it.
type Rule struct {
	Stage Stage
	Match func(models.TransactionRecord) bool
}

// purchaseRules is the ordered classification table for purchase records.
var purchaseRules = []Rule{
	{
		Stage: StageNeedsVerification,
		Match: func(tx models.TransactionRecord) bool {
			return !predicate.IsVerified(tx)
		},
	},
	{
		Stage: StageAccountsPayable,
		Match: func(tx models.TransactionRecord) bool {
			return predicate.IsVerified(tx) &&
				predicate.HasAccountsPayablePayment(tx) &&
				!predicate.IsReconciledOrNotRequired(tx) &&
				!predicate.IsCashOnly(tx)
		},
	},
	{
		Stage: StageReconcileToBank,
		Match: func(tx models.TransactionRecord) bool {
			return predicate.IsVerified(tx) &&
				tx.Reconciliation.Status == models.ReconciliationPendingBankMatch &&
				tx.Reconciliation.Type == models.ReconcileBankTransfer
		},
	},
	{
		Stage: StageReconcileToCard,
		Match: func(tx models.TransactionRecord) bool {
			return predicate.IsVerified(tx) &&
				tx.Reconciliation.Status == models.ReconciliationPendingBankMatch &&
				tx.Reconciliation.Type == models.ReconcileCard
		},
	},
	{
		Stage: StageAuditReady,
		Match: func(tx models.TransactionRecord) bool {
			return predicate.IsVerified(tx) &&
				(tx.Reconciliation.Status == models.ReconciliationReconciled ||
					tx.Reconciliation.Status == models.ReconciliationNotRequired)
		},
	},
}

// statementRules is the ordered classification table shared by bank and
// credit-card statement entries. An unreconciled status is terminal: the
// NeedsReconciliation rule excludes it so a confirmed-unreconcilable record
// can never route back into the reconciliation queue.
var statementRules = []Rule{
	{
		Stage: StageNeedsVerification,
		Match: func(tx models.TransactionRecord) bool {
			return predicate.HasAccountingEntries(tx) &&
				!predicate.IsVerified(tx) &&
				!predicate.IsReconciledFamily(tx)
		},
	},
	{
		Stage: StageNeedsReconciliation,
		Match: func(tx models.TransactionRecord) bool {
			return !predicate.HasAccountingEntries(tx) &&
				!predicate.IsReconciledFamily(tx) &&
				tx.Reconciliation.Status != models.ReconciliationUnreconciled
		},
	},
	{
		Stage: StageConfirmedUnreconcilable,
		Match: func(tx models.TransactionRecord) bool {
			return predicate.IsVerified(tx) &&
				tx.Reconciliation.Status == models.ReconciliationUnreconciled
		},
	},
	{
		Stage: StageAuditReady,
		Match: func(tx models.TransactionRecord) bool {
			return tx.Reconciliation.Status != models.ReconciliationUnreconciled &&
				(predicate.IsReconciledFamily(tx) ||
					(predicate.IsVerified(tx) && predicate.HasAccountingEntries(tx)))
		},
	},
}

// saleRules is the ordered classification table for sales. Cash-only sales
// need no bank match, so a verified cash sale resolves straight to
// PaidAndReconciled; a recorded accounts-receivable payment routes to
// PaidNeedsMatch ahead of the generic pending bucket.
var saleRules = []Rule{
	{
		Stage: StagePendingPayment,
		Match: func(tx models.TransactionRecord) bool {
			if !predicate.IsVerified(tx) {
				return true
			}
			return !predicate.IsReconciledFamily(tx) &&
				!predicate.IsCashOnly(tx) &&
				!predicate.HasAccountsReceivableCredit(tx)
		},
	},
	{
		Stage: StagePaidNeedsMatch,
		Match: func(tx models.TransactionRecord) bool {
			return predicate.IsVerified(tx) &&
				!predicate.IsCashOnly(tx) &&
				!predicate.IsReconciledFamily(tx) &&
				predicate.HasAccountsReceivableCredit(tx)
		},
	},
	{
		Stage: StagePaidAndReconciled,
		Match: func(tx models.TransactionRecord) bool {
			return predicate.IsReconciledFamily(tx) ||
				(predicate.IsVerified(tx) && predicate.IsCashOnly(tx))
		},
	},
}

// rulesByCategory maps each business category to its classification table.
// Bank and card entries share one table.
var rulesByCategory = map[models.Category][]Rule{
	models.CategoryPurchase: purchaseRules,
	models.CategoryBank:     statementRules,
	models.CategoryCard:     statementRules,
	models.CategorySale:     saleRules,
}

// AuditReadyStage returns the stage of a category that feeds the
// cross-source "reporting ready" aggregate.
func AuditReadyStage(category models.Category) Stage {
	if category == models.CategorySale {
		return StagePaidAndReconciled
	}
	return StageAuditReady
}
