// Package predicate provides the stateless boolean checks the stage
// classifier is built from. Every predicate is total over a well-formed
// record: absent or partially populated fields never panic, they default
// the predicate to false unless documented otherwise.
package predicate

import (
	"strings"

	"github.com/mc2tc/tallyNative-sub002/internal/models"
)

// IsReceipt reports whether the record was captured as a purchase receipt
// or invoice (OCR or manual entry).
func IsReceipt(tx models.TransactionRecord) bool {
	switch tx.Capture.Source {
	case models.SourcePurchaseInvoiceOCR, models.SourceManualEntry:
		return true
	}
	switch tx.Capture.Mechanism {
	case models.MechanismOCR, models.MechanismManual:
		return true
	}
	return strings.Contains(string(tx.Capture.Source), "purchase")
}

// IsBankStatementEntry reports whether the record is a bank statement line.
func IsBankStatementEntry(tx models.TransactionRecord) bool {
	switch tx.Capture.Source {
	case models.SourceBankStatementOCR, models.SourceBankStatementUpload:
		return true
	}
	return false
}

// IsCreditCardStatementEntry reports whether the record is a credit-card
// statement line.
func IsCreditCardStatementEntry(tx models.TransactionRecord) bool {
	switch tx.Capture.Source {
	case models.SourceCardStatementOCR, models.SourceCardStatementUpload:
		return true
	}
	return false
}

// IsSale reports whether the record is a sales transaction: classified as a
// sale, carrying an income credit leg, or captured from a sales-invoice
// source. The capture mechanism alone never makes a record a sale.
func IsSale(tx models.TransactionRecord) bool {
	if tx.Classification.Kind == models.KindSale {
		return true
	}
	for _, credit := range tx.Accounting.Credits {
		if credit.IsIncome {
			return true
		}
	}
	source := string(tx.Capture.Source)
	return strings.Contains(source, "sale") || strings.Contains(source, "sales_invoice")
}

// HasAccountingEntries reports whether an automated rule has already posted
// debit/credit legs for the record.
func HasAccountingEntries(tx models.TransactionRecord) bool {
	return len(tx.Accounting.Debits) > 0 || len(tx.Accounting.Credits) > 0
}

// paymentMethods resolves the effective payment-method list, checking the
// posted accounting breakdown first and falling back to the legacy detail
// locations used by manual entries.
func paymentMethods(tx models.TransactionRecord) []models.PaymentMethod {
	if len(tx.Accounting.PaymentBreakdown) > 0 {
		return tx.Accounting.PaymentBreakdown
	}
	if len(tx.Details.PaymentType) > 0 {
		return tx.Details.PaymentType
	}
	return tx.Details.PaymentBreakdown
}

// IsCashOnly reports whether every resolved payment method is cash. An
// empty payment-method list is NOT cash-only.
func IsCashOnly(tx models.TransactionRecord) bool {
	methods := paymentMethods(tx)
	if len(methods) == 0 {
		return false
	}
	for _, m := range methods {
		if normalizeMethod(m.Method()) != models.PaymentMethodCash {
			return false
		}
	}
	return true
}

// HasAccountsPayablePayment reports whether any resolved payment method is
// an accounts-payable leg.
func HasAccountsPayablePayment(tx models.TransactionRecord) bool {
	for _, m := range paymentMethods(tx) {
		if normalizeMethod(m.Method()) == "accounts payable" {
			return true
		}
	}
	return false
}

// HasAccountsReceivableCredit reports whether the posted credits include an
// accounts-receivable leg, meaning a payment against a sale has been
// recorded but not yet matched to a statement line.
func HasAccountsReceivableCredit(tx models.TransactionRecord) bool {
	for _, credit := range tx.Accounting.Credits {
		if normalizeChartName(credit.ChartName) == "accounts receivable" {
			return true
		}
	}
	return false
}

// IsCreditToAccount reports whether the record represents money coming into
// the business: a statement credit line, a sale, or an income credit leg.
func IsCreditToAccount(tx models.TransactionRecord) bool {
	if IsBankStatementEntry(tx) {
		if tx.IsStatementCredit() {
			return true
		}
		for _, debit := range tx.Accounting.Debits {
			if debit.ChartName == models.ChartNameBank && debit.IsAsset {
				return true
			}
		}
	}
	if IsCreditCardStatementEntry(tx) {
		if tx.IsStatementCredit() {
			return true
		}
		for _, debit := range tx.Accounting.Debits {
			if debit.ChartName == models.ChartNameCard && debit.IsLiability {
				return true
			}
		}
	}
	if tx.Classification.Kind == models.KindSale {
		return true
	}
	for _, credit := range tx.Accounting.Credits {
		if credit.IsIncome {
			return true
		}
	}
	return false
}

// IsVerified reports whether verification has completed, including the
// exception outcome.
func IsVerified(tx models.TransactionRecord) bool {
	switch tx.Verification.Status {
	case models.VerificationVerified, models.VerificationException:
		return true
	}
	return false
}

// IsReconciledOrNotRequired reports whether reconciliation has completed or
// was exempted.
func IsReconciledOrNotRequired(tx models.TransactionRecord) bool {
	switch tx.Reconciliation.Status {
	case models.ReconciliationMatched, models.ReconciliationReconciled,
		models.ReconciliationException, models.ReconciliationNotRequired:
		return true
	}
	return false
}

// IsReconciledFamily reports whether the record reached one of the matched
// reconciliation outcomes. Unlike IsReconciledOrNotRequired it excludes
// not_required, which only applies to purchases.
func IsReconciledFamily(tx models.TransactionRecord) bool {
	switch tx.Reconciliation.Status {
	case models.ReconciliationMatched, models.ReconciliationReconciled,
		models.ReconciliationException:
		return true
	}
	return false
}

// Category derives the business category of a record from its capture
// source and classification kind. Statement entries take precedence, then
// sales, then receipts. The boolean is false when no category applies.
func Category(tx models.TransactionRecord) (models.Category, bool) {
	switch {
	case IsBankStatementEntry(tx):
		return models.CategoryBank, true
	case IsCreditCardStatementEntry(tx):
		return models.CategoryCard, true
	case IsSale(tx):
		return models.CategorySale, true
	case IsReceipt(tx):
		return models.CategoryPurchase, true
	}
	return "", false
}

// normalizeMethod lowercases a payment-method type and collapses
// underscore/space variants so "Accounts_Payable" and "accounts payable"
// compare equal.
func normalizeMethod(method string) string {
	method = strings.ToLower(strings.TrimSpace(method))
	method = strings.ReplaceAll(method, "_", " ")
	return strings.Join(strings.Fields(method), " ")
}

func normalizeChartName(name string) string {
	return normalizeMethod(name)
}
