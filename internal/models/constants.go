package models

// CaptureSource identifies how a transaction entered the system.
type CaptureSource string

// Capture sources
const (
	SourcePurchaseInvoiceOCR  CaptureSource = "purchase_invoice_ocr"
	SourceManualEntry         CaptureSource = "manual_entry"
	SourceBankStatementOCR    CaptureSource = "bank_statement_ocr"
	SourceBankStatementUpload CaptureSource = "bank_statement_upload"
	SourceCardStatementOCR    CaptureSource = "credit_card_statement_ocr"
	SourceCardStatementUpload CaptureSource = "credit_card_statement_upload"
)

// CaptureMechanism identifies the capture method independent of the source.
type CaptureMechanism string

// Capture mechanisms
const (
	MechanismOCR    CaptureMechanism = "ocr"
	MechanismManual CaptureMechanism = "manual"
)

// Kind is the backend's coarse classification of a transaction.
type Kind string

// Transaction kinds
const (
	KindPurchase       Kind = "purchase"
	KindSale           Kind = "sale"
	KindStatementEntry Kind = "statement_entry"
)

// VerificationStatus tracks whether captured fields have been confirmed.
// The status is monotonic server-side: once verified or exception it never
// reverts to unverified.
type VerificationStatus string

// Verification statuses
const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationVerified   VerificationStatus = "verified"
	VerificationException  VerificationStatus = "exception"
)

// ReconciliationStatus tracks matching against bank/card statement lines.
type ReconciliationStatus string

// Reconciliation statuses. ReconciliationUnreconciled is terminal for
// display purposes: it routes to a dedicated stage, never back to a
// "needs reconciliation" stage.
const (
	ReconciliationNotRequired      ReconciliationStatus = "not_required"
	ReconciliationPendingBankMatch ReconciliationStatus = "pending_bank_match"
	ReconciliationMatched          ReconciliationStatus = "matched"
	ReconciliationReconciled       ReconciliationStatus = "reconciled"
	ReconciliationException        ReconciliationStatus = "exception"
	ReconciliationUnreconciled     ReconciliationStatus = "unreconciled"
)

// ReconciliationType distinguishes which account a pending match targets.
type ReconciliationType string

// Reconciliation types
const (
	ReconcileBankTransfer ReconciliationType = "bank_transfer"
	ReconcileCard         ReconciliationType = "card"
)

// Category is the business category a record is classified under. The set
// is closed; any other value is a programmer error.
type Category string

// Business categories
const (
	CategoryPurchase Category = "purchase"
	CategoryBank     Category = "bank"
	CategoryCard     Category = "card"
	CategorySale     Category = "sale"
)

// Categories lists all valid business categories in display order.
var Categories = []Category{CategoryPurchase, CategoryBank, CategoryCard, CategorySale}

// Valid reports whether c is one of the closed set of business categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPurchase, CategoryBank, CategoryCard, CategorySale:
		return true
	}
	return false
}

// Chart names checked by classification predicates.
const (
	ChartNameBank = "Bank"
	ChartNameCard = "Card"
)

// PaymentMethodCash is the payment method type that exempts a record from
// bank reconciliation.
const PaymentMethodCash = "cash"

// File permissions
const (
	PermissionReportFile = 0644
)
