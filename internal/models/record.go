// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the display-facing fields of a transaction.
type Summary struct {
	ThirdPartyName  string          `json:"thirdPartyName" yaml:"third_party_name"`
	TotalAmount     decimal.Decimal `json:"totalAmount" yaml:"total_amount"`
	Currency        string          `json:"currency" yaml:"currency"` // ISO 4217 code
	TransactionDate time.Time       `json:"transactionDate" yaml:"transaction_date"`
	Description     string          `json:"description,omitempty" yaml:"description,omitempty"`
}

// Capture records how the transaction entered the system.
type Capture struct {
	Source    CaptureSource    `json:"source" yaml:"source"`
	Mechanism CaptureMechanism `json:"mechanism,omitempty" yaml:"mechanism,omitempty"`
}

// Classification is the backend's coarse kind assignment.
type Classification struct {
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// Verification carries the field-confirmation state.
type Verification struct {
	Status VerificationStatus `json:"status" yaml:"status"`
}

// Reconciliation carries the statement-matching state.
type Reconciliation struct {
	Status ReconciliationStatus `json:"status,omitempty" yaml:"status,omitempty"`
	Type   ReconciliationType   `json:"type,omitempty" yaml:"type,omitempty"`
}

// LedgerEntry is one debit or credit leg of the posted accounting entries.
type LedgerEntry struct {
	ChartName   string `json:"chartName" yaml:"chart_name"`
	IsAsset     bool   `json:"isAsset,omitempty" yaml:"is_asset,omitempty"`
	IsLiability bool   `json:"isLiability,omitempty" yaml:"is_liability,omitempty"`
	IsIncome    bool   `json:"isIncome,omitempty" yaml:"is_income,omitempty"`
}

// PaymentMethod is one entry of a payment-method breakdown. Backend payloads
// carry the method under either "type" or "paymentType" depending on the
// capture path; Method resolves whichever is present.
type PaymentMethod struct {
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	PaymentType string `json:"paymentType,omitempty" yaml:"payment_type,omitempty"`
}

// Method returns the effective payment-method type of the entry.
func (p PaymentMethod) Method() string {
	if p.Type != "" {
		return p.Type
	}
	return p.PaymentType
}

// Accounting holds the posted debit/credit legs. Non-empty Debits or
// Credits means an automated rule has matched and posted entries.
type Accounting struct {
	Debits           []LedgerEntry   `json:"debits,omitempty" yaml:"debits,omitempty"`
	Credits          []LedgerEntry   `json:"credits,omitempty" yaml:"credits,omitempty"`
	PaymentBreakdown []PaymentMethod `json:"paymentBreakdown,omitempty" yaml:"payment_breakdown,omitempty"`
}

// Details is the legacy/alternate location for payment-method data on
// manually captured records.
type Details struct {
	PaymentType      []PaymentMethod `json:"paymentType,omitempty" yaml:"payment_type,omitempty"`
	PaymentBreakdown []PaymentMethod `json:"paymentBreakdown,omitempty" yaml:"payment_breakdown,omitempty"`
	ItemList         []LineItem      `json:"itemList,omitempty" yaml:"item_list,omitempty"`
}

// LineItem is a single line of an itemized capture.
type LineItem struct {
	Name     string          `json:"name" yaml:"name"`
	Quantity int             `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
}

// StatementContext carries statement-line metadata for bank/card entries.
type StatementContext struct {
	IsCredit bool `json:"isCredit,omitempty" yaml:"is_credit,omitempty"`
}

// Metadata carries server-side bookkeeping timestamps.
type Metadata struct {
	CreatedAt time.Time `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
}

// TransactionRecord is the unit of classification. Records are created
// server-side and arrive read-only; classification never mutates them.
type TransactionRecord struct {
	ID               string            `json:"id" yaml:"id"`
	Summary          Summary           `json:"summary" yaml:"summary"`
	Capture          Capture           `json:"capture" yaml:"capture"`
	Classification   Classification    `json:"classification,omitempty" yaml:"classification,omitempty"`
	Verification     Verification      `json:"verification" yaml:"verification"`
	Reconciliation   Reconciliation    `json:"reconciliation,omitempty" yaml:"reconciliation,omitempty"`
	Accounting       Accounting        `json:"accounting,omitempty" yaml:"accounting,omitempty"`
	Details          Details           `json:"details,omitempty" yaml:"details,omitempty"`
	StatementContext *StatementContext `json:"statementContext,omitempty" yaml:"statement_context,omitempty"`
	Metadata         Metadata          `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// EffectiveTimestamp returns the recency used for ordering within a stage:
// metadata.updatedAt, else metadata.createdAt, else the transaction date,
// else the zero time.
func (t TransactionRecord) EffectiveTimestamp() time.Time {
	if !t.Metadata.UpdatedAt.IsZero() {
		return t.Metadata.UpdatedAt
	}
	if !t.Metadata.CreatedAt.IsZero() {
		return t.Metadata.CreatedAt
	}
	return t.Summary.TransactionDate
}

// IsStatementCredit reports whether the statement line was a credit to the
// account. False when no statement context is present.
func (t TransactionRecord) IsStatementCredit() bool {
	return t.StatementContext != nil && t.StatementContext.IsCredit
}
