package loader

import (
	"fmt"
	"strings"

	"github.com/mc2tc/tallyNative-sub002/internal/dateutils"
	"github.com/mc2tc/tallyNative-sub002/internal/models"

	"github.com/shopspring/decimal"
)

// recordRow is the flat CSV shape of a transaction record. Nested
// collections are encoded as pipe-separated lists; ledger legs carry an
// optional :asset/:liability/:income suffix on the chart name.
type recordRow struct {
	ID                   string          `csv:"ID"`
	ThirdPartyName       string          `csv:"ThirdPartyName"`
	TotalAmount          decimal.Decimal `csv:"TotalAmount"`
	Currency             string          `csv:"Currency"`
	TransactionDate      string          `csv:"TransactionDate"`
	Description          string          `csv:"Description"`
	CaptureSource        string          `csv:"CaptureSource"`
	CaptureMechanism     string          `csv:"CaptureMechanism"`
	Kind                 string          `csv:"Kind"`
	VerificationStatus   string          `csv:"VerificationStatus"`
	ReconciliationStatus string          `csv:"ReconciliationStatus"`
	ReconciliationType   string          `csv:"ReconciliationType"`
	Debits               string          `csv:"Debits"`
	Credits              string          `csv:"Credits"`
	PaymentMethods       string          `csv:"PaymentMethods"`
	IsStatementCredit    bool            `csv:"IsStatementCredit"`
	CreatedAt            string          `csv:"CreatedAt"`
	UpdatedAt            string          `csv:"UpdatedAt"`
}

func (r recordRow) toRecord() (models.TransactionRecord, error) {
	txDate, err := dateutils.ParseTimestamp(r.TransactionDate)
	if err != nil {
		return models.TransactionRecord{}, fmt.Errorf("invalid TransactionDate: %w", err)
	}
	createdAt, err := dateutils.ParseTimestamp(r.CreatedAt)
	if err != nil {
		return models.TransactionRecord{}, fmt.Errorf("invalid CreatedAt: %w", err)
	}
	updatedAt, err := dateutils.ParseTimestamp(r.UpdatedAt)
	if err != nil {
		return models.TransactionRecord{}, fmt.Errorf("invalid UpdatedAt: %w", err)
	}

	record := models.TransactionRecord{
		ID: r.ID,
		Summary: models.Summary{
			ThirdPartyName:  r.ThirdPartyName,
			TotalAmount:     r.TotalAmount,
			Currency:        r.Currency,
			TransactionDate: txDate,
			Description:     r.Description,
		},
		Capture: models.Capture{
			Source:    models.CaptureSource(r.CaptureSource),
			Mechanism: models.CaptureMechanism(r.CaptureMechanism),
		},
		Classification: models.Classification{Kind: models.Kind(r.Kind)},
		Verification:   models.Verification{Status: models.VerificationStatus(r.VerificationStatus)},
		Reconciliation: models.Reconciliation{
			Status: models.ReconciliationStatus(r.ReconciliationStatus),
			Type:   models.ReconciliationType(r.ReconciliationType),
		},
		Accounting: models.Accounting{
			Debits:  parseLedgerEntries(r.Debits),
			Credits: parseLedgerEntries(r.Credits),
		},
		Details: models.Details{
			PaymentType: parsePaymentMethods(r.PaymentMethods),
		},
		Metadata: models.Metadata{CreatedAt: createdAt, UpdatedAt: updatedAt},
	}

	if r.IsStatementCredit {
		record.StatementContext = &models.StatementContext{IsCredit: true}
	}
	return record, nil
}

// parseLedgerEntries decodes "Bank:asset|Accounts Receivable" style lists.
func parseLedgerEntries(value string) []models.LedgerEntry {
	if value == "" {
		return nil
	}

	var entries []models.LedgerEntry
	for _, part := range strings.Split(value, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		entry := models.LedgerEntry{ChartName: part}
		if name, qualifier, found := strings.Cut(part, ":"); found {
			entry.ChartName = strings.TrimSpace(name)
			switch strings.ToLower(strings.TrimSpace(qualifier)) {
			case "asset":
				entry.IsAsset = true
			case "liability":
				entry.IsLiability = true
			case "income":
				entry.IsIncome = true
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func parsePaymentMethods(value string) []models.PaymentMethod {
	if value == "" {
		return nil
	}

	var methods []models.PaymentMethod
	for _, part := range strings.Split(value, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		methods = append(methods, models.PaymentMethod{Type: part})
	}
	return methods
}
