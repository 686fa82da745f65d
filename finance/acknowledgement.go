package finance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"ktlogistics/models"
)

// Sentinel errors let the handler map each business failure to its own
// user-facing message.
var (
	ErrAckAmountMismatch        = errors.New("acknowledged amount must equal the invoice amount")
	ErrShortageAmountOutOfRange = errors.New("shortage amount must be greater than zero and below the invoice amount")
	ErrPendingAmountNotZero     = errors.New("pending invoices cannot carry a returned amount")
	ErrTotalExceedsTripBalance  = errors.New("total returned exceeds trip balance")
)

// AckTolerance is the permitted difference between the returned amount and
// the invoice amount for an Acknowledged line.
var AckTolerance = decimal.New(1, -2) // 0.01

// RuleError wraps a sentinel error with the offending invoice number.
type RuleError struct {
	Err           error
	InvoiceNumber string
}

func (e *RuleError) Error() string {
	if e.InvoiceNumber != "" {
		return fmt.Sprintf("invoice %s: %s", e.InvoiceNumber, e.Err.Error())
	}
	return e.Err.Error()
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// AckDecision is one per-invoice settlement decision matched against its
// invoice line.
type AckDecision struct {
	InvoiceNumber  string
	IFAAmount      decimal.Decimal
	Status         models.InvoiceAckStatus
	ReturnedAmount decimal.Decimal
}

// ValidateDecision enforces the numeric constraint of each settlement state:
// Acknowledged returns the invoice amount (within tolerance), Shortage
// returns strictly between zero and the invoice amount, Pending returns
// nothing.
func ValidateDecision(d AckDecision) error {
	switch d.Status {
	case models.AckAcknowledged:
		if d.ReturnedAmount.Sub(d.IFAAmount).Abs().GreaterThan(AckTolerance) {
			return &RuleError{Err: ErrAckAmountMismatch, InvoiceNumber: d.InvoiceNumber}
		}
	case models.AckShortage:
		if !d.ReturnedAmount.IsPositive() || !d.ReturnedAmount.LessThan(d.IFAAmount) {
			return &RuleError{Err: ErrShortageAmountOutOfRange, InvoiceNumber: d.InvoiceNumber}
		}
	default: // Pending
		if !d.ReturnedAmount.IsZero() {
			return &RuleError{Err: ErrPendingAmountNotZero, InvoiceNumber: d.InvoiceNumber}
		}
	}
	return nil
}

// TotalReturned sums the returned amounts over all decisions.
func TotalReturned(decisions []AckDecision) decimal.Decimal {
	total := decimal.Zero
	for _, d := range decisions {
		total = total.Add(d.ReturnedAmount)
	}
	return total
}

// ValidateTotal rejects a submission whose returned total exceeds the
// voucher's trip balance.
func ValidateTotal(totalReturned, tripBalance decimal.Decimal) error {
	if totalReturned.GreaterThan(tripBalance) {
		return ErrTotalExceedsTripBalance
	}
	return nil
}

// VoucherStatus derives the voucher-level status: Settled only when every
// invoice line is Acknowledged.
func VoucherStatus(decisions []AckDecision) models.VoucherStatus {
	for _, d := range decisions {
		if d.Status != models.AckAcknowledged {
			return models.VoucherPending
		}
	}
	if len(decisions) == 0 {
		return models.VoucherPending
	}
	return models.VoucherSettled
}
