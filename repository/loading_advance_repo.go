package repository

import (
	"time"

	"ktlogistics/models"
)

// LoadingAdvanceRepository owns voucher creation as one atomic unit: the
// voucher number is allocated inside the same transaction as the header and
// invoice-line writes, so two concurrent submissions for the same branch and
// financial year cannot commit the same sequence.
type LoadingAdvanceRepository interface {
	// PeekNextVoucherNumber returns the number the next voucher would get,
	// without reserving it. Display only; Create re-derives at write time.
	PeekNextVoucherNumber(branchCode string, asOf time.Time) (string, error)

	// Create persists the voucher header plus all invoice lines in one
	// transaction, filling la.ID and la.VoucherNumber on success.
	Create(la *models.LoadingAdvance, branchCode string, asOf time.Time) error

	// GetAll returns all vouchers, newest first, without invoice lines.
	GetAll() ([]*models.LoadingAdvance, error)

	// GetInvoices returns a voucher's invoice lines joined with the parent
	// invoice date.
	GetInvoices(loadingAdvanceID int64) ([]models.LoadingAdvanceInvoice, error)
}
