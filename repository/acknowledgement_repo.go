package repository

import (
	"ktlogistics/models"
)

// AcknowledgementRepository owns settlement records. Submissions are
// append-only: each reconciliation attempt is a new acknowledgement row with
// its per-invoice decisions.
type AcknowledgementRepository interface {
	// GetVoucherForAck loads a voucher header with its invoice lines, or
	// nil when the voucher does not exist.
	GetVoucherForAck(loadingAdvanceID int64) (*models.LoadingAdvance, error)

	// LatestStatus returns the voucher-level status of the most recent
	// acknowledgement, or VoucherPending when none exists yet.
	LatestStatus(loadingAdvanceID int64) (models.VoucherStatus, error)

	// Create persists one acknowledgement header plus all item decisions in
	// a single write, filling ack.ID on success.
	Create(ack *models.Acknowledgement) error

	// GetAll returns all acknowledgements, newest first, items included.
	GetAll() ([]*models.Acknowledgement, error)
}
