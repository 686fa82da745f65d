package repository

import (
	"database/sql"
	"time"

	"ktlogistics/models"
)

type PostgresAcknowledgementRepo struct {
	DB *sql.DB
}

func NewPostgresAcknowledgementRepo(db *sql.DB) *PostgresAcknowledgementRepo {
	return &PostgresAcknowledgementRepo{DB: db}
}

// GetVoucherForAck loads the header fields reconciliation needs plus all
// invoice lines; nil when the voucher does not exist.
func (r *PostgresAcknowledgementRepo) GetVoucherForAck(loadingAdvanceID int64) (*models.LoadingAdvance, error) {
	var la models.LoadingAdvance
	err := r.DB.QueryRow(`
		SELECT id, voucher_number, trip_balance, invoice_date
		FROM loading_advance
		WHERE id = $1
	`, loadingAdvanceID).Scan(&la.ID, &la.VoucherNumber, &la.TripBalance, &la.InvoiceDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT id, loading_advance_id, invoice_number, to_place, dealer_name,
		       kt_freight, quantity, ifa_amount
		FROM loading_advance_invoice
		WHERE loading_advance_id = $1
		ORDER BY id
	`, loadingAdvanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var inv models.LoadingAdvanceInvoice
		if err := rows.Scan(
			&inv.ID, &inv.LoadingAdvanceID, &inv.InvoiceNumber, &inv.ToPlace, &inv.DealerName,
			&inv.KTFreight, &inv.Quantity, &inv.IFAAmount,
		); err != nil {
			return nil, err
		}
		la.Invoices = append(la.Invoices, inv)
	}
	return &la, rows.Err()
}

func (r *PostgresAcknowledgementRepo) LatestStatus(loadingAdvanceID int64) (models.VoucherStatus, error) {
	var status models.VoucherStatus
	err := r.DB.QueryRow(`
		SELECT status FROM acknowledgement
		WHERE loading_advance_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, loadingAdvanceID).Scan(&status)
	if err == sql.ErrNoRows {
		return models.VoucherPending, nil
	}
	if err != nil {
		return "", err
	}
	return status, nil
}

// Create writes the acknowledgement header and every item decision in one
// transaction; a failed item insert rolls the whole record back.
func (r *PostgresAcknowledgementRepo) Create(ack *models.Acknowledgement) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if ack.CreatedAt.IsZero() {
		ack.CreatedAt = time.Now().UTC()
	}

	err = tx.QueryRow(`
		INSERT INTO acknowledgement(loading_advance_id, total_returned, pending_amount, status, created_at)
		VALUES($1,$2,$3,$4,$5)
		RETURNING id
	`, ack.LoadingAdvanceID, ack.TotalReturned, ack.PendingAmount, ack.Status, ack.CreatedAt).Scan(&ack.ID)
	if err != nil {
		return err
	}

	for i := range ack.Items {
		item := &ack.Items[i]
		item.AcknowledgementID = ack.ID
		err := tx.QueryRow(`
			INSERT INTO acknowledgement_item(acknowledgement_id, loading_advance_invoice_id, status, returned_amount)
			VALUES($1,$2,$3,$4)
			RETURNING id
		`, item.AcknowledgementID, item.LoadingAdvanceInvoiceID, item.Status, item.ReturnedAmount).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetAll returns acknowledgements newest first with their items, loading all
// items in one query to avoid N+1.
func (r *PostgresAcknowledgementRepo) GetAll() ([]*models.Acknowledgement, error) {
	rows, err := r.DB.Query(`
		SELECT a.id, a.loading_advance_id, a.total_returned, a.pending_amount, a.status, a.created_at,
		       la.voucher_number
		FROM acknowledgement a
		JOIN loading_advance la ON la.id = a.loading_advance_id
		ORDER BY a.created_at DESC, a.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Acknowledgement
	byID := make(map[int64]*models.Acknowledgement)
	for rows.Next() {
		var ack models.Acknowledgement
		if err := rows.Scan(
			&ack.ID, &ack.LoadingAdvanceID, &ack.TotalReturned, &ack.PendingAmount, &ack.Status, &ack.CreatedAt,
			&ack.VoucherNumber,
		); err != nil {
			return nil, err
		}
		result = append(result, &ack)
		byID[ack.ID] = &ack
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	itemRows, err := r.DB.Query(`
		SELECT id, acknowledgement_id, loading_advance_invoice_id, status, returned_amount
		FROM acknowledgement_item
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.AcknowledgementItem
		if err := itemRows.Scan(
			&item.ID, &item.AcknowledgementID, &item.LoadingAdvanceInvoiceID, &item.Status, &item.ReturnedAmount,
		); err != nil {
			return nil, err
		}
		if ack, ok := byID[item.AcknowledgementID]; ok {
			ack.Items = append(ack.Items, item)
		}
	}
	return result, itemRows.Err()
}
