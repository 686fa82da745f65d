package repository

import (
	"database/sql"
	"time"

	"ktlogistics/models"
	"ktlogistics/voucherno"
)

type PostgresLoadingAdvanceRepo struct {
	DB *sql.DB
}

func NewPostgresLoadingAdvanceRepo(db *sql.DB) *PostgresLoadingAdvanceRepo {
	return &PostgresLoadingAdvanceRepo{DB: db}
}

// queryer lets the legacy sequence scan run on either the pool or an open
// transaction.
type queryer interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

// legacyMaxSequence scans persisted voucher numbers under a branch/FY prefix
// and returns the highest sequence. Seeds the counter row the first time a
// branch/FY pair allocates.
func legacyMaxSequence(q queryer, code, fyTag string) (int, error) {
	rows, err := q.Query(
		`SELECT voucher_number FROM loading_advance WHERE voucher_number LIKE $1`,
		voucherno.Prefix(code, fyTag)+"%",
	)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var vn string
		if err := rows.Scan(&vn); err != nil {
			return 0, err
		}
		numbers = append(numbers, vn)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return voucherno.MaxSequence(numbers), nil
}

// PeekNextVoucherNumber derives the next number without reserving it.
func (r *PostgresLoadingAdvanceRepo) PeekNextVoucherNumber(branchCode string, asOf time.Time) (string, error) {
	fyTag := voucherno.FYTag(asOf)

	var last int
	err := r.DB.QueryRow(
		`SELECT last_seq FROM voucher_sequence WHERE prefix=$1 AND fy_tag=$2`,
		branchCode, fyTag,
	).Scan(&last)
	if err == sql.ErrNoRows {
		last, err = legacyMaxSequence(r.DB, branchCode, fyTag)
	}
	if err != nil {
		return "", err
	}

	return voucherno.Format(branchCode, fyTag, last+1), nil
}

// nextSequence allocates the next sequence under a row lock on the counter,
// so two concurrent voucher writes for the same branch/FY serialize here.
func (r *PostgresLoadingAdvanceRepo) nextSequence(tx *sql.Tx, code, fyTag string) (int, error) {
	var last int
	err := tx.QueryRow(
		`SELECT last_seq FROM voucher_sequence WHERE prefix=$1 AND fy_tag=$2 FOR UPDATE`,
		code, fyTag,
	).Scan(&last)

	if err == sql.ErrNoRows {
		last, err = legacyMaxSequence(tx, code, fyTag)
		if err != nil {
			return 0, err
		}
		if _, err := tx.Exec(
			`INSERT INTO voucher_sequence(prefix, fy_tag, last_seq) VALUES($1,$2,$3)`,
			code, fyTag, last+1,
		); err != nil {
			return 0, err
		}
		return last + 1, nil
	}
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec(
		`UPDATE voucher_sequence SET last_seq=$1 WHERE prefix=$2 AND fy_tag=$3`,
		last+1, code, fyTag,
	); err != nil {
		return 0, err
	}
	return last + 1, nil
}

func (r *PostgresLoadingAdvanceRepo) insertHeader(tx *sql.Tx, la *models.LoadingAdvance) error {
	return tx.QueryRow(`
		INSERT INTO loading_advance(
			voucher_number,vehicle_number,vehicle_type,vehicle_sub_type,vehicle_body_type,
			owner_name,owner_type,driver_name,product_name,invoice_date,
			invoice_number,to_place,dealer_name,kt_freight,quantity,ifa_amount,
			sum_ifas,commission_pct,predefined_expenses,
			driver_bata,unloading,tarpaulin,city_tax,maintenance,
			pump_name,fuel_litre,fuel_rate,fuel_amount,
			driver_loading_advance,gross_amount,trip_balance,trip_balance_words,
			created_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,
		       $20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33)
		RETURNING id
	`,
		la.VoucherNumber, la.VehicleNumber, la.VehicleType, la.VehicleSubType, la.VehicleBodyType,
		la.OwnerName, la.OwnerType, la.DriverName, la.ProductName, la.InvoiceDate,
		la.InvoiceNumber, la.ToPlace, la.DealerName, la.KTFreight, la.Quantity, la.IFAAmount,
		la.SumIFAs, la.CommissionPct, la.PredefinedExpenses,
		la.DriverBata, la.Unloading, la.Tarpaulin, la.CityTax, la.Maintenance,
		la.PumpName, la.FuelLitre, la.FuelRate, la.FuelAmount,
		la.DriverLoadingAdvance, la.GrossAmount, la.TripBalance, la.TripBalanceWords,
		la.CreatedAt,
	).Scan(&la.ID)
}

func (r *PostgresLoadingAdvanceRepo) insertInvoices(tx *sql.Tx, la *models.LoadingAdvance) error {
	for i := range la.Invoices {
		inv := &la.Invoices[i]
		inv.LoadingAdvanceID = la.ID
		err := tx.QueryRow(`
			INSERT INTO loading_advance_invoice(
				loading_advance_id,invoice_number,to_place,dealer_name,
				kt_freight,quantity,ifa_amount
			)
			VALUES($1,$2,$3,$4,$5,$6,$7)
			RETURNING id
		`, inv.LoadingAdvanceID, inv.InvoiceNumber, inv.ToPlace, inv.DealerName,
			inv.KTFreight, inv.Quantity, inv.IFAAmount,
		).Scan(&inv.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// Create allocates the voucher number and writes the header plus all invoice
// lines in one transaction. Any failure rolls everything back; no partial
// vouchers become visible.
func (r *PostgresLoadingAdvanceRepo) Create(la *models.LoadingAdvance, branchCode string, asOf time.Time) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	fyTag := voucherno.FYTag(asOf)
	seq, err := r.nextSequence(tx, branchCode, fyTag)
	if err != nil {
		return err
	}
	la.VoucherNumber = voucherno.Format(branchCode, fyTag, seq)

	if la.CreatedAt.IsZero() {
		la.CreatedAt = time.Now().UTC()
	}

	if err := r.insertHeader(tx, la); err != nil {
		return err
	}
	if err := r.insertInvoices(tx, la); err != nil {
		return err
	}

	return tx.Commit()
}

const loadingAdvanceColumns = `
	id, voucher_number, vehicle_number, vehicle_type, vehicle_sub_type, vehicle_body_type,
	owner_name, owner_type, driver_name, product_name, invoice_date,
	invoice_number, to_place, dealer_name, kt_freight, quantity, ifa_amount,
	sum_ifas, commission_pct, predefined_expenses,
	driver_bata, unloading, tarpaulin, city_tax, maintenance,
	pump_name, fuel_litre, fuel_rate, fuel_amount,
	driver_loading_advance, gross_amount, trip_balance, trip_balance_words,
	created_at`

func scanLoadingAdvance(rows *sql.Rows) (*models.LoadingAdvance, error) {
	var la models.LoadingAdvance
	err := rows.Scan(
		&la.ID, &la.VoucherNumber, &la.VehicleNumber, &la.VehicleType, &la.VehicleSubType, &la.VehicleBodyType,
		&la.OwnerName, &la.OwnerType, &la.DriverName, &la.ProductName, &la.InvoiceDate,
		&la.InvoiceNumber, &la.ToPlace, &la.DealerName, &la.KTFreight, &la.Quantity, &la.IFAAmount,
		&la.SumIFAs, &la.CommissionPct, &la.PredefinedExpenses,
		&la.DriverBata, &la.Unloading, &la.Tarpaulin, &la.CityTax, &la.Maintenance,
		&la.PumpName, &la.FuelLitre, &la.FuelRate, &la.FuelAmount,
		&la.DriverLoadingAdvance, &la.GrossAmount, &la.TripBalance, &la.TripBalanceWords,
		&la.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &la, nil
}

// GetAll returns flat voucher rows, newest first. The first-invoice snapshot
// columns serve the listing without a child join.
func (r *PostgresLoadingAdvanceRepo) GetAll() ([]*models.LoadingAdvance, error) {
	rows, err := r.DB.Query(
		`SELECT` + loadingAdvanceColumns + ` FROM loading_advance ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.LoadingAdvance
	for rows.Next() {
		la, err := scanLoadingAdvance(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, la)
	}
	return result, rows.Err()
}

func (r *PostgresLoadingAdvanceRepo) GetInvoices(loadingAdvanceID int64) ([]models.LoadingAdvanceInvoice, error) {
	rows, err := r.DB.Query(`
		SELECT i.id, i.loading_advance_id, i.invoice_number, i.to_place, i.dealer_name,
		       i.kt_freight, i.quantity, i.ifa_amount, la.invoice_date
		FROM loading_advance_invoice i
		JOIN loading_advance la ON la.id = i.loading_advance_id
		WHERE i.loading_advance_id = $1
		ORDER BY i.id
	`, loadingAdvanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.LoadingAdvanceInvoice
	for rows.Next() {
		var inv models.LoadingAdvanceInvoice
		var invoiceDate time.Time
		if err := rows.Scan(
			&inv.ID, &inv.LoadingAdvanceID, &inv.InvoiceNumber, &inv.ToPlace, &inv.DealerName,
			&inv.KTFreight, &inv.Quantity, &inv.IFAAmount, &invoiceDate,
		); err != nil {
			return nil, err
		}
		inv.InvoiceDate = &invoiceDate
		result = append(result, inv)
	}
	return result, rows.Err()
}
