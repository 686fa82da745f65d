package repository

import (
	"database/sql"
	"time"

	"ktlogistics/models"
)

type PostgresRateCardRepo struct {
	DB *sql.DB
}

func NewPostgresRateCardRepo(db *sql.DB) *PostgresRateCardRepo {
	return &PostgresRateCardRepo{DB: db}
}

const rateCardColumns = `
	id, vehicle_type, vehicle_sub_type, vehicle_body_type,
	rcl_freight, kt_freight, driver_bata, unloading, tarpaulin, city_tax, maintenance, advance,
	created_at`

func scanRateCard(row interface{ Scan(dest ...interface{}) error }) (*models.RateCard, error) {
	var rc models.RateCard
	err := row.Scan(
		&rc.ID, &rc.VehicleType, &rc.VehicleSubType, &rc.VehicleBodyType,
		&rc.RCLFreight, &rc.KTFreight, &rc.DriverBata, &rc.Unloading, &rc.Tarpaulin, &rc.CityTax, &rc.Maintenance, &rc.Advance,
		&rc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

func (r *PostgresRateCardRepo) Create(rc *models.RateCard) error {
	rc.ApplyDefaults()
	if rc.CreatedAt.IsZero() {
		rc.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO rate_card(
			vehicle_type, vehicle_sub_type, vehicle_body_type,
			rcl_freight, kt_freight, driver_bata, unloading, tarpaulin, city_tax, maintenance, advance,
			created_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id
	`, rc.VehicleType, rc.VehicleSubType, rc.VehicleBodyType,
		rc.RCLFreight, rc.KTFreight, rc.DriverBata, rc.Unloading, rc.Tarpaulin, rc.CityTax, rc.Maintenance, rc.Advance,
		rc.CreatedAt,
	).Scan(&rc.ID)
}

func (r *PostgresRateCardRepo) GetAll() ([]*models.RateCard, error) {
	rows, err := r.DB.Query(`SELECT` + rateCardColumns + ` FROM rate_card ORDER BY vehicle_type, vehicle_sub_type, vehicle_body_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.RateCard
	for rows.Next() {
		rc, err := scanRateCard(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rc)
	}
	return result, rows.Err()
}

func (r *PostgresRateCardRepo) FindByVehicleClass(vehicleType, vehicleSubType, vehicleBodyType string) (*models.RateCard, error) {
	rc, err := scanRateCard(r.DB.QueryRow(`
		SELECT`+rateCardColumns+`
		FROM rate_card
		WHERE vehicle_type = $1 AND vehicle_sub_type = $2 AND vehicle_body_type = $3
	`, vehicleType, vehicleSubType, vehicleBodyType))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func (r *PostgresRateCardRepo) AttachToPlace(placeID, rateCardID int64) error {
	_, err := r.DB.Exec(`
		INSERT INTO place_rate_card(place_id, rate_card_id)
		VALUES($1,$2)
		ON CONFLICT DO NOTHING
	`, placeID, rateCardID)
	return err
}

func (r *PostgresRateCardRepo) GetByPlace(placeID int64) ([]*models.RateCard, error) {
	rows, err := r.DB.Query(`
		SELECT rc.id, rc.vehicle_type, rc.vehicle_sub_type, rc.vehicle_body_type,
		       rc.rcl_freight, rc.kt_freight, rc.driver_bata, rc.unloading, rc.tarpaulin, rc.city_tax, rc.maintenance, rc.advance,
		       rc.created_at
		FROM rate_card rc
		JOIN place_rate_card prc ON prc.rate_card_id = rc.id
		WHERE prc.place_id = $1
		ORDER BY rc.id
	`, placeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.RateCard
	for rows.Next() {
		rc, err := scanRateCard(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rc)
	}
	return result, rows.Err()
}
