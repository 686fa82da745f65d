package repository

import (
	"database/sql"
	"time"

	"ktlogistics/models"
)

type PostgresReferenceRepo struct {
	DB *sql.DB
}

func NewPostgresReferenceRepo(db *sql.DB) *PostgresReferenceRepo {
	return &PostgresReferenceRepo{DB: db}
}

// ------------------------ Vehicles ------------------------

func (r *PostgresReferenceRepo) CreateVehicle(v *models.Vehicle) error {
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO vehicle(vehicle_number, vehicle_type, vehicle_sub_type, vehicle_body_type, owner_name, owner_type, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, v.VehicleNumber, v.VehicleType, v.VehicleSubType, v.VehicleBodyType, v.OwnerName, v.OwnerType, v.CreatedAt).Scan(&v.ID)
}

func (r *PostgresReferenceRepo) GetVehicles() ([]*models.Vehicle, error) {
	rows, err := r.DB.Query(`
		SELECT id, vehicle_number, vehicle_type, vehicle_sub_type, vehicle_body_type, owner_name, owner_type, created_at
		FROM vehicle
		ORDER BY vehicle_number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.VehicleNumber, &v.VehicleType, &v.VehicleSubType, &v.VehicleBodyType, &v.OwnerName, &v.OwnerType, &v.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &v)
	}
	return result, rows.Err()
}

func (r *PostgresReferenceRepo) VehicleByNumber(vehicleNumber string) (*models.Vehicle, error) {
	var v models.Vehicle
	err := r.DB.QueryRow(`
		SELECT id, vehicle_number, vehicle_type, vehicle_sub_type, vehicle_body_type, owner_name, owner_type, created_at
		FROM vehicle
		WHERE vehicle_number = $1
	`, vehicleNumber).Scan(&v.ID, &v.VehicleNumber, &v.VehicleType, &v.VehicleSubType, &v.VehicleBodyType, &v.OwnerName, &v.OwnerType, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ------------------------ Products ------------------------

func (r *PostgresReferenceRepo) CreateProduct(p *models.Product) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO product(name, created_at) VALUES($1,$2) RETURNING id
	`, p.Name, p.CreatedAt).Scan(&p.ID)
}

func (r *PostgresReferenceRepo) GetProducts() ([]*models.Product, error) {
	rows, err := r.DB.Query(`SELECT id, name, created_at FROM product ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	return result, rows.Err()
}

func (r *PostgresReferenceRepo) ProductExists(name string) (bool, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM product WHERE name = $1`, name).Scan(&count)
	return count > 0, err
}

// ------------------------ Pumps ------------------------

func (r *PostgresReferenceRepo) CreatePump(p *models.Pump) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO pump(name, fuel_rate, created_at) VALUES($1,$2,$3) RETURNING id
	`, p.Name, p.FuelRate, p.CreatedAt).Scan(&p.ID)
}

func (r *PostgresReferenceRepo) GetPumps() ([]*models.Pump, error) {
	rows, err := r.DB.Query(`SELECT id, name, fuel_rate, created_at FROM pump ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Pump
	for rows.Next() {
		var p models.Pump
		if err := rows.Scan(&p.ID, &p.Name, &p.FuelRate, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	return result, rows.Err()
}

func (r *PostgresReferenceRepo) PumpByName(name string) (*models.Pump, error) {
	var p models.Pump
	err := r.DB.QueryRow(`
		SELECT id, name, fuel_rate, created_at FROM pump WHERE name = $1
	`, name).Scan(&p.ID, &p.Name, &p.FuelRate, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ------------------------ Drivers ------------------------

func (r *PostgresReferenceRepo) CreateDriver(d *models.Driver) error {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO driver(name, license_number, mobile, created_at) VALUES($1,$2,$3,$4) RETURNING id
	`, d.Name, d.LicenseNumber, d.Mobile, d.CreatedAt).Scan(&d.ID)
}

func (r *PostgresReferenceRepo) GetDrivers() ([]*models.Driver, error) {
	rows, err := r.DB.Query(`SELECT id, name, license_number, mobile, created_at FROM driver ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Driver
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.LicenseNumber, &d.Mobile, &d.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &d)
	}
	return result, rows.Err()
}

// ------------------------ Places & Dealers ------------------------

func (r *PostgresReferenceRepo) CreatePlace(p *models.Place) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO place(name, product_name, created_at) VALUES($1,$2,$3) RETURNING id
	`, p.Name, p.ProductName, p.CreatedAt).Scan(&p.ID)
}

// GetPlaces loads all places with their dealers in one pass.
func (r *PostgresReferenceRepo) GetPlaces() ([]*models.Place, error) {
	rows, err := r.DB.Query(`SELECT id, name, product_name, created_at FROM place ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Place
	byID := make(map[int64]*models.Place)
	for rows.Next() {
		var p models.Place
		if err := rows.Scan(&p.ID, &p.Name, &p.ProductName, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &p)
		byID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	dealerRows, err := r.DB.Query(`SELECT id, place_id, name, created_at FROM dealer ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer dealerRows.Close()

	for dealerRows.Next() {
		var d models.Dealer
		if err := dealerRows.Scan(&d.ID, &d.PlaceID, &d.Name, &d.CreatedAt); err != nil {
			return nil, err
		}
		if p, ok := byID[d.PlaceID]; ok {
			p.Dealers = append(p.Dealers, d)
		}
	}
	return result, dealerRows.Err()
}

// FindPlace resolves by name and product; the lowest id wins when duplicates
// slipped in before the uniqueness constraint existed.
func (r *PostgresReferenceRepo) FindPlace(name, productName string) (*models.Place, error) {
	var p models.Place
	err := r.DB.QueryRow(`
		SELECT id, name, product_name, created_at
		FROM place
		WHERE name = $1 AND product_name = $2
		ORDER BY id
		LIMIT 1
	`, name, productName).Scan(&p.ID, &p.Name, &p.ProductName, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresReferenceRepo) CreateDealer(d *models.Dealer) error {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO dealer(place_id, name, created_at) VALUES($1,$2,$3) RETURNING id
	`, d.PlaceID, d.Name, d.CreatedAt).Scan(&d.ID)
}

func (r *PostgresReferenceRepo) DealerExists(placeID int64, dealerName string) (bool, error) {
	var count int
	err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM dealer WHERE place_id = $1 AND name = $2`,
		placeID, dealerName,
	).Scan(&count)
	return count > 0, err
}
