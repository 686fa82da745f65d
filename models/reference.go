package models

import "time"

// Reference registries consulted during voucher creation. CRUD for these is
// plain data entry; uniqueness is enforced by the store.

type Vehicle struct {
	ID              int64     `json:"id" bson:"_id,omitempty" db:"id"`
	VehicleNumber   string    `json:"vehicle_number" bson:"vehicle_number" db:"vehicle_number"`
	VehicleType     string    `json:"vehicle_type" bson:"vehicle_type" db:"vehicle_type"`
	VehicleSubType  string    `json:"vehicle_sub_type" bson:"vehicle_sub_type" db:"vehicle_sub_type"`
	VehicleBodyType string    `json:"vehicle_body_type" bson:"vehicle_body_type" db:"vehicle_body_type"`
	OwnerName       string    `json:"owner_name" bson:"owner_name" db:"owner_name"`
	OwnerType       OwnerType `json:"owner_type" bson:"owner_type" db:"owner_type"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

type Product struct {
	ID        int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

type Pump struct {
	ID        int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	FuelRate  float64   `json:"fuel_rate" bson:"fuel_rate" db:"fuel_rate"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

type Driver struct {
	ID            int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Name          string    `json:"name" bson:"name" db:"name"`
	LicenseNumber string    `json:"license_number" bson:"license_number" db:"license_number"`
	Mobile        string    `json:"mobile,omitempty" bson:"mobile,omitempty" db:"mobile"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
