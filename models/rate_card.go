package models

import (
	"math"
	"time"
)

// RateCard supplies default freight and expense figures for a vehicle class,
// keyed by (vehicle_type, vehicle_sub_type, vehicle_body_type). Rate cards
// attach to places through a join table; many cards may serve one place.
type RateCard struct {
	ID              int64     `json:"id" bson:"_id,omitempty" db:"id"`
	VehicleType     string    `json:"vehicle_type" bson:"vehicle_type" db:"vehicle_type"`
	VehicleSubType  string    `json:"vehicle_sub_type" bson:"vehicle_sub_type" db:"vehicle_sub_type"`
	VehicleBodyType string    `json:"vehicle_body_type" bson:"vehicle_body_type" db:"vehicle_body_type"`
	RCLFreight      float64   `json:"rcl_freight" bson:"rcl_freight" db:"rcl_freight"`
	KTFreight       float64   `json:"kt_freight" bson:"kt_freight" db:"kt_freight"`
	DriverBata      float64   `json:"driver_bata" bson:"driver_bata" db:"driver_bata"`
	Unloading       float64   `json:"unloading" bson:"unloading" db:"unloading"`
	Tarpaulin       float64   `json:"tarpaulin" bson:"tarpaulin" db:"tarpaulin"`
	CityTax         float64   `json:"city_tax" bson:"city_tax" db:"city_tax"`
	Maintenance     float64   `json:"maintenance" bson:"maintenance" db:"maintenance"`
	Advance         float64   `json:"advance" bson:"advance" db:"advance"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// DefaultKTFreight is the fallback when a card is saved without an explicit
// KT freight: floor of the RCL freight, minus one.
func DefaultKTFreight(rclFreight float64) float64 {
	return math.Floor(rclFreight) - 1
}

// ApplyDefaults fills derivable fields left empty at data entry.
func (rc *RateCard) ApplyDefaults() {
	if rc.KTFreight == 0 && rc.RCLFreight > 0 {
		rc.KTFreight = DefaultKTFreight(rc.RCLFreight)
	}
}
