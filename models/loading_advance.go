package models

import (
	"fmt"
	"strings"
	"time"
)

// OwnerType classifies who runs the vehicle. Commissioned owner types earn a
// percentage commission instead of the full invoice freight.
type OwnerType string

const (
	OwnerOwn       OwnerType = "Own"
	OwnerDedicated OwnerType = "Dedicated"
	OwnerMarket    OwnerType = "Market"
	OwnerAttached  OwnerType = "Attached"
)

// ParseOwnerType validates free-text owner type input at the boundary.
func ParseOwnerType(s string) (OwnerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "own":
		return OwnerOwn, nil
	case "dedicated":
		return OwnerDedicated, nil
	case "market":
		return OwnerMarket, nil
	case "attached":
		return OwnerAttached, nil
	}
	return "", fmt.Errorf("invalid owner type %q", s)
}

// Commissioned reports whether this owner type is settled on commission.
func (o OwnerType) Commissioned() bool {
	return o == OwnerDedicated || o == OwnerMarket
}

type LoadingAdvance struct {
	ID              int64     `json:"id" bson:"_id,omitempty" db:"id"`
	VoucherNumber   string    `json:"voucher_number" bson:"voucher_number" db:"voucher_number"`
	VehicleNumber   string    `json:"vehicle_number" bson:"vehicle_number" db:"vehicle_number"`
	VehicleType     string    `json:"vehicle_type" bson:"vehicle_type" db:"vehicle_type"`
	VehicleSubType  string    `json:"vehicle_sub_type" bson:"vehicle_sub_type" db:"vehicle_sub_type"`
	VehicleBodyType string    `json:"vehicle_body_type" bson:"vehicle_body_type" db:"vehicle_body_type"`
	OwnerName       string    `json:"owner_name" bson:"owner_name" db:"owner_name"`
	OwnerType       OwnerType `json:"owner_type" bson:"owner_type" db:"owner_type"`
	DriverName      *string   `json:"driver_name,omitempty" bson:"driver_name,omitempty" db:"driver_name"`
	ProductName     string    `json:"product_name" bson:"product_name" db:"product_name"`
	InvoiceDate     time.Time `json:"invoice_date" bson:"invoice_date" db:"invoice_date"`

	// Snapshot of the first invoice line, kept flat on the header so the
	// voucher listing reads without a join. The child table stays the
	// source of truth for the invoice endpoints.
	InvoiceNumber string  `json:"invoice_number" bson:"invoice_number" db:"invoice_number"`
	ToPlace       string  `json:"to_place" bson:"to_place" db:"to_place"`
	DealerName    string  `json:"dealer_name" bson:"dealer_name" db:"dealer_name"`
	KTFreight     float64 `json:"kt_freight" bson:"kt_freight" db:"kt_freight"`
	Quantity      float64 `json:"quantity" bson:"quantity" db:"quantity"`
	IFAAmount     float64 `json:"ifa_amount" bson:"ifa_amount" db:"ifa_amount"`

	SumIFAs            float64 `json:"sum_ifas" bson:"sum_ifas" db:"sum_ifas"`
	CommissionPct      float64 `json:"commission_pct" bson:"commission_pct" db:"commission_pct"`
	PredefinedExpenses float64 `json:"predefined_expenses" bson:"predefined_expenses" db:"predefined_expenses"`
	DriverBata         float64 `json:"driver_bata" bson:"driver_bata" db:"driver_bata"`
	Unloading          float64 `json:"unloading" bson:"unloading" db:"unloading"`
	Tarpaulin          float64 `json:"tarpaulin" bson:"tarpaulin" db:"tarpaulin"`
	CityTax            float64 `json:"city_tax" bson:"city_tax" db:"city_tax"`
	Maintenance        float64 `json:"maintenance" bson:"maintenance" db:"maintenance"`

	PumpName   string  `json:"pump_name" bson:"pump_name" db:"pump_name"`
	FuelLitre  float64 `json:"fuel_litre" bson:"fuel_litre" db:"fuel_litre"`
	FuelRate   float64 `json:"fuel_rate" bson:"fuel_rate" db:"fuel_rate"`
	FuelAmount float64 `json:"fuel_amount" bson:"fuel_amount" db:"fuel_amount"`

	DriverLoadingAdvance float64 `json:"driver_loading_advance" bson:"driver_loading_advance" db:"driver_loading_advance"`
	GrossAmount          float64 `json:"gross_amount" bson:"gross_amount" db:"gross_amount"`
	TripBalance          float64 `json:"trip_balance" bson:"trip_balance" db:"trip_balance"`
	TripBalanceWords     string  `json:"trip_balance_words" bson:"trip_balance_words" db:"trip_balance_words"`

	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`

	Invoices []LoadingAdvanceInvoice `json:"invoices,omitempty" bson:"invoices,omitempty"`
}

type LoadingAdvanceInvoice struct {
	ID               int64   `json:"id" bson:"_id,omitempty" db:"id"`
	LoadingAdvanceID int64   `json:"loading_advance_id" bson:"loading_advance_id" db:"loading_advance_id"`
	InvoiceNumber    string  `json:"invoice_number" bson:"invoice_number" db:"invoice_number"`
	ToPlace          string  `json:"to_place" bson:"to_place" db:"to_place"`
	DealerName       string  `json:"dealer_name" bson:"dealer_name" db:"dealer_name"`
	KTFreight        float64 `json:"kt_freight" bson:"kt_freight" db:"kt_freight"`
	Quantity         float64 `json:"quantity" bson:"quantity" db:"quantity"`
	IFAAmount        float64 `json:"ifa_amount" bson:"ifa_amount" db:"ifa_amount"`

	// Populated by the joined invoice read; not a column of the child table.
	InvoiceDate *time.Time `json:"invoice_date,omitempty" bson:"invoice_date,omitempty"`
}
