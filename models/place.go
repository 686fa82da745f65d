package models

import "time"

// Place is a registered delivery destination for one product. The same place
// name may be registered once per product, so invoice lines resolve a place
// by (name, product).
type Place struct {
	ID          int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Name        string    `json:"name" bson:"name" db:"name"`
	ProductName string    `json:"product_name" bson:"product_name" db:"product_name"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" db:"created_at"`

	Dealers []Dealer `json:"dealers,omitempty" bson:"dealers,omitempty"`
}

// Dealer is registered under a place; invoice lines must name a dealer that
// exists for the resolved place.
type Dealer struct {
	ID        int64     `json:"id" bson:"_id,omitempty" db:"id"`
	PlaceID   int64     `json:"place_id" bson:"place_id" db:"place_id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
