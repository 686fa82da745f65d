package repository

import (
	"ktlogistics/models"
)

// RateCardRepository keeps the freight/expense defaults per vehicle class
// and their association to places.
type RateCardRepository interface {
	Create(rc *models.RateCard) error
	GetAll() ([]*models.RateCard, error)
	// FindByVehicleClass returns nil when no card covers the class.
	FindByVehicleClass(vehicleType, vehicleSubType, vehicleBodyType string) (*models.RateCard, error)
	AttachToPlace(placeID, rateCardID int64) error
	GetByPlace(placeID int64) ([]*models.RateCard, error)
}
