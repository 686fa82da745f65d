package repository

import (
	"ktlogistics/models"
)

// ReferenceRepository serves the master-data registries the voucher flows
// read: vehicles, products, pumps, drivers, places and their dealers. Writes
// are plain data entry; uniqueness violations surface as store errors.
type ReferenceRepository interface {
	CreateVehicle(v *models.Vehicle) error
	GetVehicles() ([]*models.Vehicle, error)
	// VehicleByNumber returns nil when the registration is not registered.
	VehicleByNumber(vehicleNumber string) (*models.Vehicle, error)

	CreateProduct(p *models.Product) error
	GetProducts() ([]*models.Product, error)
	ProductExists(name string) (bool, error)

	CreatePump(p *models.Pump) error
	GetPumps() ([]*models.Pump, error)
	// PumpByName returns nil when the pump is not registered.
	PumpByName(name string) (*models.Pump, error)

	CreateDriver(d *models.Driver) error
	GetDrivers() ([]*models.Driver, error)

	CreatePlace(p *models.Place) error
	GetPlaces() ([]*models.Place, error)
	// FindPlace resolves a destination by place name and product; when
	// several match, the first registered wins.
	FindPlace(name, productName string) (*models.Place, error)

	CreateDealer(d *models.Dealer) error
	DealerExists(placeID int64, dealerName string) (bool, error)
}
