package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ktlogistics/models"
)

type MongoReferenceRepo struct {
	DB *mongo.Client
}

func NewMongoReferenceRepo(db *mongo.Client) *MongoReferenceRepo {
	return &MongoReferenceRepo{DB: db}
}

func (r *MongoReferenceRepo) db() *mongo.Database {
	return r.DB.Database(mongoDatabase)
}

// ------------------------ Vehicles ------------------------

func (r *MongoReferenceRepo) CreateVehicle(v *models.Vehicle) error {
	ctx := context.Background()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	id, err := nextMongoID(ctx, r.db(), "vehicle")
	if err != nil {
		return err
	}
	v.ID = id
	_, err = r.db().Collection("vehicle").InsertOne(ctx, v)
	return err
}

func (r *MongoReferenceRepo) GetVehicles() ([]*models.Vehicle, error) {
	ctx := context.Background()
	cur, err := r.db().Collection("vehicle").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "vehicle_number", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*models.Vehicle
	for cur.Next(ctx) {
		var v models.Vehicle
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		result = append(result, &v)
	}
	return result, cur.Err()
}

func (r *MongoReferenceRepo) VehicleByNumber(vehicleNumber string) (*models.Vehicle, error) {
	ctx := context.Background()
	var v models.Vehicle
	err := r.db().Collection("vehicle").
		FindOne(ctx, bson.M{"vehicle_number": vehicleNumber}).
		Decode(&v)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ------------------------ Products ------------------------

func (r *MongoReferenceRepo) CreateProduct(p *models.Product) error {
	ctx := context.Background()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	id, err := nextMongoID(ctx, r.db(), "product")
	if err != nil {
		return err
	}
	p.ID = id
	_, err = r.db().Collection("product").InsertOne(ctx, p)
	return err
}

func (r *MongoReferenceRepo) GetProducts() ([]*models.Product, error) {
	ctx := context.Background()
	cur, err := r.db().Collection("product").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*models.Product
	for cur.Next(ctx) {
		var p models.Product
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	return result, cur.Err()
}

func (r *MongoReferenceRepo) ProductExists(name string) (bool, error) {
	ctx := context.Background()
	count, err := r.db().Collection("product").CountDocuments(ctx, bson.M{"name": name})
	return count > 0, err
}

// ------------------------ Pumps ------------------------

func (r *MongoReferenceRepo) CreatePump(p *models.Pump) error {
	ctx := context.Background()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	id, err := nextMongoID(ctx, r.db(), "pump")
	if err != nil {
		return err
	}
	p.ID = id
	_, err = r.db().Collection("pump").InsertOne(ctx, p)
	return err
}

func (r *MongoReferenceRepo) GetPumps() ([]*models.Pump, error) {
	ctx := context.Background()
	cur, err := r.db().Collection("pump").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*models.Pump
	for cur.Next(ctx) {
		var p models.Pump
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	return result, cur.Err()
}

func (r *MongoReferenceRepo) PumpByName(name string) (*models.Pump, error) {
	ctx := context.Background()
	var p models.Pump
	err := r.db().Collection("pump").FindOne(ctx, bson.M{"name": name}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ------------------------ Drivers ------------------------

func (r *MongoReferenceRepo) CreateDriver(d *models.Driver) error {
	ctx := context.Background()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	id, err := nextMongoID(ctx, r.db(), "driver")
	if err != nil {
		return err
	}
	d.ID = id
	_, err = r.db().Collection("driver").InsertOne(ctx, d)
	return err
}

func (r *MongoReferenceRepo) GetDrivers() ([]*models.Driver, error) {
	ctx := context.Background()
	cur, err := r.db().Collection("driver").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*models.Driver
	for cur.Next(ctx) {
		var d models.Driver
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		result = append(result, &d)
	}
	return result, cur.Err()
}

// ------------------------ Places & Dealers ------------------------

func (r *MongoReferenceRepo) CreatePlace(p *models.Place) error {
	ctx := context.Background()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	id, err := nextMongoID(ctx, r.db(), "place")
	if err != nil {
		return err
	}
	p.ID = id
	dealers := p.Dealers
	p.Dealers = nil
	_, err = r.db().Collection("place").InsertOne(ctx, p)
	p.Dealers = dealers
	return err
}

func (r *MongoReferenceRepo) GetPlaces() ([]*models.Place, error) {
	ctx := context.Background()
	cur, err := r.db().Collection("place").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*models.Place
	for cur.Next(ctx) {
		var p models.Place
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		p.Dealers = nil
		dealerCur, err := r.db().Collection("dealer").Find(ctx, bson.M{"place_id": p.ID})
		if err != nil {
			return nil, err
		}
		for dealerCur.Next(ctx) {
			var d models.Dealer
			if err := dealerCur.Decode(&d); err != nil {
				dealerCur.Close(ctx)
				return nil, err
			}
			p.Dealers = append(p.Dealers, d)
		}
		dealerCur.Close(ctx)
		result = append(result, &p)
	}
	return result, cur.Err()
}

func (r *MongoReferenceRepo) FindPlace(name, productName string) (*models.Place, error) {
	ctx := context.Background()
	var p models.Place
	err := r.db().Collection("place").
		FindOne(ctx,
			bson.M{"name": name, "product_name": productName},
			options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}}),
		).
		Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoReferenceRepo) CreateDealer(d *models.Dealer) error {
	ctx := context.Background()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	id, err := nextMongoID(ctx, r.db(), "dealer")
	if err != nil {
		return err
	}
	d.ID = id
	_, err = r.db().Collection("dealer").InsertOne(ctx, d)
	return err
}

func (r *MongoReferenceRepo) DealerExists(placeID int64, dealerName string) (bool, error) {
	ctx := context.Background()
	count, err := r.db().Collection("dealer").
		CountDocuments(ctx, bson.M{"place_id": placeID, "name": dealerName})
	return count > 0, err
}
