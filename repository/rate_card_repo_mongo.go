package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ktlogistics/models"
)

type MongoRateCardRepo struct {
	DB *mongo.Client
}

func NewMongoRateCardRepo(db *mongo.Client) *MongoRateCardRepo {
	return &MongoRateCardRepo{DB: db}
}

func (r *MongoRateCardRepo) Create(rc *models.RateCard) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	rc.ApplyDefaults()
	if rc.CreatedAt.IsZero() {
		rc.CreatedAt = time.Now().UTC()
	}
	id, err := nextMongoID(ctx, db, "rate_card")
	if err != nil {
		return err
	}
	rc.ID = id
	_, err = db.Collection("rate_card").InsertOne(ctx, rc)
	return err
}

func (r *MongoRateCardRepo) GetAll() ([]*models.RateCard, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	cur, err := db.Collection("rate_card").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{
			{Key: "vehicle_type", Value: 1},
			{Key: "vehicle_sub_type", Value: 1},
			{Key: "vehicle_body_type", Value: 1},
		}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*models.RateCard
	for cur.Next(ctx) {
		var rc models.RateCard
		if err := cur.Decode(&rc); err != nil {
			return nil, err
		}
		result = append(result, &rc)
	}
	return result, cur.Err()
}

func (r *MongoRateCardRepo) FindByVehicleClass(vehicleType, vehicleSubType, vehicleBodyType string) (*models.RateCard, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	var rc models.RateCard
	err := db.Collection("rate_card").
		FindOne(ctx, bson.M{
			"vehicle_type":      vehicleType,
			"vehicle_sub_type":  vehicleSubType,
			"vehicle_body_type": vehicleBodyType,
		}).
		Decode(&rc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

func (r *MongoRateCardRepo) AttachToPlace(placeID, rateCardID int64) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	_, err := db.Collection("place_rate_card").UpdateOne(ctx,
		bson.M{"place_id": placeID, "rate_card_id": rateCardID},
		bson.M{"$setOnInsert": bson.M{"place_id": placeID, "rate_card_id": rateCardID}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *MongoRateCardRepo) GetByPlace(placeID int64) ([]*models.RateCard, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	cur, err := db.Collection("place_rate_card").Find(ctx, bson.M{"place_id": placeID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ids []int64
	for cur.Next(ctx) {
		var link struct {
			RateCardID int64 `bson:"rate_card_id"`
		}
		if err := cur.Decode(&link); err != nil {
			return nil, err
		}
		ids = append(ids, link.RateCardID)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	cardCur, err := db.Collection("rate_card").Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cardCur.Close(ctx)

	var result []*models.RateCard
	for cardCur.Next(ctx) {
		var rc models.RateCard
		if err := cardCur.Decode(&rc); err != nil {
			return nil, err
		}
		result = append(result, &rc)
	}
	return result, cardCur.Err()
}
