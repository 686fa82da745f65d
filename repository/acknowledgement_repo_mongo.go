package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ktlogistics/models"
)

type MongoAcknowledgementRepo struct {
	DB *mongo.Client
}

func NewMongoAcknowledgementRepo(db *mongo.Client) *MongoAcknowledgementRepo {
	return &MongoAcknowledgementRepo{DB: db}
}

func (r *MongoAcknowledgementRepo) GetVoucherForAck(loadingAdvanceID int64) (*models.LoadingAdvance, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	var la models.LoadingAdvance
	err := db.Collection("loading_advance").
		FindOne(ctx, bson.M{"_id": loadingAdvanceID}).
		Decode(&la)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	la.Invoices = nil

	cur, err := db.Collection("loading_advance_invoice").Find(ctx,
		bson.M{"loading_advance_id": loadingAdvanceID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var inv models.LoadingAdvanceInvoice
		if err := cur.Decode(&inv); err != nil {
			return nil, err
		}
		la.Invoices = append(la.Invoices, inv)
	}
	return &la, cur.Err()
}

func (r *MongoAcknowledgementRepo) LatestStatus(loadingAdvanceID int64) (models.VoucherStatus, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	var ack models.Acknowledgement
	err := db.Collection("acknowledgement").
		FindOne(ctx,
			bson.M{"loading_advance_id": loadingAdvanceID},
			options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}),
		).
		Decode(&ack)
	if err == mongo.ErrNoDocuments {
		return models.VoucherPending, nil
	}
	if err != nil {
		return "", err
	}
	return ack.Status, nil
}

// Create inserts the acknowledgement with its item decisions embedded in the
// same document, so the record lands in a single write.
func (r *MongoAcknowledgementRepo) Create(ack *models.Acknowledgement) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	if ack.CreatedAt.IsZero() {
		ack.CreatedAt = time.Now().UTC()
	}

	id, err := nextMongoID(ctx, db, "acknowledgement")
	if err != nil {
		return err
	}
	ack.ID = id
	for i := range ack.Items {
		ack.Items[i].AcknowledgementID = id
		ack.Items[i].ID, err = nextMongoID(ctx, db, "acknowledgement_item")
		if err != nil {
			return err
		}
	}

	_, err = db.Collection("acknowledgement").InsertOne(ctx, ack)
	return err
}

func (r *MongoAcknowledgementRepo) GetAll() ([]*models.Acknowledgement, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	cur, err := db.Collection("acknowledgement").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*models.Acknowledgement
	for cur.Next(ctx) {
		var ack models.Acknowledgement
		if err := cur.Decode(&ack); err != nil {
			return nil, err
		}
		if ack.VoucherNumber == "" {
			var la struct {
				VoucherNumber string `bson:"voucher_number"`
			}
			_ = db.Collection("loading_advance").
				FindOne(ctx, bson.M{"_id": ack.LoadingAdvanceID}).
				Decode(&la)
			ack.VoucherNumber = la.VoucherNumber
		}
		result = append(result, &ack)
	}
	return result, cur.Err()
}
