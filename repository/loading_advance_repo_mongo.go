package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ktlogistics/models"
	"ktlogistics/voucherno"
)

type MongoLoadingAdvanceRepo struct {
	DB *mongo.Client
}

func NewMongoLoadingAdvanceRepo(db *mongo.Client) *MongoLoadingAdvanceRepo {
	return &MongoLoadingAdvanceRepo{DB: db}
}

// mongoMaxSequence scans persisted voucher numbers under a branch/FY prefix.
func mongoMaxSequence(ctx context.Context, db *mongo.Database, code, fyTag string) (int, error) {
	cur, err := db.Collection("loading_advance").Find(ctx,
		bson.M{"voucher_number": primitive.Regex{Pattern: "^" + voucherno.Prefix(code, fyTag)}},
		options.Find().SetProjection(bson.M{"voucher_number": 1}),
	)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var numbers []string
	for cur.Next(ctx) {
		var doc struct {
			VoucherNumber string `bson:"voucher_number"`
		}
		if err := cur.Decode(&doc); err != nil {
			return 0, err
		}
		numbers = append(numbers, doc.VoucherNumber)
	}
	return voucherno.MaxSequence(numbers), cur.Err()
}

// nextSequence increments the per-(prefix, FY) counter atomically, seeding it
// from the legacy voucher-number scan the first time a pair allocates.
func (r *MongoLoadingAdvanceRepo) nextSequence(ctx context.Context, db *mongo.Database, code, fyTag string) (int, error) {
	key := voucherno.Prefix(code, fyTag)
	coll := db.Collection("voucher_sequence")

	count, err := coll.CountDocuments(ctx, bson.M{"_id": key})
	if err != nil {
		return 0, err
	}
	if count == 0 {
		max, err := mongoMaxSequence(ctx, db, code, fyTag)
		if err != nil {
			return 0, err
		}
		// A duplicate-key error here means another request seeded first;
		// the $inc below still allocates correctly.
		_, _ = coll.InsertOne(ctx, bson.M{"_id": key, "last_seq": max})
	}

	var doc struct {
		LastSeq int `bson:"last_seq"`
	}
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": key},
		bson.M{"$inc": bson.M{"last_seq": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.LastSeq, nil
}

func (r *MongoLoadingAdvanceRepo) PeekNextVoucherNumber(branchCode string, asOf time.Time) (string, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)
	fyTag := voucherno.FYTag(asOf)

	var doc struct {
		LastSeq int `bson:"last_seq"`
	}
	err := db.Collection("voucher_sequence").
		FindOne(ctx, bson.M{"_id": voucherno.Prefix(branchCode, fyTag)}).
		Decode(&doc)
	if err == mongo.ErrNoDocuments {
		max, err := mongoMaxSequence(ctx, db, branchCode, fyTag)
		if err != nil {
			return "", err
		}
		doc.LastSeq = max
	} else if err != nil {
		return "", err
	}

	return voucherno.Format(branchCode, fyTag, doc.LastSeq+1), nil
}

// Create runs the allocation, header insert and line inserts inside one
// session transaction so a failed line write leaves nothing behind.
func (r *MongoLoadingAdvanceRepo) Create(la *models.LoadingAdvance, branchCode string, asOf time.Time) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	session, err := r.DB.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		fyTag := voucherno.FYTag(asOf)
		seq, err := r.nextSequence(sc, db, branchCode, fyTag)
		if err != nil {
			return nil, err
		}
		la.VoucherNumber = voucherno.Format(branchCode, fyTag, seq)

		if la.CreatedAt.IsZero() {
			la.CreatedAt = time.Now().UTC()
		}

		la.ID, err = nextMongoID(sc, db, "loading_advance")
		if err != nil {
			return nil, err
		}

		// Lines live in their own collection; keep the header lean.
		lines := la.Invoices
		la.Invoices = nil
		_, err = db.Collection("loading_advance").InsertOne(sc, la)
		la.Invoices = lines
		if err != nil {
			return nil, err
		}

		for i := range la.Invoices {
			inv := &la.Invoices[i]
			inv.LoadingAdvanceID = la.ID
			inv.ID, err = nextMongoID(sc, db, "loading_advance_invoice")
			if err != nil {
				return nil, err
			}
			if _, err := db.Collection("loading_advance_invoice").InsertOne(sc, inv); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return err
}

func (r *MongoLoadingAdvanceRepo) GetAll() ([]*models.LoadingAdvance, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	cur, err := db.Collection("loading_advance").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*models.LoadingAdvance
	for cur.Next(ctx) {
		var la models.LoadingAdvance
		if err := cur.Decode(&la); err != nil {
			return nil, err
		}
		la.Invoices = nil
		result = append(result, &la)
	}
	return result, cur.Err()
}

func (r *MongoLoadingAdvanceRepo) GetInvoices(loadingAdvanceID int64) ([]models.LoadingAdvanceInvoice, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	var parent struct {
		InvoiceDate time.Time `bson:"invoice_date"`
	}
	err := db.Collection("loading_advance").
		FindOne(ctx, bson.M{"_id": loadingAdvanceID}).
		Decode(&parent)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cur, err := db.Collection("loading_advance_invoice").Find(ctx,
		bson.M{"loading_advance_id": loadingAdvanceID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []models.LoadingAdvanceInvoice
	for cur.Next(ctx) {
		var inv models.LoadingAdvanceInvoice
		if err := cur.Decode(&inv); err != nil {
			return nil, err
		}
		d := parent.InvoiceDate
		inv.InvoiceDate = &d
		result = append(result, inv)
	}
	return result, cur.Err()
}
