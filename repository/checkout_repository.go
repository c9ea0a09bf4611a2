package repository

import (
	"context"

	"github.com/UAShoshi/car-doctor-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CheckoutRepository defines data-access operations for checkout records.
type CheckoutRepository interface {
	FindByEmail(ctx context.Context, email string) ([]models.Checkout, error)
	Insert(ctx context.Context, checkout *models.Checkout) (primitive.ObjectID, error)
	// UpdateStatus sets only the status field and reports matched and
	// modified counts; a zero matched count is not an error.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (matched, modified int64, err error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MongoCheckoutRepository implements CheckoutRepository over the checkouts collection.
type MongoCheckoutRepository struct {
	collection *mongo.Collection
}

// NewMongoCheckoutRepository creates a new MongoCheckoutRepository.
func NewMongoCheckoutRepository(db *mongo.Database) CheckoutRepository {
	return &MongoCheckoutRepository{collection: db.Collection("checkouts")}
}

func (r *MongoCheckoutRepository) FindByEmail(ctx context.Context, email string) ([]models.Checkout, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checkouts []models.Checkout
	if err := cursor.All(ctx, &checkouts); err != nil {
		return nil, err
	}
	return checkouts, nil
}

func (r *MongoCheckoutRepository) Insert(ctx context.Context, checkout *models.Checkout) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, checkout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, nil
	}
	return oid, nil
}

func (r *MongoCheckoutRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, int64, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *MongoCheckoutRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
