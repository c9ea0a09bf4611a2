package repository

import (
	"context"
	"errors"

	"github.com/UAShoshi/car-doctor-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ServiceRepository defines data-access operations for catalog services.
type ServiceRepository interface {
	FindAll(ctx context.Context) ([]models.Service, error)
	// FindByID returns a restricted projection of the service, or nil when
	// no document matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
}

// MongoServiceRepository implements ServiceRepository over the services collection.
type MongoServiceRepository struct {
	collection *mongo.Collection
}

// NewMongoServiceRepository creates a new MongoServiceRepository.
func NewMongoServiceRepository(db *mongo.Database) ServiceRepository {
	return &MongoServiceRepository{collection: db.Collection("services")}
}

func (r *MongoServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *MongoServiceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	opts := options.FindOne().SetProjection(bson.M{
		"title":      1,
		"price":      1,
		"service_id": 1,
		"img":        1,
	})

	var service models.Service
	err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}
