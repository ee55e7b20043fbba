package staffRepo

import (
	"context"
	"fmt"
	"time"

	"clinicsched/config"
	"clinicsched/database"
	"clinicsched/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStaffRepo is the MongoDB-backed implementation.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo returns a repository over the "staff" collection.
func NewMongoStaffRepo() *MongoStaffRepo {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("staff")
	return &MongoStaffRepo{coll: coll}
}

func (repo *MongoStaffRepo) Create(ctx context.Context, staff *models.Staff) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("failed to insert staff member: %w", err)
	}
	return nil
}

func (repo *MongoStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	return repo.findOne(ctx, bson.M{"id": id})
}

func (repo *MongoStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

func (repo *MongoStaffRepo) findOne(ctx context.Context, filter bson.M) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var staff models.Staff
	if err := repo.coll.FindOne(ctx, filter).Decode(&staff); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff member: %w", err)
	}
	return &staff, nil
}

func (repo *MongoStaffRepo) List(ctx context.Context) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "display_name", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return staff, nil
}

func (repo *MongoStaffRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete staff member %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("staff member %s not found", id)
	}
	return nil
}
