package employerRepo

import (
	"context"
	"fmt"
	"time"

	"karkhana/database"
	"karkhana/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEmployerRepo implements EmployerRepository using MongoDB.
type MongoEmployerRepo struct {
	coll *mongo.Collection
}

// NewMongoEmployerRepo creates a new EmployerRepository backed by MongoDB.
func NewMongoEmployerRepo() EmployerRepository {
	coll := database.MongoClient.Database("karkhana").Collection("employers")
	repo := &MongoEmployerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEmployerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new employer document.
func (r *MongoEmployerRepo) Create(employer *models.Employer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	employer.CreatedAt = now
	employer.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, employer); err != nil {
		return fmt.Errorf("failed to create employer: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing employer document.
func (r *MongoEmployerRepo) Update(employer *models.Employer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	employer.UpdatedAt = time.Now()
	filter := bson.M{"id": employer.ID}
	update := bson.M{"$set": employer}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update employer with id %s: %w", employer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("employer with id %s not found", employer.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to an employer document.
func (r *MongoEmployerRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	update := bson.M{"$set": updateDoc}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update employer with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("employer with id %s not found", id)
	}
	return nil
}

// GetByIDWithProjection retrieves an employer by ID using a projection.
func (r *MongoEmployerRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Employer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var employer models.Employer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&employer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch employer with id %s: %w", id, err)
	}
	return &employer, nil
}

// GetByID retrieves an employer by its unique ID (full document).
func (r *MongoEmployerRepo) GetByID(id string) (*models.Employer, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByPhone retrieves an employer by phone number, nil when none exists.
func (r *MongoEmployerRepo) GetByPhone(phone string) (*models.Employer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var employer models.Employer
	if err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&employer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch employer with phone %s: %w", phone, err)
	}
	return &employer, nil
}

// GetByEmail retrieves an employer by email, nil when none exists.
func (r *MongoEmployerRepo) GetByEmail(email string) (*models.Employer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var employer models.Employer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&employer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch employer with email %s: %w", email, err)
	}
	return &employer, nil
}
