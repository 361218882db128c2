package jobseekerRepo

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

// MongoJobSeekerRepo implements JobSeekerRepository using MongoDB.
type MongoJobSeekerRepo struct {
	coll *mongo.Collection
}

// NewMongoJobSeekerRepo creates a new JobSeekerRepository backed by MongoDB.
func NewMongoJobSeekerRepo() JobSeekerRepository {
	coll := database.MongoClient.Database("karkhana").Collection("job_seekers")
	repo := &MongoJobSeekerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoJobSeekerRepo) ensureIndexes() error {
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

// Create inserts a new job-seeker document.
func (r *MongoJobSeekerRepo) Create(seeker *models.JobSeeker) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	seeker.CreatedAt = now
	seeker.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, seeker); err != nil {
		return fmt.Errorf("failed to create job seeker: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing job-seeker document.
func (r *MongoJobSeekerRepo) Update(seeker *models.JobSeeker) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	seeker.UpdatedAt = time.Now()
	filter := bson.M{"id": seeker.ID}
	update := bson.M{"$set": seeker}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update job seeker with id %s: %w", seeker.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("job seeker with id %s not found", seeker.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to a job-seeker document.
func (r *MongoJobSeekerRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	update := bson.M{"$set": updateDoc}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update job seeker with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("job seeker with id %s not found", id)
	}
	return nil
}

// GetByIDWithProjection retrieves a job seeker by ID using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoJobSeekerRepo) GetByIDWithProjection(id string, projection bson.M) (*models.JobSeeker, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var seeker models.JobSeeker
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&seeker); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch job seeker with id %s: %w", id, err)
	}
	return &seeker, nil
}

// GetByID retrieves a job seeker by its unique ID (full document).
func (r *MongoJobSeekerRepo) GetByID(id string) (*models.JobSeeker, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByPhone retrieves a job seeker by phone number, nil when none exists.
func (r *MongoJobSeekerRepo) GetByPhone(phone string) (*models.JobSeeker, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var seeker models.JobSeeker
	if err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&seeker); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch job seeker with phone %s: %w", phone, err)
	}
	return &seeker, nil
}
