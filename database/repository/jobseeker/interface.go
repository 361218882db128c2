package jobseekerRepo

import (
	"karkhana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// JobSeekerRepository abstracts job-seeker persistence.
type JobSeekerRepository interface {
	Create(seeker *models.JobSeeker) error
	Update(seeker *models.JobSeeker) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	GetByID(id string) (*models.JobSeeker, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.JobSeeker, error)
	GetByPhone(phone string) (*models.JobSeeker, error)
}
