package employerRepo

import (
	"karkhana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// EmployerRepository abstracts employer persistence.
type EmployerRepository interface {
	Create(employer *models.Employer) error
	Update(employer *models.Employer) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	GetByID(id string) (*models.Employer, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.Employer, error)
	GetByPhone(phone string) (*models.Employer, error)
	GetByEmail(email string) (*models.Employer, error)
}
