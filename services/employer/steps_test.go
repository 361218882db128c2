package employer

import (
	"context"
	"errors"
	"testing"
	"time"

	"karkhana/flow"
	"karkhana/models"
	"karkhana/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeEmployerRepo struct {
	employers map[string]*models.Employer
	updates   []bson.M
}

func newFakeEmployerRepo(employers ...*models.Employer) *fakeEmployerRepo {
	repo := &fakeEmployerRepo{employers: make(map[string]*models.Employer)}
	for _, e := range employers {
		repo.employers[e.ID] = e
	}
	return repo
}

func (r *fakeEmployerRepo) Create(employer *models.Employer) error {
	r.employers[employer.ID] = employer
	return nil
}

func (r *fakeEmployerRepo) Update(employer *models.Employer) error {
	r.employers[employer.ID] = employer
	return nil
}

func (r *fakeEmployerRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	if _, ok := r.employers[id]; !ok {
		return errors.New("not found")
	}
	r.updates = append(r.updates, updateDoc)
	if step, ok := updateDoc["registrationStep"].(string); ok {
		r.employers[id].RegistrationStep = step
	}
	return nil
}

func (r *fakeEmployerRepo) GetByID(id string) (*models.Employer, error) {
	return r.employers[id], nil
}

func (r *fakeEmployerRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Employer, error) {
	return r.employers[id], nil
}

func (r *fakeEmployerRepo) GetByPhone(phone string) (*models.Employer, error) {
	for _, e := range r.employers {
		if e.Phone == phone {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployerRepo) GetByEmail(email string) (*models.Employer, error) {
	for _, e := range r.employers {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, nil
}

func employerAt(step flow.Step) *models.Employer {
	return &models.Employer{ID: "emp-1", Phone: "9876543210", RegistrationStep: string(step)}
}

func validContactInfo() models.ContactInfoRequest {
	return models.ContactInfoRequest{
		ContactPersonName:        "Anita Sharma",
		ContactPersonPhone:       "9876543210",
		ContactPersonDesignation: "HR Manager",
		CompanyDescription:       "Textile manufacturer in Gurugram",
	}
}

func TestSubmitContactInfoCompletesRegistration(t *testing.T) {
	repo := newFakeEmployerRepo(employerAt(flow.StepCompanyInfo))
	svc := &DefaultEmployerService{Repo: repo}

	result, err := svc.SubmitContactInfo("emp-1", validContactInfo(), nil)
	require.NoError(t, err)
	assert.Equal(t, string(flow.StepCompleted), result.RegistrationStep)
	assert.Equal(t, "/home", result.Route)

	require.Len(t, repo.updates, 1)
	update := repo.updates[0]
	assert.Equal(t, "Anita Sharma", update["contactPersonName"])
	assert.NotContains(t, update, "companyLogoId")
}

func TestSubmitContactInfoValidationFailure(t *testing.T) {
	repo := newFakeEmployerRepo(employerAt(flow.StepCompanyInfo))
	svc := &DefaultEmployerService{Repo: repo}

	req := validContactInfo()
	req.ContactPersonPhone = "12345"
	req.ContactPersonEmail = "not-an-email"
	_, err := svc.SubmitContactInfo("emp-1", req, nil)

	var vErr *validation.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please enter a valid 10-digit phone number", vErr.Fields["contactPersonPhone"])
	assert.Equal(t, "Please enter a valid email address", vErr.Fields["contactPersonEmail"])
	assert.Empty(t, repo.updates)
}

type fakeLogoStorage struct {
	uploads []string
}

func (f *fakeLogoStorage) UploadFile(_ context.Context, _, destFolder string) (string, error) {
	id := destFolder + "/logo-1"
	f.uploads = append(f.uploads, id)
	return id, nil
}

func (f *fakeLogoStorage) DeleteFile(_ context.Context, _ string) error { return nil }

func (f *fakeLogoStorage) GetDownloadURL(_ context.Context, resourceType, publicID string, _ time.Duration) (string, error) {
	return "https://cdn.test/" + resourceType + "/" + publicID, nil
}

func TestSubmitContactInfoUploadsLogo(t *testing.T) {
	repo := newFakeEmployerRepo(employerAt(flow.StepCompanyInfo))
	store := &fakeLogoStorage{}
	svc := &DefaultEmployerService{Repo: repo, Storage: store}

	logo := &LogoUpload{Path: "/tmp/logo.png", Size: 256 * 1024}
	result, err := svc.SubmitContactInfo("emp-1", validContactInfo(), logo)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/image/company_logos/logo-1", result.CompanyLogoURL)

	require.Len(t, repo.updates, 1)
	assert.Equal(t, "company_logos/logo-1", repo.updates[0]["companyLogoId"])
}

func TestSubmitContactInfoOversizedLogo(t *testing.T) {
	repo := newFakeEmployerRepo(employerAt(flow.StepCompanyInfo))
	svc := &DefaultEmployerService{Repo: repo}

	logo := &LogoUpload{Path: "/tmp/logo.png", Size: validation.MaxLogoFileBytes + 1}
	_, err := svc.SubmitContactInfo("emp-1", validContactInfo(), logo)

	var vErr *validation.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please select an image that is smaller than 20MB.", vErr.Fields["companyLogo"])
	assert.Empty(t, repo.updates)
}

func TestSubmitContactInfoUnknownAccount(t *testing.T) {
	svc := &DefaultEmployerService{Repo: newFakeEmployerRepo()}
	_, err := svc.SubmitContactInfo("missing", validContactInfo(), nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
