package jobseeker

import (
	"errors"
	"testing"

	"karkhana/flow"
	"karkhana/models"
	"karkhana/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeSeekerRepo struct {
	seekers map[string]*models.JobSeeker
	updates []bson.M
}

func newFakeSeekerRepo(seekers ...*models.JobSeeker) *fakeSeekerRepo {
	repo := &fakeSeekerRepo{seekers: make(map[string]*models.JobSeeker)}
	for _, s := range seekers {
		repo.seekers[s.ID] = s
	}
	return repo
}

func (r *fakeSeekerRepo) Create(seeker *models.JobSeeker) error {
	r.seekers[seeker.ID] = seeker
	return nil
}

func (r *fakeSeekerRepo) Update(seeker *models.JobSeeker) error {
	r.seekers[seeker.ID] = seeker
	return nil
}

func (r *fakeSeekerRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	if _, ok := r.seekers[id]; !ok {
		return errors.New("not found")
	}
	r.updates = append(r.updates, updateDoc)
	if step, ok := updateDoc["registrationStep"].(string); ok {
		r.seekers[id].RegistrationStep = step
	}
	return nil
}

func (r *fakeSeekerRepo) GetByID(id string) (*models.JobSeeker, error) {
	return r.seekers[id], nil
}

func (r *fakeSeekerRepo) GetByIDWithProjection(id string, projection bson.M) (*models.JobSeeker, error) {
	return r.seekers[id], nil
}

func (r *fakeSeekerRepo) GetByPhone(phone string) (*models.JobSeeker, error) {
	for _, s := range r.seekers {
		if s.Phone == phone {
			return s, nil
		}
	}
	return nil, nil
}

func seekerAt(step flow.Step) *models.JobSeeker {
	return &models.JobSeeker{ID: "js-1", Phone: "9876543210", RegistrationStep: string(step)}
}

func validPersonalInfo() models.PersonalInfoRequest {
	return models.PersonalInfoRequest{
		Name:    "Ravi Kumar",
		DOB:     "15/06/2000",
		Address: "12 MG Road, Gurugram, Haryana, 122001",
	}
}

func TestSubmitPersonalInfoAdvancesStep(t *testing.T) {
	repo := newFakeSeekerRepo(seekerAt(flow.StepPersonalInfo))
	svc := &DefaultJobSeekerService{Repo: repo}

	result, err := svc.SubmitPersonalInfo("js-1", validPersonalInfo())
	require.NoError(t, err)
	assert.Equal(t, string(flow.StepAcademicInfo), result.RegistrationStep)
	assert.Equal(t, "/AcademicInfo", result.Route)

	require.Len(t, repo.updates, 1)
	update := repo.updates[0]
	assert.Equal(t, "Ravi Kumar", update["name"])
	assert.Equal(t, string(flow.StepAcademicInfo), update["registrationStep"])
}

func TestSubmitPersonalInfoValidationFailurePersistsNothing(t *testing.T) {
	repo := newFakeSeekerRepo(seekerAt(flow.StepPersonalInfo))
	svc := &DefaultJobSeekerService{Repo: repo}

	_, err := svc.SubmitPersonalInfo("js-1", models.PersonalInfoRequest{})
	var vErr *validation.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Name is required", vErr.Fields["name"])
	assert.Empty(t, repo.updates)
	assert.Equal(t, string(flow.StepPersonalInfo), repo.seekers["js-1"].RegistrationStep)
}

func TestSubmitPersonalInfoNeverMovesBackwards(t *testing.T) {
	repo := newFakeSeekerRepo(seekerAt(flow.StepPreferences))
	svc := &DefaultJobSeekerService{Repo: repo}

	result, err := svc.SubmitPersonalInfo("js-1", validPersonalInfo())
	require.NoError(t, err)
	assert.Equal(t, string(flow.StepPreferences), result.RegistrationStep)
}

func TestSubmitAcademicInfoFresherSkipsExperiences(t *testing.T) {
	seeker := seekerAt(flow.StepAcademicInfo)
	seeker.IsFresher = true
	repo := newFakeSeekerRepo(seeker)
	svc := &DefaultJobSeekerService{Repo: repo}

	result, err := svc.SubmitAcademicInfo("js-1", models.AcademicInfoRequest{
		AcademicInfo: []models.AcademicEntry{{
			QualificationType: "10th",
			InstituteName:     "City School",
			Specialization:    "General",
			PassingYear:       "2016",
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, string(flow.StepPreferences), result.RegistrationStep)
	assert.Equal(t, "/Preferences", result.Route)
}

func TestSubmitExperiencesStoresCurrentOnlyWhileWorking(t *testing.T) {
	repo := newFakeSeekerRepo(seekerAt(flow.StepExperiences))
	svc := &DefaultJobSeekerService{Repo: repo}

	_, err := svc.SubmitExperiences("js-1", models.ExperienceRequest{
		TotalExperience: "3 years",
		SalaryDrawn:     15000,
		PastExperiences: []models.ExperienceEntry{{
			StartMonthYear:    "01/2020",
			LastMonthYear:     "06/2022",
			EstablishmentName: "Sharma Textiles",
			CurrentIndustry:   "Textile Industry",
			Role:              "Weaver",
		}},
		CurrentExperience: models.CurrentExperience{EstablishmentName: "leftover client state"},
	})
	require.NoError(t, err)
	require.Len(t, repo.updates, 1)
	assert.Nil(t, repo.updates[0]["currentExperience"])
}

func TestSubmitPreferencesClampsAndFilters(t *testing.T) {
	repo := newFakeSeekerRepo(seekerAt(flow.StepPreferences))
	svc := &DefaultJobSeekerService{Repo: repo}

	result, err := svc.SubmitPreferences("js-1", models.PreferencesRequest{
		JobPreferences: models.JobPreferences{
			PreferredIndustries: []string{"Textile Industry"},
			PreferredRoles:      []string{"Weaver", "CNC Operator", "Spinner"},
			PreferredLocations:  []string{"Delhi NCR", "Haryana", "Rajasthan", "Uttarakhand"},
			ExpectedSalaries:    18000,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, string(flow.StepIntroVideo), result.RegistrationStep)

	stored := repo.updates[0]["jobPreferences"].(models.JobPreferences)
	assert.Equal(t, []string{"Weaver", "Spinner"}, stored.PreferredRoles)
	assert.Equal(t, []string{"Haryana", "Rajasthan", "Uttarakhand"}, stored.PreferredLocations)
}

func TestSubmitPreferencesAcceptsStoredIndustryCodes(t *testing.T) {
	repo := newFakeSeekerRepo(seekerAt(flow.StepPreferences))
	svc := &DefaultJobSeekerService{Repo: repo}

	// The deployed client maps industry display names to codes before
	// submitting; roles chosen under those industries must survive.
	_, err := svc.SubmitPreferences("js-1", models.PreferencesRequest{
		JobPreferences: models.JobPreferences{
			PreferredIndustries: []string{"TEXTILE"},
			PreferredRoles:      []string{"Weaver", "Spinner"},
			PreferredLocations:  []string{"Delhi NCR"},
			ExpectedSalaries:    18000,
		},
	})
	require.NoError(t, err)

	stored := repo.updates[0]["jobPreferences"].(models.JobPreferences)
	assert.Equal(t, []string{"Weaver", "Spinner"}, stored.PreferredRoles)
	assert.Equal(t, []string{"TEXTILE"}, stored.PreferredIndustries)
}

func TestGetExperiences(t *testing.T) {
	seeker := seekerAt(flow.StepPreferences)
	seeker.PastExperiences = []models.ExperienceEntry{{EstablishmentName: "Sharma Textiles"}}
	repo := newFakeSeekerRepo(seeker)
	svc := &DefaultJobSeekerService{Repo: repo}

	resp, err := svc.GetExperiences("js-1")
	require.NoError(t, err)
	require.Len(t, resp.PastExperiences, 1)
	assert.Equal(t, "Sharma Textiles", resp.PastExperiences[0].EstablishmentName)
}

func TestStepSubmissionUnknownAccount(t *testing.T) {
	svc := &DefaultJobSeekerService{Repo: newFakeSeekerRepo()}
	_, err := svc.SubmitPersonalInfo("missing", validPersonalInfo())
	assert.ErrorIs(t, err, ErrNotFound)
}
