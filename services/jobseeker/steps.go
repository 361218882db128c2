package jobseeker

import (
	"time"

	"karkhana/flow"
	"karkhana/models"
	"karkhana/validation"

	"go.mongodb.org/mongo-driver/bson"
)

// advancedStep keeps step updates forward only: a re-submitted earlier step
// never moves an account backwards in the wizard.
func advancedStep(stored string, next flow.Step) flow.Step {
	current, ok := flow.ParseJobSeekerStep(stored)
	if !ok {
		return next
	}
	if flow.JobSeekerStepRank(next) > flow.JobSeekerStepRank(current) {
		return next
	}
	return current
}

func stepResult(step flow.Step) *StepResult {
	return &StepResult{RegistrationStep: string(step), Route: flow.RouteFor(step)}
}

// SubmitPersonalInfo validates and stores the first step. Nothing persists
// and the step does not advance when validation fails.
func (s *DefaultJobSeekerService) SubmitPersonalInfo(userID string, req models.PersonalInfoRequest) (*StepResult, error) {
	seeker, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if seeker == nil {
		return nil, ErrNotFound
	}

	if errs := validation.PersonalInfo(req, time.Now()); !errs.Empty() {
		return nil, &validation.ValidationError{Fields: errs}
	}

	next := advancedStep(seeker.RegistrationStep, flow.NextJobSeekerStep(flow.StepPersonalInfo, req.IsFresher))
	update := bson.M{
		"name":             req.Name,
		"dob":              req.DOB,
		"address":          req.Address,
		"isFresher":        req.IsFresher,
		"registrationStep": string(next),
	}
	if err := s.Repo.UpdateSetDocument(userID, update); err != nil {
		return nil, err
	}
	return stepResult(next), nil
}

// SubmitAcademicInfo rebuilds the draft from the submitted entries so the
// secondary-qualification derivation rules apply server side, then validates
// and stores the canonical entry array.
func (s *DefaultJobSeekerService) SubmitAcademicInfo(userID string, req models.AcademicInfoRequest) (*StepResult, error) {
	seeker, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if seeker == nil {
		return nil, ErrNotFound
	}

	draft := models.DraftFromEntries(req.AcademicInfo)
	if errs := validation.AcademicInfo(draft, time.Now()); !errs.Empty() {
		return nil, &validation.ValidationError{Fields: errs}
	}

	next := advancedStep(seeker.RegistrationStep, flow.NextJobSeekerStep(flow.StepAcademicInfo, seeker.IsFresher))
	update := bson.M{
		"academicInfo":     draft.Entries(),
		"registrationStep": string(next),
	}
	if err := s.Repo.UpdateSetDocument(userID, update); err != nil {
		return nil, err
	}
	return stepResult(next), nil
}

// SubmitExperiences validates and stores the work-experience step. The
// current experience is only stored while the seeker reports active work.
func (s *DefaultJobSeekerService) SubmitExperiences(userID string, req models.ExperienceRequest) (*StepResult, error) {
	seeker, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if seeker == nil {
		return nil, ErrNotFound
	}

	if errs := validation.Experiences(req, time.Now()); !errs.Empty() {
		return nil, &validation.ValidationError{Fields: errs}
	}

	var current *models.CurrentExperience
	if req.IsCurrentlyWorking {
		c := req.CurrentExperience
		current = &c
	}

	next := advancedStep(seeker.RegistrationStep, flow.NextJobSeekerStep(flow.StepExperiences, seeker.IsFresher))
	update := bson.M{
		"pastExperiences":    req.PastExperiences,
		"isCurrentlyWorking": req.IsCurrentlyWorking,
		"salaryDrawn":        req.SalaryDrawn,
		"totalExperience":    req.TotalExperience,
		"currentExperience":  current,
		"registrationStep":   string(next),
	}
	if err := s.Repo.UpdateSetDocument(userID, update); err != nil {
		return nil, err
	}
	return stepResult(next), nil
}

// GetExperiences returns the stored past employment for form prefill.
func (s *DefaultJobSeekerService) GetExperiences(userID string) (*models.ExperiencesResponse, error) {
	seeker, err := s.Repo.GetByIDWithProjection(userID, bson.M{"pastExperiences": 1})
	if err != nil {
		return nil, err
	}
	if seeker == nil {
		return nil, ErrNotFound
	}
	return &models.ExperiencesResponse{PastExperiences: seeker.PastExperiences}, nil
}

// SubmitPreferences clamps each multi-select to the last three choices, drops
// roles no chosen industry offers, and stores the result.
func (s *DefaultJobSeekerService) SubmitPreferences(userID string, req models.PreferencesRequest) (*StepResult, error) {
	seeker, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if seeker == nil {
		return nil, ErrNotFound
	}

	prefs := req.JobPreferences
	prefs.PreferredIndustries = validation.ClampSelections(prefs.PreferredIndustries)
	prefs.PreferredLocations = validation.ClampSelections(prefs.PreferredLocations)
	prefs.PreferredRoles = validation.ClampSelections(
		validation.FilterRoles(prefs.PreferredIndustries, prefs.PreferredRoles))

	next := advancedStep(seeker.RegistrationStep, flow.NextJobSeekerStep(flow.StepPreferences, seeker.IsFresher))
	update := bson.M{
		"jobPreferences":   prefs,
		"registrationStep": string(next),
	}
	if err := s.Repo.UpdateSetDocument(userID, update); err != nil {
		return nil, err
	}
	return stepResult(next), nil
}
