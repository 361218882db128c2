package employer

import (
	"context"

	"karkhana/flow"
	"karkhana/models"
	"karkhana/services/storage"
	"karkhana/utils"
	"karkhana/validation"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// advancedStep keeps step updates forward only, matching the job-seeker side.
func advancedStep(stored string, next flow.Step) flow.Step {
	current, ok := flow.ParseEmployerStep(stored)
	if !ok {
		return next
	}
	if flow.EmployerStepRank(next) > flow.EmployerStepRank(current) {
		return next
	}
	return current
}

func stepResult(step flow.Step) *StepResult {
	return &StepResult{RegistrationStep: string(step), Route: flow.RouteFor(step)}
}

// Register stores the employer basic details. The submitted GSTIN must match
// the one verified server side; the verification expires with its cache entry
// and a registration after that point fails the gstin field again.
func (s *DefaultEmployerService) Register(employerID string, req models.EmployerRegisterRequest) (*StepResult, error) {
	employer, err := s.Repo.GetByID(employerID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, ErrNotFound
	}

	verification := s.cachedVerification(context.Background(), employerID)
	gstVerified := verification != nil && verification.GSTIN == req.GSTIN
	errs := validation.EmployerRegistration(req, gstVerified)
	if _, taken := errs["email"]; !taken {
		existing, err := s.Repo.GetByEmail(req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != employerID {
			errs.Add("email", "Email is already registered")
		}
	}
	if !errs.Empty() {
		return nil, &validation.ValidationError{Fields: errs}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	next := advancedStep(employer.RegistrationStep, flow.NextEmployerStep(flow.StepBasicInfo))
	update := bson.M{
		"gstin":            req.GSTIN,
		"email":            req.Email,
		"passwordHash":     string(passwordHash),
		"companyName":      req.CompanyName,
		"industry":         req.Industry,
		"address":          req.Address,
		"registrationStep": string(next),
	}
	if err := s.Repo.UpdateSetDocument(employerID, update); err != nil {
		return nil, err
	}
	return stepResult(next), nil
}

// SubmitContactInfo stores the contact step and an optional company logo,
// completing the employer registration.
func (s *DefaultEmployerService) SubmitContactInfo(employerID string, req models.ContactInfoRequest, logo *LogoUpload) (*StepResult, error) {
	employer, err := s.Repo.GetByID(employerID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, ErrNotFound
	}

	errs := validation.ContactInfo(req)
	if logo != nil {
		errs.Add("companyLogo", validation.CompanyLogo(logo.Size))
	}
	if !errs.Empty() {
		return nil, &validation.ValidationError{Fields: errs}
	}

	next := advancedStep(employer.RegistrationStep, flow.NextEmployerStep(flow.StepCompanyInfo))
	update := bson.M{
		"contactPersonName":        req.ContactPersonName,
		"contactPersonPhone":       req.ContactPersonPhone,
		"contactPersonDesignation": req.ContactPersonDesignation,
		"contactPersonEmail":       req.ContactPersonEmail,
		"companyDescription":       req.CompanyDescription,
		"registrationStep":         string(next),
	}
	var logoID string
	if logo != nil {
		logoID, err = s.Storage.UploadFile(context.Background(), logo.Path, storage.CompanyLogoFolder)
		if err != nil {
			return nil, err
		}
		update["companyLogoId"] = logoID
	}
	if err := s.Repo.UpdateSetDocument(employerID, update); err != nil {
		return nil, err
	}

	result := stepResult(next)
	if logoID != "" {
		url, err := s.Storage.GetDownloadURL(context.Background(), "image", logoID, 0)
		if err != nil {
			utils.GetLogger().Warn("Failed to build company logo URL", zap.Error(err))
		} else {
			result.CompanyLogoURL = url
		}
	}
	return result, nil
}
