package employer

import (
	employerRepo "karkhana/database/repository/employer"
	"karkhana/models"
	"karkhana/services/storage"
	"karkhana/services/verify"
)

// AuthResponse is returned after a successful OTP verification.
type AuthResponse struct {
	Token string           `json:"token"`
	User  *models.Employer `json:"user"`
}

// StepResult reports where the wizard stands after a successful submission.
type StepResult struct {
	RegistrationStep string `json:"registrationStep"`
	Route            string `json:"route"`
	CompanyLogoURL   string `json:"companyLogoUrl,omitempty"`
}

// GSTVerification is the outcome of a GSTIN lookup, cached server side so the
// registration step can trust it without repeating the provider call.
type GSTVerification struct {
	GSTIN string          `json:"gstin"`
	Info  *models.GSTInfo `json:"info"`
}

// LogoUpload points at a received multipart file on local disk.
type LogoUpload struct {
	Path string
	Size int64
}

// EmployerService drives the employer registration wizard.
type EmployerService interface {
	InitiateRegistration(phone string) (string, error)
	VerifyLoginOTP(employerID, otp string) (*AuthResponse, error)
	VerifyGSTIN(employerID, gstin string) (*GSTVerification, error)
	Register(employerID string, req models.EmployerRegisterRequest) (*StepResult, error)
	SubmitContactInfo(employerID string, req models.ContactInfoRequest, logo *LogoUpload) (*StepResult, error)
}

// DefaultEmployerService is the production implementation.
type DefaultEmployerService struct {
	Repo    employerRepo.EmployerRepository
	GST     *verify.GSTClient
	Tracker *verify.Tracker
	Storage storage.StorageService
	Cache   VerificationCache
}
