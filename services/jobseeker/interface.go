package jobseeker

import (
	jobseekerRepo "karkhana/database/repository/jobseeker"
	"karkhana/models"
	"karkhana/services/storage"
)

// AuthResponse is returned after a successful OTP verification.
type AuthResponse struct {
	Token string            `json:"token"`
	User  *models.JobSeeker `json:"user"`
}

// StepResult reports where the wizard stands after a successful submission.
// The media step also returns delivery URLs for what it stored.
type StepResult struct {
	RegistrationStep string `json:"registrationStep"`
	Route            string `json:"route"`
	ProfilePhotoURL  string `json:"profilePhotoUrl,omitempty"`
	IntroVideoURL    string `json:"introVideoUrl,omitempty"`
}

// MediaUpload points at a received multipart file on local disk.
type MediaUpload struct {
	Path string
	Size int64
}

// ProfileMediaRequest carries the final job-seeker step's uploads. The photo
// is mandatory, the intro video optional.
type ProfileMediaRequest struct {
	Photo *MediaUpload
	Video *MediaUpload
}

// JobSeekerService drives the job-seeker registration wizard.
type JobSeekerService interface {
	InitiateRegistration(phone string) (string, error)
	VerifyLoginOTP(userID, otp string) (*AuthResponse, error)
	SubmitPersonalInfo(userID string, req models.PersonalInfoRequest) (*StepResult, error)
	SubmitAcademicInfo(userID string, req models.AcademicInfoRequest) (*StepResult, error)
	SubmitExperiences(userID string, req models.ExperienceRequest) (*StepResult, error)
	GetExperiences(userID string) (*models.ExperiencesResponse, error)
	SubmitPreferences(userID string, req models.PreferencesRequest) (*StepResult, error)
	SubmitProfileMedia(userID string, req ProfileMediaRequest) (*StepResult, error)
}

// DefaultJobSeekerService is the production implementation.
type DefaultJobSeekerService struct {
	Repo    jobseekerRepo.JobSeekerRepository
	Storage storage.StorageService
}
