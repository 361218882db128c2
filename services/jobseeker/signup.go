package jobseeker

import (
	"context"
	"time"

	"karkhana/flow"
	"karkhana/models"
	"karkhana/tasks"
	"karkhana/utils"
	"karkhana/validation"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const tokenLifetime = 72 * time.Hour

// InitiateRegistration looks up or creates the job seeker for the given phone
// number and queues an OTP delivery. Returns the account id the client must
// echo back on verification.
func (s *DefaultJobSeekerService) InitiateRegistration(phone string) (string, error) {
	if msg := validation.Phone(phone); msg != "" {
		return "", &validation.ValidationError{Fields: validation.Errors{"phone": msg}}
	}

	seeker, err := s.Repo.GetByPhone(phone)
	if err != nil {
		return "", err
	}
	if seeker == nil {
		now := time.Now()
		seeker = &models.JobSeeker{
			ID:               uuid.NewString(),
			Phone:            phone,
			RegistrationStep: string(flow.StepPersonalInfo),
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := s.Repo.Create(seeker); err != nil {
			return "", err
		}
	}

	message, err := utils.InitiateLoginOTP(seeker.ID, phone)
	if err != nil {
		return "", err
	}
	if err := tasks.EnqueueOTPDelivery(phone, message); err != nil {
		utils.GetLogger().Error("Failed to enqueue OTP delivery", zap.Error(err), zap.String("jobSeekerID", seeker.ID))
		return "", err
	}
	return seeker.ID, nil
}

// VerifyLoginOTP checks the OTP, issues a session token, and caches its hash
// so subsequent requests skip the database on the auth path.
func (s *DefaultJobSeekerService) VerifyLoginOTP(userID, otp string) (*AuthResponse, error) {
	seeker, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if seeker == nil {
		return nil, ErrNotFound
	}

	if err := utils.VerifyLoginOTPRecord(userID, otp); err != nil {
		utils.GetLogger().Info("OTP verification rejected", zap.String("jobSeekerID", userID), zap.Error(err))
		return nil, ErrOTPInvalid
	}

	token, err := utils.GenerateToken(seeker.ID, "job_seeker", tokenLifetime)
	if err != nil {
		return nil, err
	}
	hash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(seeker.ID, bson.M{"tokenHash": hash}); err != nil {
		return nil, err
	}
	seeker.TokenHash = hash

	cacheKey := utils.AuthCachePrefix + seeker.ID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, hash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache auth token hash", zap.Error(err))
	}

	return &AuthResponse{Token: token, User: seeker}, nil
}
