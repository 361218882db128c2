package employer

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

// InitiateRegistration looks up or creates the employer for the given phone
// number and queues an OTP delivery. Returns the account id the client must
// echo back on verification.
func (s *DefaultEmployerService) InitiateRegistration(phone string) (string, error) {
	if msg := validation.Phone(phone); msg != "" {
		return "", &validation.ValidationError{Fields: validation.Errors{"phone": msg}}
	}

	employer, err := s.Repo.GetByPhone(phone)
	if err != nil {
		return "", err
	}
	if employer == nil {
		now := time.Now()
		employer = &models.Employer{
			ID:               uuid.NewString(),
			Phone:            phone,
			RegistrationStep: string(flow.StepBasicInfo),
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := s.Repo.Create(employer); err != nil {
			return "", err
		}
	}

	message, err := utils.InitiateLoginOTP(employer.ID, phone)
	if err != nil {
		return "", err
	}
	if err := tasks.EnqueueOTPDelivery(phone, message); err != nil {
		utils.GetLogger().Error("Failed to enqueue OTP delivery", zap.Error(err), zap.String("employerID", employer.ID))
		return "", err
	}
	return employer.ID, nil
}

// VerifyLoginOTP checks the OTP, issues a session token, and caches its hash
// for the auth middleware's fast path.
func (s *DefaultEmployerService) VerifyLoginOTP(employerID, otp string) (*AuthResponse, error) {
	employer, err := s.Repo.GetByID(employerID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, ErrNotFound
	}

	if err := utils.VerifyLoginOTPRecord(employerID, otp); err != nil {
		utils.GetLogger().Info("OTP verification rejected", zap.String("employerID", employerID), zap.Error(err))
		return nil, ErrOTPInvalid
	}

	token, err := utils.GenerateToken(employer.ID, "employer", tokenLifetime)
	if err != nil {
		return nil, err
	}
	hash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(employer.ID, bson.M{"tokenHash": hash}); err != nil {
		return nil, err
	}
	employer.TokenHash = hash

	cacheKey := utils.AuthCachePrefix + employer.ID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, hash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache auth token hash", zap.Error(err))
	}

	return &AuthResponse{Token: token, User: employer}, nil
}
