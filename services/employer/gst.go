package employer

import (
	"context"
	"encoding/json"

	"karkhana/utils"
	"karkhana/validation"

	"go.uber.org/zap"
)

func gstCacheKey(employerID string) string {
	return utils.GSTVerificationPrefix + employerID
}

// VerifyGSTIN format-checks a GSTIN, fetches the taxpayer record, and caches
// the verification for the registration step. Each employer has at most one
// lookup in flight that counts; an edit to the GSTIN while a lookup is
// pending makes the pending result stale and it is dropped.
func (s *DefaultEmployerService) VerifyGSTIN(employerID, gstin string) (*GSTVerification, error) {
	ctx := context.Background()
	cacheKey := gstCacheKey(employerID)

	if !validation.GSTIN(gstin) {
		s.Tracker.Invalidate(employerID)
		if err := s.Cache.Del(ctx, cacheKey); err != nil {
			utils.GetLogger().Warn("Failed to clear GST verification cache", zap.Error(err))
		}
		return nil, ErrInvalidGSTINFormat
	}

	requestID := s.Tracker.Begin(employerID)

	info, err := s.GST.Lookup(ctx, gstin)
	if !s.Tracker.Latest(employerID, requestID) {
		return nil, ErrStaleLookup
	}
	if err != nil {
		utils.GetLogger().Error("GST lookup failed", zap.Error(err), zap.String("employerID", employerID))
		if delErr := s.Cache.Del(ctx, cacheKey); delErr != nil {
			utils.GetLogger().Warn("Failed to clear GST verification cache", zap.Error(delErr))
		}
		return nil, ErrGSTVerificationFailed
	}

	verification := &GSTVerification{GSTIN: gstin, Info: info}
	payload, err := json.Marshal(verification)
	if err != nil {
		return nil, err
	}
	if err := s.Cache.Set(ctx, cacheKey, payload, utils.GSTVerificationTTL); err != nil {
		utils.GetLogger().Error("Failed to cache GST verification", zap.Error(err))
		return nil, ErrGSTVerificationFailed
	}
	return verification, nil
}

// cachedVerification returns the employer's stored GST verification, or nil
// when none exists or it expired.
func (s *DefaultEmployerService) cachedVerification(ctx context.Context, employerID string) *GSTVerification {
	payload, err := s.Cache.Get(ctx, gstCacheKey(employerID))
	if err != nil || payload == nil {
		return nil
	}
	var verification GSTVerification
	if err := json.Unmarshal(payload, &verification); err != nil {
		return nil
	}
	return &verification
}
