package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// generateNumericOTP generates a secure random numeric OTP of the specified length.
func generateNumericOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// InitiateLoginOTP generates a 4-digit OTP, stores it in Redis with a 5-minute TTL,
// and returns the message to deliver to the user's phone.
func InitiateLoginOTP(accountID, phoneNumber string) (string, error) {
	otp, err := generateNumericOTP(4)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	otpKey := fmt.Sprintf("otp:%s", accountID)

	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return "", fmt.Errorf("OTP cache client not initialized")
	}

	if err := client.Set(ctx, otpKey, otp, OTPTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return "", fmt.Errorf("failed to initiate login OTP")
	}

	message := fmt.Sprintf("Your Karkhana OTP is: %s. It expires in 5 minutes.", otp)
	GetLogger().Sugar().Infof("Issued OTP for account %s, phone %s (expires in %v)", accountID, phoneNumber, OTPTTL)
	return message, nil
}

// VerifyLoginOTPRecord retrieves the stored OTP from Redis and compares it to the provided OTP.
// If they match, it deletes the OTP from the cache.
func VerifyLoginOTPRecord(accountID, providedOTP string) error {
	otpKey := fmt.Sprintf("otp:%s", accountID)
	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}

	storedOTP, err := client.Get(ctx, otpKey).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP not found or expired")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if storedOTP != providedOTP {
		return fmt.Errorf("OTP does not match")
	}

	if err := client.Del(ctx, otpKey).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}
