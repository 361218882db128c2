package employer

import "errors"

var (
	// ErrNotFound means no employer exists for the given id.
	ErrNotFound = errors.New("employer not found")
	// ErrOTPInvalid means the provided OTP did not match or expired.
	ErrOTPInvalid = errors.New("OTP verification failed")
	// ErrInvalidGSTINFormat rejects a GSTIN before any provider call is made.
	ErrInvalidGSTINFormat = errors.New("Invalid GST Number format")
	// ErrGSTVerificationFailed means the provider lookup did not complete.
	ErrGSTVerificationFailed = errors.New("Failed to verify GST number")
	// ErrStaleLookup means a newer GSTIN lookup superseded this one.
	ErrStaleLookup = errors.New("superseded by a newer lookup")
)
