package jobseeker

import "errors"

var (
	// ErrNotFound means no job seeker exists for the given id.
	ErrNotFound = errors.New("job seeker not found")
	// ErrOTPInvalid means the provided OTP did not match or expired.
	ErrOTPInvalid = errors.New("OTP verification failed")
	// ErrProfilePhotoRequired rejects a media submission without a photo.
	ErrProfilePhotoRequired = errors.New("Please upload a profile photo.")
)
