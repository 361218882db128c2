package validation

// Media limits for profile uploads.
const (
	MinIntroVideoMillis = 30000
	MaxIntroVideoMillis = 45000
	MaxMediaFileBytes   = 50 * 1024 * 1024
	MaxLogoFileBytes    = 20 * 1024 * 1024
)

// IntroVideo validates a probed intro video. Both duration bounds are
// inclusive: exactly 30s and exactly 45s are accepted.
func IntroVideo(durationMillis, sizeBytes int64) string {
	if durationMillis < MinIntroVideoMillis || durationMillis > MaxIntroVideoMillis {
		return "Please select a video that is between 30 and 45 seconds long."
	}
	if sizeBytes > MaxMediaFileBytes {
		return "Please select a file that is smaller than 50MB."
	}
	return ""
}

// ProfilePhoto validates a profile photo upload.
func ProfilePhoto(sizeBytes int64) string {
	if sizeBytes > MaxMediaFileBytes {
		return "Please select a file that is smaller than 50MB."
	}
	return ""
}

// CompanyLogo validates an employer logo upload.
func CompanyLogo(sizeBytes int64) string {
	if sizeBytes > MaxLogoFileBytes {
		return "Please select an image that is smaller than 20MB."
	}
	return ""
}
