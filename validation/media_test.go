package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntroVideoDurationBounds(t *testing.T) {
	size := int64(10 * 1024 * 1024)
	assert.NotEmpty(t, IntroVideo(29999, size))
	assert.Empty(t, IntroVideo(30000, size))
	assert.Empty(t, IntroVideo(45000, size))
	assert.Equal(t, "Please select a video that is between 30 and 45 seconds long.", IntroVideo(45001, size))
}

func TestIntroVideoSizeCap(t *testing.T) {
	assert.Empty(t, IntroVideo(35000, MaxMediaFileBytes))
	assert.Equal(t, "Please select a file that is smaller than 50MB.", IntroVideo(35000, MaxMediaFileBytes+1))
}

func TestProfilePhotoSizeCap(t *testing.T) {
	assert.Empty(t, ProfilePhoto(MaxMediaFileBytes))
	assert.NotEmpty(t, ProfilePhoto(MaxMediaFileBytes+1))
}

func TestCompanyLogoSizeCap(t *testing.T) {
	assert.Empty(t, CompanyLogo(MaxLogoFileBytes))
	assert.Equal(t, "Please select an image that is smaller than 20MB.", CompanyLogo(MaxLogoFileBytes+1))
}
