package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"karkhana/models"
	"karkhana/services/jobseeker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobSeekerInitiateHandler starts phone-based registration or login and
// triggers OTP delivery.
func JobSeekerInitiateHandler(svc jobseeker.JobSeekerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.InitiateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid initiate request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		userID, err := svc.InitiateRegistration(req.Phone)
		if err != nil {
			if respondValidationError(c, err) {
				return
			}
			logger.Error("Failed to initiate registration", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	}
}

// JobSeekerVerifyOTPHandler confirms the OTP and returns a session token plus
// the stored profile so the client can resume at the right step.
func JobSeekerVerifyOTPHandler(svc jobseeker.JobSeekerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.JobSeekerVerifyOTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid verify OTP request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		auth, err := svc.VerifyLoginOTP(req.UserID, req.OTP)
		if err != nil {
			switch {
			case errors.Is(err, jobseeker.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			case errors.Is(err, jobseeker.ErrOTPInvalid):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired OTP"})
			default:
				logger.Error("OTP verification failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
			}
			return
		}
		c.JSON(http.StatusOK, auth)
	}
}

// stepHandler wraps the common load/validate/persist pattern shared by every
// JSON step submission.
func stepHandler[T any](submit func(userID string, req T) (*jobseeker.StepResult, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req T
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid step request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		result, err := submit(c.GetString("userID"), req)
		if err != nil {
			if respondValidationError(c, err) {
				return
			}
			if errors.Is(err, jobseeker.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
				return
			}
			logger.Error("Step submission failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// PersonalInfoHandler handles the first job-seeker step.
func PersonalInfoHandler(svc jobseeker.JobSeekerService) gin.HandlerFunc {
	return stepHandler(svc.SubmitPersonalInfo)
}

// AcademicInfoHandler handles the qualifications step.
func AcademicInfoHandler(svc jobseeker.JobSeekerService) gin.HandlerFunc {
	return stepHandler(svc.SubmitAcademicInfo)
}

// ExperiencesHandler handles the work-experience step.
func ExperiencesHandler(svc jobseeker.JobSeekerService) gin.HandlerFunc {
	return stepHandler(svc.SubmitExperiences)
}

// PreferencesHandler handles the job-preferences step.
func PreferencesHandler(svc jobseeker.JobSeekerService) gin.HandlerFunc {
	return stepHandler(svc.SubmitPreferences)
}

// GetExperiencesHandler returns stored past employment for form prefill.
func GetExperiencesHandler(svc jobseeker.JobSeekerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		resp, err := svc.GetExperiences(c.GetString("userID"))
		if err != nil {
			if errors.Is(err, jobseeker.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
				return
			}
			logger.Error("Failed to fetch experiences", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch experiences"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ProfileMediaHandler handles the final job-seeker step: a required profile
// photo and an optional intro video, received as multipart files and staged
// on local disk for probing before upload.
func ProfileMediaHandler(svc jobseeker.JobSeekerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req jobseeker.ProfileMediaRequest
		if photo, err := c.FormFile("profile_picture"); err == nil {
			path := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(photo.Filename))
			if err := c.SaveUploadedFile(photo, path); err != nil {
				logger.Error("Failed to stage profile photo", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to receive upload"})
				return
			}
			defer os.Remove(path)
			req.Photo = &jobseeker.MediaUpload{Path: path, Size: photo.Size}
		}
		if video, err := c.FormFile("profile_video"); err == nil {
			path := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(video.Filename))
			if err := c.SaveUploadedFile(video, path); err != nil {
				logger.Error("Failed to stage intro video", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to receive upload"})
				return
			}
			defer os.Remove(path)
			req.Video = &jobseeker.MediaUpload{Path: path, Size: video.Size}
		}

		result, err := svc.SubmitProfileMedia(c.GetString("userID"), req)
		if err != nil {
			if respondValidationError(c, err) {
				return
			}
			switch {
			case errors.Is(err, jobseeker.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			case errors.Is(err, jobseeker.ErrProfilePhotoRequired):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.Error("Profile media submission failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile media"})
			}
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
