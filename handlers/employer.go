package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"karkhana/models"
	"karkhana/services/employer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployerInitiateHandler starts phone-based registration or login for an
// employer and triggers OTP delivery.
func EmployerInitiateHandler(svc employer.EmployerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.InitiateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid initiate request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		employerID, err := svc.InitiateRegistration(req.Phone)
		if err != nil {
			if respondValidationError(c, err) {
				return
			}
			logger.Error("Failed to initiate employer registration", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"manufacturerId": employerID})
	}
}

// EmployerVerifyOTPHandler confirms the OTP and returns a session token plus
// the stored profile so the client can resume at the right step.
func EmployerVerifyOTPHandler(svc employer.EmployerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.EmployerVerifyOTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid verify OTP request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		auth, err := svc.VerifyLoginOTP(req.ManufacturerID, req.OTP)
		if err != nil {
			switch {
			case errors.Is(err, employer.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			case errors.Is(err, employer.ErrOTPInvalid):
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

// VerifyGSTINHandler looks up a GSTIN with the tax provider and caches the
// verification for the registration step.
func VerifyGSTINHandler(svc employer.EmployerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.VerifyGSTINRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid GSTIN verification request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		verification, err := svc.VerifyGSTIN(c.GetString("userID"), req.GSTIN)
		if err != nil {
			switch {
			case errors.Is(err, employer.ErrInvalidGSTINFormat):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, employer.ErrStaleLookup):
				c.JSON(http.StatusConflict, gin.H{"error": "Superseded by a newer lookup"})
			case errors.Is(err, employer.ErrGSTVerificationFailed):
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			default:
				logger.Error("GSTIN verification failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"gstInfo": verification.Info})
	}
}

// EmployerRegisterHandler handles the employer basic-details step.
func EmployerRegisterHandler(svc employer.EmployerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.EmployerRegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid register request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		result, err := svc.Register(c.GetString("userID"), req)
		if err != nil {
			if respondValidationError(c, err) {
				return
			}
			if errors.Is(err, employer.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
				return
			}
			logger.Error("Employer registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// ContactInfoHandler handles the employer contact step. The form fields and
// the optional company logo arrive in a single multipart request.
func ContactInfoHandler(svc employer.EmployerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.ContactInfoRequest
		if err := c.ShouldBind(&req); err != nil {
			logger.Error("Invalid contact info request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		var logo *employer.LogoUpload
		if file, err := c.FormFile("profile_picture"); err == nil {
			path := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
			if err := c.SaveUploadedFile(file, path); err != nil {
				logger.Error("Failed to stage company logo", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to receive upload"})
				return
			}
			defer os.Remove(path)
			logo = &employer.LogoUpload{Path: path, Size: file.Size}
		}

		result, err := svc.SubmitContactInfo(c.GetString("userID"), req, logo)
		if err != nil {
			if respondValidationError(c, err) {
				return
			}
			if errors.Is(err, employer.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
				return
			}
			logger.Error("Contact info submission failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact info"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
