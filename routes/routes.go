package routes

import (
	"net/http"
	"time"

	"karkhana/handlers"
	"karkhana/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterJobSeekerRoutes registers job-seeker registration endpoints.
func RegisterJobSeekerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/job-seekers")
	{
		api.POST("/initiate", hb.JobSeekerInitiateHandler)
		api.POST("/verify-login-otp", hb.JobSeekerVerifyOTPHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthJobSeekerMiddleware(hb.JobSeekerRepo))
		api.POST("/personal-info", hb.PersonalInfoHandler)
		api.POST("/academic-info", hb.AcademicInfoHandler)
		api.POST("/experiences", hb.ExperiencesHandler)
		api.GET("/getexperiences", hb.GetExperiencesHandler)
		api.POST("/preferences", hb.PreferencesHandler)
		api.POST("/profile-media", hb.ProfileMediaHandler)
	}
}

// RegisterEmployerRoutes registers employer registration endpoints.
func RegisterEmployerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/employers")
	{
		api.POST("", hb.EmployerInitiateHandler)
		api.POST("/verify-login-otp", hb.EmployerVerifyOTPHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthEmployerMiddleware(hb.EmployerRepo))
		api.POST("/verify-gstin", hb.VerifyGSTINHandler)
		api.POST("/register", hb.EmployerRegisterHandler)
		api.POST("/profile-photo", hb.ContactInfoHandler)
	}
}

// RegisterLookupRoutes registers address lookup endpoints.
func RegisterLookupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lookup")
	{
		api.GET("/pincode/:pincode", hb.PincodeLookupHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Karkhana"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterJobSeekerRoutes(r, hb)
	RegisterEmployerRoutes(r, hb)
	RegisterLookupRoutes(r, hb)
	RegisterHealthRoute(r)
}
