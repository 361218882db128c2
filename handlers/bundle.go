package handlers

import (
	employerRepoPkg "karkhana/database/repository/employer"
	jobseekerRepoPkg "karkhana/database/repository/jobseeker"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	JobSeekerRepo jobseekerRepoPkg.JobSeekerRepository
	EmployerRepo  employerRepoPkg.EmployerRepository

	// Job-seeker endpoints
	JobSeekerInitiateHandler  gin.HandlerFunc
	JobSeekerVerifyOTPHandler gin.HandlerFunc
	PersonalInfoHandler       gin.HandlerFunc
	AcademicInfoHandler       gin.HandlerFunc
	ExperiencesHandler        gin.HandlerFunc
	GetExperiencesHandler     gin.HandlerFunc
	PreferencesHandler        gin.HandlerFunc
	ProfileMediaHandler       gin.HandlerFunc

	// Employer endpoints
	EmployerInitiateHandler  gin.HandlerFunc
	EmployerVerifyOTPHandler gin.HandlerFunc
	VerifyGSTINHandler       gin.HandlerFunc
	EmployerRegisterHandler  gin.HandlerFunc
	ContactInfoHandler       gin.HandlerFunc

	// Lookup endpoints
	PincodeLookupHandler gin.HandlerFunc
}
