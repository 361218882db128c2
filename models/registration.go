package models

// InitiateRequest starts a phone-based login/registration for either account type.
type InitiateRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// JobSeekerVerifyOTPRequest confirms a job seeker's login OTP.
type JobSeekerVerifyOTPRequest struct {
	UserID string `json:"userId" binding:"required"`
	OTP    string `json:"otp" binding:"required"`
}

// EmployerVerifyOTPRequest confirms an employer's login OTP.
type EmployerVerifyOTPRequest struct {
	ManufacturerID string `json:"manufacturerId" binding:"required"`
	OTP            string `json:"otp" binding:"required"`
}

// PersonalInfoRequest is the first job-seeker step.
type PersonalInfoRequest struct {
	Name      string `json:"name"`
	DOB       string `json:"dob"`
	Address   string `json:"address"`
	IsFresher bool   `json:"isfresher"`
}

// AcademicInfoRequest carries the qualification entries, primary first.
type AcademicInfoRequest struct {
	AcademicInfo []AcademicEntry `json:"academicInfo" binding:"required"`
}

// ExperienceRequest is the work-experience step payload.
type ExperienceRequest struct {
	PastExperiences    []ExperienceEntry `json:"pastExperiences"`
	IsCurrentlyWorking bool              `json:"isCurrentlyWorking"`
	SalaryDrawn        int               `json:"salaryDrawn"`
	TotalExperience    string            `json:"totalExperience"`
	CurrentExperience  CurrentExperience `json:"currentExperience"`
}

// ExperiencesResponse returns stored past employment for prefill.
type ExperiencesResponse struct {
	PastExperiences []ExperienceEntry `json:"pastExperiences"`
}

// PreferencesRequest is the job-preferences step payload.
type PreferencesRequest struct {
	JobPreferences JobPreferences `json:"jobPreferences"`
}

// VerifyGSTINRequest asks for verification of an employer's GSTIN.
type VerifyGSTINRequest struct {
	GSTIN string `json:"gstin" binding:"required"`
}

// EmployerRegisterRequest is the employer basic-details step.
type EmployerRegisterRequest struct {
	GSTIN       string `json:"gstin"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	Address     string `json:"address"`
}

// ContactInfoRequest is the employer contact step; the logo arrives as a
// multipart file alongside these fields.
type ContactInfoRequest struct {
	ContactPersonName        string `form:"contactPersonName"`
	ContactPersonPhone       string `form:"contactPersonPhone"`
	ContactPersonDesignation string `form:"contactPersonDesignation"`
	ContactPersonEmail       string `form:"contactPersonEmail"`
	CompanyDescription       string `form:"companyDescription"`
}
