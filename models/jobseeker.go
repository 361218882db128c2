package models

import "time"

// AcademicEntry is one qualification row as stored and as sent on the wire.
type AcademicEntry struct {
	QualificationType string `json:"qualificationType" bson:"qualificationType"`
	InstituteName     string `json:"instituteName" bson:"instituteName"`
	Specialization    string `json:"specialization" bson:"specialization"`
	PassingYear       string `json:"passingYear" bson:"passingYear"`
}

// ExperienceEntry is one past employment segment. The currentIndrustry key
// spelling is part of the wire contract.
type ExperienceEntry struct {
	StartMonthYear    string `json:"startMonthYear" bson:"startMonthYear"`
	LastMonthYear     string `json:"lastMonthYear" bson:"lastMonthYear"`
	EstablishmentName string `json:"establishmentName" bson:"establishmentName"`
	CurrentIndustry   string `json:"currentIndrustry" bson:"currentIndustry"`
	Role              string `json:"Role" bson:"role"`
	ExitReason        string `json:"exitReason" bson:"exitReason"`
}

// ExperienceAddress locates the current establishment.
type ExperienceAddress struct {
	City  string `json:"city" bson:"city"`
	State string `json:"state" bson:"state"`
}

// CurrentExperience describes ongoing employment; it has no end month.
type CurrentExperience struct {
	StartMonthYear    string            `json:"startMonthYear" bson:"startMonthYear"`
	EstablishmentName string            `json:"establishmentName" bson:"establishmentName"`
	Address           ExperienceAddress `json:"address" bson:"address"`
	CurrentIndustry   string            `json:"currentIndrustry" bson:"currentIndustry"`
	Role              string            `json:"Role" bson:"role"`
}

// JobPreferences holds the clamped multi-select choices and expected salary.
type JobPreferences struct {
	PreferredIndustries []string `json:"preferredIndustries" bson:"preferredIndustries"`
	PreferredRoles      []string `json:"preferredRoles" bson:"preferredRoles"`
	PreferredLocations  []string `json:"preferredLocations" bson:"preferredLocations"`
	ExpectedSalaries    int      `json:"expectedSalaries" bson:"expectedSalaries"`
}

// JobSeeker is the persisted job-seeker profile. RegistrationStep is owned by
// the server and only advances after a step persists successfully.
type JobSeeker struct {
	ID               string `json:"id" bson:"id"`
	Phone            string `json:"phone" bson:"phone"`
	RegistrationStep string `json:"registrationStep" bson:"registrationStep"`

	Name      string `json:"name,omitempty" bson:"name,omitempty"`
	DOB       string `json:"dob,omitempty" bson:"dob,omitempty"`
	Address   string `json:"address,omitempty" bson:"address,omitempty"`
	IsFresher bool   `json:"isFresher" bson:"isFresher"`

	AcademicInfo []AcademicEntry `json:"academicInfo,omitempty" bson:"academicInfo,omitempty"`

	PastExperiences    []ExperienceEntry  `json:"pastExperiences,omitempty" bson:"pastExperiences,omitempty"`
	IsCurrentlyWorking bool               `json:"isCurrentlyWorking" bson:"isCurrentlyWorking"`
	SalaryDrawn        int                `json:"salaryDrawn,omitempty" bson:"salaryDrawn,omitempty"`
	TotalExperience    string             `json:"totalExperience,omitempty" bson:"totalExperience,omitempty"`
	CurrentExperience  *CurrentExperience `json:"currentExperience,omitempty" bson:"currentExperience,omitempty"`

	JobPreferences *JobPreferences `json:"jobPreferences,omitempty" bson:"jobPreferences,omitempty"`

	ProfilePhotoID string `json:"profilePhotoId,omitempty" bson:"profilePhotoId,omitempty"`
	IntroVideoID   string `json:"introVideoId,omitempty" bson:"introVideoId,omitempty"`

	TokenHash string    `json:"-" bson:"tokenHash,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
