// Package flow owns the registration step state machine for both account
// types. The server stores the step and advances it only after a step
// submission persists successfully.
package flow

// Step is a registration wizard position.
type Step string

// Job-seeker steps, in wizard order. Freshers skip StepExperiences.
const (
	StepPersonalInfo Step = "personal_info"
	StepAcademicInfo Step = "academic_info"
	StepExperiences  Step = "experiences"
	StepPreferences  Step = "preferences"
	StepIntroVideo   Step = "intro_video"
	StepCompleted    Step = "completed"
)

// Employer steps.
const (
	StepBasicInfo   Step = "basic_info"
	StepCompanyInfo Step = "company_info"
)

// ParseJobSeekerStep maps a stored value onto the closed job-seeker step set.
func ParseJobSeekerStep(value string) (Step, bool) {
	switch Step(value) {
	case StepPersonalInfo, StepAcademicInfo, StepExperiences, StepPreferences, StepIntroVideo, StepCompleted:
		return Step(value), true
	}
	return "", false
}

// ParseEmployerStep maps a stored value onto the closed employer step set.
func ParseEmployerStep(value string) (Step, bool) {
	switch Step(value) {
	case StepBasicInfo, StepCompanyInfo, StepCompleted:
		return Step(value), true
	}
	return "", false
}

// NextJobSeekerStep returns the step after current. Freshers move from
// academic info straight to preferences.
func NextJobSeekerStep(current Step, isFresher bool) Step {
	switch current {
	case StepPersonalInfo:
		return StepAcademicInfo
	case StepAcademicInfo:
		if isFresher {
			return StepPreferences
		}
		return StepExperiences
	case StepExperiences:
		return StepPreferences
	case StepPreferences:
		return StepIntroVideo
	case StepIntroVideo:
		return StepCompleted
	}
	return StepCompleted
}

// NextEmployerStep returns the step after current.
func NextEmployerStep(current Step) Step {
	switch current {
	case StepBasicInfo:
		return StepCompanyInfo
	case StepCompanyInfo:
		return StepCompleted
	}
	return StepCompleted
}

// JobSeekerStepRank orders the job-seeker chain so step updates only ever
// move forward. Unknown steps rank below every real one.
func JobSeekerStepRank(step Step) int {
	switch step {
	case StepPersonalInfo:
		return 1
	case StepAcademicInfo:
		return 2
	case StepExperiences:
		return 3
	case StepPreferences:
		return 4
	case StepIntroVideo:
		return 5
	case StepCompleted:
		return 6
	}
	return 0
}

// EmployerStepRank orders the employer chain.
func EmployerStepRank(step Step) int {
	switch step {
	case StepBasicInfo:
		return 1
	case StepCompanyInfo:
		return 2
	case StepCompleted:
		return 3
	}
	return 0
}

// FallbackRoute is where clients land when a stored step is unknown.
const FallbackRoute = "/SendOtp"

// RouteFor maps a step to the client screen that resumes the wizard there.
// Unknown steps get the explicit fallback instead of dead-ending.
func RouteFor(step Step) string {
	switch step {
	case StepPersonalInfo:
		return "/Choice"
	case StepAcademicInfo:
		return "/AcademicInfo"
	case StepExperiences:
		return "/ExperienceInfo"
	case StepPreferences:
		return "/Preferences"
	case StepIntroVideo:
		return "/IntroVideo"
	case StepBasicInfo:
		return "/BasicDetail"
	case StepCompanyInfo:
		return "/ContactInfo"
	case StepCompleted:
		return "/home"
	}
	return FallbackRoute
}
