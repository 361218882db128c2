package validation

import (
	"fmt"
	"strconv"
	"time"

	"karkhana/catalog"
	"karkhana/models"
)

// AcademicInfo validates the academic step against the derived draft. The
// nested error values mirror the draft's shape.
func AcademicInfo(draft models.AcademicDraft, now time.Time) Errors {
	errs := Errors{}
	maxAllowedYear := now.Year() + 4

	if draft.Highest == "" {
		errs.Add("highestQualification", "Highest qualification is required")
	} else if !catalog.IsKnownQualification(draft.Highest) {
		errs.Add("highestQualification", "Highest qualification is required")
	}

	primary := Errors{}
	primary.Add("instituteName", instituteError(draft.Primary.InstituteName))
	primary.Add("specialization", specializationError(draft.Primary.Specialization))
	primary.Add("passingYear", passingYearError(draft.Primary.PassingYear, maxAllowedYear,
		fmt.Sprintf("Passing year should be less than %d", maxAllowedYear)))
	errs.Merge("primaryQualification", primary)

	// 10th has no secondary qualification to validate.
	if draft.Highest == catalog.Qualification10th {
		return errs
	}

	if draft.Highest == catalog.QualificationDiploma && draft.Secondary == "" {
		errs.Add("secondaryQualification", "Secondary qualification is required for Diploma")
	}

	additional := Errors{}
	additional.Add("instituteName", instituteError(draft.Additional.InstituteName))
	additional.Add("specialization", specializationError(draft.Additional.Specialization))
	if msg := passingYearError(draft.Additional.PassingYear, maxAllowedYear,
		fmt.Sprintf("Passing year should be between 1900 and %d", maxAllowedYear)); msg != "" {
		additional.Add("passingYear", msg)
	} else if laterThan(draft.Additional.PassingYear, draft.Primary.PassingYear) {
		additional.Add("passingYear", "Secondary qualification year cannot be later than highest qualification year")
	}
	errs.Merge("additionalQualification", additional)

	return errs
}

func instituteError(value string) string {
	return firstError(value, []Rule{
		{present, "Institute name is required"},
		{letterSpacePattern.MatchString, "Institute name should only contain letters and spaces"},
	})
}

func specializationError(value string) string {
	return firstError(value, []Rule{
		{present, "Specialization is required"},
		{letterSpacePattern.MatchString, "Specialization should only contain letters and spaces"},
	})
}

func passingYearError(value string, maxAllowedYear int, rangeMessage string) string {
	if !present(value) {
		return "Passing year is required"
	}
	if !yearPattern.MatchString(value) {
		return "Passing year should be a 4-digit number"
	}
	year, _ := strconv.Atoi(value)
	if year < 1900 || year > maxAllowedYear {
		return rangeMessage
	}
	return ""
}

// laterThan compares two already-validated 4-digit years.
func laterThan(a, b string) bool {
	ya, errA := strconv.Atoi(a)
	yb, errB := strconv.Atoi(b)
	if errA != nil || errB != nil {
		return false
	}
	return ya > yb
}
