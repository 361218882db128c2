package validation

import (
	"time"

	"karkhana/models"
)

// PersonalInfo validates the first job-seeker step. The error value mirrors
// the request: name, dob, and address map to their first failing message.
func PersonalInfo(req models.PersonalInfoRequest, now time.Time) Errors {
	errs := Errors{}

	errs.Add("name", firstError(req.Name, []Rule{
		{present, "Name is required"},
		{func(v string) bool { return len(v) >= 2 }, "Name must be at least 2 characters"},
		{personNamePattern.MatchString, "Name must include only letters, fullstops, apostrophes, and spaces"},
	}))

	errs.Add("dob", dobError(req.DOB, now))

	// Only presence is checked for the address; the stored value already
	// carries city, state, and pincode from the location input.
	if !present(req.Address) {
		errs.Add("address", "Address is required")
	}

	return errs
}

func dobError(value string, now time.Time) string {
	if !present(value) {
		return "Date of Birth is required"
	}
	birth, ok := ParseDOB(value)
	if !ok {
		return "Invalid date format. Please use DD/MM/YYYY"
	}
	if AgeAt(birth, now) < 18 {
		return "You must be at least 18 years old"
	}
	return ""
}
