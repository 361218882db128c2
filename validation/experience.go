package validation

import (
	"time"

	"karkhana/models"
)

// Experiences validates the work-experience step. Past entries are ordered
// most recent first; adjacent segments must not overlap.
func Experiences(req models.ExperienceRequest, now time.Time) Errors {
	errs := Errors{}

	if !present(req.TotalExperience) {
		errs.Add("totalExperience", "Total experience is required")
	}
	if req.SalaryDrawn <= 0 {
		errs.Add("salaryDrawn", "Last Salary is required")
	}

	past := make([]Errors, len(req.PastExperiences))
	for i, entry := range req.PastExperiences {
		e := Errors{}
		e.Add("establishmentName", companyNameError(entry.EstablishmentName))
		if !present(entry.CurrentIndustry) {
			e.Add("currentIndrustry", "Industry is required")
		}
		e.Add("Role", roleError(entry.Role))

		startMsg := monthYearFieldError(entry.StartMonthYear, "Start date is required", now)
		endMsg := monthYearFieldError(entry.LastMonthYear, "End date is required", now)
		if startMsg == "" && endMsg == "" {
			start, _ := ParseMonthYear(entry.StartMonthYear)
			end, _ := ParseMonthYear(entry.LastMonthYear)
			if !start.Before(end) {
				endMsg = "End date should be after start date"
			}
		}
		// The next entry in the slice is the chronologically earlier one.
		if startMsg == "" && i+1 < len(req.PastExperiences) {
			if prevEnd, ok := ParseMonthYear(req.PastExperiences[i+1].LastMonthYear); ok {
				start, _ := ParseMonthYear(entry.StartMonthYear)
				if !prevEnd.Before(start) {
					startMsg = "Start date should be after previous end date"
				}
			}
		}
		e.Add("startMonthYear", startMsg)
		e.Add("lastMonthYear", endMsg)
		past[i] = e
	}
	errs.MergeList("pastExperiences", past)

	if req.IsCurrentlyWorking {
		current := Errors{}
		current.Add("establishmentName", companyNameError(req.CurrentExperience.EstablishmentName))
		if !present(req.CurrentExperience.CurrentIndustry) {
			current.Add("currentIndrustry", "Industry is required")
		}
		current.Add("Role", roleError(req.CurrentExperience.Role))

		startMsg := monthYearFieldError(req.CurrentExperience.StartMonthYear, "Start date is required", now)
		if startMsg == "" && len(req.PastExperiences) > 0 {
			if prevEnd, ok := ParseMonthYear(req.PastExperiences[0].LastMonthYear); ok {
				start, _ := ParseMonthYear(req.CurrentExperience.StartMonthYear)
				if !prevEnd.Before(start) {
					startMsg = "Start date should be after previous end date"
				}
			}
		}
		current.Add("startMonthYear", startMsg)
		errs.Merge("currentExperience", current)
	} else if len(req.PastExperiences) == 0 {
		errs.Add("pastExperiences", "End date is required")
	}

	return errs
}

func companyNameError(value string) string {
	return firstError(value, []Rule{
		{present, "Company name is required"},
		{companyPattern.MatchString, "Invalid CompanyName. Please use only letters, spaces, and basic punctuation."},
	})
}

func roleError(value string) string {
	return firstError(value, []Rule{
		{present, "Role is required"},
		{companyPattern.MatchString, "Invalid Role. Please use only letters, spaces, and basic punctuation."},
	})
}

func monthYearFieldError(value, requiredMessage string, now time.Time) string {
	if !present(value) {
		return requiredMessage
	}
	return CheckMonthYear(value, now)
}
