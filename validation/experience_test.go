package validation

import (
	"testing"

	"karkhana/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pastEntry(start, end string) models.ExperienceEntry {
	return models.ExperienceEntry{
		StartMonthYear:    start,
		LastMonthYear:     end,
		EstablishmentName: "Sharma Textiles",
		CurrentIndustry:   "Textile Industry",
		Role:              "Weaver",
	}
}

func pastErrors(t *testing.T, errs Errors) []Errors {
	t.Helper()
	items, ok := errs["pastExperiences"].([]Errors)
	require.True(t, ok)
	return items
}

func TestExperiencesValid(t *testing.T) {
	errs := Experiences(models.ExperienceRequest{
		TotalExperience: "3 years",
		SalaryDrawn:     15000,
		PastExperiences: []models.ExperienceEntry{
			pastEntry("07/2022", "12/2024"),
			pastEntry("01/2020", "06/2022"),
		},
	}, testNow)
	assert.True(t, errs.Empty())
}

func TestExperiencesRequiredTopLevel(t *testing.T) {
	errs := Experiences(models.ExperienceRequest{}, testNow)
	assert.Equal(t, "Total experience is required", errs["totalExperience"])
	assert.Equal(t, "Last Salary is required", errs["salaryDrawn"])
	// Neither working nor any past entries recorded.
	assert.Equal(t, "End date is required", errs["pastExperiences"])
}

func TestExperiencesEndAfterStart(t *testing.T) {
	errs := Experiences(models.ExperienceRequest{
		TotalExperience: "1 year",
		SalaryDrawn:     12000,
		PastExperiences: []models.ExperienceEntry{pastEntry("06/2022", "06/2022")},
	}, testNow)
	items := pastErrors(t, errs)
	assert.Equal(t, "End date should be after start date", items[0]["lastMonthYear"])
}

func TestExperiencesOverlap(t *testing.T) {
	// Entries are ordered most recent first; the newer segment starts before
	// the older one ended.
	errs := Experiences(models.ExperienceRequest{
		TotalExperience: "4 years",
		SalaryDrawn:     18000,
		PastExperiences: []models.ExperienceEntry{
			pastEntry("05/2022", "12/2024"),
			pastEntry("01/2020", "06/2022"),
		},
	}, testNow)
	items := pastErrors(t, errs)
	assert.Equal(t, "Start date should be after previous end date", items[0]["startMonthYear"])
	assert.True(t, items[1].Empty())
}

func TestExperiencesMonthYearRules(t *testing.T) {
	errs := Experiences(models.ExperienceRequest{
		TotalExperience: "1 year",
		SalaryDrawn:     12000,
		PastExperiences: []models.ExperienceEntry{pastEntry("13/2020", "07/2025")},
	}, testNow)
	items := pastErrors(t, errs)
	assert.Equal(t, "Month should be between 01 and 12", items[0]["startMonthYear"])
	// The clock is pinned to June 2025, so July 2025 is in the future.
	assert.Equal(t, "Date should not exceed current month and year", items[0]["lastMonthYear"])
}

func TestExperiencesEntryFieldRules(t *testing.T) {
	errs := Experiences(models.ExperienceRequest{
		TotalExperience: "1 year",
		SalaryDrawn:     12000,
		PastExperiences: []models.ExperienceEntry{{
			EstablishmentName: "Factory #1",
			Role:              "Weaver",
		}},
	}, testNow)
	items := pastErrors(t, errs)
	assert.Equal(t, "Invalid CompanyName. Please use only letters, spaces, and basic punctuation.", items[0]["establishmentName"])
	assert.Equal(t, "Industry is required", items[0]["currentIndrustry"])
	assert.Equal(t, "Start date is required", items[0]["startMonthYear"])
	assert.Equal(t, "End date is required", items[0]["lastMonthYear"])
}

func TestExperiencesCurrentlyWorking(t *testing.T) {
	req := models.ExperienceRequest{
		TotalExperience:    "5 years",
		SalaryDrawn:        20000,
		IsCurrentlyWorking: true,
		PastExperiences:    []models.ExperienceEntry{pastEntry("01/2020", "06/2022")},
		CurrentExperience: models.CurrentExperience{
			StartMonthYear:    "07/2022",
			EstablishmentName: "Verma Auto Parts",
			CurrentIndustry:   "Auto Parts Industry",
			Role:              "Welder",
		},
	}
	assert.True(t, Experiences(req, testNow).Empty())

	// Current job starting before the last past segment ended is an overlap.
	req.CurrentExperience.StartMonthYear = "05/2022"
	errs := Experiences(req, testNow)
	current, ok := errs["currentExperience"].(Errors)
	require.True(t, ok)
	assert.Equal(t, "Start date should be after previous end date", current["startMonthYear"])
}
