package validation

import (
	"testing"

	"karkhana/catalog"
	"karkhana/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPGDraft() models.AcademicDraft {
	var d models.AcademicDraft
	d.SetHighest(catalog.QualificationPG)
	d.Primary = models.QualificationDetail{
		InstituteName:  "Delhi University",
		Specialization: "Mechanical Engineering",
		PassingYear:    "2020",
	}
	d.Additional = models.QualificationDetail{
		InstituteName:  "Delhi University",
		Specialization: "Mechanical Engineering",
		PassingYear:    "2018",
	}
	return d
}

func TestAcademicInfoValid(t *testing.T) {
	errs := AcademicInfo(validPGDraft(), testNow)
	assert.True(t, errs.Empty())
}

func TestAcademicInfoHighestRequired(t *testing.T) {
	errs := AcademicInfo(models.AcademicDraft{}, testNow)
	assert.Equal(t, "Highest qualification is required", errs["highestQualification"])

	var d models.AcademicDraft
	d.SetHighest("B.Tech")
	errs = AcademicInfo(d, testNow)
	assert.Equal(t, "Highest qualification is required", errs["highestQualification"])
}

func TestAcademicInfoPrimaryRules(t *testing.T) {
	d := validPGDraft()
	d.Primary = models.QualificationDetail{
		InstituteName:  "IIT-2",
		Specialization: "",
		PassingYear:    "20",
	}
	errs := AcademicInfo(d, testNow)
	primary, ok := errs["primaryQualification"].(Errors)
	require.True(t, ok)
	assert.Equal(t, "Institute name should only contain letters and spaces", primary["instituteName"])
	assert.Equal(t, "Specialization is required", primary["specialization"])
	assert.Equal(t, "Passing year should be a 4-digit number", primary["passingYear"])
}

func TestAcademicInfoPrimaryYearRange(t *testing.T) {
	// With the clock at 2025 the ceiling is 2029.
	d := validPGDraft()
	d.Primary.PassingYear = "2030"
	errs := AcademicInfo(d, testNow)
	primary := errs["primaryQualification"].(Errors)
	assert.Equal(t, "Passing year should be less than 2029", primary["passingYear"])

	d.Primary.PassingYear = "2029"
	d.Additional.PassingYear = "2018"
	errs = AcademicInfo(d, testNow)
	assert.Nil(t, errs["primaryQualification"])
}

func TestAcademicInfoSecondaryYearOrdering(t *testing.T) {
	d := validPGDraft()
	d.Additional.PassingYear = "2021"
	errs := AcademicInfo(d, testNow)
	additional := errs["additionalQualification"].(Errors)
	assert.Equal(t, "Secondary qualification year cannot be later than highest qualification year", additional["passingYear"])

	// Same year on both levels is allowed.
	d.Additional.PassingYear = "2020"
	errs = AcademicInfo(d, testNow)
	assert.Nil(t, errs["additionalQualification"])
}

func TestAcademicInfoAdditionalYearRange(t *testing.T) {
	d := validPGDraft()
	d.Additional.PassingYear = "1899"
	errs := AcademicInfo(d, testNow)
	additional := errs["additionalQualification"].(Errors)
	assert.Equal(t, "Passing year should be between 1900 and 2029", additional["passingYear"])
}

func TestAcademicInfoTenthSkipsSecondary(t *testing.T) {
	var d models.AcademicDraft
	d.SetHighest(catalog.Qualification10th)
	d.Primary = models.QualificationDetail{
		InstituteName:  "Government School",
		Specialization: "General",
		PassingYear:    "2015",
	}
	errs := AcademicInfo(d, testNow)
	assert.True(t, errs.Empty())
}

func TestAcademicInfoDiplomaNeedsSecondaryPick(t *testing.T) {
	var d models.AcademicDraft
	d.SetHighest(catalog.QualificationDiploma)
	d.Primary = models.QualificationDetail{
		InstituteName:  "Polytechnic Institute",
		Specialization: "Tool Making",
		PassingYear:    "2019",
	}
	d.Additional = models.QualificationDetail{
		InstituteName:  "Government School",
		Specialization: "General",
		PassingYear:    "2017",
	}
	errs := AcademicInfo(d, testNow)
	assert.Equal(t, "Secondary qualification is required for Diploma", errs["secondaryQualification"])

	d.SetSecondary(catalog.Qualification12th)
	errs = AcademicInfo(d, testNow)
	assert.True(t, errs.Empty())
}
