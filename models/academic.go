package models

import "karkhana/catalog"

// QualificationDetail is the institute data attached to one qualification.
type QualificationDetail struct {
	InstituteName  string `json:"instituteName" bson:"instituteName"`
	Specialization string `json:"specialization" bson:"specialization"`
	PassingYear    string `json:"passingYear" bson:"passingYear"`
}

// AcademicDraft is the in-progress academic form. The secondary level is
// derived from the highest level, except where the rules leave it to the user.
type AcademicDraft struct {
	Highest    string              `json:"highestQualification"`
	Secondary  string              `json:"secondaryQualification"`
	Primary    QualificationDetail `json:"primaryQualification"`
	Additional QualificationDetail `json:"additionalQualification"`
}

// SetHighest records a new highest qualification and rederives the secondary:
// 10th has no secondary and drops any additional data already entered,
// Diploma leaves the secondary for the user to pick from its restricted set,
// every other level auto-fills the next lower level. Calling it again with
// the same value leaves the draft unchanged apart from that derivation.
func (d *AcademicDraft) SetHighest(level string) {
	d.Highest = level
	switch level {
	case catalog.Qualification10th:
		d.Secondary = ""
		d.Additional = QualificationDetail{}
	case catalog.QualificationDiploma:
		d.Secondary = ""
	default:
		d.Secondary = catalog.NextLowerQualification(level)
	}
}

// SetSecondary records a user-picked secondary level. Only the Diploma flow
// offers that choice; for every other highest level the pick is ignored.
func (d *AcademicDraft) SetSecondary(level string) {
	if d.Highest == catalog.QualificationDiploma {
		d.Secondary = level
	}
}

// HasSecondary reports whether the draft carries a secondary qualification.
func (d *AcademicDraft) HasSecondary() bool {
	return d.Highest != catalog.Qualification10th && d.Secondary != ""
}

// Entries builds the wire array: the primary qualification first, then the
// secondary when one applies.
func (d *AcademicDraft) Entries() []AcademicEntry {
	entries := []AcademicEntry{{
		QualificationType: d.Highest,
		InstituteName:     d.Primary.InstituteName,
		Specialization:    d.Primary.Specialization,
		PassingYear:       d.Primary.PassingYear,
	}}
	if d.HasSecondary() {
		entries = append(entries, AcademicEntry{
			QualificationType: d.Secondary,
			InstituteName:     d.Additional.InstituteName,
			Specialization:    d.Additional.Specialization,
			PassingYear:       d.Additional.PassingYear,
		})
	}
	return entries
}

// DraftFromEntries rebuilds a draft from a submitted entry array so the
// derivation rules can be re-applied server side.
func DraftFromEntries(entries []AcademicEntry) AcademicDraft {
	var d AcademicDraft
	if len(entries) == 0 {
		return d
	}
	primary := entries[0]
	d.SetHighest(primary.QualificationType)
	d.Primary = QualificationDetail{
		InstituteName:  primary.InstituteName,
		Specialization: primary.Specialization,
		PassingYear:    primary.PassingYear,
	}
	if len(entries) > 1 {
		secondary := entries[1]
		if d.Highest == catalog.QualificationDiploma {
			d.SetSecondary(secondary.QualificationType)
		}
		d.Additional = QualificationDetail{
			InstituteName:  secondary.InstituteName,
			Specialization: secondary.Specialization,
			PassingYear:    secondary.PassingYear,
		}
	}
	return d
}
