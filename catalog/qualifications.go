// Package catalog holds the fixed option lists and derivation rules used by
// the registration forms: qualification levels, industries, roles per
// industry, and preferred work locations.
package catalog

// Qualification labels as presented to the user.
const (
	QualificationPG       = "PG (Postgraduate)"
	Qualification12th     = "12th"
	Qualification10th     = "10th"
	QualificationBachelor = "Bachelors"
	QualificationDiploma  = "Diploma"
)

// QualificationOptions is the ordered list shown in the highest-qualification
// dropdown. Order matters: it breaks precedence ties (12th wins over Diploma).
var QualificationOptions = []string{
	QualificationPG,
	QualificationBachelor,
	Qualification12th,
	QualificationDiploma,
	Qualification10th,
}

// qualificationPrecedence ranks levels. 12th and Diploma share a rank.
var qualificationPrecedence = map[string]int{
	QualificationPG:       4,
	QualificationBachelor: 3,
	Qualification12th:     2,
	QualificationDiploma:  2,
	Qualification10th:     1,
}

// QualificationRank returns the precedence rank for a level, 0 if unknown.
func QualificationRank(level string) int {
	return qualificationPrecedence[level]
}

// IsKnownQualification reports whether level is one of the offered options.
func IsKnownQualification(level string) bool {
	_, ok := qualificationPrecedence[level]
	return ok
}

// NextLowerQualification returns the highest-ranked level strictly below the
// given one, or "" when none exists. When two levels share the lower rank the
// one listed first in QualificationOptions wins.
func NextLowerQualification(current string) string {
	currentRank, ok := qualificationPrecedence[current]
	if !ok {
		return ""
	}
	best := ""
	bestRank := 0
	for _, option := range QualificationOptions {
		rank := qualificationPrecedence[option]
		if rank >= currentRank {
			continue
		}
		if rank > bestRank {
			best = option
			bestRank = rank
		}
	}
	return best
}

// SecondaryOptions returns the levels a user may pick as secondary
// qualification for the given highest level. Diploma restricts the choice to
// 12th and 10th; every other level offers all strictly lower levels.
func SecondaryOptions(highest string) []string {
	if highest == QualificationDiploma {
		return []string{Qualification12th, Qualification10th}
	}
	currentRank, ok := qualificationPrecedence[highest]
	if !ok {
		return nil
	}
	var out []string
	for _, option := range QualificationOptions {
		if qualificationPrecedence[option] < currentRank {
			out = append(out, option)
		}
	}
	return out
}
