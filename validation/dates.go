package validation

import (
	"regexp"
	"time"
)

var dobPattern = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[012])/(19|20)\d\d$`)

// ParseDOB parses a DD/MM/YYYY date of birth. The format is gated by a strict
// pattern first so "31/02/2000" style inputs fail the format rule, not the
// age rule.
func ParseDOB(value string) (time.Time, bool) {
	if !dobPattern.MatchString(value) {
		return time.Time{}, false
	}
	t, err := time.Parse("02/01/2006", value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AgeAt returns full years elapsed from birth to now, counting the birthday
// itself as completed.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// MonthYear is a parsed MM/YYYY employment boundary.
type MonthYear struct {
	Month int
	Year  int
}

var monthYearPattern = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)

// ParseMonthYear parses an MM/YYYY string without range checks.
func ParseMonthYear(value string) (MonthYear, bool) {
	m := monthYearPattern.FindStringSubmatch(value)
	if m == nil {
		return MonthYear{}, false
	}
	month := atoi(m[1])
	year := atoi(m[2])
	return MonthYear{Month: month, Year: year}, true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// Before reports whether my is strictly earlier than other.
func (my MonthYear) Before(other MonthYear) bool {
	if my.Year != other.Year {
		return my.Year < other.Year
	}
	return my.Month < other.Month
}

// CheckMonthYear validates an MM/YYYY value against format, month range,
// minimum year, and the current month.
func CheckMonthYear(value string, now time.Time) string {
	my, ok := ParseMonthYear(value)
	if !ok {
		return "Invalid date format. Use MM/YYYY"
	}
	if my.Month < 1 || my.Month > 12 {
		return "Month should be between 01 and 12"
	}
	if my.Year < 1900 {
		return "Invalid Year"
	}
	current := MonthYear{Month: int(now.Month()), Year: now.Year()}
	if current.Before(my) {
		return "Date should not exceed current month and year"
	}
	return ""
}
