package validation

import (
	"regexp"
	"strings"
)

var (
	personNamePattern  = regexp.MustCompile(`^[a-zA-Z.' ]+$`)
	letterSpacePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	companyPattern     = regexp.MustCompile(`^[a-zA-Z\s.,'-]+$`)
	yearPattern        = regexp.MustCompile(`^\d{4}$`)
	digitsPattern      = regexp.MustCompile(`^\d+$`)
	phonePattern       = regexp.MustCompile(`^\d{10}$`)
	pincodePattern     = regexp.MustCompile(`^\d{6}$`)
	emailPattern       = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	gstinPattern       = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
)

func present(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Phone validates a login phone number.
func Phone(value string) string {
	return firstError(value, []Rule{
		{present, "Phone number is required"},
		{phonePattern.MatchString, "Invalid phone number format"},
	})
}

// Email validates a required email address.
func Email(value string) string {
	return firstError(value, []Rule{
		{present, "Email is required"},
		{emailPattern.MatchString, "Invalid email format"},
	})
}

// OptionalEmail validates an email only when one was given.
func OptionalEmail(value string) string {
	if !present(value) {
		return ""
	}
	if !emailPattern.MatchString(value) {
		return "Please enter a valid email address"
	}
	return ""
}

// Password validates a registration password.
func Password(value string) string {
	return firstError(value, []Rule{
		{func(v string) bool { return v != "" }, "Password is required"},
		{func(v string) bool { return len(v) >= 8 }, "Password must be at least 8 characters long"},
	})
}

// Pincode validates a 6-digit postal code.
func Pincode(value string) string {
	return firstError(value, []Rule{
		{present, "Pincode is required"},
		{pincodePattern.MatchString, "Pincode must be 6 digits"},
	})
}

// GSTIN reports whether value matches the GSTIN format.
func GSTIN(value string) bool {
	return gstinPattern.MatchString(value)
}

// Salary validates a digits-only salary amount.
func Salary(value string) string {
	return firstError(value, []Rule{
		{present, "Last Salary is required"},
		{digitsPattern.MatchString, "Last Salary should be a number"},
	})
}
