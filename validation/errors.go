// Package validation implements the field rules enforced on every
// registration step. Each form has an ordered rule table per field; the first
// failing rule supplies the message. Validation results mirror the shape of
// the submitted value: a scalar field maps to a message, a nested object to a
// nested Errors value, a list to a slice of Errors.
package validation

// Errors mirrors the shape of a validated value. Values are either a string
// message, a nested Errors, or a []Errors for list fields.
type Errors map[string]any

// Add records a message for a scalar field. Empty messages are ignored.
func (e Errors) Add(field, message string) {
	if message != "" {
		e[field] = message
	}
}

// Merge records a nested Errors value when it is non-empty.
func (e Errors) Merge(field string, nested Errors) {
	if !nested.Empty() {
		e[field] = nested
	}
}

// MergeList records a slice of per-item Errors when any item has errors.
// The slice keeps one entry per item so indexes line up with the input.
func (e Errors) MergeList(field string, items []Errors) {
	for _, item := range items {
		if !item.Empty() {
			e[field] = items
			return
		}
	}
}

// Empty reports whether no errors were recorded anywhere in the tree.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Rule is one ordered validation predicate for a field value.
type Rule struct {
	Test    func(value string) bool
	Message string
}

// firstError runs the rules in order and returns the first failing message.
func firstError(value string, rules []Rule) string {
	for _, rule := range rules {
		if !rule.Test(value) {
			return rule.Message
		}
	}
	return ""
}

// AlertTitle and AlertBody are the blocking-alert summary shown whenever a
// step submission fails validation.
const (
	AlertTitle = "Please check entries and try again "
	AlertBody  = "Please check the highlighted entries and correct any errors to proceed."
)
