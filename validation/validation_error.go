package validation

// ValidationError carries the full error shadow for a rejected step
// submission. The step is not advanced and nothing is persisted.
type ValidationError struct {
	Fields Errors
}

func (e *ValidationError) Error() string {
	return AlertTitle
}
