package types

// ValidationResult is the outcome of validating one wizard section. Errors
// are human-readable messages in the order the checks ran; an empty list
// means the section is valid. Results are replaced wholesale on each attempt.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// Valid returns a passing result.
func Valid() ValidationResult {
	return ValidationResult{IsValid: true, Errors: []string{}}
}

// Invalid returns a failing result carrying the given messages.
func Invalid(errs []string) ValidationResult {
	return ValidationResult{IsValid: false, Errors: errs}
}
