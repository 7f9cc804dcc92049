package dto

// FieldError describes a single validation failure, keyed by the form path
// of the offending field (e.g. "customer", "items.2.quantity")
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult collects the field errors of a submission attempt.
// Validation failures are values, never thrown; an empty result means the
// submission is admissible.
type ValidationResult struct {
	Errors []FieldError `json:"errors"`
}

// Add records a field error
func (r *ValidationResult) Add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// Valid reports whether no field errors were recorded
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Message returns the message recorded for a field, or empty
func (r *ValidationResult) Message(field string) string {
	for _, err := range r.Errors {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}
