package grammar

import "fmt"

// CheckError represents a failed call to a grammar provider
type CheckError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *CheckError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s grammar check failed: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s grammar check failed: %s", e.Provider, e.Message)
}

func (e *CheckError) Unwrap() error {
	return e.Cause
}
