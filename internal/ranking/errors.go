package ranking

import "fmt"

// Error represents an invalid ranking request.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ranking error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("ranking error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
