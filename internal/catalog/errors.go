package catalog

import "fmt"

// LoadError represents a failure to load or validate one of the embedded tables
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog %s: %s", e.File, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
