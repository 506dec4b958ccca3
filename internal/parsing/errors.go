package parsing

import "fmt"

// ExtractionError records a failure inside the extractor that was recovered into a degraded result
type ExtractionError struct {
	Stage string
	Cause error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed at %s: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("extraction failed at %s", e.Stage)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// recovered converts a recovered panic value into an ExtractionError
func recovered(stage string, r any) *ExtractionError {
	if err, ok := r.(error); ok {
		return &ExtractionError{Stage: stage, Cause: err}
	}
	return &ExtractionError{Stage: stage, Cause: fmt.Errorf("panic: %v", r)}
}
