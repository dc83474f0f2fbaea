package assistant

import "fmt"

// Pipeline stages of a payment attempt, in execution order.
const (
	StageLookup  = "lookup"
	StageMandate = "mandate"
	StagePayment = "payment"
)

// ValidationError reports a missing or unusable request field. No
// backend call is made once one is raised.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFoundError reports that no invoice matched a reference or id.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(msg string) error {
	return &NotFoundError{Message: msg}
}

// StageError tags a backend failure with the pipeline stage it occurred
// in. Stages after the failed one were never attempted.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
