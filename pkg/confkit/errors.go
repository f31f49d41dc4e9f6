package confkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user left a screen without confirming.
	// This is normal flow control, not a failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrNoCategories is returned when a screen is built without any category.
	ErrNoCategories = errors.New("screen has no categories")

	// ErrUnknownCategory is returned when selecting a category index that does not exist.
	ErrUnknownCategory = errors.New("unknown category")
)

// InfrastructureError reports a failure of the toolkit or its host rather
// than of the application: a window that cannot be created, a missing font,
// a renderer that refuses to draw.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("confkit: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("confkit: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
