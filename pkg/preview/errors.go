package preview

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest indicates a request with unusable parameters.
var ErrInvalidRequest = errors.New("invalid preview request")

// NotFoundError indicates the requested document or worksheet does not exist.
type NotFoundError struct {
	DocumentID string
	SheetName  string // empty when the document itself is missing
	Err        error
}

func (e *NotFoundError) Error() string {
	if e.SheetName != "" {
		return fmt.Sprintf("document %q: sheet %q not found: %v", e.DocumentID, e.SheetName, e.Err)
	}
	return fmt.Sprintf("document %q not found: %v", e.DocumentID, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// TransientError indicates the workbook bytes could not be fetched for a
// recoverable reason. It is not retried by the service.
type TransientError struct {
	DocumentID string
	Err        error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("fetching document %q: %v", e.DocumentID, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// RenderError indicates the workbook could not be rendered. No partial output
// is returned and nothing is cached.
type RenderError struct {
	DocumentID string
	SheetName  string
	Err        error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering document %q sheet %q: %v", e.DocumentID, e.SheetName, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
