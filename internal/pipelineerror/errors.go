package pipelineerror

import "fmt"

// InvalidCategoryError signals a category value outside the closed
// purchase/bank/card/sale set. This is a programmer error and callers are
// expected to fail fast rather than render an empty pipeline.
type InvalidCategoryError struct {
	Category string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid business category %q: must be one of purchase, bank, card, sale", e.Category)
}

// LoadError represents a failure reading a record collection from disk.
type LoadError struct {
	Path   string
	Format string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s records from %s: %v", e.Format, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ValidationError represents a record that failed input validation.
type ValidationError struct {
	RecordID string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for record %q: %s", e.RecordID, e.Reason)
}

// WriteError represents a failure rendering a snapshot or report.
type WriteError struct {
	Path   string
	Format string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s report to %s: %v", e.Format, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
