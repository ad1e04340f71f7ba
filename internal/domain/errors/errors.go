// Package errors defines the error taxonomy of the import pipeline.
package errors

import (
	"fmt"

	"megaskyshop/internal/errors"
)

// ImportError defines the interface for pipeline errors.
type ImportError interface {
	error
	ErrorCode() string // Stable machine-readable code
	Message() string   // Operator-facing message
	Details() string   // Extra context (optional)
	Fatal() bool       // Whether the whole run must stop
}

// BaseError is a basic error structure that implements the ImportError interface.
type BaseError struct {
	errorCode string
	message   string
	details   string
	fatal     bool
}

// NewBaseError creates a new base error.
func NewBaseError(errorCode, message, details string, fatal bool) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		details:   details,
		fatal:     fatal,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ErrorCode returns the error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the operator-facing message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// Fatal reports whether the run must stop.
func (e *BaseError) Fatal() bool {
	return e.fatal
}

// WithDetails adds detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		fatal:     e.fatal,
	}
}

// Is matches errors sharing the same code, so predefined values work as errors.Is targets.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// Predefined error types
var (
	ErrCategoryParentNotFound = NewBaseError(
		"CATEGORY_PARENT_NOT_FOUND",
		"parent category not found",
		"",
		false,
	)

	ErrCategoryTooDeep = NewBaseError(
		"CATEGORY_TOO_DEEP",
		"parent category is itself a child category",
		"",
		false,
	)

	ErrInvalidAdditionalData = NewBaseError(
		"INVALID_ADDITIONAL_DATA",
		"additional data is not a JSON object",
		"",
		false,
	)

	ErrDuplicateRecord = NewBaseError(
		"DUPLICATE_RECORD",
		"record already exists",
		"",
		false,
	)

	ErrDefaultCategoryMissing = NewBaseError(
		"DEFAULT_CATEGORY_MISSING",
		"default category does not exist",
		"",
		true,
	)
)

// SourceMissingError is returned when the import source does not exist.
type SourceMissingError struct {
	Location string
	err      error
}

// NewSourceMissingError creates a fatal source error.
func NewSourceMissingError(location string, err error) *SourceMissingError {
	return &SourceMissingError{Location: location, err: err}
}

func (e *SourceMissingError) Error() string {
	return fmt.Sprintf("source %q not found", e.Location)
}

func (e *SourceMissingError) Unwrap() error     { return e.err }
func (e *SourceMissingError) ErrorCode() string { return "SOURCE_MISSING" }
func (e *SourceMissingError) Message() string   { return "import source not found" }
func (e *SourceMissingError) Details() string   { return e.Location }
func (e *SourceMissingError) Fatal() bool       { return true }

// SchemaError is returned when the header row lacks required columns.
type SchemaError struct {
	Dataset string
	Missing []string
}

// NewSchemaError creates a fatal header validation error.
func NewSchemaError(dataset string, missing []string) *SchemaError {
	return &SchemaError{Dataset: dataset, Missing: missing}
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s header is missing required columns %v", e.Dataset, e.Missing)
}

func (e *SchemaError) ErrorCode() string { return "SCHEMA_INVALID" }
func (e *SchemaError) Message() string   { return "source header does not match the expected schema" }
func (e *SchemaError) Details() string   { return fmt.Sprintf("missing %v", e.Missing) }
func (e *SchemaError) Fatal() bool       { return true }

// MalformedRowError is returned when a data row cannot be split into the header's columns.
type MalformedRowError struct {
	Line     int
	Expected int
	Got      int
	err      error
}

// NewMalformedRowError creates a recoverable row structure error.
func NewMalformedRowError(line, expected, got int, err error) *MalformedRowError {
	return &MalformedRowError{Line: line, Expected: expected, Got: got, err: err}
}

func (e *MalformedRowError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("line %d: malformed row: %v", e.Line, e.err)
	}

	return fmt.Sprintf("line %d: expected %d columns, got %d", e.Line, e.Expected, e.Got)
}

func (e *MalformedRowError) Unwrap() error     { return e.err }
func (e *MalformedRowError) ErrorCode() string { return "ROW_MALFORMED" }
func (e *MalformedRowError) Message() string   { return "malformed row" }
func (e *MalformedRowError) Details() string   { return e.Error() }
func (e *MalformedRowError) Fatal() bool       { return false }

// RowParseError is returned when a row's content cannot be coerced or validated.
type RowParseError struct {
	Line  int
	Field string
	err   error
}

// NewRowParseError creates a recoverable row content error.
func NewRowParseError(line int, field string, err error) *RowParseError {
	return &RowParseError{Line: line, Field: field, err: err}
}

func (e *RowParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.err)
	}

	return fmt.Sprintf("line %d: field %s: %v", e.Line, e.Field, e.err)
}

func (e *RowParseError) Unwrap() error     { return e.err }
func (e *RowParseError) ErrorCode() string { return "ROW_INVALID" }
func (e *RowParseError) Message() string   { return "row could not be parsed" }
func (e *RowParseError) Details() string   { return e.Error() }
func (e *RowParseError) Fatal() bool       { return false }

// PersistenceError is returned when the store rejects a write.
type PersistenceError struct {
	err       error
	details   string
	transient bool
}

// NewPersistenceError creates a recoverable write error. Transient marks
// connection-type failures as opposed to constraint violations.
func NewPersistenceError(err error, details string, transient bool) *PersistenceError {
	return &PersistenceError{err: err, details: details, transient: transient}
}

func (e *PersistenceError) Error() string {
	if e.err == nil {
		return e.details
	}

	return errors.Wrap(e.err, e.details).Error()
}

func (e *PersistenceError) Unwrap() error     { return e.err }
func (e *PersistenceError) ErrorCode() string { return "PERSISTENCE_FAILED" }
func (e *PersistenceError) Message() string   { return "store rejected the write" }
func (e *PersistenceError) Details() string   { return e.details }
func (e *PersistenceError) Fatal() bool       { return false }

// Transient reports whether the failure looks like a connection problem.
func (e *PersistenceError) Transient() bool { return e.transient }

// IsFatal reports whether err carries an ImportError that must stop the run.
func IsFatal(err error) bool {
	var ie ImportError
	if errors.As(err, &ie) {
		return ie.Fatal()
	}

	return false
}

// Code returns the error code of the first ImportError in err's chain, or "UNKNOWN".
func Code(err error) string {
	var ie ImportError
	if errors.As(err, &ie) {
		return ie.ErrorCode()
	}

	return "UNKNOWN"
}
