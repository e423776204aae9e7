package todoerrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/erraggy/mosscow/internal/maputil"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrDecode indicates malformed or wrongly shaped input.
	ErrDecode = errors.New("decode error")

	// ErrValidation indicates an entity failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrStorage indicates a database failure.
	ErrStorage = errors.New("storage error")
)

// DecodeError represents input that could not be decoded.
type DecodeError struct {
	// Source identifies the input (e.g. "request body", a file path)
	Source string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DecodeError) Error() string {
	msg := "decode error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// ValidationError represents an entity that failed validation.
// Fields maps storage attribute names to their messages, in the shape
// clients receive them: {"task_title": ["can't be blank"]}.
type ValidationError struct {
	// Entity is the entity name (e.g. "todo")
	Entity string
	// Fields holds the messages for each invalid attribute
	Fields map[string][]string
}

// Add appends a message for field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Empty reports whether no messages were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// Error returns a human-readable error message.
// Fields are listed alphabetically so the message is stable.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Entity != "" {
		msg += " on " + e.Entity
	}
	if len(e.Fields) == 0 {
		return msg
	}
	names := maputil.SortedKeys(e.Fields)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+strings.Join(e.Fields[name], ", "))
	}
	return msg + ": " + strings.Join(parts, "; ")
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError represents a lookup of an entity that does not exist.
type NotFoundError struct {
	// Entity is the entity name (e.g. "todo")
	Entity string
	// ID is the identity that was looked up
	ID any
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	entity := e.Entity
	if entity == "" {
		entity = "record"
	}
	if e.ID == nil {
		return entity + " not found"
	}
	return fmt.Sprintf("%s not found (id: %v)", entity, e.ID)
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// StorageError wraps a failure reported by the database layer.
type StorageError struct {
	// Op is the repository operation that failed (e.g. "create")
	Op string
	// Cause is the driver error
	Cause error
}

// Error returns a human-readable error message.
func (e *StorageError) Error() string {
	msg := "storage error"
	if e.Op != "" {
		msg += " during " + e.Op
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
