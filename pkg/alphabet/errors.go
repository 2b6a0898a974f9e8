package alphabet

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName is returned when a name is not an exported Go identifier.
	ErrInvalidName = errors.New("invalid name")
	// ErrDuplicateName is returned when a name or alias is used twice.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrDuplicateRune is returned when two entries share a code point.
	ErrDuplicateRune = errors.New("duplicate rune")
	// ErrInvalidRune is returned for surrogates and values outside the Unicode range.
	ErrInvalidRune = errors.New("invalid rune")
	// ErrInvalidPackage is returned when the table does not name a usable Go package.
	ErrInvalidPackage = errors.New("invalid package")
	// ErrUnknownAlphabet is returned by Builtin for names it does not know.
	ErrUnknownAlphabet = errors.New("unknown alphabet")
)

// EntryError reports a validation failure on a single entry.
type EntryError struct {
	Index int    // Position of the entry in the table
	Name  string // Name or alias that failed
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// AggregateError collects every validation failure of a table.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

func (e *AggregateError) Unwrap() []error { return e.Errors }
