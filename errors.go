package condottieri

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidUnitType is returned when a unit type is not one of Army,
	// Fleet or Garrison. Callers are expected to validate input against
	// AllUnitTypes() first, so seeing this is a bug.
	ErrInvalidUnitType = errors.New("invalid unit type")

	// ErrMalformedIncomeTable implies an income list isn't 6 comma separated
	// numbers.
	ErrMalformedIncomeTable = errors.New("income list must have 6 comma separated numbers")

	// ErrUnknownArea is returned when a code doesn't match any area of the setting.
	ErrUnknownArea = errors.New("unknown area")
)

// MissingAssetError is returned when a sprite, board or token coordinate
// required to draw a map cannot be found.
// An incomplete map is worse than no map, so renders abort on these.
type MissingAssetError struct {
	Kind string // eg. "sprite", "board", "garrison token"
	Name string // sprite name, area code etc
	Err  error  `json:",omitempty"`
}

// Error implements error
func (e *MissingAssetError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("missing %s %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("missing %s %q: %v", e.Kind, e.Name, e.Err)
}

// Unwrap returns the underlying cause, if any
func (e *MissingAssetError) Unwrap() error {
	return e.Err
}

// IsMissingAsset returns if err (or something it wraps) is a MissingAssetError
func IsMissingAsset(err error) bool {
	var target *MissingAssetError
	return errors.As(err, &target)
}

// FieldError is a single data-entry problem.
type FieldError struct {
	Field   string
	Message string
}

// Error implements error
func (f FieldError) Error() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// ValidationErrors collects everything wrong with a record so an editor
// can fix it all in one go.
type ValidationErrors []FieldError

// Error implements error
func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, f := range v {
		msgs[i] = f.Error()
	}
	return strings.Join(msgs, "; ")
}

// add appends a field error
func (v *ValidationErrors) add(field, format string, args ...interface{}) {
	*v = append(*v, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// prefixed appends all errors from err (if it's a ValidationErrors) under
// the given prefix, or a single error otherwise.
func (v *ValidationErrors) prefixed(prefix string, err error) {
	if err == nil {
		return
	}
	var inner ValidationErrors
	if !errors.As(err, &inner) {
		v.add(prefix, "%v", err)
		return
	}
	for _, f := range inner {
		v.add(prefix+"."+f.Field, "%s", f.Message)
	}
}

// err returns nil if nothing was added
func (v ValidationErrors) err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
