package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrConfigNotFound          = errors.New("config not found")
	ErrConfigSyntax            = errors.New("config syntax error")
	ErrMissingMandatorySection = errors.New("missing mandatory section")
	ErrNoPlottableData         = errors.New("no plottable data")
	ErrInvalidEntry            = errors.New("invalid date entry")
	ErrInvalidValue            = errors.New("non-numeric skill value")
	ErrRender                  = errors.New("render error")
	ErrSave                    = errors.New("save error")
	ErrScaffold                = errors.New("scaffold error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindConfigNotFound  ErrorKind = "config_not_found"
	KindConfigSyntax    ErrorKind = "config_syntax"
	KindMissingSection  ErrorKind = "missing_section"
	KindNoPlottableData ErrorKind = "no_plottable_data"
	KindInvalidEntry    ErrorKind = "invalid_entry"
	KindInvalidValue    ErrorKind = "invalid_value"
	KindRender          ErrorKind = "render"
	KindSave            ErrorKind = "save"
	KindScaffold        ErrorKind = "scaffold"
)

var kindSentinels = map[ErrorKind]error{
	KindConfigNotFound:  ErrConfigNotFound,
	KindConfigSyntax:    ErrConfigSyntax,
	KindMissingSection:  ErrMissingMandatorySection,
	KindNoPlottableData: ErrNoPlottableData,
	KindInvalidEntry:    ErrInvalidEntry,
	KindInvalidValue:    ErrInvalidValue,
	KindRender:          ErrRender,
	KindSave:            ErrSave,
	KindScaffold:        ErrScaffold,
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel registered for the error's kind, so callers can use
// errors.Is(err, ErrConfigNotFound) regardless of the wrapped cause.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// Fatal reports whether the kind ends a pipeline run.
func (k ErrorKind) Fatal() bool {
	switch k {
	case KindConfigNotFound, KindConfigSyntax, KindMissingSection, KindNoPlottableData:
		return true
	default:
		return false
	}
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the first OpError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}
