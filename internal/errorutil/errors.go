// Package errorutil holds the error sentinels of the library and the helpers that wrap them.
package errorutil

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ghettovoice/sipheader/internal/util"
)

// Error is a constant error.
type Error string

func (s Error) Error() string { return string(s) }

func Errorf(format string, args ...any) error {
	return Error(fmt.Sprintf(format, args...)) //errtrace:skip
}

const (
	// ErrInvalidArgument is returned by guard clauses before any state is changed.
	ErrInvalidArgument Error = "invalid argument"
	// ErrInvalidFormat is returned when a value violates its grammar.
	ErrInvalidFormat Error = "invalid format"
	// ErrDuplicateItem is returned when an item with the same name is already present.
	ErrDuplicateItem Error = "duplicate item"
	// ErrOutOfRange is returned when a numeric value is outside of its domain.
	ErrOutOfRange Error = "value out of range"
)

// NewWrapperError ties the sentinel to a cause. The first argument is either
// an error, which is wrapped unless it already matches the sentinel,
// or a format string followed by its arguments.
func NewWrapperError(sentinel error, args ...any) error {
	if len(args) == 0 {
		return sentinel //errtrace:skip
	}
	switch v := args[0].(type) {
	case error:
		if errors.Is(v, sentinel) {
			return v //errtrace:skip
		}
		return fmt.Errorf("%w: %w", sentinel, v) //errtrace:skip
	case string:
		if len(args) > 1 {
			v = fmt.Sprintf(v, args[1:]...)
		}
		return fmt.Errorf("%w: %s", sentinel, v) //errtrace:skip
	default:
		return sentinel //errtrace:skip
	}
}

func NewInvalidArgumentError(args ...any) error {
	return NewWrapperError(ErrInvalidArgument, args...) //errtrace:skip
}

func NewInvalidFormatError(args ...any) error {
	return NewWrapperError(ErrInvalidFormat, args...) //errtrace:skip
}

func NewDuplicateItemError(args ...any) error {
	return NewWrapperError(ErrDuplicateItem, args...) //errtrace:skip
}

func NewOutOfRangeError(args ...any) error {
	return NewWrapperError(ErrOutOfRange, args...) //errtrace:skip
}

// Join combines errs into one error, nil entries are dropped.
// The result matches every combined error with errors.Is.
func Join(errs ...error) error {
	return JoinPrefix("", errs...) //errtrace:skip
}

// JoinPrefix is like [Join], the message starts with prefix.
func JoinPrefix(prefix string, errs ...error) error {
	errs = compact(errs)
	switch len(errs) {
	case 0:
		return nil
	case 1:
		if prefix == "" {
			return errs[0] //errtrace:skip
		}
		return fmt.Errorf("%s %w", prefix, errs[0]) //errtrace:skip
	default:
		return &multiError{prefix: prefix, errs: errs} //errtrace:skip
	}
}

func compact(errs []error) []error {
	out := errs[:0:0]
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}

type multiError struct {
	prefix string
	errs   []error
}

func (e *multiError) Error() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(e.prefix)
	e.write(sb, "")
	return sb.String()
}

// write renders one error per line, nested lists are indented under their prefix.
func (e *multiError) write(sb *strings.Builder, indent string) {
	for _, err := range e.errs {
		sb.WriteString("\n" + indent + "  - ")
		if nested, ok := err.(*multiError); ok { //nolint:errorlint
			if nested.prefix == "" {
				sb.WriteString("multiple errors")
			} else {
				sb.WriteString(nested.prefix)
			}
			nested.write(sb, indent+"  ")
			continue
		}
		sb.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n"+indent+"    "))
	}
}

func (e *multiError) Unwrap() []error { return e.errs }
