package header

import (
	"errors"
	"fmt"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
)

// Error is the string type of the package error sentinels.
type Error = errorutil.Error

const (
	// ErrInvalidArgument is returned by guard clauses before any state is changed.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrInvalidFormat is returned when a value violates the header grammar.
	ErrInvalidFormat = errorutil.ErrInvalidFormat
	// ErrDuplicateItem is returned when a parameter or a header with the same name is already present.
	ErrDuplicateItem = errorutil.ErrDuplicateItem
	// ErrOutOfRange is returned when a numeric value is outside of its domain.
	ErrOutOfRange = errorutil.ErrOutOfRange

	// ErrEmptyValue is returned when a required value is empty.
	ErrEmptyValue Error = "empty value"
	// ErrGenericParamsNotAllowed is returned when a generic parameter is added to a header
	// that accepts only its own parameters.
	ErrGenericParamsNotAllowed Error = "generic parameters are not allowed"
	// ErrNotMultiple is returned when a group is created for a header that does not allow multiple values.
	ErrNotMultiple Error = "header does not allow multiple values"
	// ErrSecurityGroup is returned when a comma separated group is created for a security header.
	ErrSecurityGroup Error = "security headers must be grouped with AuthGroup"
	// ErrNotSecurityHeader is returned when an AuthGroup is created for a non-security header.
	ErrNotSecurityHeader Error = "not a security header"
	// ErrSecondsRange is returned when a seconds value is negative or exceeds 2^32-1.
	ErrSecondsRange Error = "seconds value out of range"
	// ErrBasicScheme is returned for the Basic authentication scheme, which SIP does not allow.
	ErrBasicScheme Error = "basic authentication scheme is not allowed"
	// ErrNotBoolean is returned when a boolean parameter is neither "true" nor "false".
	ErrNotBoolean Error = "value is not a boolean"
	// ErrNonceCountLength is returned when a nonce count is longer than 24 characters.
	ErrNonceCountLength Error = "nonce count is too long"
)

var domainErrs = []error{
	ErrInvalidArgument,
	ErrInvalidFormat,
	ErrDuplicateItem,
	ErrOutOfRange,
	ErrEmptyValue,
	ErrGenericParamsNotAllowed,
	ErrSecondsRange,
	ErrBasicScheme,
	ErrNotBoolean,
	ErrNonceCountLength,
	grammar.ErrMalformedInput,
	grammar.ErrEmptyInput,
}

// ParseError describes a failure to parse a header value.
// Field names the sub-value being extracted, Input holds the raw header value.
type ParseError struct {
	Header Name
	Field  string
	Input  string
	Err    error
}

//errtrace:skip
func newParseError(hdr Name, field, input string, err error) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		return err
	}
	if !isDomainErr(err) {
		err = errorutil.NewInvalidFormatError(err)
	}
	return &ParseError{Header: hdr, Field: field, Input: input, Err: err}
}

func isDomainErr(err error) bool {
	for _, e := range domainErrs {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Field == "" {
		return fmt.Sprintf("parse %s header %q: %v", e.Header, e.Input, e.Err)
	}
	return fmt.Sprintf("parse %s header %q: %s: %v", e.Header, e.Input, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
