package header

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/types"
)

// FormatQValue renders q with at most three decimal digits.
func FormatQValue(q float64) string {
	s := strconv.FormatFloat(q, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// ParseQValue parses a q-value and checks that it lies within [0, 1].
func ParseQValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || !grammar.IsDigit(s[0]) && s[0] != '-' {
		return 0, errtrace.Wrap(errorutil.NewInvalidFormatError("invalid q-value %q", s))
	}
	q, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errtrace.Wrap(errorutil.NewInvalidFormatError(err))
	}
	if err := checkQValue(q); err != nil {
		return 0, errtrace.Wrap(err)
	}
	return q, nil
}

func checkQValue(q float64) error {
	if q < 0 || q > 1 {
		return errtrace.Wrap(errorutil.NewOutOfRangeError("q-value %v is outside of [0, 1]", q))
	}
	return nil
}

func qValue(ps *Parameterized) (float64, bool) {
	v, ok := ps.paramValue("q")
	if !ok {
		return 0, false
	}
	q, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return q, true
}

func setQValue(ps *Parameterized, q float64) error {
	if err := checkQValue(q); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(ps.setParamValue("q", FormatQValue(q), false))
}

// qValueCheck validates the parsed "q" parameter and normalizes its rendering.
type qValueCheck struct{ ps *Parameterized }

func (qValueCheck) field() string { return "q" }

func (qValueCheck) reset() {}

func (l qValueCheck) consume(*grammar.Scanner) error {
	p, ok := l.ps.Param("q")
	if !ok {
		return nil
	}
	q, err := ParseQValue(p.Unquoted())
	if err != nil {
		return errtrace.Wrap(err)
	}
	np, err := types.NewParam("q", FormatQValue(q))
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(l.ps.SetParam(np))
}
