package header

import (
	"math"
	"strconv"
	"strings"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
)

// MaxSeconds is the largest delta-seconds value.
const MaxSeconds = math.MaxUint32

// Seconds is the common part of the headers carrying a delta-seconds value.
type Seconds struct {
	Value uint32
}

func (s *Seconds) layers() []layer {
	return []layer{uintLayer{
		name:     "delta-seconds",
		set:      func(v uint64) { s.Value = uint32(v) },
		max:      MaxSeconds,
		rangeErr: ErrSecondsRange,
	}}
}

// set checks the value domain before storing it.
func (s *Seconds) set(v int64) error {
	if v < 0 || v > MaxSeconds {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrSecondsRange, "%d is outside of [0, %d]", v, uint64(MaxSeconds)))
	}
	s.Value = uint32(v)
	return nil
}

func (s *Seconds) duration() time.Duration { return time.Duration(s.Value) * time.Second }

func (s *Seconds) renderValue() string { return strconv.FormatUint(uint64(s.Value), 10) }

func (s *Seconds) clone() Seconds { return *s }

func (s *Seconds) equal(other *Seconds) bool { return s.Value == other.Value }

func (*Seconds) isValid() bool { return true }

// secondsParamCheck validates a parameter holding delta-seconds, e.g. "expires".
type secondsParamCheck struct {
	ps   *Parameterized
	name string
}

func (l secondsParamCheck) field() string { return l.name }

func (secondsParamCheck) reset() {}

func (l secondsParamCheck) consume(*grammar.Scanner) error {
	p, ok := l.ps.Param(l.name)
	if !ok {
		return nil
	}
	_, err := parseSeconds(p.Unquoted())
	return errtrace.Wrap(err)
}

func parseSeconds(s string) (uint32, error) {
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	if !grammar.IsDigits(digits) {
		return 0, errtrace.Wrap(errorutil.NewInvalidFormatError("invalid delta-seconds %q", s))
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if neg || err != nil || v > MaxSeconds {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrSecondsRange, "%s is outside of [0, %d]", s, uint64(MaxSeconds)))
	}
	return uint32(v), nil
}

func paramSeconds(ps *Parameterized, name string) (uint32, bool) {
	v, ok := ps.paramValue(name)
	if !ok {
		return 0, false
	}
	sec, err := parseSeconds(v)
	return sec, err == nil
}

func setParamSeconds(ps *Parameterized, name string, v int64) error {
	var s Seconds
	if err := s.set(v); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(ps.setParamValue(name, s.renderValue(), false))
}
