// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/sipheader/header"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(perr *header.ParseError) slog.Value {
		attrs := []slog.Attr{
			slog.String("header", string(perr.Header)),
			slog.String("field", perr.Field),
			slog.String("input", perr.Input),
		}
		if perr.Err != nil {
			attrs = append(attrs, slog.String("cause", perr.Err.Error()))
		}
		return slog.GroupValue(attrs...)
	}),
	slogformatter.FormatByType(func(hs *header.Headers) slog.Value {
		names := make([]string, 0, hs.Len())
		for _, hdr := range hs.All() {
			names = append(names, string(hdr.CanonicName()))
		}
		return slog.GroupValue(
			slog.Int("len", hs.Len()),
			slog.Any("names", names),
		)
	}),
	slogformatter.FormatByType(func(hdr header.Header) slog.Value {
		return slog.GroupValue(
			slog.String("type", fmt.Sprintf("%T", hdr)),
			slog.String("name", string(hdr.CanonicName())),
			slog.String("value", hdr.RenderValue()),
			slog.Bool("valid", hdr.IsValid()),
		)
	}),
)

// Options configures a logger created with [New].
type Options struct {
	Level slog.Level
	// Dev switches to the colored multiline developer output.
	Dev bool
	// Source adds the source position to each record.
	Source bool
}

// LevelOff disables logging.
const LevelOff slog.Level = math.MaxInt32

// New creates a logger writing to w.
// It returns [Noop] when the level is [LevelOff].
func New(w io.Writer, opts Options) *slog.Logger {
	if opts.Level >= LevelOff {
		return Noop
	}
	if opts.Dev {
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: opts.Source,
					Level:     opts.Level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	}
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  opts.Source,
			Level:      opts.Level,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// ParseLevel parses a level name such as "debug", "warn" or "off".
func ParseLevel(s string) (slog.Level, error) {
	if strings.EqualFold(s, "off") {
		return LevelOff, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, errtrace.Wrap(err)
	}
	return lvl, nil
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type calcValue struct{ fn func() any }

func (v calcValue) LogValue() slog.Value {
	cv := v.fn()
	switch cv := cv.(type) {
	case slog.Value:
		return cv
	default:
		return slog.AnyValue(cv)
	}
}

// CalcValue returns a value logger that computes a value using a fn.
func CalcValue(fn func() any) slog.LogValuer { return calcValue{fn} }
