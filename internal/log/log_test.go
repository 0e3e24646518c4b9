package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/sipheader/header"
	"github.com/ghettovoice/sipheader/internal/log"
)

func TestNew_FormatsHeaders(t *testing.T) {
	t.Parallel()

	hdr, err := header.Parse("From: <sip:alice@atlanta.com>;tag=1928301774")
	if err != nil {
		t.Fatalf("header.Parse() error = %v, want nil", err)
	}
	_, perr := header.Parse("CSeq: abc INVITE")

	for _, dev := range []bool{false, true} {
		var buf bytes.Buffer
		logger := log.New(&buf, log.Options{Level: slog.LevelDebug, Dev: dev})
		logger.Info("parsed", "hdr", hdr)
		logger.Warn("failed", "error", perr)
		logger.Debug("lazy", "value", log.CalcValue(func() any { return hdr.RenderValue() }))

		out := buf.String()
		for _, want := range []string{"parsed", "From", "sip:alice@atlanta.com", "failed", "CSeq", "lazy"} {
			if !strings.Contains(out, want) {
				t.Errorf("dev=%v: output %q does not contain %q", dev, out, want)
			}
		}
	}
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf, log.Options{Level: slog.LevelWarn})
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info record written at warn level: %q", buf.String())
	}
	if !logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("logger.Enabled(error) = false, want true")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error+2", slog.LevelError + 2, false},
		{"OFF", log.LevelOff, false},
		{"verbose", 0, true},
	}
	for _, c := range cases {
		got, err := log.ParseLevel(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("log.ParseLevel(%q) error = %v, want error %v", c.in, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("log.ParseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf, log.Options{Level: log.LevelOff, Dev: true})
	if logger != log.Noop {
		t.Errorf("log.New(off) = %p, want log.Noop", logger)
	}
	logger.Error("hidden", "value", log.CalcValue(func() any {
		t.Error("value calculated by a disabled logger")
		return nil
	}))
	if buf.Len() != 0 {
		t.Errorf("record written at off level: %q", buf.String())
	}

	if log.Noop.Enabled(context.Background(), slog.LevelError) {
		t.Error("log.Noop.Enabled(error) = true, want false")
	}
}

func TestFmtValue(t *testing.T) {
	t.Parallel()

	v := struct{ A int }{1}
	if got, want := log.FmtValue(v, false).LogValue().String(), "{A:1}"; got != want {
		t.Errorf("FmtValue(v, false) = %q, want %q", got, want)
	}
	if got, want := log.FmtValue(v, true).LogValue().String(), "struct { A int }{A:1}"; got != want {
		t.Errorf("FmtValue(v, true) = %q, want %q", got, want)
	}
	if got := log.CalcValue(func() any { return slog.IntValue(3) }).LogValue(); got.Int64() != 3 {
		t.Errorf("CalcValue() = %v, want 3", got)
	}
}
