package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"braces.dev/errtrace"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/sipheader/header"
	"github.com/ghettovoice/sipheader/internal/config"
	"github.com/ghettovoice/sipheader/internal/log"
)

// exitInvalid is the exit code of a strict run that met invalid headers.
const exitInvalid = 2

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "sipheader",
		Usage:     "parse, validate and normalize SIP header blocks",
		ArgsUsage: "[FILE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "config",
				Aliases:   []string{"c"},
				Usage:     "load configuration from a YAML `FILE`",
				Sources:   cli.EnvVars("SIPHEADER_CONFIG"),
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: " + strings.Join(config.Formats, ", "),
				Value:   config.FormatText,
				Validator: func(s string) error {
					if !slices.Contains(config.Formats, s) {
						return fmt.Errorf("unknown format %q", s)
					}
					return nil
				},
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "use compact header names in text output",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "exit with a non-zero code when any header is malformed or invalid",
			},
			&cli.StringSliceFlag{
				Name:  "raw",
				Usage: "keep the named headers as raw text",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "log level: debug, info, warn, error or off",
				Value:   "info",
			},
			&cli.BoolFlag{
				Name:  "dev",
				Usage: "use the developer log output with source positions",
			},
		},
		Action: run,
	}
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("load config %s: %w", path, err))
		}
	}

	if cmd.IsSet("format") {
		cfg.Output.Format = cmd.String("format")
	}
	if cmd.IsSet("compact") {
		cfg.Output.Compact = cmd.Bool("compact")
	}
	if cmd.IsSet("strict") {
		cfg.Strict = cmd.Bool("strict")
	}
	if cmd.IsSet("raw") {
		cfg.RawHeaders = append(cfg.RawHeaders, cmd.StringSlice("raw")...)
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("dev") {
		cfg.Dev = cmd.Bool("dev")
	}
	return cfg, errtrace.Wrap(cfg.Validate())
}

func run(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return errtrace.Wrap(err)
	}
	lvl, _ := log.ParseLevel(cfg.LogLevel)
	logger := log.New(cmd.ErrWriter, log.Options{Level: lvl, Dev: cfg.Dev, Source: cfg.Dev})
	logger.Debug("configuration loaded", "config", log.FmtValue(cfg, false))

	for _, name := range cfg.RawHeaders {
		canon := header.CanonicName(name)
		if err := header.Register(canon, func() header.Header { return &header.Extension{Name: canon} }); err != nil {
			return errtrace.Wrap(err)
		}
		defer header.Unregister(canon)
	}

	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	p := &printer{w: cmd.Writer, out: cfg.Output}
	var failed int
	for _, in := range inputs {
		data, err := readInput(cmd.Reader, in)
		if err != nil {
			return errtrace.Wrap(err)
		}

		ok := true
		hs, err := header.ParseBlock(string(data))
		if err != nil {
			ok = false
			logger.Warn("malformed headers", "source", in, "error", err)
		}
		if err := hs.Validate(); err != nil {
			ok = false
			logger.Warn("invalid headers", "source", in, "error", err)
		}
		if !ok {
			failed++
		}
		logger.Debug("headers parsed", "source", in, "headers", hs,
			"block", log.CalcValue(func() any { return hs.Render(nil) }))

		if err := p.print(hs); err != nil {
			return errtrace.Wrap(err)
		}
	}
	if err := p.close(); err != nil {
		return errtrace.Wrap(err)
	}

	if failed > 0 && cfg.Strict {
		return cli.Exit(fmt.Sprintf("%d of %d inputs have malformed or invalid headers", failed, len(inputs)), exitInvalid)
	}
	logger.Debug("done", "inputs", len(inputs), "failed", failed)
	return nil
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return errtrace.Wrap2(io.ReadAll(stdin))
	}
	return errtrace.Wrap2(os.ReadFile(name))
}

// printer writes header blocks in the configured format.
// Text blocks are separated by an empty line, YAML blocks are separate documents.
type printer struct {
	w   io.Writer
	out config.Output
	n   int
	yml *yaml.Encoder
}

func (p *printer) print(hs *header.Headers) error {
	defer func() { p.n++ }()

	switch p.out.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return errtrace.Wrap(enc.Encode(hs))
	case config.FormatYAML:
		if p.yml == nil {
			p.yml = yaml.NewEncoder(p.w)
			p.yml.SetIndent(2)
		}
		return errtrace.Wrap(p.yml.Encode(hs))
	default:
		if p.n > 0 {
			if _, err := io.WriteString(p.w, "\r\n"); err != nil {
				return errtrace.Wrap(err)
			}
		}
		_, err := hs.RenderTo(p.w, &header.RenderOptions{Compact: p.out.Compact})
		return errtrace.Wrap(err)
	}
}

func (p *printer) close() error {
	if p.yml == nil {
		return nil
	}
	return errtrace.Wrap(p.yml.Close())
}
