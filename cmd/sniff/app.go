package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/sniff/pkg/config"
	"github.com/dmitrymomot/sniff/pkg/detect"
	"github.com/dmitrymomot/sniff/pkg/logger"
	"github.com/dmitrymomot/sniff/pkg/requestid"
)

const serviceName = "sniff"

// app is the state shared by every subcommand, built in the root Before hook.
type app struct {
	log      *slog.Logger
	detector *detect.Detector
	cfg      detect.Config
	format   string
	out      io.Writer
	in       io.Reader
}

func appFrom(cmd *cli.Command) (*app, error) {
	a, ok := cmd.Root().Metadata["app"].(*app)
	if !ok {
		return nil, errors.New("application not initialized")
	}
	return a, nil
}

func root() *cli.Command {
	return &cli.Command{
		Name:      "sniff",
		Usage:     "Classify browser environments from navigator signals",
		Writer:    os.Stdout,
		Reader:    os.Stdin,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: json, yaml or classes",
				Value: formatJSON,
			},
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Load environment variables from `FILE` before reading configuration",
			},
			&cli.BoolFlag{Name: "skip-browser", Usage: "Do not classify the browser"},
			&cli.BoolFlag{Name: "skip-os", Usage: "Do not classify the operating system"},
			&cli.BoolFlag{Name: "skip-plugins", Usage: "Do not enumerate plugins"},
			&cli.BoolFlag{Name: "skip-supports", Usage: "Do not probe web platform features"},
		},
		Before: setup,
		Commands: []*cli.Command{
			parseCommand(),
			snapshotCommand(),
			htmlCommand(),
			browseCommand(),
			serveCommand(),
		},
		Metadata: map[string]any{},
	}
}

func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	format := cmd.String("format")
	if !validFormat(format) {
		return ctx, fmt.Errorf("unknown output format %q", format)
	}

	var opts []config.Option
	if files := cmd.StringSlice("env-file"); len(files) > 0 {
		opts = append(opts, config.WithEnvFiles(files...))
	}

	var logCfg logger.Config
	if err := config.Load(&logCfg, opts...); err != nil {
		return ctx, err
	}
	logOpts := []logger.Option{
		logger.WithOutput(cmd.Root().ErrWriter),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cmd.Bool("debug") {
		logOpts = append(logOpts, logger.WithLevel(slog.LevelDebug))
	}
	log := logger.NewFromConfig(logCfg, serviceName, logOpts...)

	var cfg detect.Config
	if err := config.Load(&cfg, opts...); err != nil {
		return ctx, err
	}
	cfg = applySkipFlags(cmd, cfg)

	cmd.Metadata["app"] = &app{
		log:      log,
		detector: detect.New(detect.WithLogger(log)),
		cfg:      cfg,
		format:   format,
		out:      cmd.Root().Writer,
		in:       cmd.Root().Reader,
	}
	return ctx, nil
}

func applySkipFlags(cmd *cli.Command, cfg detect.Config) detect.Config {
	flags := map[string]string{
		"skip-browser":  detect.AxisBrowser,
		"skip-os":       detect.AxisOS,
		"skip-plugins":  detect.AxisPlugins,
		"skip-supports": detect.AxisSupports,
	}
	var axes []string
	for flag, axis := range flags {
		if cmd.Bool(flag) {
			axes = append(axes, axis)
		}
	}
	// axis names come from the detect constants, so Skip cannot fail here
	cfg, _ = cfg.Skip(axes...)
	return cfg
}
