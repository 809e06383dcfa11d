package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/sniff/pkg/config"
	"github.com/dmitrymomot/sniff/pkg/detect"
	"github.com/dmitrymomot/sniff/pkg/navigator/chrome"
)

func browseCommand() *cli.Command {
	return &cli.Command{
		Name:      "browse",
		Usage:     "Load a page in headless Chrome and classify its navigator",
		ArgsUsage: "<url>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "inject", Usage: "Add the detection classes to the page's <html> element"},
			&cli.DurationFlag{Name: "timeout", Usage: "Per-operation browser timeout"},
			&cli.StringFlag{Name: "chrome-path", Usage: "Chrome executable"},
			&cli.BoolFlag{Name: "no-sandbox", Usage: "Disable the Chrome sandbox"},
			&cli.StringFlag{Name: "ua", Usage: "Override navigator.userAgent"},
			&cli.StringFlag{Name: "platform", Usage: "Override navigator.platform (requires --ua)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			url := cmd.Args().First()
			if url == "" {
				return cli.Exit("provide a URL to browse", 1)
			}

			cfg, err := chromeConfig(cmd)
			if err != nil {
				return err
			}

			session, err := chrome.NewSession(ctx, cfg, chrome.WithLogger(a.log))
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.Navigate(ctx, url); err != nil {
				return err
			}
			snap, err := session.Snapshot(ctx)
			if err != nil {
				return err
			}

			detectCfg := a.cfg
			detectCfg.InjectClasses = detectCfg.InjectClasses || cmd.Bool("inject")
			d := detect.New(detect.WithLogger(a.log), detect.WithTarget(session))
			res := d.Detect(ctx, snap, detectCfg)

			if detectCfg.InjectClasses {
				if classes, err := session.Classes(ctx); err == nil {
					a.log.InfoContext(ctx, "page classes", slog.Any("classes", classes))
				}
			}

			return writeResult(a.out, a.format, res)
		},
	}
}

// chromeConfig reads CHROME_* variables and applies command flags on top.
func chromeConfig(cmd *cli.Command) (chrome.Config, error) {
	cfg := chrome.DefaultConfig()
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	if cmd.IsSet("timeout") {
		cfg.Timeout = cmd.Duration("timeout")
	}
	if path := cmd.String("chrome-path"); path != "" {
		cfg.ExecPath = path
	}
	if cmd.Bool("no-sandbox") {
		cfg.NoSandbox = true
	}
	if ua := cmd.String("ua"); ua != "" {
		cfg.UserAgent = ua
	}
	if platform := cmd.String("platform"); platform != "" {
		cfg.Platform = platform
	}
	return cfg, nil
}
