package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/sniff/pkg/navigator"
	"github.com/dmitrymomot/sniff/pkg/useragent"
)

func uaFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "ua",
			Usage:    "User-Agent string to classify",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "platform",
			Usage: "navigator.platform value; derived from the user agent when empty",
		},
	}
}

// snapshotFromFlags builds a navigator snapshot from --ua, --platform and,
// when defined on cmd, --plugin and --global.
func snapshotFromFlags(cmd *cli.Command) navigator.Snapshot {
	ua := cmd.String("ua")
	platform := cmd.String("platform")
	if platform == "" {
		platform = useragent.PlatformFromUserAgent(ua)
	}

	snap := navigator.Snapshot{UA: ua, PlatformName: platform}
	for _, name := range cmd.StringSlice("plugin") {
		snap.PluginList = append(snap.PluginList, navigator.Plugin{Name: name})
	}
	snap.Globals = cmd.StringSlice("global")
	return snap
}

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "Classify a user agent string",
		Flags: append(uaFlags(),
			&cli.StringSliceFlag{
				Name:  "plugin",
				Usage: "Installed plugin `NAME` (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:  "global",
				Usage: "Global object `NAME` present in the environment (repeatable)",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			res := a.detector.Detect(ctx, snapshotFromFlags(cmd), a.cfg)
			return writeResult(a.out, a.format, res)
		},
	}
}
