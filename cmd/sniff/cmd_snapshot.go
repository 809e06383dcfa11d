package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/sniff/pkg/navigator"
)

func snapshotCommand() *cli.Command {
	return &cli.Command{
		Name:      "snapshot",
		Usage:     "Classify a navigator snapshot stored as JSON or YAML",
		ArgsUsage: "<file|->",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			path := cmd.Args().First()
			if path == "" {
				return cli.Exit("provide a snapshot file, or - for stdin", 1)
			}

			var snap navigator.Snapshot
			if path == "-" {
				snap, err = navigator.Decode(a.in)
			} else {
				snap, err = navigator.LoadFile(path)
			}
			if err != nil {
				return err
			}

			return writeResult(a.out, a.format, a.detector.Detect(ctx, snap, a.cfg))
		},
	}
}
