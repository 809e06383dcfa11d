package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/sniff/pkg/classlist"
	"github.com/dmitrymomot/sniff/pkg/logger"
)

func htmlCommand() *cli.Command {
	return &cli.Command{
		Name:  "html",
		Usage: "Add detection classes to the <html> element of a document",
		Flags: append(uaFlags(),
			&cli.StringFlag{Name: "in", Usage: "Input `FILE`; stdin when empty"},
			&cli.StringFlag{Name: "out", Usage: "Output `FILE`; stdout when empty"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			src := a.in
			if path := cmd.String("in"); path != "" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("opening input: %w", err)
				}
				defer f.Close()
				src = f
			}

			var dst io.Writer = a.out
			if path := cmd.String("out"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("creating output: %w", err)
				}
				defer f.Close()
				dst = f
			}

			res := a.detector.Detect(ctx, snapshotFromFlags(cmd), a.cfg)
			err = classlist.RewriteHTML(dst, src, res.Classes())
			if errors.Is(err, classlist.ErrNoRootElement) {
				a.log.WarnContext(ctx, "document left unchanged", logger.Error(err))
				return nil
			}
			return err
		},
	}
}
