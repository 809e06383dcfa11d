package main

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/sniff/pkg/config"
	"github.com/dmitrymomot/sniff/pkg/detect"
	"github.com/dmitrymomot/sniff/pkg/httpserver"
	"github.com/dmitrymomot/sniff/pkg/requestid"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the detection API over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "Listen address; overrides HTTP_ADDR"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			var cfg httpserver.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if addr := cmd.String("addr"); addr != "" {
				cfg.Addr = addr
			}

			srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(a.log))
			return srv.Run(ctx, router(a))
		},
	}
}

func router(a *app) chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/healthz", httpserver.Health)
	r.Mount("/detect", detect.Handler(a.detector, a.cfg))
	return r
}
