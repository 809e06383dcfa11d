// Package httpserver wraps net/http with graceful shutdown, sane timeouts
// and slog logging.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives, then
// shuts the server down within the configured deadline. Listen failures are
// wrapped with ErrStart and shutdown failures with ErrShutdown.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.Health)
//	r.Mount("/detect", detect.Handler(d, cfg))
//
//	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
