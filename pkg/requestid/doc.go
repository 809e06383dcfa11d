// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a client supplied X-Request-ID header when it is a short
// token of letters, digits, '-' and '_', and otherwise generates a UUIDv4.
// The ID is stored in the request context and echoed in the response.
//
// LoggerExtractor plugs the ID into pkg/logger so every record logged with
// the request context carries request_id:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
