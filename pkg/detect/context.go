package detect

import "context"

type contextKey struct{}

// WithContext stores res in ctx.
func WithContext(ctx context.Context, res Result) context.Context {
	return context.WithValue(ctx, contextKey{}, res)
}

// FromContext returns the Result stored by Middleware.
func FromContext(ctx context.Context) (Result, bool) {
	if ctx == nil {
		return Result{}, false
	}
	res, ok := ctx.Value(contextKey{}).(Result)
	return res, ok
}
