package logging

import "context"

type correlationIDKey struct{}

// CorrelationID returns the request correlation id stored in ctx, or "".
func CorrelationID(ctx context.Context) string {
	cid, _ := ctx.Value(correlationIDKey{}).(string)
	return cid
}

func WithCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}
