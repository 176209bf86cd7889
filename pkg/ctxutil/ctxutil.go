package ctxutil

import (
	"context"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	clientKey    ctxKey = "client"
	operatorKey  ctxKey = "operator"
)

// Client describes where a request came from.
type Client struct {
	IP        string
	UserAgent string
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClient stores the client metadata in the context.
func WithClient(ctx context.Context, c Client) context.Context {
	return context.WithValue(ctx, clientKey, c)
}

// ClientFromCtx extracts the client metadata. Returns the zero Client if absent.
func ClientFromCtx(ctx context.Context) Client {
	c, _ := ctx.Value(clientKey).(Client)
	return c
}

// WithOperator stores the authenticated operator reference in the context.
func WithOperator(ctx context.Context, ref string) context.Context {
	return context.WithValue(ctx, operatorKey, ref)
}

// OperatorFromCtx extracts the operator reference.
// Returns "" and false if the request was not authenticated.
func OperatorFromCtx(ctx context.Context) (string, bool) {
	ref, ok := ctx.Value(operatorKey).(string)
	if !ok || ref == "" {
		return "", false
	}
	return ref, true
}
