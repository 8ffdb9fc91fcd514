package auth

import "context"

type contextKey string

const adminContextKey contextKey = "admin"

type AdminContextValue struct {
	ID       int64
	Username string
}

func NewContextWithAdmin(ctx context.Context, admin *AdminContextValue) context.Context {
	return context.WithValue(ctx, adminContextKey, admin)
}

func AdminFromContext(ctx context.Context) (*AdminContextValue, bool) {
	admin, ok := ctx.Value(adminContextKey).(*AdminContextValue)
	return admin, ok
}
