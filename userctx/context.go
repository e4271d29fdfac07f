package userctx

import "context"

// Context key type
type contextKey string

const principalKey contextKey = "principal"

// SetPrincipal adds the acting principal to the request context
func SetPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// GetPrincipal retrieves the acting principal from the request context.
// Returns the empty string when no principal was resolved.
func GetPrincipal(ctx context.Context) string {
	principal, ok := ctx.Value(principalKey).(string)
	if !ok {
		return ""
	}
	return principal
}
