package auth

import "context"

type sessionCtxKey struct{}

// SetSession stores the verified session in the request context.
func SetSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// GetSession returns the session from the context, or nil when the request
// carries no verified admin identity.
func GetSession(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionCtxKey{}).(*Session)
	return s
}
