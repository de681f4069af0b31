package platform

import (
	"context"
	"strings"

	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
)

// CredentialProvider supplies the bearer token attached to every platform call.
type CredentialProvider interface {
	BearerToken(ctx context.Context) (string, error)
}

type tokenKey struct{}

// ContextWithToken stores the caller's bearer token for ContextCredentials.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token stored by ContextWithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}
	return token, true
}

// ContextCredentials forwards the token of the admin request being served.
type ContextCredentials struct{}

func (ContextCredentials) BearerToken(ctx context.Context) (string, error) {
	token, ok := TokenFromContext(ctx)
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "missing platform credentials")
	}
	return token, nil
}

// StaticCredentials always returns the same service token.
type StaticCredentials struct {
	Token string
}

func (s StaticCredentials) BearerToken(context.Context) (string, error) {
	if strings.TrimSpace(s.Token) == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "platform service token not configured")
	}
	return s.Token, nil
}
