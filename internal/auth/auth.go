// Package auth provides the caller-authentication capability the engine
// depends on: proving that the current call is made by a given principal.
package auth

import (
	"context"

	"trustlink/pkg/domain"
	derrors "trustlink/pkg/domain-errors"
	"trustlink/pkg/requestcontext"
)

// Authenticator verifies that the current call is authenticated as the given
// principal. The engine invokes it before any privileged mutation.
type Authenticator interface {
	Authorize(ctx context.Context, principal domain.Address) error
}

// ContextAuthenticator authorizes against the caller identity the bearer
// middleware placed in the request context.
type ContextAuthenticator struct{}

func NewContextAuthenticator() ContextAuthenticator { return ContextAuthenticator{} }

func (ContextAuthenticator) Authorize(ctx context.Context, principal domain.Address) error {
	caller := requestcontext.Caller(ctx)
	if caller.IsZero() {
		return derrors.New(derrors.CodeUnauthorized, "request is not authenticated")
	}
	if caller != principal {
		return derrors.Newf(derrors.CodeUnauthorized, "caller is not %s", principal)
	}
	return nil
}
