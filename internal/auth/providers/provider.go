// Package providers authenticates users against a credential source.
package providers

import (
	"context"

	"github.com/open-sspm/open-aigov/internal/auth"
)

type Provider interface {
	Name() string
	Authenticate(ctx context.Context, email, password string) (auth.Principal, error)
}
