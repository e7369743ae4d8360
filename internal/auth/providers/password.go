package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/open-sspm/open-aigov/internal/auth"
	"github.com/open-sspm/open-aigov/internal/db/gen"
)

// UserStore is the subset of queries the password provider reads.
type UserStore interface {
	GetAuthUserByEmail(ctx context.Context, email string) (gen.AuthUser, error)
	GetTenant(ctx context.Context, id int64) (gen.Tenant, error)
}

type PasswordProvider struct {
	Q UserStore
}

func NewPasswordProvider(q UserStore) *PasswordProvider {
	return &PasswordProvider{Q: q}
}

func (p *PasswordProvider) Name() string {
	return auth.MethodPassword
}

func (p *PasswordProvider) Authenticate(ctx context.Context, email, password string) (auth.Principal, error) {
	email = auth.NormalizeEmail(email)
	if email == "" || password == "" {
		return auth.Principal{}, auth.ErrInvalidCredentials
	}

	user, err := p.Q.GetAuthUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Principal{}, auth.ErrInvalidCredentials
		}
		return auth.Principal{}, err
	}
	if !user.IsActive {
		return auth.Principal{}, auth.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return auth.Principal{}, err
	}
	if !match {
		return auth.Principal{}, auth.ErrInvalidCredentials
	}

	tenant, err := p.Q.GetTenant(ctx, user.TenantID)
	if err != nil {
		return auth.Principal{}, fmt.Errorf("load tenant %d: %w", user.TenantID, err)
	}

	return auth.Principal{
		UserID:     user.ID,
		TenantID:   tenant.ID,
		TenantSlug: tenant.Slug,
		Email:      user.Email,
		Role:       user.Role,
		Method:     auth.MethodPassword,
	}, nil
}
