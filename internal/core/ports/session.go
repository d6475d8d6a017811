package ports

import (
	"context"
	"time"

	"github.com/moitfe/portal-api/internal/core/domain"
)

// UserRepository exposes the seed user roster. Users are created out-of-band;
// the portal only reads them.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// SessionStore persists the logged-in identity keyed by session id, so a
// client reload can rehydrate the same user without re-authenticating.
type SessionStore interface {
	Save(ctx context.Context, sid string, user domain.User, ttl time.Duration) error
	// Load returns the session's user, or domain.ErrSessionNotFound when the
	// session does not exist or has expired.
	Load(ctx context.Context, sid string) (*domain.User, error)
	Delete(ctx context.Context, sid string) error
}

// SessionService implements the login/hydrate/logout lifecycle. Login is a
// roster pick, not a credential check; the issued token carries the session
// id that keys the stored identity.
type SessionService interface {
	Login(ctx context.Context, userID string) (token string, user *domain.User, err error)
	// Hydrate resolves a previously issued token back to its user. Used by the
	// auth middleware on every request and by clients after a reload.
	Hydrate(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
}
