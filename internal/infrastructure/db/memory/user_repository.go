package memory

import (
	"context"

	"github.com/moitfe/portal-api/internal/core/domain"
	"github.com/moitfe/portal-api/internal/infrastructure/db/seed"
)

// UserRepository serves the seed roster. The roster is static reference data;
// there is no user CRUD in this system.
type UserRepository struct {
	users []domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: seed.Users()}
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
