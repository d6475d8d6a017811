package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/moitfe/portal-api/internal/core/domain"
	"github.com/moitfe/portal-api/internal/core/ports"
)

// SessionService implements roster-pick login. The issued JWT carries the
// session id; the identity itself lives in the session store, so logout
// invalidates the token immediately rather than waiting for expiry.
type SessionService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	jwtSecret string
	ttl       time.Duration
	log       zerolog.Logger
}

func NewSessionService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{users: users, sessions: sessions, jwtSecret: jwtSecret, ttl: ttl, log: log}
}

func (s *SessionService) Login(ctx context.Context, userID string) (string, *domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	sid := uuid.NewString()
	if err := s.sessions.Save(ctx, sid, *user, s.ttl); err != nil {
		return "", nil, fmt.Errorf("persist session: %w", err)
	}

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"sid":  sid,
		"role": string(user.Role),
		"exp":  time.Now().Add(s.ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")
	return token, user, nil
}

// Hydrate resolves a token back to its stored identity. A token whose session
// has been logged out or expired yields domain.ErrSessionNotFound.
func (s *SessionService) Hydrate(ctx context.Context, token string) (*domain.User, error) {
	sid, err := s.sessionID(token)
	if err != nil {
		return nil, err
	}
	return s.sessions.Load(ctx, sid)
}

func (s *SessionService) Logout(ctx context.Context, token string) error {
	sid, err := s.sessionID(token)
	if err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, sid); err != nil {
		return err
	}
	s.log.Info().Str("sid", sid).Msg("session closed")
	return nil
}

func (s *SessionService) sessionID(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrSessionNotFound
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", domain.ErrSessionNotFound
	}
	return sid, nil
}
