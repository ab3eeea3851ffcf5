package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tcacomm/tca-server/config"
	"github.com/tcacomm/tca-server/internal/core"
	"github.com/tcacomm/tca-server/internal/data"
	domainauth "github.com/tcacomm/tca-server/internal/domain/auth"
	"github.com/tcacomm/tca-server/internal/domain/model"
	apperrors "github.com/tcacomm/tca-server/internal/errors"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users    core.UserRepository
	Sessions core.SessionStore
	Config   config.AuthConfig
}

// AuthService handles credential verification, password lifecycle, and
// session persistence.
type AuthService struct {
	users    core.UserRepository
	sessions core.SessionStore
	hasher   *domainauth.PasswordHasher
	ttl      time.Duration
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) (*AuthService, error) {
	if opts.Users == nil {
		return nil, errors.New("UserRepository is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("SessionStore is required")
	}
	return &AuthService{
		users:    opts.Users,
		sessions: opts.Sessions,
		hasher:   domainauth.NewPasswordHasher(opts.Config.BcryptCost),
		ttl:      opts.Config.SessionTTL,
	}, nil
}

// Login verifies the credentials and persists a fresh session on success.
// Unknown username and wrong password produce the same failure.
func (s *AuthService) Login(ctx context.Context, username, password string) (domainauth.Session, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return domainauth.Session{}, apperrors.AuthFailed("invalid username or password")
		}
		return domainauth.Session{}, storeFault(err, "credential store unavailable")
	}
	if !s.hasher.Verify(user.PasswordHash, password) {
		return domainauth.Session{}, apperrors.AuthFailed("invalid username or password")
	}

	sess := domainauth.Session{
		ID:        uuid.NewString(),
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
		return domainauth.Session{}, storeFault(saveErr, "save session")
	}
	return sess, nil
}

// Logout removes the persisted session. Unknown session ids are a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return storeFault(err, "delete session")
	}
	return nil
}

// GetSession retrieves the persisted session record for a session id.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (domainauth.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, core.ErrSessionNotFound) {
			return domainauth.Session{}, apperrors.AuthFailed("session not found or expired")
		}
		return domainauth.Session{}, storeFault(err, "get session")
	}
	return sess, nil
}

// ChangePassword replaces the password of an authenticated user without
// further verification; the session itself is the proof of identity.
func (s *AuthService) ChangePassword(ctx context.Context, username, newPassword string) error {
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, "hash password")
	}
	if updateErr := s.users.UpdatePassword(ctx, username, hash); updateErr != nil {
		if errors.Is(updateErr, data.ErrUserNotFound) {
			return apperrors.NotFoundf("user %q not found", username)
		}
		return storeFault(updateErr, "update password")
	}
	return nil
}

// ResetPassword is the unauthenticated recovery path: it verifies the old
// password in place of a session. There is no rate limiting or lockout on
// this path.
func (s *AuthService) ResetPassword(ctx context.Context, username, oldPassword, newPassword string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return apperrors.AuthFailed("invalid credentials")
		}
		return storeFault(err, "credential store unavailable")
	}
	if !s.hasher.Verify(user.PasswordHash, oldPassword) {
		return apperrors.AuthFailed("invalid credentials")
	}
	return s.ChangePassword(ctx, username, newPassword)
}

// CreateUser provisions a new account with a hashed password.
func (s *AuthService) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid user request")
	}
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "hash password")
	}
	user, err := s.users.Insert(ctx, req, hash)
	if err != nil {
		if errors.Is(err, data.ErrUsernameExists) {
			return nil, apperrors.Conflictf("username %q already exists", req.Username)
		}
		return nil, storeFault(err, "insert user")
	}
	return user, nil
}

// BatchUserResult reports the outcome of one entry in a batch provisioning call.
type BatchUserResult struct {
	Username string
	Err      error
}

// CreateUsers provisions several accounts, one store write each. Failures do
// not stop the batch; every entry gets its own result.
func (s *AuthService) CreateUsers(ctx context.Context, reqs []*model.CreateUserRequest) []BatchUserResult {
	results := make([]BatchUserResult, 0, len(reqs))
	for _, req := range reqs {
		_, err := s.CreateUser(ctx, req)
		results = append(results, BatchUserResult{Username: req.Username, Err: err})
	}
	return results
}
