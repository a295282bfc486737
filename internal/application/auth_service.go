package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/community-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/community-blog-api/internal/domain/repository"
	"github.com/oksasatya/community-blog-api/pkg/helpers"
)

var (
	ErrEmailOrUsernameTaken = errors.New("email or username already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrSignOutFailed        = errors.New("failed to sign out")
)

// AuthService owns signup/signin/signout. Tokens authorize requests on
// their own; session rows exist purely for sign-out bookkeeping.
type AuthService struct {
	Users    repo.UserRepository
	Sessions repo.SessionRepository
	Tokens   *helpers.TokenManager
	Logger   *logrus.Logger
}

func NewAuthService(users repo.UserRepository, sessions repo.SessionRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Sessions: sessions, Tokens: tokens, Logger: logger}
}

type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Username string
}

// AuthResult pairs the sanitized user with a freshly issued bearer token.
type AuthResult struct {
	User  entity.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// SignOutResult acknowledges a sign-out, successful even when no active
// sessions remained.
type SignOutResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error) {
	taken, err := s.Users.ExistsByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailOrUsernameTaken
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Email:    in.Email,
		Username: in.Username,
		Name:     in.Name,
		Password: hash,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		// Concurrent signups can slip past the existence check; the unique
		// constraint is the authority.
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailOrUsernameTaken
		}
		return nil, err
	}

	token, _, err := s.Tokens.Generate(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u.Public(), Token: token}, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Same failure for unknown email and wrong password.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CheckPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.Tokens.Generate(u.ID, u.Email)
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.Create(ctx, &entity.Session{UserID: u.ID, Token: token}); err != nil {
		return nil, err
	}
	return &AuthResult{User: u.Public(), Token: token}, nil
}

// SignOut deactivates every active session for the user. Calling it again
// with nothing left to remove still succeeds.
func (s *AuthService) SignOut(ctx context.Context, userID int64) (*SignOutResult, error) {
	if _, err := s.Sessions.DeleteActiveByUser(ctx, userID); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("sign out failed")
		}
		return nil, ErrSignOutFailed
	}
	return &SignOutResult{
		Success:   true,
		Message:   "Successfully signed out",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
