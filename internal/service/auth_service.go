// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"banktransfer/internal/auth"
	"banktransfer/internal/repository"
	"banktransfer/internal/util"
)

// LoginResult carries the signed token for an authenticated user.
type LoginResult struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// AuthService authenticates users and issues tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type authService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	hasher     *auth.PasswordHasher
	tokens     *auth.TokenService
	logger     *slog.Logger
}

// NewAuthService wires an AuthService.
func NewAuthService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenService,
) AuthService {
	return &authService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		hasher:     hasher,
		tokens:     tokens,
		logger:     util.GetLogger(),
	}
}

// Login verifies the credentials and returns a signed token. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", util.ErrInvalidCredentials)
	}

	user, err := s.userRepo.GetByUsername(ctx, s.dbExecutor, username)
	if err != nil {
		if util.IsError(err, util.ErrUserNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		s.logger.WarnContext(ctx, "failed login attempt", slog.String("username", username))
		return nil, util.ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:    token,
		UserID:   user.ID.String(),
		Username: user.Username,
	}, nil
}
