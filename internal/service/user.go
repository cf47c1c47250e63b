package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/gamevault/game-store/internal/apperr"
	"github.com/gamevault/game-store/internal/hash"
	"github.com/gamevault/game-store/internal/logging"
	"github.com/gamevault/game-store/internal/models"
	"github.com/gamevault/game-store/internal/repo"
	"github.com/gamevault/game-store/internal/token"
)

type UserService struct {
	Repo   *repo.GormRepo
	Tokens *token.Service
}

type AuthResult struct {
	User  *models.User
	Token string
}

func (s *UserService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "user.register")

	// Both identifiers are stored lowercased so the unique indexes
	// enforce case-insensitive uniqueness, not just the pre-checks.
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("username, email and password are required: %w", apperr.ErrInvalidArgument)
	}

	taken, err := s.Repo.UsernameTaken(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %v: %w", err, apperr.ErrInternal)
	}
	if taken {
		return nil, fmt.Errorf("username already exists: %w", apperr.ErrAlreadyExists)
	}

	taken, err = s.Repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %v: %w", err, apperr.ErrInternal)
	}
	if taken {
		return nil, fmt.Errorf("email already exists: %w", apperr.ErrAlreadyExists)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %v: %w", err, apperr.ErrInternal)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("user already exists: %w", apperr.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create user: %v: %w", err, apperr.ErrInternal)
	}

	t, err := s.Tokens.Generate(user.Username, user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %v: %w", err, apperr.ErrInternal)
	}

	l.Info("user registered", "user_id", user.ID, "username", user.Username)
	return &AuthResult{User: &user, Token: t}, nil
}

// Login matches the credential against username or email. Unknown
// credential and wrong password fail identically.
func (s *UserService) Login(ctx context.Context, credential, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "user.login")

	user, err := s.Repo.FindUserByCredential(ctx, credential)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid username/email or password: %w", apperr.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("load user: %v: %w", err, apperr.ErrInternal)
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login failed", "credential", credential)
		return nil, fmt.Errorf("invalid username/email or password: %w", apperr.ErrUnauthenticated)
	}

	t, err := s.Tokens.Generate(user.Username, user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %v: %w", err, apperr.ErrInternal)
	}

	l.Info("user logged in", "user_id", user.ID)
	return &AuthResult{User: user, Token: t}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d not found: %w", userID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("load user: %v: %w", err, apperr.ErrInternal)
	}
	return user, nil
}
