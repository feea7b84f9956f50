package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
)

// Auth implements sign-up, login and session handling against the identity provider.
type Auth struct {
	accounts     model.AccountStore
	profiles     model.ProfileStore
	tokenService *TokenService
	bcryptCost   int
	logger       *logger.Logger
}

func NewAuth(
	accounts model.AccountStore,
	profiles model.ProfileStore,
	tokenService *TokenService,
	bcryptCost int,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		accounts:     accounts,
		profiles:     profiles,
		tokenService: tokenService,
		bcryptCost:   bcryptCost,
		logger:       logger,
	}
}

// SignUp creates the identity account and then its profile document.
// The two writes are not atomic: when the profile write fails the account is kept.
func (a *Auth) SignUp(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := validateUsername(username); err != nil {
		return uuid.Nil, err
	}
	if err := validateEmail(email); err != nil {
		return uuid.Nil, err
	}
	if err := validatePassword(password); err != nil {
		return uuid.Nil, err
	}

	hash, err := hashPassword(password, a.bcryptCost)
	if err != nil {
		return uuid.Nil, err
	}

	account, err := a.accounts.Create(ctx, model.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			a.logger.Info("Auth service: email already registered", "email", email)
			return uuid.Nil, err
		}
		a.logger.Error("Auth service: failed to create account",
			"email", email,
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("failed to create account: %w", err)
	}

	_, err = a.profiles.Create(ctx, model.User{
		ID:       account.ID,
		Username: username,
		Email:    account.Email,
	})
	if err != nil {
		a.logger.Warn("Auth service: account created without profile",
			"user_id", account.ID,
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("failed to create profile: %w", err)
	}

	a.logger.Info("Auth service: user signed up", "user_id", account.ID)
	return account.ID, nil
}

// Login verifies the credentials and opens a session.
func (a *Auth) Login(ctx context.Context, email, password string) (model.Session, error) {
	account, err := a.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Session{}, model.ErrInvalidCredentials
		}
		return model.Session{}, fmt.Errorf("failed to get account: %w", err)
	}

	if err := checkPassword(account.PasswordHash, password); err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			a.logger.Info("Auth service: wrong password", "user_id", account.ID)
			return model.Session{}, err
		}
		return model.Session{}, fmt.Errorf("failed to check password: %w", err)
	}

	session, err := a.tokenService.Issue(ctx, account.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue session",
			"user_id", account.ID,
			"error", err.Error())
		return model.Session{}, err
	}

	a.logger.Info("Auth service: user logged in", "user_id", account.ID)
	return session, nil
}

// Logout revokes the refresh token. Unknown or unreadable tokens have nothing to revoke.
func (a *Auth) Logout(ctx context.Context, refreshToken string) error {
	err := a.tokenService.RevokeByToken(ctx, refreshToken)
	if errors.Is(err, model.ErrUnauthenticated) {
		a.logger.Debug("Auth service: logout with unreadable token")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// Refresh rotates the session tokens.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.Session, error) {
	return a.tokenService.Refresh(ctx, refreshToken)
}
