package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
)

// User manages profile documents and the identity data behind them.
type User struct {
	profiles     model.ProfileStore
	accounts     model.AccountStore
	storage      model.Storage
	tokenService *TokenService
	publicURL    string
	bcryptCost   int
	logger       *logger.Logger
}

// NewUser creates the user service. publicURL is the base of image download URLs.
func NewUser(
	profiles model.ProfileStore,
	accounts model.AccountStore,
	storage model.Storage,
	tokenService *TokenService,
	publicURL string,
	bcryptCost int,
	logger *logger.Logger,
) *User {
	return &User{
		profiles:     profiles,
		accounts:     accounts,
		storage:      storage,
		tokenService: tokenService,
		publicURL:    strings.TrimRight(publicURL, "/"),
		bcryptCost:   bcryptCost,
		logger:       logger,
	}
}

// Get returns the profile with id. A missing profile is reported by found=false.
func (s *User) Get(ctx context.Context, id uuid.UUID) (user model.User, found bool, err error) {
	user, err = s.profiles.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, fmt.Errorf("failed to get profile: %w", err)
	}
	return user, true, nil
}

// Update writes the profile fields of patch. Username and email are stored
// trimmed. A changed email is applied to the identity account first and a
// password goes to the identity provider only; it never reaches the profile.
func (s *User) Update(ctx context.Context, id uuid.UUID, patch model.UserPatch) (model.User, error) {
	patch = trimPatch(patch)

	if patch.Username != nil {
		if err := validateUsername(*patch.Username); err != nil {
			return model.User{}, err
		}
	}
	if patch.Email != nil {
		if err := validateEmail(*patch.Email); err != nil {
			return model.User{}, err
		}
	}
	if patch.Password != nil {
		if err := validatePassword(*patch.Password); err != nil {
			return model.User{}, err
		}
	}

	if patch.Email != nil {
		if err := s.syncEmail(ctx, id, *patch.Email); err != nil {
			return model.User{}, err
		}
	}

	if patch.Password != nil {
		if err := s.UpdatePassword(ctx, id, *patch.Password); err != nil {
			return model.User{}, err
		}
	}

	user, err := s.profiles.Update(ctx, id, patch.WithoutPassword())
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Debug("User service: profile updated", "user_id", id)
	return user, nil
}

func trimPatch(patch model.UserPatch) model.UserPatch {
	if patch.Username != nil {
		username := strings.TrimSpace(*patch.Username)
		patch.Username = &username
	}
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		patch.Email = &email
	}
	return patch
}

// syncEmail moves the account to email unless it already signs in with it.
func (s *User) syncEmail(ctx context.Context, id uuid.UUID, email string) error {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get account: %w", err)
	}

	if strings.EqualFold(account.Email, email) {
		return nil
	}
	return s.UpdateEmail(ctx, id, email)
}

// UpdateEmail changes the sign-in email of the account.
func (s *User) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return err
	}

	if err := s.accounts.UpdateEmail(ctx, id, email); err != nil {
		if errors.Is(err, model.ErrEmailTaken) || errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update email: %w", err)
	}

	s.logger.Info("User service: email updated", "user_id", id)
	return nil
}

func (s *User) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hash, err := hashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}

	if err := s.accounts.UpdatePasswordHash(ctx, id, hash); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("User service: password updated", "user_id", id)
	return nil
}

// DeleteAccount removes the profile document, then the identity account, then
// every session of the account. Each step tolerates an already absent target.
func (s *User) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.profiles.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	if err := s.accounts.Delete(ctx, id); err != nil {
		s.logger.Warn("User service: profile deleted but account kept",
			"user_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete account: %w", err)
	}

	if err := s.tokenService.RevokeAllForUser(ctx, id); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	s.logger.Info("User service: account deleted", "user_id", id)
	return nil
}

// UploadProfileImage stores data at the user's fixed image path, replacing any
// previous image, and points the profile at its download URL.
func (s *User) UploadProfileImage(ctx context.Context, id uuid.UUID, data []byte) (string, error) {
	if len(data) == 0 {
		return "", model.NewValidationError("image", "image is empty")
	}

	key := model.ProfileImageKey(id)
	contentType := http.DetectContentType(data)

	if err := s.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		s.logger.Error("User service: failed to upload profile image",
			"user_id", id,
			"error", err.Error())
		return "", fmt.Errorf("failed to upload profile image: %w", err)
	}

	url := s.ImageURL(key)
	if _, err := s.profiles.Update(ctx, id, model.UserPatch{ProfileImage: &url}); err != nil {
		return "", fmt.Errorf("failed to set profile image: %w", err)
	}

	s.logger.Info("User service: profile image uploaded",
		"user_id", id,
		"size", len(data))
	return url, nil
}

// DeleteProfileImage removes the image blob and clears the profile field.
func (s *User) DeleteProfileImage(ctx context.Context, id uuid.UUID) error {
	if err := s.storage.Delete(ctx, model.ProfileImageKey(id)); err != nil {
		return fmt.Errorf("failed to delete profile image: %w", err)
	}

	empty := ""
	if _, err := s.profiles.Update(ctx, id, model.UserPatch{ProfileImage: &empty}); err != nil {
		return fmt.Errorf("failed to clear profile image: %w", err)
	}

	s.logger.Info("User service: profile image deleted", "user_id", id)
	return nil
}

// ImageURL returns the time-unbound download URL of the blob at key.
func (s *User) ImageURL(key string) string {
	return s.publicURL + "/images/" + key
}
