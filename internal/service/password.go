package service

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/greengarden/greengarden-server/internal/model"
)

// MinPasswordLength is the shortest password the identity provider accepts.
const MinPasswordLength = 6

func hashPassword(password string, cost int) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

func checkPassword(hash []byte, password string) error {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return model.ErrInvalidCredentials
	}
	return err
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return model.NewValidationError("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.NewValidationError("email", "email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return model.NewValidationError("email", "invalid email address")
	}
	return nil
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return model.NewValidationError("username", "username is required")
	}
	return nil
}
