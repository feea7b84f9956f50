package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileStore defines persistence operations for user profile documents.
type ProfileStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Update(ctx context.Context, id uuid.UUID, patch UserPatch) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User is the profile document kept next to an identity account with the same ID.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserPatch lists the fields of a partial profile update.
// Password is never stored in the profile; it is routed to the identity provider.
type UserPatch struct {
	Username     *string `json:"username,omitempty"`
	Email        *string `json:"email,omitempty"`
	Password     *string `json:"password,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// WithoutPassword returns a copy of the patch that is safe to write to the profile store.
func (p UserPatch) WithoutPassword() UserPatch {
	p.Password = nil
	return p
}

// AccountStore defines persistence operations of the identity provider.
type AccountStore interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash []byte) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Account is an identity-provider record holding credentials.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
