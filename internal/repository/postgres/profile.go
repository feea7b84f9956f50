package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/greengarden/greengarden-server/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

const profileColumns = `id, username, email, profile_image, created_at, updated_at`

type ProfileRepository struct {
	db *Connection
}

func NewProfileRepository(db *Connection) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO profiles (id, username, email, profile_image)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + profileColumns

	saved, err := scanProfile(r.db.QueryRow(ctx, query, user.ID, user.Username, user.Email, user.ProfileImage))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return saved, nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	user, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get profile by id: %w", err)
	}

	return user, nil
}

// Update merges the non-nil fields of patch. The password field is ignored.
func (r *ProfileRepository) Update(ctx context.Context, id uuid.UUID, patch model.UserPatch) (model.User, error) {
	query := `UPDATE profiles SET
				username = COALESCE($2, username),
				email = COALESCE($3, email),
				profile_image = COALESCE($4, profile_image),
				updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + profileColumns

	user, err := scanProfile(r.db.QueryRow(ctx, query, id, patch.Username, patch.Email, patch.ProfileImage))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// Delete removes the profile. Removing an absent profile is not an error.
func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM profiles WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

func scanProfile(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.ProfileImage, &user.CreatedAt, &user.UpdatedAt)
	return user, err
}
