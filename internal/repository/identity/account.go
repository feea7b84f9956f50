package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/greengarden/greengarden-server/internal/model"
)

const uniqueViolation = "23505"

var _ model.AccountStore = (*AccountRepository)(nil)

// AccountRepository keeps credentials in the accounts table.
type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// Create inserts a new account. A duplicate email (case-insensitive) yields model.ErrEmailTaken.
func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	const query = `INSERT INTO accounts (id, email, password_hash) VALUES ($1, $2, $3) RETURNING created_at, updated_at`

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.Email = normalizeEmail(account.Email)

	err := r.DB.QueryRowContext(ctx, query, account.ID, account.Email, account.PasswordHash).
		Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Account{}, model.ErrEmailTaken
		}
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	const query = `SELECT id, email, password_hash, created_at, updated_at FROM accounts WHERE LOWER(email) = $1`
	return r.get(ctx, query, normalizeEmail(email))
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Account, error) {
	const query = `SELECT id, email, password_hash, created_at, updated_at FROM accounts WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *AccountRepository) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	const query = `UPDATE accounts SET email = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, id, normalizeEmail(email))
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrEmailTaken
		}
		return fmt.Errorf("failed to update account email: %w", err)
	}
	return requireRow(res)
}

func (r *AccountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash []byte) error {
	const query = `UPDATE accounts SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, id, hash)
	if err != nil {
		return fmt.Errorf("failed to update account password: %w", err)
	}
	return requireRow(res)
}

// Delete removes the account. Deleting a missing account is not an error.
func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

func (r *AccountRepository) get(ctx context.Context, query string, arg any) (model.Account, error) {
	var a model.Account
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return a, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
