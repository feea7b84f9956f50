package identity

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengarden/greengarden-server/internal/model"
)

func setupAccountMock(t *testing.T) (*AccountRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAccountRepository(db), mock
}

func TestAccountRepository_Create(t *testing.T) {
	insert := regexp.QuoteMeta(`INSERT INTO accounts (id, email, password_hash) VALUES ($1, $2, $3) RETURNING created_at, updated_at`)

	t.Run("success normalizes email", func(t *testing.T) {
		repo, mock := setupAccountMock(t)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(insert).
			WithArgs(id, "fern@example.com", []byte("hash")).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		got, err := repo.Create(context.Background(), model.Account{ID: id, Email: "  Fern@Example.com ", PasswordHash: []byte("hash")})
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "fern@example.com", got.Email)
		assert.Equal(t, now, got.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, mock := setupAccountMock(t)

		mock.ExpectQuery(insert).
			WillReturnError(&pq.Error{Code: uniqueViolation})

		_, err := repo.Create(context.Background(), model.Account{Email: "fern@example.com", PasswordHash: []byte("hash")})
		assert.ErrorIs(t, err, model.ErrEmailTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := setupAccountMock(t)

		mock.ExpectQuery(insert).WillReturnError(errors.New("insert failed"))

		_, err := repo.Create(context.Background(), model.Account{Email: "fern@example.com"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrEmailTaken)
	})
}

func TestAccountRepository_GetByEmail(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, email, password_hash, created_at, updated_at FROM accounts WHERE LOWER(email) = $1`)
	cols := []string{"id", "email", "password_hash", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		repo, mock := setupAccountMock(t)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(query).
			WithArgs("fern@example.com").
			WillReturnRows(sqlmock.NewRows(cols).AddRow(id.String(), "fern@example.com", []byte("hash"), now, now))

		got, err := repo.GetByEmail(context.Background(), "FERN@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, []byte("hash"), got.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := setupAccountMock(t)

		mock.ExpectQuery(query).
			WithArgs("ghost@example.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestAccountRepository_GetByID(t *testing.T) {
	repo, mock := setupAccountMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE id = $1`)).
		WithArgs(id).
		WillReturnError(errors.New("boom"))

	_, err := repo.GetByID(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get account")
}

func TestAccountRepository_UpdateEmail(t *testing.T) {
	update := regexp.QuoteMeta(`UPDATE accounts SET email = $2, updated_at = NOW() WHERE id = $1`)

	tests := []struct {
		name    string
		result  driverResult
		wantErr error
	}{
		{name: "updated", result: driverResult{rows: 1}},
		{name: "missing account", result: driverResult{rows: 0}, wantErr: model.ErrNotFound},
		{name: "taken", result: driverResult{err: &pq.Error{Code: uniqueViolation}}, wantErr: model.ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupAccountMock(t)
			id := uuid.New()

			exp := mock.ExpectExec(update).WithArgs(id, "new@example.com")
			if tt.result.err != nil {
				exp.WillReturnError(tt.result.err)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.result.rows))
			}

			err := repo.UpdateEmail(context.Background(), id, "New@example.com")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

type driverResult struct {
	rows int64
	err  error
}

func TestAccountRepository_UpdatePasswordHash(t *testing.T) {
	repo, mock := setupAccountMock(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts SET password_hash = $2, updated_at = NOW() WHERE id = $1`)).
		WithArgs(id, []byte("new-hash")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePasswordHash(context.Background(), id, []byte("new-hash")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Delete(t *testing.T) {
	repo, mock := setupAccountMock(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM accounts WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
