package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/models"
)

func newTestCredentialRepo(t *testing.T) (*credentialRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &credentialRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateCredential_Success(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	ctx := context.Background()
	credential := models.JournalCredential{
		OwnerID:      1,
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$salt$digest",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"owner_id", "password_hash", "created_at"}).
		AddRow(credential.OwnerID, credential.PasswordHash, now)

	mock.ExpectQuery("INSERT INTO journal_credentials").
		WithArgs(credential.OwnerID, credential.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.CreateCredential(ctx, credential)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.OwnerID != 1 {
		t.Errorf("expected OwnerID=1, got %d", created.OwnerID)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt %v, got %v", now, created.CreatedAt)
	}
}

func TestCreateCredential_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	ctx := context.Background()
	credential := models.JournalCredential{OwnerID: 1, PasswordHash: "hash"}

	mock.ExpectQuery("INSERT INTO journal_credentials").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateCredential(ctx, credential)
	if !errors.Is(err, ErrCredentialAlreadyExists) {
		t.Fatalf("expected ErrCredentialAlreadyExists, got %v", err)
	}
}

func TestCreateCredential_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	ctx := context.Background()
	credential := models.JournalCredential{OwnerID: 1, PasswordHash: "hash"}

	mock.ExpectQuery("INSERT INTO journal_credentials").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateCredential(ctx, credential)
	if err == nil || !strings.Contains(err.Error(), "db network error") {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetCredential_Success(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"owner_id", "password_hash", "created_at"}).
		AddRow(int64(7), "encoded-hash", now)

	mock.ExpectQuery("SELECT owner_id, password_hash, created_at").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	credential, err := repo.GetCredential(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if credential.PasswordHash != "encoded-hash" {
		t.Errorf("expected hash %q, got %q", "encoded-hash", credential.PasswordHash)
	}
}

func TestGetCredential_NotFound(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT owner_id, password_hash, created_at").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id", "password_hash", "created_at"}))

	_, err := repo.GetCredential(ctx, 7)
	if !errors.Is(err, ErrCredentialNotFound) {
		t.Fatalf("expected ErrCredentialNotFound, got %v", err)
	}
}
