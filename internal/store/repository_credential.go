package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/models"
)

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository]. It manages the single journal password row per
// owner in the "journal_credentials" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCredential persists the owner's journal password hash and returns the
// stored record with the server-assigned CreatedAt.
//
// The owner_id primary key enforces the one-credential-per-owner rule at the
// database level.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrCredentialAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *credentialRepository) CreateCredential(ctx context.Context, credential models.JournalCredential) (models.JournalCredential, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCredential, credential.OwnerID, credential.PasswordHash)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.JournalCredential{}, ErrCredentialAlreadyExists
		default:
			return models.JournalCredential{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&credential.OwnerID, &credential.PasswordHash, &credential.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.JournalCredential{}, ErrCredentialAlreadyExists
		}
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error: scanning error")
		return models.JournalCredential{}, err
	}

	return credential, nil
}

// GetCredential retrieves the journal credential record for the given owner.
//
// Error handling:
//   - No row → [ErrCredentialNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *credentialRepository) GetCredential(ctx context.Context, ownerID int64) (models.JournalCredential, error) {
	log := logger.FromContext(ctx)

	var credential models.JournalCredential
	row := r.db.QueryRowContext(ctx, getCredential, ownerID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.GetCredential").Msg("error: row is nil")
		return models.JournalCredential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&credential.OwnerID, &credential.PasswordHash, &credential.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.JournalCredential{}, ErrCredentialNotFound
		}
		log.Err(err).Str("func", "*credentialRepository.GetCredential").Msg("error: scanning error")
		return models.JournalCredential{}, err
	}

	return credential, nil
}
