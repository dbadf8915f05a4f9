package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/models"
)

// versionRepository is the PostgreSQL-backed implementation of
// [VersionRepository]. Reads go straight to the "journal_entry_versions"
// table; RestoreVersion also writes the reinstated state back to
// "journal_entries" inside a transaction.
type versionRepository struct {
	*DB
	logger *logger.Logger
}

// NewVersionRepository constructs a [VersionRepository] backed by the
// provided database connection and logger.
func NewVersionRepository(db *DB, logger *logger.Logger) VersionRepository {
	logger.Debug().Msg("creating version repository")
	return &versionRepository{
		DB:     db,
		logger: logger,
	}
}

// scanVersion scans the full journal_entry_versions column list into version.
func scanVersion(row rowScanner, version *models.JournalEntryVersion) error {
	return row.Scan(
		&version.ID,
		&version.EntryID,
		&version.OwnerID,
		&version.VersionNumber,
		&version.Title,
		&version.Content,
		&version.Date,
		&version.Time,
		&version.Tags,
		&version.Mood,
		&version.IsPrivate,
		&version.CreatedAt,
		&version.VersionCreatedAt,
	)
}

// ListVersions retrieves every recorded snapshot of the given entry, ordered
// by version number in the requested direction.
//
// The entry's existence is checked first so that an unknown entry ID yields
// [ErrEntryNotFound] instead of an empty listing. An existing entry that has
// never been edited returns an empty slice.
func (v *versionRepository) ListVersions(ctx context.Context, ownerID int64, entryID int64, order VersionOrder) ([]models.JournalEntryVersion, error) {
	log := logger.FromContext(ctx)

	var entry models.JournalEntry
	if err := scanEntry(v.DB.QueryRowContext(ctx, getEntry, entryID, ownerID), &entry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		log.Err(err).
			Str("func", "versionRepository.ListVersions").
			Int64("entry_id", entryID).
			Msg("failed to check entry existence")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	query, args, err := buildListVersionsQuery(ownerID, entryID, order)
	if err != nil {
		log.Err(err).
			Str("func", "versionRepository.ListVersions").
			Int64("entry_id", entryID).
			Msg("failed to create query")
		return nil, err
	}

	rows, queryErr := v.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "versionRepository.ListVersions").
			Int64("owner_id", ownerID).
			Int64("entry_id", entryID).
			Msg("failed to execute query for listing entry versions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	versions := make([]models.JournalEntryVersion, 0, 10)

	for rows.Next() {
		var version models.JournalEntryVersion

		if scanErr := scanVersion(rows, &version); scanErr != nil {
			log.Err(scanErr).
				Str("func", "versionRepository.ListVersions").
				Int64("entry_id", entryID).
				Msg("failed to scan version row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		versions = append(versions, version)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "versionRepository.ListVersions").
			Int64("entry_id", entryID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return versions, nil
}

// GetVersion retrieves a single snapshot of the given entry by version
// number.
//
// Returns [ErrVersionNotFound] when the entry has no snapshot with that
// number.
func (v *versionRepository) GetVersion(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntryVersion, error) {
	log := logger.FromContext(ctx)

	var version models.JournalEntryVersion
	row := v.DB.QueryRowContext(ctx, getVersion, entryID, ownerID, versionNumber)

	if err := scanVersion(row, &version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.JournalEntryVersion{}, ErrVersionNotFound
		}
		log.Err(err).
			Str("func", "versionRepository.GetVersion").
			Int64("entry_id", entryID).
			Int64("version_number", versionNumber).
			Msg("failed to scan version row")
		return models.JournalEntryVersion{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return version, nil
}

// RestoreVersion reinstates the snapshot identified by versionNumber as the
// entry's current state and marks the entry with the restored badge
// (restored_from_version, restored_at).
//
// The entry row is locked for the duration of the transaction so a restore
// cannot interleave with a concurrent edit of the same entry. The snapshot
// itself is immutable and remains in the ledger untouched; restoring does
// not append a new version.
//
// Error handling:
//   - Entry missing for this owner → [ErrEntryNotFound].
//   - Unknown version number → [ErrVersionNotFound].
func (v *versionRepository) RestoreVersion(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	tx, err := v.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "versionRepository.RestoreVersion").
			Int64("entry_id", entryID).
			Msg("failed to begin transaction")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// lock the entry row
	var current models.JournalEntry
	row := tx.QueryRowContext(ctx, getEntryForUpdate, entryID, ownerID)
	if scanErr := scanEntry(row, &current); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "versionRepository.RestoreVersion").
				Int64("owner_id", ownerID).
				Int64("entry_id", entryID).
				Msg("entry not found")
			return models.JournalEntry{}, ErrEntryNotFound
		}
		log.Err(scanErr).
			Str("func", "versionRepository.RestoreVersion").
			Int64("entry_id", entryID).
			Msg("failed to lock entry row")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	// fetch the snapshot to reinstate
	var version models.JournalEntryVersion
	row = tx.QueryRowContext(ctx, getVersion, entryID, ownerID, versionNumber)
	if scanErr := scanVersion(row, &version); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "versionRepository.RestoreVersion").
				Int64("entry_id", entryID).
				Int64("version_number", versionNumber).
				Msg("version not found")
			return models.JournalEntry{}, ErrVersionNotFound
		}
		log.Err(scanErr).
			Str("func", "versionRepository.RestoreVersion").
			Int64("entry_id", entryID).
			Int64("version_number", versionNumber).
			Msg("failed to scan version row")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	// write the snapshot state back as current
	var restored models.JournalEntry
	row = tx.QueryRowContext(ctx, restoreEntryState,
		version.Title,
		version.Content,
		version.Date,
		version.Time,
		version.Tags,
		version.Mood,
		version.VersionNumber,
		entryID,
		ownerID,
	)
	if scanErr := scanEntry(row, &restored); scanErr != nil {
		log.Err(scanErr).
			Str("func", "versionRepository.RestoreVersion").
			Int64("entry_id", entryID).
			Int64("version_number", versionNumber).
			Msg("failed to reinstate version state")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "versionRepository.RestoreVersion").
			Int64("entry_id", entryID).
			Msg("failed to commit transaction")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "versionRepository.RestoreVersion").
		Int64("owner_id", ownerID).
		Int64("entry_id", entryID).
		Int64("version_number", versionNumber).
		Msg("successfully restored entry version")

	return restored, nil
}
