package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/models"
)

// entryRepository is the PostgreSQL-backed implementation of
// [EntryRepository]. It executes all journal entry operations directly
// against the "journal_entries" table using the embedded [*DB] connection,
// and appends pre-edit snapshots to "journal_entry_versions" on update.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (owner_id, entry_id, version_number, etc.).
type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEntry scans the full journal_entries column list into entry.
func scanEntry(row rowScanner, entry *models.JournalEntry) error {
	return row.Scan(
		&entry.ID,
		&entry.OwnerID,
		&entry.Title,
		&entry.Content,
		&entry.Date,
		&entry.Time,
		&entry.Tags,
		&entry.Mood,
		&entry.IsPrivate,
		&entry.RestoredFromVersion,
		&entry.RestoredAt,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
}

// CreateEntry persists a new journal entry and returns the fully populated
// [models.JournalEntry] with server-assigned fields (ID, CreatedAt,
// UpdatedAt).
//
// Creation does not touch the version ledger: a freshly created entry has no
// versions until its first edit.
func (p *entryRepository) CreateEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	log.Debug().
		Str("func", "entryRepository.CreateEntry").
		Int64("owner_id", entry.OwnerID).
		Msg("saving new journal entry")

	var created models.JournalEntry
	row := p.DB.QueryRowContext(ctx, createEntry,
		entry.OwnerID,
		entry.Title,
		entry.Content,
		entry.Date,
		entry.Time,
		entry.Tags,
		entry.Mood,
		entry.IsPrivate,
	)

	if err := scanEntry(row, &created); err != nil {
		log.Err(err).
			Str("func", "entryRepository.CreateEntry").
			Int64("owner_id", entry.OwnerID).
			Msg("failed to save journal entry")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetEntry retrieves a single journal entry by its ID, scoped to the owner.
//
// Returns [ErrEntryNotFound] when no entry with the given ID exists for the
// owner, including the case where the ID belongs to another user's entry.
func (p *entryRepository) GetEntry(ctx context.Context, ownerID int64, entryID int64) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.JournalEntry
	row := p.DB.QueryRowContext(ctx, getEntry, entryID, ownerID)

	if err := scanEntry(row, &entry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.JournalEntry{}, ErrEntryNotFound
		}
		log.Err(err).
			Str("func", "entryRepository.GetEntry").
			Int64("owner_id", ownerID).
			Int64("entry_id", entryID).
			Msg("failed to scan journal entry row")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// ListEntries retrieves the owner's journal entries, optionally narrowed to
// a single civil day when date is non-empty.
//
// Returns an empty slice when no entries match.
func (p *entryRepository) ListEntries(ctx context.Context, ownerID int64, date models.CivilDate) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(ownerID, date)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.ListEntries").
			Int64("owner_id", ownerID).
			Msg("failed to create query")
		return nil, err
	}

	rows, queryErr := p.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "entryRepository.ListEntries").
			Int64("owner_id", ownerID).
			Str("entry_date", date.String()).
			Msg("failed to execute query for listing journal entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, 20)

	for rows.Next() {
		var entry models.JournalEntry

		if scanErr := scanEntry(rows, &entry); scanErr != nil {
			log.Err(scanErr).
				Str("func", "entryRepository.ListEntries").
				Int64("owner_id", ownerID).
				Msg("failed to scan journal entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entryRepository.ListEntries").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// UpdateEntry replaces the entry's content fields, preserving the pre-edit
// state in the version ledger first.
//
// The read of current state, the snapshot append and the field update run
// inside a single transaction with the entry row locked (SELECT ... FOR
// UPDATE), so concurrent edits of the same entry serialize and version
// numbers stay gapless. If any step fails the transaction is rolled back:
// no version is recorded and the entry keeps its previous state.
//
// A successful update clears any restored badge on the entry.
//
// Error handling:
//   - Entry missing for this owner → [ErrEntryNotFound].
//   - Transaction begin/commit failure → [ErrBeginningTransaction] /
//     [ErrCommitingTransaction].
func (p *entryRepository) UpdateEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.UpdateEntry").
			Int64("owner_id", entry.OwnerID).
			Int64("entry_id", entry.ID).
			Msg("failed to begin transaction")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// lock and read the current state
	var current models.JournalEntry
	row := tx.QueryRowContext(ctx, getEntryForUpdate, entry.ID, entry.OwnerID)
	if scanErr := scanEntry(row, &current); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "entryRepository.UpdateEntry").
				Int64("owner_id", entry.OwnerID).
				Int64("entry_id", entry.ID).
				Msg("entry not found")
			return models.JournalEntry{}, ErrEntryNotFound
		}
		log.Err(scanErr).
			Str("func", "entryRepository.UpdateEntry").
			Int64("entry_id", entry.ID).
			Msg("failed to lock and read current entry state")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	// append the pre-edit snapshot to the ledger
	var versionNumber int64
	snapshotErr := tx.QueryRowContext(ctx, insertVersionSnapshot,
		current.ID,
		current.OwnerID,
		current.Title,
		current.Content,
		current.Date,
		current.Time,
		current.Tags,
		current.Mood,
		current.IsPrivate,
		current.CreatedAt,
	).Scan(&versionNumber)
	if snapshotErr != nil {
		log.Err(snapshotErr).
			Str("func", "entryRepository.UpdateEntry").
			Int64("entry_id", entry.ID).
			Msg("failed to append version snapshot")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, snapshotErr)
	}

	// apply the new field values
	var updated models.JournalEntry
	row = tx.QueryRowContext(ctx, updateEntryState,
		entry.Title,
		entry.Content,
		entry.Date,
		entry.Time,
		entry.Tags,
		entry.Mood,
		entry.ID,
		entry.OwnerID,
	)
	if scanErr := scanEntry(row, &updated); scanErr != nil {
		log.Err(scanErr).
			Str("func", "entryRepository.UpdateEntry").
			Int64("entry_id", entry.ID).
			Msg("failed to apply new entry state")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "entryRepository.UpdateEntry").
			Int64("entry_id", entry.ID).
			Msg("failed to commit transaction")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "entryRepository.UpdateEntry").
		Int64("owner_id", entry.OwnerID).
		Int64("entry_id", entry.ID).
		Int64("version_number", versionNumber).
		Msg("successfully updated journal entry")

	return updated, nil
}
