package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mshakirov/go-journal-keeper/models"
)

const (
	createCredential = `INSERT INTO journal_credentials (owner_id, password_hash)
    VALUES ($1, $2)
    RETURNING owner_id, password_hash, created_at;`

	getCredential = `SELECT owner_id, password_hash, created_at
    FROM journal_credentials
    WHERE owner_id = $1;`

	createEntry = `INSERT INTO journal_entries (
			owner_id,
			title,
			content,
			entry_date,
			entry_time,
			tags,
			mood,
			is_private
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, owner_id, title, content, entry_date, entry_time, tags, mood, is_private,
			restored_from_version, restored_at, created_at, updated_at;`

	getEntry = `SELECT id, owner_id, title, content, entry_date, entry_time, tags, mood, is_private,
			restored_from_version, restored_at, created_at, updated_at
		FROM journal_entries
		WHERE id = $1 AND owner_id = $2;`

	// getEntryForUpdate locks the entry row for the duration of the
	// surrounding transaction so that the snapshot, the version-number
	// computation and the field update observe a single consistent state.
	getEntryForUpdate = `SELECT id, owner_id, title, content, entry_date, entry_time, tags, mood, is_private,
			restored_from_version, restored_at, created_at, updated_at
		FROM journal_entries
		WHERE id = $1 AND owner_id = $2
		FOR UPDATE;`

	// insertVersionSnapshot appends the locked pre-edit state to the ledger.
	// The version number is computed inside the INSERT itself; under the
	// row lock held by the transaction this yields a gapless sequence
	// starting at 1.
	insertVersionSnapshot = `INSERT INTO journal_entry_versions (
			entry_id,
			owner_id,
			version_number,
			title,
			content,
			entry_date,
			entry_time,
			tags,
			mood,
			is_private,
			entry_created_at
		) VALUES (
			$1, $2,
			(SELECT COALESCE(MAX(version_number), 0) + 1 FROM journal_entry_versions WHERE entry_id = $1),
			$3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING version_number;`

	// updateEntryState replaces the entry's content fields. A regular edit
	// clears any restored badge; a restore sets it via the dedicated query.
	updateEntryState = `UPDATE journal_entries
		SET title = $1,
			content = $2,
			entry_date = $3,
			entry_time = $4,
			tags = $5,
			mood = $6,
			restored_from_version = NULL,
			restored_at = NULL,
			updated_at = NOW()
		WHERE id = $7 AND owner_id = $8
		RETURNING id, owner_id, title, content, entry_date, entry_time, tags, mood, is_private,
			restored_from_version, restored_at, created_at, updated_at;`

	// restoreEntryState reinstates a snapshot's fields and marks the entry
	// with the restored badge.
	restoreEntryState = `UPDATE journal_entries
		SET title = $1,
			content = $2,
			entry_date = $3,
			entry_time = $4,
			tags = $5,
			mood = $6,
			restored_from_version = $7,
			restored_at = NOW(),
			updated_at = NOW()
		WHERE id = $8 AND owner_id = $9
		RETURNING id, owner_id, title, content, entry_date, entry_time, tags, mood, is_private,
			restored_from_version, restored_at, created_at, updated_at;`

	getVersion = `SELECT id, entry_id, owner_id, version_number, title, content, entry_date, entry_time,
			tags, mood, is_private, entry_created_at, created_at
		FROM journal_entry_versions
		WHERE entry_id = $1 AND owner_id = $2 AND version_number = $3;`
)

// buildListEntriesQuery builds the entry-listing SELECT. When date is
// non-empty the listing is narrowed to that civil day; comparison is plain
// string equality on the stored "YYYY-MM-DD" value.
func buildListEntriesQuery(ownerID int64, date models.CivilDate) (string, []any, error) {
	builder := sq.
		Select("id", "owner_id", "title", "content", "entry_date", "entry_time", "tags", "mood", "is_private",
			"restored_from_version", "restored_at", "created_at", "updated_at").
		From(models.JournalEntry{}.TableName()).
		Where(sq.Eq{"owner_id": ownerID}).
		PlaceholderFormat(sq.Dollar)

	if date != "" {
		builder = builder.Where(sq.Eq{"entry_date": string(date)})
	}

	// Insertion order; the serial id preserves it across days.
	builder = builder.OrderBy("id ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListVersionsQuery builds the version-listing SELECT for one entry,
// ordered by version number in the requested direction.
func buildListVersionsQuery(ownerID int64, entryID int64, order VersionOrder) (string, []any, error) {
	direction := "ASC"
	if order == OrderDesc {
		direction = "DESC"
	}

	query, args, err := sq.
		Select("id", "entry_id", "owner_id", "version_number", "title", "content", "entry_date", "entry_time",
			"tags", "mood", "is_private", "entry_created_at", "created_at").
		From(models.JournalEntryVersion{}.TableName()).
		Where(sq.Eq{"entry_id": entryID, "owner_id": ownerID}).
		OrderBy("version_number " + direction).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
