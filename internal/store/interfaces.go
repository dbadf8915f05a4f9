package store

import (
	"context"

	"github.com/mshakirov/go-journal-keeper/models"
)

// VersionOrder selects the ordering of version listings by version number.
type VersionOrder string

const (
	// OrderAsc lists versions oldest-first (version number ascending).
	OrderAsc VersionOrder = "asc"
	// OrderDesc lists versions newest-first (version number descending).
	OrderDesc VersionOrder = "desc"
)

// CredentialRepository persists the per-owner journal password record.
type CredentialRepository interface {
	CreateCredential(ctx context.Context, credential models.JournalCredential) (models.JournalCredential, error)
	GetCredential(ctx context.Context, ownerID int64) (models.JournalCredential, error)
}

// EntryRepository handles CRUD on current journal entry state. UpdateEntry
// snapshots the pre-edit state into the version ledger and applies the new
// field values inside a single transaction.
type EntryRepository interface {
	CreateEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
	GetEntry(ctx context.Context, ownerID int64, entryID int64) (models.JournalEntry, error)
	ListEntries(ctx context.Context, ownerID int64, date models.CivilDate) ([]models.JournalEntry, error)
	UpdateEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
}

// VersionRepository reads the append-only version ledger and reinstates past
// snapshots as the current entry state.
type VersionRepository interface {
	ListVersions(ctx context.Context, ownerID int64, entryID int64, order VersionOrder) ([]models.JournalEntryVersion, error)
	GetVersion(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntryVersion, error)
	RestoreVersion(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntry, error)
}
