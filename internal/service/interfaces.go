package service

import (
	"context"

	"github.com/mshakirov/go-journal-keeper/models"
)

// CredentialService manages the independent journal password and issues the
// short-lived unlock tokens that gate all entry and version operations.
type CredentialService interface {
	// HasCredential reports whether the owner has set a journal password.
	HasCredential(ctx context.Context, ownerID int64) (bool, error)

	// CreateCredential sets the owner's journal password and returns an
	// unlock token so the journal opens immediately after setup.
	CreateCredential(ctx context.Context, ownerID int64, password string) (models.Token, error)

	// VerifyCredential checks the supplied password. On success it returns
	// an unlock token and true; a wrong password and a missing credential
	// both come back as (zero token, false, nil) — indistinguishable to the
	// caller.
	VerifyCredential(ctx context.Context, ownerID int64, password string) (models.Token, bool, error)
}

// EntryService implements journal entry use cases on top of the entry
// repository: listing by civil date, creation, and snapshot-before-write
// updates.
type EntryService interface {
	CreateEntry(ctx context.Context, ownerID int64, draft models.EntryDraft) (models.JournalEntry, error)
	GetEntry(ctx context.Context, ownerID int64, entryID int64) (models.JournalEntry, error)
	ListEntries(ctx context.Context, ownerID int64, date models.CivilDate) ([]models.JournalEntry, error)
	UpdateEntry(ctx context.Context, ownerID int64, entryID int64, draft models.EntryDraft) (models.JournalEntry, error)

	// PreviewHashtags derives #hashtag tokens from free text for the
	// compose-screen live preview; nothing is persisted.
	PreviewHashtags(ctx context.Context, content string) []string
}

// VersionService exposes the append-only version ledger and the restore
// operation.
type VersionService interface {
	ListVersions(ctx context.Context, ownerID int64, entryID int64, order string) ([]models.JournalEntryVersion, error)
	GetVersion(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntryVersion, error)
	RestoreVersion(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntry, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
