package models

import "time"

// JournalEntryVersion is an immutable snapshot of an entry's content as it
// existed before a specific edit. Versions for an entry are totally ordered
// by VersionNumber, starting at 1, and are never updated or deleted once
// written.
type JournalEntryVersion struct {
	ID      int64 `json:"id"`
	EntryID int64 `json:"entry_id"`

	// OwnerID duplicates the owning user from the entry so that version
	// queries never need a join to enforce ownership.
	OwnerID int64 `json:"-"`

	// VersionNumber is a positive integer, strictly increasing per entry.
	VersionNumber int64 `json:"version_number"`

	// Snapshot of all content fields as they existed before the mutation
	// that produced this version.
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Date      CivilDate `json:"date"`
	Time      ClockTime `json:"time,omitempty"`
	Tags      TagList   `json:"tags,omitempty"`
	Mood      Mood      `json:"mood"`
	IsPrivate bool      `json:"is_private"`

	// CreatedAt is the original creation time of the entry, carried along
	// for display. VersionCreatedAt is when this snapshot was taken.
	CreatedAt        time.Time `json:"created_at"`
	VersionCreatedAt time.Time `json:"version_created_at"`
}

// TableName returns the name of the database table
// associated with the JournalEntryVersion model.
func (v JournalEntryVersion) TableName() string {
	return "journal_entry_versions"
}
