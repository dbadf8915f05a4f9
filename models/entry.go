package models

import "time"

// JournalEntry is the current readable state of a single journal note.
// Listings and edit views operate on this row; historical states live in
// [JournalEntryVersion].
type JournalEntry struct {
	// ID is the stable identity of the entry.
	ID int64 `json:"id"`

	// OwnerID is the platform user that exclusively owns the entry.
	// Not exposed via JSON; ownership is implied by the authenticated session.
	OwnerID int64 `json:"-"`

	Title   string `json:"title"`
	Content string `json:"content"`

	// Date is the civil day the entry belongs to. Compared by string
	// equality, never through timezone conversion.
	Date CivilDate `json:"date"`

	// Time is the time of day the entry was authored, "HH:MM" or empty.
	Time ClockTime `json:"time,omitempty"`

	Tags TagList `json:"tags,omitempty"`
	Mood Mood    `json:"mood"`

	// IsPrivate is always true for journal entries; kept explicit because
	// the column is shared with other note kinds on the platform.
	IsPrivate bool `json:"is_private"`

	// RestoredFromVersion is set when the entry's current state was produced
	// by a restore, and names the version number that was reinstated.
	// Surfaced to the UI as a "restored" badge.
	RestoredFromVersion *int64     `json:"restored_from_version,omitempty"`
	RestoredAt          *time.Time `json:"restored_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the JournalEntry model.
func (e JournalEntry) TableName() string {
	return "journal_entries"
}

// EntryDraft carries the caller-supplied fields for creating or updating an
// entry. RawTags is the free-text tag field as typed in the UI; it is parsed
// into an ordered [TagList] before persistence.
type EntryDraft struct {
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    CivilDate `json:"date"`
	Time    ClockTime `json:"time"`
	RawTags string    `json:"tags"`
	Mood    string    `json:"mood"`
}
