package models

import "time"

// JournalCredential is the independent journal password record, separate
// from the platform's main login. At most one credential exists per owner;
// it is created once and never overwritten.
//
// PasswordHash holds an encoded Argon2id digest, never a plaintext password.
type JournalCredential struct {
	OwnerID      int64     `json:"-"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the JournalCredential model.
func (c JournalCredential) TableName() string {
	return "journal_credentials"
}
