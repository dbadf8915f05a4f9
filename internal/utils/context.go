// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated owner's identifier
// in the context. Used together with GetUserIDFromContext for type-safe
// retrieval of the user ID from context.Context.
var UserIDCtxKey = contextKey("userID")

// JournalUnlockedCtxKey is the key under which the journal-gate middleware
// records that the current request carries a valid unlock token. The flag is
// request-scoped only; it is never persisted or shared between sessions.
var JournalUnlockedCtxKey = contextKey("journalUnlocked")

// GetUserIDFromContext retrieves the owner identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// IsJournalUnlocked reports whether the journal-gate middleware has marked
// this request's session as unlocked.
func IsJournalUnlocked(ctx context.Context) bool {
	unlocked, ok := ctx.Value(JournalUnlockedCtxKey).(bool)
	return ok && unlocked
}

// WithJournalUnlocked returns a child context carrying the unlocked flag.
func WithJournalUnlocked(ctx context.Context) context.Context {
	return context.WithValue(ctx, JournalUnlockedCtxKey, true)
}
