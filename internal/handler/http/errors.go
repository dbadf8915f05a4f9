// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the authentication and journal-gate middleware when
// parsing the "Authorization" and "X-Journal-Unlock" HTTP headers. Callers
// can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrJournalLocked is returned by the journal-gate middleware when the
	// incoming request carries no unlock token, or the token is expired or
	// invalid. The caller must verify the journal password again.
	ErrJournalLocked = errors.New("journal is locked")

	// ErrUnlockTokenOwnerMismatch is returned when a syntactically valid
	// unlock token was issued to a different owner than the authenticated
	// session.
	ErrUnlockTokenOwnerMismatch = errors.New("unlock token was issued to a different owner")
)
