// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshakirov/go-journal-keeper/internal/utils"
	"github.com/mshakirov/go-journal-keeper/models"
)

func TestJournalGate(t *testing.T) {
	h := newTestHandler(t, nil)

	tests := []struct {
		name   string
		header string
	}{
		{name: "bearer-prefixed token", header: "Bearer " + unlockToken(t, testOwnerID)},
		{name: "bare token", header: unlockToken(t, testOwnerID)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var unlocked bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				unlocked = utils.IsJournalUnlocked(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := withOwner(httptest.NewRequest(http.MethodGet, "/api/journal/entries", nil))
			req.Header.Set(unlockHeader, tt.header)
			rec := httptest.NewRecorder()

			h.journalGate(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, unlocked)
		})
	}
}

func TestJournalGate_Rejections(t *testing.T) {
	h := newTestHandler(t, nil)

	expiredToken, err := utils.GenerateJWTToken(testIssuer, testOwnerID, models.ScopeJournalUnlock, -time.Minute, testUnlockKey)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing unlock token", header: ""},
		{name: "session token cannot open the gate", header: "Bearer " + sessionToken(t)},
		{name: "expired unlock token", header: "Bearer " + expiredToken.SignedString},
		{name: "token for another owner", header: "Bearer " + unlockToken(t, testOwnerID+1)},
		{name: "garbage token", header: "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := withOwner(httptest.NewRequest(http.MethodGet, "/api/journal/entries", nil))
			if tt.header != "" {
				req.Header.Set(unlockHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			h.journalGate(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.False(t, nextCalled)
		})
	}
}

// The gate trusts only the request context for the owner identity; a valid
// unlock token without an authenticated owner is still rejected.
func TestJournalGate_NoAuthenticatedOwner(t *testing.T) {
	h := newTestHandler(t, nil)

	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/journal/entries", nil)
	req.Header.Set(unlockHeader, "Bearer "+unlockToken(t, testOwnerID))
	rec := httptest.NewRecorder()

	h.journalGate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, nextCalled)
}
