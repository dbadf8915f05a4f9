package service

import (
	"context"
	"testing"

	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/internal/store"
	"github.com/mshakirov/go-journal-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.VersionRepository
// ─────────────────────────────────────────────

type mockVersionRepository struct {
	listFn    func(ctx context.Context, ownerID int64, entryID int64, order store.VersionOrder) ([]models.JournalEntryVersion, error)
	getFn     func(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntryVersion, error)
	restoreFn func(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntry, error)
}

func (m *mockVersionRepository) ListVersions(ctx context.Context, ownerID int64, entryID int64, order store.VersionOrder) ([]models.JournalEntryVersion, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID, entryID, order)
	}
	return nil, nil
}

func (m *mockVersionRepository) GetVersion(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntryVersion, error) {
	if m.getFn != nil {
		return m.getFn(ctx, ownerID, entryID, versionNumber)
	}
	return models.JournalEntryVersion{}, store.ErrVersionNotFound
}

func (m *mockVersionRepository) RestoreVersion(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntry, error) {
	if m.restoreFn != nil {
		return m.restoreFn(ctx, ownerID, entryID, versionNumber)
	}
	return models.JournalEntry{}, store.ErrVersionNotFound
}

func TestListVersions_OrderSelection(t *testing.T) {
	tests := []struct {
		name     string
		order    string
		expected store.VersionOrder
	}{
		{name: "explicit ascending", order: "asc", expected: store.OrderAsc},
		{name: "explicit descending", order: "desc", expected: store.OrderDesc},
		{name: "empty defaults to newest-first", order: "", expected: store.OrderDesc},
		{name: "garbage defaults to newest-first", order: "sideways", expected: store.OrderDesc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotOrder store.VersionOrder
			repo := &mockVersionRepository{
				listFn: func(ctx context.Context, ownerID int64, entryID int64, order store.VersionOrder) ([]models.JournalEntryVersion, error) {
					gotOrder = order
					return nil, nil
				},
			}

			svc := NewVersionService(repo, logger.Nop())

			_, err := svc.ListVersions(context.Background(), 1, 10, tt.order)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, gotOrder)
		})
	}
}

func TestListVersions_EntryNotFoundPassesThrough(t *testing.T) {
	repo := &mockVersionRepository{
		listFn: func(ctx context.Context, ownerID int64, entryID int64, order store.VersionOrder) ([]models.JournalEntryVersion, error) {
			return nil, store.ErrEntryNotFound
		},
	}

	svc := NewVersionService(repo, logger.Nop())

	_, err := svc.ListVersions(context.Background(), 1, 99, "desc")
	assert.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestGetVersion_RejectsNonPositiveNumbers(t *testing.T) {
	svc := NewVersionService(&mockVersionRepository{}, logger.Nop())

	for _, versionNumber := range []int64{0, -1} {
		_, err := svc.GetVersion(context.Background(), 1, 10, versionNumber)
		assert.ErrorIs(t, err, store.ErrVersionNotFound)
	}
}

func TestRestoreVersion_Success(t *testing.T) {
	restoredFrom := int64(2)
	repo := &mockVersionRepository{
		restoreFn: func(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntry, error) {
			return models.JournalEntry{ID: entryID, Title: "old title", RestoredFromVersion: &restoredFrom}, nil
		},
	}

	svc := NewVersionService(repo, logger.Nop())

	restored, err := svc.RestoreVersion(context.Background(), 1, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, "old title", restored.Title)
	require.NotNil(t, restored.RestoredFromVersion)
	assert.EqualValues(t, 2, *restored.RestoredFromVersion)
}

func TestRestoreVersion_VersionNotFound(t *testing.T) {
	svc := NewVersionService(&mockVersionRepository{}, logger.Nop())

	_, err := svc.RestoreVersion(context.Background(), 1, 10, 9)
	assert.ErrorIs(t, err, store.ErrVersionNotFound)
}
