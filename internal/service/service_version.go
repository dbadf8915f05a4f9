package service

import (
	"context"
	"fmt"

	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/internal/store"
	"github.com/mshakirov/go-journal-keeper/models"
)

// versionService is the concrete implementation of VersionService.
type versionService struct {
	versionRepository store.VersionRepository
	logger            *logger.Logger
}

// NewVersionService constructs a VersionService wired to the given
// repository.
func NewVersionService(versionRepository store.VersionRepository, logger *logger.Logger) VersionService {
	return &versionService{
		versionRepository: versionRepository,
		logger:            logger,
	}
}

// ListVersions returns the entry's recorded snapshots. The order parameter
// accepts "asc" and "desc"; anything else (including empty) defaults to
// newest-first.
func (s *versionService) ListVersions(ctx context.Context, ownerID int64, entryID int64, order string) ([]models.JournalEntryVersion, error) {
	log := logger.FromContext(ctx)

	direction := store.OrderDesc
	if order == string(store.OrderAsc) {
		direction = store.OrderAsc
	}

	versions, err := s.versionRepository.ListVersions(ctx, ownerID, entryID, direction)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Int64("entry_id", entryID).Msg("version listing failed")
		return nil, fmt.Errorf("version listing failed: %w", err)
	}

	return versions, nil
}

// GetVersion retrieves a single snapshot by version number.
func (s *versionService) GetVersion(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntryVersion, error) {
	log := logger.FromContext(ctx)

	if versionNumber < 1 {
		return models.JournalEntryVersion{}, fmt.Errorf("version lookup failed: %w", store.ErrVersionNotFound)
	}

	version, err := s.versionRepository.GetVersion(ctx, ownerID, entryID, versionNumber)
	if err != nil {
		log.Err(err).Int64("entry_id", entryID).Int64("version_number", versionNumber).Msg("version lookup failed")
		return models.JournalEntryVersion{}, fmt.Errorf("version lookup failed: %w", err)
	}

	return version, nil
}

// RestoreVersion reinstates the chosen snapshot as the entry's current state.
// The entry comes back carrying the restored badge (restored_from_version,
// restored_at). Restoring the same version again is idempotent.
func (s *versionService) RestoreVersion(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if versionNumber < 1 {
		return models.JournalEntry{}, fmt.Errorf("version restore failed: %w", store.ErrVersionNotFound)
	}

	restored, err := s.versionRepository.RestoreVersion(ctx, ownerID, entryID, versionNumber)
	if err != nil {
		log.Err(err).Int64("entry_id", entryID).Int64("version_number", versionNumber).Msg("version restore failed")
		return models.JournalEntry{}, fmt.Errorf("version restore failed: %w", err)
	}

	log.Info().
		Int64("owner_id", ownerID).
		Int64("entry_id", entryID).
		Int64("version_number", versionNumber).
		Msg("entry restored to past version")

	return restored, nil
}
