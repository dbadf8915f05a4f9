package service

import (
	"context"
	"fmt"

	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/internal/store"
	"github.com/mshakirov/go-journal-keeper/internal/validators"
	"github.com/mshakirov/go-journal-keeper/models"
)

// entryService is the concrete implementation of EntryService. It validates
// caller-supplied drafts, normalizes tags and mood, and delegates persistence
// to the entry repository.
type entryService struct {
	entryRepository store.EntryRepository
	validator       validators.Validator
	logger          *logger.Logger
}

// NewEntryService constructs an EntryService wired to the given repository.
func NewEntryService(entryRepository store.EntryRepository, logger *logger.Logger) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		validator:       validators.NewEntryDraftValidator(),
		logger:          logger,
	}
}

// draftToEntry normalizes a validated draft into a persistable entry.
// Free-text tags are split into an ordered list; unrecognised moods fall
// back to "unspecified"; journal entries are always private.
func draftToEntry(ownerID int64, draft models.EntryDraft) models.JournalEntry {
	return models.JournalEntry{
		OwnerID:   ownerID,
		Title:     draft.Title,
		Content:   draft.Content,
		Date:      draft.Date,
		Time:      draft.Time,
		Tags:      models.ParseTags(draft.RawTags),
		Mood:      models.NormalizeMood(draft.Mood),
		IsPrivate: true,
	}
}

// CreateEntry validates the draft and persists a new journal entry. No
// version row is written: a freshly created entry has an empty ledger until
// its first edit.
//
// Returns ErrValidation (wrapping the specific rule violation) on a bad
// draft.
func (s *entryService) CreateEntry(ctx context.Context, ownerID int64, draft models.EntryDraft) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, draft); err != nil {
		log.Warn().Err(err).Int64("owner_id", ownerID).Msg("entry draft rejected")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.entryRepository.CreateEntry(ctx, draftToEntry(ownerID, draft))
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("entry creation ended with error")
		return models.JournalEntry{}, fmt.Errorf("entry creation ended with error: %w", err)
	}

	return created, nil
}

// GetEntry retrieves a single entry scoped to the owner.
func (s *entryService) GetEntry(ctx context.Context, ownerID int64, entryID int64) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	entry, err := s.entryRepository.GetEntry(ctx, ownerID, entryID)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Int64("entry_id", entryID).Msg("entry lookup failed")
		return models.JournalEntry{}, fmt.Errorf("entry lookup failed: %w", err)
	}

	return entry, nil
}

// ListEntries returns the owner's entries, narrowed to one civil day when
// date is non-empty. The date filter is exact string equality; a malformed
// date is a validation error, not an empty result.
func (s *entryService) ListEntries(ctx context.Context, ownerID int64, date models.CivilDate) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if date != "" {
		if err := date.Validate(); err != nil {
			log.Warn().Err(err).Str("entry_date", date.String()).Msg("malformed date filter")
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	entries, err := s.entryRepository.ListEntries(ctx, ownerID, date)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("entry listing failed")
		return nil, fmt.Errorf("entry listing failed: %w", err)
	}

	return entries, nil
}

// UpdateEntry validates the draft and replaces the entry's content fields.
// The repository snapshots the pre-edit state into the version ledger and
// applies the new values atomically; a failed update leaves both tables
// untouched.
func (s *entryService) UpdateEntry(ctx context.Context, ownerID int64, entryID int64, draft models.EntryDraft) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, draft); err != nil {
		log.Warn().Err(err).Int64("owner_id", ownerID).Int64("entry_id", entryID).Msg("entry draft rejected")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	entry := draftToEntry(ownerID, draft)
	entry.ID = entryID

	updated, err := s.entryRepository.UpdateEntry(ctx, entry)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Int64("entry_id", entryID).Msg("entry update ended with error")
		return models.JournalEntry{}, fmt.Errorf("entry update ended with error: %w", err)
	}

	return updated, nil
}

// PreviewHashtags derives #hashtag tokens from free text. Used by the
// compose screen for a live preview; nothing is persisted.
func (s *entryService) PreviewHashtags(ctx context.Context, content string) []string {
	return models.ExtractHashtags(content)
}
