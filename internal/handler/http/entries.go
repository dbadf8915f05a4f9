package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/internal/utils"
	"github.com/mshakirov/go-journal-keeper/models"
)

// hashtagRequest carries free text for the hashtag live preview.
type hashtagRequest struct {
	Content string `json:"content"`
}

// entryIDFromRequest parses the {id} URL parameter.
func entryIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// listEntries returns the authenticated owner's journal entries. An optional
// "date" query parameter (YYYY-MM-DD) narrows the listing to one civil day
// by exact string match.
func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	date := models.CivilDate(r.URL.Query().Get("date"))

	entries, err := h.services.EntryService.ListEntries(ctx, ownerID, date)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listEntries").Msg("error listing journal entries")
		http.Error(w, "error listing journal entries", statusFromError(err))
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// createEntry persists a new journal entry from the submitted draft. No
// version row is written on creation.
func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var draft models.EntryDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Str("func", "*Handler.createEntry").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.EntryService.CreateEntry(ctx, ownerID, draft)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createEntry").Msg("error creating journal entry")
		http.Error(w, "error creating journal entry", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// getEntry returns a single journal entry by ID.
func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := entryIDFromRequest(r)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	entry, err := h.services.EntryService.GetEntry(ctx, ownerID, entryID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getEntry").Int64("entry_id", entryID).Msg("error getting journal entry")
		http.Error(w, "error getting journal entry", statusFromError(err))
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

// updateEntry replaces the entry's content with the submitted draft. The
// pre-edit state is snapshotted into the version ledger atomically with the
// update; on any failure neither the entry nor the ledger changes.
func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := entryIDFromRequest(r)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	var draft models.EntryDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.EntryService.UpdateEntry(ctx, ownerID, entryID, draft)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Int64("entry_id", entryID).Msg("error updating journal entry")
		http.Error(w, "error updating journal entry", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// previewHashtags derives #hashtag tokens from submitted free text for the
// compose-screen live preview. Nothing is persisted.
func (h *Handler) previewHashtags(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body hashtagRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.previewHashtags").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	hashtags := h.services.EntryService.PreviewHashtags(r.Context(), body.Content)

	utils.WriteJSON(w, models.HashtagPreview{Hashtags: hashtags}, http.StatusOK)
}
