package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/internal/utils"
)

// versionNumberFromRequest parses the {versionNumber} URL parameter.
func versionNumberFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "versionNumber"), 10, 64)
}

// listVersions returns the entry's recorded snapshots. An optional
// "order" query parameter selects "asc" or "desc"; the default is
// newest-first.
func (h *Handler) listVersions(w http.ResponseWriter, r *http.Request) {
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

	order := r.URL.Query().Get("order")

	versions, err := h.services.VersionService.ListVersions(ctx, ownerID, entryID, order)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listVersions").Int64("entry_id", entryID).Msg("error listing entry versions")
		http.Error(w, "error listing entry versions", statusFromError(err))
		return
	}

	utils.WriteJSON(w, versions, http.StatusOK)
}

// getVersion returns a single snapshot of the entry by version number.
func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
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

	versionNumber, err := versionNumberFromRequest(r)
	if err != nil {
		http.Error(w, "invalid version number", http.StatusBadRequest)
		return
	}

	version, err := h.services.VersionService.GetVersion(ctx, ownerID, entryID, versionNumber)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getVersion").Int64("entry_id", entryID).Int64("version_number", versionNumber).Msg("error getting entry version")
		http.Error(w, "error getting entry version", statusFromError(err))
		return
	}

	utils.WriteJSON(w, version, http.StatusOK)
}

// restoreVersion reinstates a past snapshot as the entry's current state.
// The response is the updated entry carrying the restored badge
// (restored_from_version, restored_at). The ledger itself is untouched.
func (h *Handler) restoreVersion(w http.ResponseWriter, r *http.Request) {
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

	versionNumber, err := versionNumberFromRequest(r)
	if err != nil {
		http.Error(w, "invalid version number", http.StatusBadRequest)
		return
	}

	restored, err := h.services.VersionService.RestoreVersion(ctx, ownerID, entryID, versionNumber)
	if err != nil {
		log.Err(err).Str("func", "*Handler.restoreVersion").Int64("entry_id", entryID).Int64("version_number", versionNumber).Msg("error restoring entry version")
		http.Error(w, "error restoring entry version", statusFromError(err))
		return
	}

	utils.WriteJSON(w, restored, http.StatusOK)
}
