package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/internal/utils"
	"github.com/mshakirov/go-journal-keeper/models"
)

// credentialRequest carries the journal password for setup and verification.
type credentialRequest struct {
	Password string `json:"password"`
}

// getCredentialStatus reports whether the authenticated owner has set a
// journal password. The client uses this to decide between the setup and
// unlock screens.
func (h *Handler) getCredentialStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	exists, err := h.services.CredentialService.HasCredential(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCredentialStatus").Msg("credential status lookup failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.CredentialStatus{Exists: exists}, http.StatusOK)
}

// createCredential sets the journal password for the authenticated owner.
// On success the response carries a fresh unlock token in the
// "X-Journal-Unlock" header so the journal opens without a second round
// trip.
//
// A repeated setup attempt answers 409; the stored hash is never
// overwritten. A password below the minimum length answers 422.
func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var body credentialRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.createCredential").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.CredentialService.CreateCredential(ctx, ownerID, body.Password)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCredential").Msg("credential creation failed")
		http.Error(w, "credential creation failed", statusFromError(err))
		return
	}

	w.Header().Set(unlockHeader, fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusCreated)
}

// verifyCredential checks the supplied journal password. The answer is only
// a boolean: a wrong password and a missing credential are indistinguishable
// at this boundary. When the password matches, the response additionally
// carries an unlock token in the "X-Journal-Unlock" header.
func (h *Handler) verifyCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var body credentialRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.verifyCredential").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, valid, err := h.services.CredentialService.VerifyCredential(ctx, ownerID, body.Password)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verifyCredential").Msg("credential verification failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if valid {
		w.Header().Set(unlockHeader, fmt.Sprintf("Bearer %s", token.SignedString))
	}

	utils.WriteJSON(w, models.VerifyResult{Valid: valid}, http.StatusOK)
}
