package http

import (
	"net/http"

	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/internal/utils"
	"github.com/mshakirov/go-journal-keeper/models"
)

// unlockHeader carries the journal unlock token. The server sets it on
// successful credential creation or verification; the client presents it
// back on every entry and version request.
const unlockHeader = "X-Journal-Unlock"

// journalGate is an HTTP middleware that enforces the journal unlock token
// on top of platform authentication. It must run after [Handler.auth].
//
// The unlock token is a short-lived JWT signed with a key distinct from the
// platform session key and carrying the journal scope, so a session token
// can never open the gate. The token's subject must match the authenticated
// owner from the request context.
//
// Requests without a valid unlock token are rejected with HTTP 403 and
// [ErrJournalLocked]; the client is expected to re-verify the journal
// password and retry. The unlocked state lives only in this request's
// context — there is no server-side session flag.
func (h *Handler) journalGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		headerValue := r.Header.Get(unlockHeader)
		if headerValue == "" {
			log.Warn().Err(ErrJournalLocked).Msg("no unlock token presented")
			http.Error(w, ErrJournalLocked.Error(), http.StatusForbidden)
			return
		}

		// The header is issued as "Bearer <token>"; accept a bare token too.
		tokenString := headerValue
		if parsed, err := getTokenFromAuthHeader(headerValue); err == nil {
			tokenString = parsed
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.cfg.UnlockSignKey, h.cfg.TokenIssuer, models.ScopeJournalUnlock)
		if err != nil {
			log.Warn().Err(err).Msg("invalid unlock token presented")
			http.Error(w, ErrJournalLocked.Error(), http.StatusForbidden)
			return
		}

		ownerID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok || token.UserID != ownerID {
			log.Warn().Err(ErrUnlockTokenOwnerMismatch).
				Int64("owner_id", ownerID).
				Int64("token_owner_id", token.UserID).
				Msg("unlock token owner mismatch")
			http.Error(w, ErrJournalLocked.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithJournalUnlocked(r.Context())))
	})
}
