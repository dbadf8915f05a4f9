package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mshakirov/go-journal-keeper/internal/config"
	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/internal/service"
	"github.com/mshakirov/go-journal-keeper/internal/utils"
	"github.com/mshakirov/go-journal-keeper/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

type mockCredentialService struct {
	hasFn    func(ctx context.Context, ownerID int64) (bool, error)
	createFn func(ctx context.Context, ownerID int64, password string) (models.Token, error)
	verifyFn func(ctx context.Context, ownerID int64, password string) (models.Token, bool, error)
}

func (m *mockCredentialService) HasCredential(ctx context.Context, ownerID int64) (bool, error) {
	if m.hasFn != nil {
		return m.hasFn(ctx, ownerID)
	}
	return false, nil
}

func (m *mockCredentialService) CreateCredential(ctx context.Context, ownerID int64, password string) (models.Token, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, password)
	}
	return models.Token{SignedString: "unlock.jwt.token"}, nil
}

func (m *mockCredentialService) VerifyCredential(ctx context.Context, ownerID int64, password string) (models.Token, bool, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, ownerID, password)
	}
	return models.Token{}, false, nil
}

type mockEntryService struct {
	createFn  func(ctx context.Context, ownerID int64, draft models.EntryDraft) (models.JournalEntry, error)
	getFn     func(ctx context.Context, ownerID int64, entryID int64) (models.JournalEntry, error)
	listFn    func(ctx context.Context, ownerID int64, date models.CivilDate) ([]models.JournalEntry, error)
	updateFn  func(ctx context.Context, ownerID int64, entryID int64, draft models.EntryDraft) (models.JournalEntry, error)
	previewFn func(ctx context.Context, content string) []string
}

func (m *mockEntryService) CreateEntry(ctx context.Context, ownerID int64, draft models.EntryDraft) (models.JournalEntry, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, draft)
	}
	return models.JournalEntry{ID: 1, OwnerID: ownerID}, nil
}

func (m *mockEntryService) GetEntry(ctx context.Context, ownerID int64, entryID int64) (models.JournalEntry, error) {
	if m.getFn != nil {
		return m.getFn(ctx, ownerID, entryID)
	}
	return models.JournalEntry{ID: entryID, OwnerID: ownerID}, nil
}

func (m *mockEntryService) ListEntries(ctx context.Context, ownerID int64, date models.CivilDate) ([]models.JournalEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID, date)
	}
	return nil, nil
}

func (m *mockEntryService) UpdateEntry(ctx context.Context, ownerID int64, entryID int64, draft models.EntryDraft) (models.JournalEntry, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, ownerID, entryID, draft)
	}
	return models.JournalEntry{ID: entryID, OwnerID: ownerID}, nil
}

func (m *mockEntryService) PreviewHashtags(ctx context.Context, content string) []string {
	if m.previewFn != nil {
		return m.previewFn(ctx, content)
	}
	return models.ExtractHashtags(content)
}

type mockVersionService struct {
	listFn    func(ctx context.Context, ownerID int64, entryID int64, order string) ([]models.JournalEntryVersion, error)
	getFn     func(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntryVersion, error)
	restoreFn func(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntry, error)
}

func (m *mockVersionService) ListVersions(ctx context.Context, ownerID int64, entryID int64, order string) ([]models.JournalEntryVersion, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID, entryID, order)
	}
	return nil, nil
}

func (m *mockVersionService) GetVersion(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntryVersion, error) {
	if m.getFn != nil {
		return m.getFn(ctx, ownerID, entryID, versionNumber)
	}
	return models.JournalEntryVersion{EntryID: entryID, VersionNumber: versionNumber}, nil
}

func (m *mockVersionService) RestoreVersion(ctx context.Context, ownerID int64, entryID int64, versionNumber int64) (models.JournalEntry, error) {
	if m.restoreFn != nil {
		return m.restoreFn(ctx, ownerID, entryID, versionNumber)
	}
	return models.JournalEntry{ID: entryID}, nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testSessionKey = "test-session-key"
	testUnlockKey  = "test-unlock-key"
	testIssuer     = "journal-keeper-test"
	testOwnerID    = int64(1)
)

func testHandlerConfig() config.App {
	return config.App{
		SessionSignKey: testSessionKey,
		UnlockSignKey:  testUnlockKey,
		TokenIssuer:    testIssuer,
		UnlockDuration: 15 * time.Minute,
		Version:        "test",
	}
}

// newTestHandler builds a Handler with the given mocks; nil mocks default to
// permissive stubs.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.CredentialService == nil {
		svcs.CredentialService = &mockCredentialService{}
	}
	if svcs.EntryService == nil {
		svcs.EntryService = &mockEntryService{}
	}
	if svcs.VersionService == nil {
		svcs.VersionService = &mockVersionService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}

	return NewHandler(svcs, testHandlerConfig(), logger.Nop())
}

// withOwner attaches the authenticated owner ID to the request context, as
// the auth middleware would.
func withOwner(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.UserIDCtxKey, testOwnerID))
}

// withURLParams attaches chi URL parameters to the request context so
// handlers can be exercised without routing the full mux.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// sessionToken issues a platform session JWT accepted by the auth middleware.
func sessionToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, testOwnerID, models.ScopeSession, time.Minute, testSessionKey)
	if err != nil {
		t.Fatalf("failed to issue session token: %v", err)
	}
	return token.SignedString
}

// unlockToken issues a journal unlock JWT accepted by the gate middleware.
func unlockToken(t *testing.T, ownerID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, ownerID, models.ScopeJournalUnlock, time.Minute, testUnlockKey)
	if err != nil {
		t.Fatalf("failed to issue unlock token: %v", err)
	}
	return token.SignedString
}
