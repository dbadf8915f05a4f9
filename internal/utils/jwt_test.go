package utils

import (
	"testing"
	"time"

	"github.com/mshakirov/go-journal-keeper/models"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("journal-keeper", 123, models.ScopeJournalUnlock, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.UserID != 123 {
		t.Errorf("expected UserID 123, got %d", token.UserID)
	}
	if token.Scope != models.ScopeJournalUnlock {
		t.Errorf("expected journal scope, got %q", token.Scope)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		scope    string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", models.ScopeSession, time.Hour, "key"},
		{"empty scope", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", models.ScopeSession, 0, "key"},
		{"empty key", "iss", models.ScopeSession, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.scope, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken("journal-keeper", 7, models.ScopeSession, time.Hour, "secret")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "secret", "journal-keeper", models.ScopeSession)
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if parsed.UserID != 7 {
		t.Errorf("expected UserID 7, got %d", parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	generated, _ := GenerateJWTToken("journal-keeper", 7, models.ScopeSession, time.Hour, "secret")

	if _, err := ValidateAndParseJWTToken(generated.SignedString, "other-secret", "journal-keeper", models.ScopeSession); err == nil {
		t.Error("expected error for wrong sign key")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, _ := GenerateJWTToken("someone-else", 7, models.ScopeSession, time.Hour, "secret")

	if _, err := ValidateAndParseJWTToken(generated.SignedString, "secret", "journal-keeper", models.ScopeSession); err == nil {
		t.Error("expected error for wrong issuer")
	}
}

func TestValidateAndParseJWTToken_WrongScope(t *testing.T) {
	generated, _ := GenerateJWTToken("journal-keeper", 7, models.ScopeSession, time.Hour, "secret")

	_, err := ValidateAndParseJWTToken(generated.SignedString, "secret", "journal-keeper", models.ScopeJournalUnlock)
	if err == nil {
		t.Fatal("expected error for wrong scope")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, _ := GenerateJWTToken("journal-keeper", 7, models.ScopeSession, -time.Minute, "secret")

	if _, err := ValidateAndParseJWTToken(generated.SignedString, "secret", "journal-keeper", models.ScopeSession); err == nil {
		t.Error("expected error for expired token")
	}
}
