package validators

import (
	"context"
	"strings"

	"github.com/mshakirov/go-journal-keeper/models"
)

const (
	FieldTitle   = "title"
	FieldContent = "content"
	FieldDate    = "date"
	FieldTime    = "time"
)

type EntryDraftValidator struct {
}

func NewEntryDraftValidator() Validator {
	return &EntryDraftValidator{}
}

func (v *EntryDraftValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EntryDraft:
		return v.validateEntryDraft(ctx, value, fields...)
	case *models.EntryDraft:
		return v.validateEntryDraft(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateEntryDraft checks the caller-supplied entry fields. The civil date
// is mandatory and must be well formed; time of day is optional but must be
// well formed when present; title and content must each be non-blank. Tags
// and mood are normalized, not validated — unknown moods fall back to
// "unspecified".
func (v *EntryDraftValidator) validateEntryDraft(ctx context.Context, draft models.EntryDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldDate, FieldTime}
	}

	for _, field := range fields {
		switch field {
		case FieldDate:
			if err := draft.Date.Validate(); err != nil {
				return ErrInvalidDate
			}
		case FieldTime:
			if err := draft.Time.Validate(); err != nil {
				return ErrInvalidTime
			}
		case FieldTitle:
			if strings.TrimSpace(draft.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if strings.TrimSpace(draft.Content) == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
