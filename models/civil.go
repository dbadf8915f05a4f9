package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// CivilDate is a calendar day with no time-of-day and no timezone component,
// serialized as "YYYY-MM-DD".
//
// The journal compares dates by plain string equality: a CivilDate is never
// derived by formatting a timezone-aware timestamp, which avoids the
// off-by-one-day class of bugs around midnight and DST transitions.
type CivilDate string

// civilDateLayout is the only accepted wire and storage format for CivilDate.
const civilDateLayout = "2006-01-02"

// ErrInvalidCivilDate is returned by [CivilDate.Validate] when the value does
// not parse as a "YYYY-MM-DD" calendar day.
var ErrInvalidCivilDate = errors.New("invalid civil date, want YYYY-MM-DD")

// Validate checks that the date is a well-formed "YYYY-MM-DD" calendar day.
func (d CivilDate) Validate() error {
	parsed, err := time.Parse(civilDateLayout, string(d))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidCivilDate, string(d))
	}

	// time.Parse normalises e.g. "2024-02-30" to March; reject those too.
	if parsed.Format(civilDateLayout) != string(d) {
		return fmt.Errorf("%w: %q", ErrInvalidCivilDate, string(d))
	}

	return nil
}

// String returns the "YYYY-MM-DD" representation of the date.
func (d CivilDate) String() string {
	return string(d)
}

// ClockTime is a time of day with minute precision, serialized as "HH:MM".
// The empty string means "not recorded".
type ClockTime string

const clockTimeLayout = "15:04"

// ErrInvalidClockTime is returned by [ClockTime.Validate] when the value is
// non-empty and does not parse as "HH:MM".
var ErrInvalidClockTime = errors.New("invalid time of day, want HH:MM")

// Validate checks that the time is empty or a well-formed "HH:MM" value.
func (t ClockTime) Validate() error {
	if t == "" {
		return nil
	}

	if _, err := time.Parse(clockTimeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidClockTime, string(t))
	}

	return nil
}

// TagList is an ordered sequence of entry tags. Order is preserved for
// display; duplicates are allowed.
//
// TagList implements [driver.Valuer] and [sql.Scanner] so that the database
// layer stores tags as a single comma-joined text column, mirroring the
// free-text tag field the UI submits.
type TagList []string

// ParseTags splits a caller-supplied free-text tag field on commas, trims
// each segment, and discards empty segments. Segment order is preserved.
func ParseTags(raw string) TagList {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	segments := strings.Split(raw, ",")
	tags := make(TagList, 0, len(segments))
	for _, segment := range segments {
		tag := strings.TrimSpace(segment)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}

	if len(tags) == 0 {
		return nil
	}

	return tags
}

// Value implements [driver.Valuer]: tags are persisted comma-joined.
func (t TagList) Value() (driver.Value, error) {
	return strings.Join(t, ","), nil
}

// Scan implements [sql.Scanner]: a comma-joined text column is split back
// into the ordered tag sequence. NULL and empty text scan to a nil list.
func (t *TagList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case string:
		*t = ParseTags(v)
		return nil
	case []byte:
		*t = ParseTags(string(v))
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TagList", src)
	}
}
