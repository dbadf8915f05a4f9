package models

import "regexp"

// hashtagPattern matches "#token" sequences inside entry content. Tokens may
// contain letters of any script, digits, and underscores.
var hashtagPattern = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// ExtractHashtags scans content for "#token" patterns and returns the tokens
// in order of appearance, without the leading "#". The result is a derived,
// read-only sequence used for live preview in the UI; it is never persisted
// separately from the content itself.
func ExtractHashtags(content string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	hashtags := make([]string, 0, len(matches))
	for _, match := range matches {
		hashtags = append(hashtags, match[1])
	}

	return hashtags
}
