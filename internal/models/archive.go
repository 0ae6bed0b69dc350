package models

import (
	"encoding/json"
)

// Archive is an append-only list of titles a game has already used up.
// It is persisted as a JSON array in a text column; ordering is insertion
// order, which stands in for the ordinal keys of the archive.
type Archive []string

// ParseArchive decodes a stored archive column. Malformed or empty input
// yields an empty archive rather than an error: a corrupted archive only
// widens the available pool, it never breaks a game.
func ParseArchive(raw string) Archive {
	if raw == "" {
		return Archive{}
	}
	var titles []string
	if err := json.Unmarshal([]byte(raw), &titles); err != nil {
		return Archive{}
	}
	return Archive(titles)
}

// Append records a title under the next ordinal. Duplicates are skipped so
// the archive stays a set.
func (a Archive) Append(title string) Archive {
	if a.Contains(title) {
		return a
	}
	return append(a, title)
}

// Contains reports whether a title was already archived.
func (a Archive) Contains(title string) bool {
	for _, t := range a {
		if t == title {
			return true
		}
	}
	return false
}

// Encode serializes the archive back into its column representation.
func (a Archive) Encode() string {
	if len(a) == 0 {
		return "[]"
	}
	raw, err := json.Marshal([]string(a))
	if err != nil {
		return "[]"
	}
	return string(raw)
}
