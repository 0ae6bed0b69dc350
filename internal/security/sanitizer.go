package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

// SanitizeTitle cleans an admin-supplied theme/question/answer title before
// it enters the catalog: strip HTML, drop null bytes, trim and cap length.
func SanitizeTitle(input string) string {
	input = htmlPolicy.Sanitize(input)
	input = strings.ReplaceAll(input, "\x00", "")
	input = strings.TrimSpace(input)

	if len(input) > 1000 {
		input = input[:1000]
	}

	return input
}
