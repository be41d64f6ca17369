package util

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a known name.
const maxSuggestDistance = 2

// Suggest returns the candidate closest to input, or "" if none is close.
func Suggest(input string, candidates []string) string {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return ""
	}
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// DidYouMean formats a suggestion suffix for error messages.
func DidYouMean(input string, candidates []string) string {
	if s := Suggest(input, candidates); s != "" {
		return " (did you mean " + `"` + s + `"?)`
	}
	return ""
}
