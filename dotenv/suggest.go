package dotenv

import (
	"slices"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions bounds the names returned by [Suggest].
const maxSuggestions = 3

// Suggest returns up to three names from candidates that resemble name,
// best match first. A candidate matches when either name is a fuzzy
// subsequence of the other, so both missing and extra characters are caught.
func Suggest(name string, candidates []string) []string {
	if name == "" || len(candidates) == 0 {
		return nil
	}

	matches := fuzzy.Find(name, candidates)

	// Candidates that are a subsequence of name, e.g. API_URL for API_URLS.
	for i, c := range candidates {
		if c == "" || c == name {
			continue
		}

		if rev := fuzzy.Find(c, []string{name}); len(rev) > 0 {
			rev[0].Str, rev[0].Index = c, i
			matches = append(matches, rev[0])
		}
	}

	slices.SortStableFunc(matches, func(a, b fuzzy.Match) int {
		return b.Score - a.Score
	})

	var out []string

	for _, m := range matches {
		if m.Str == name || slices.Contains(out, m.Str) {
			continue
		}

		out = append(out, m.Str)

		if len(out) == maxSuggestions {
			break
		}
	}

	return out
}
