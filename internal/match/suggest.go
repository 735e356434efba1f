package match

// DefaultSuggestionThreshold is the minimum similarity score for treating a
// candidate as a plausible intended spelling of an unrecognized name.
const DefaultSuggestionThreshold = 0.75

// Nearest returns the candidate most similar to s together with its score.
// Returns ("", 0) when candidates is empty. Ties resolve to the earliest
// candidate so the result is deterministic.
func Nearest(s string, candidates []string) (string, float64) {
	best := ""
	bestScore := 0.0

	for _, c := range candidates {
		score := KeySimilarity(s, c)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}

	return best, bestScore
}

// Suggest returns the candidate most likely intended by a misspelled name s,
// or false when no candidate scores at least threshold. An exact match is
// never a suggestion; callers handle recognized names before suggesting.
func Suggest(s string, candidates []string, threshold float64) (string, bool) {
	best, score := Nearest(s, candidates)
	if best == "" || best == s || score < threshold {
		return "", false
	}

	return best, true
}
