package search

import (
	"strings"
	"unicode"
)

// Match score tiers. Lower is better; evaluated in order, first hit wins.
const (
	scorePrefix     = 0.00 // name starts with query
	scoreWordPrefix = 0.05 // a word in name starts with query
	scoreAllTokens  = 0.08 // every query token matches some word (multi-token queries)
	scoreWholeWord  = 0.10 // query equals a complete word
	scoreSubstring  = 0.30 // substring only, not at a word boundary ("oat" in "goat")

	// SynonymPenalty is added to a structural score obtained through a synonym
	// lookup so synonym hits rank below direct hits of equal quality.
	SynonymPenalty = 0.15
)

func isWordSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == '/' || r == '-'
}

// Score computes the relevance of candidateName for query. Lower is better;
// the second return is false when the query does not appear in the name at
// all. The tier ordering makes "oat" surface "Oat Bran" and "Steel Cut Oats"
// before "Goat Cheese", which plain substring search inverts.
func Score(query, candidateName string) (float64, bool) {
	q := strings.ToLower(query)
	name := strings.ToLower(candidateName)

	if strings.HasPrefix(name, q) {
		return scorePrefix, true
	}

	words := strings.FieldsFunc(name, isWordSeparator)
	for _, w := range words {
		if strings.HasPrefix(w, q) {
			return scoreWordPrefix, true
		}
	}

	if tokens := strings.Fields(q); len(tokens) > 1 {
		all := true
		for _, token := range tokens {
			matched := false
			for _, w := range words {
				if w == token || strings.HasPrefix(w, token) {
					matched = true
					break
				}
			}
			if !matched {
				all = false
				break
			}
		}
		if all {
			return scoreAllTokens, true
		}
	}

	for _, w := range words {
		if w == q {
			return scoreWholeWord, true
		}
	}

	if strings.Contains(name, q) {
		return scoreSubstring, true
	}

	return 0, false
}
