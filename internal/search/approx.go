package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ApproxMatch is a candidate produced by an approximate matcher, identified by
// its index into the corpus the matcher was built over.
type ApproxMatch struct {
	Index int
	Score float64
}

// Approximator is the typo-tolerant fallback behind the search engine. Any
// edit-distance or trigram implementation works as long as lower scores mean
// better matches and results above the implementation's similarity threshold
// are omitted.
type Approximator interface {
	Search(query string, limit int) []ApproxMatch
}

// levenshteinIndex scores documents by the best normalized edit-distance
// similarity between query tokens and document tokens.
type levenshteinIndex struct {
	docs      [][]string
	threshold float64
}

// newLevenshteinIndex tokenizes one searchable text per corpus entry.
// threshold is the maximum acceptable score (1 - similarity); 0.4 admits
// roughly "one typo in a short word".
func newLevenshteinIndex(texts []string, threshold float64) *levenshteinIndex {
	docs := make([][]string, len(texts))
	for i, t := range texts {
		docs[i] = strings.FieldsFunc(strings.ToLower(t), isWordSeparator)
	}
	return &levenshteinIndex{docs: docs, threshold: threshold}
}

// similarity is 1 - distance/max(len) over runes, so 1.0 means equal strings.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

func (ix *levenshteinIndex) Search(query string, limit int) []ApproxMatch {
	queryTokens := strings.Fields(strings.ToLower(query))
	if len(queryTokens) == 0 {
		return nil
	}

	var matches []ApproxMatch
	for i, doc := range ix.docs {
		if len(doc) == 0 {
			continue
		}
		// Average the best per-token similarity so every query token has to
		// land somewhere in the document.
		var total float64
		for _, qt := range queryTokens {
			best := 0.0
			for _, dt := range doc {
				if s := similarity(qt, dt); s > best {
					best = s
				}
			}
			total += best
		}
		score := 1.0 - total/float64(len(queryTokens))
		if score <= ix.threshold {
			matches = append(matches, ApproxMatch{Index: i, Score: score})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].Score != matches[b].Score {
			return matches[a].Score < matches[b].Score
		}
		return matches[a].Index < matches[b].Index
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
