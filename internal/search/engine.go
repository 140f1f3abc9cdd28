package search

import (
	"sort"
	"strings"

	"batched/internal/ingredient"
)

// DefaultLimit bounds result counts when the caller does not ask for one.
const DefaultLimit = 12

// DefaultApproxThreshold is the maximum score the approximate pass accepts.
const DefaultApproxThreshold = 0.4

// Engine ranks a fixed ingredient catalog against free-text queries. Built
// once from the catalog; read-only afterwards. If the catalog changes, build
// a new Engine.
type Engine struct {
	entries []ingredient.CatalogEntry
	keys    []string // dedupe key per entry: slug, else lowercase name
	approx  Approximator
	catalog *ingredient.Catalog
}

// Option configures an Engine.
type Option func(*Engine)

// WithApproximator swaps the typo-tolerant fallback matcher.
func WithApproximator(a Approximator) Option {
	return func(e *Engine) { e.approx = a }
}

// NewEngine indexes the catalog. The searchable text per entry is its name,
// category, and registered synonyms, so searching a synonym finds the
// canonical entry even through the approximate pass.
func NewEngine(catalog *ingredient.Catalog, opts ...Option) *Engine {
	entries := catalog.Entries()
	e := &Engine{
		entries: entries,
		keys:    make([]string, len(entries)),
		catalog: catalog,
	}

	texts := make([]string, len(entries))
	for i, ent := range entries {
		key := strings.ToLower(ent.Slug)
		if key == "" {
			key = strings.ToLower(ent.Name)
		}
		e.keys[i] = key

		parts := []string{ent.Name, ent.Category}
		parts = append(parts, ingredient.SynonymsFor(ent.Name)...)
		texts[i] = strings.Join(parts, " ")
	}

	e.approx = newLevenshteinIndex(texts, DefaultApproxThreshold)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type candidate struct {
	index int
	score float64
}

// Search returns up to limit catalog entries ordered best-first, with no
// duplicates. Pass 1 runs the structural scorer against the raw query and,
// when the query is a known synonym, against its canonical form with a fixed
// penalty. Pass 2 falls back to approximate matching only when pass 1 left
// the limit unfilled.
func (e *Engine) Search(query string, limit int) []ingredient.CatalogEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	canonical, viaSynonym := ingredient.CanonicalFor(q)

	var results []candidate
	seen := make(map[string]bool)

	for i, ent := range e.entries {
		if seen[e.keys[i]] {
			continue
		}
		if score, ok := Score(q, ent.Name); ok {
			results = append(results, candidate{index: i, score: score})
			seen[e.keys[i]] = true
			continue
		}
		if viaSynonym {
			if score, ok := Score(canonical, ent.Name); ok {
				results = append(results, candidate{index: i, score: SynonymPenalty + score})
				seen[e.keys[i]] = true
			}
		}
	}

	if e.approx != nil && len(results) < limit {
		for _, m := range e.approx.Search(q, limit*2) {
			if seen[e.keys[m.Index]] {
				continue
			}
			results = append(results, candidate{index: m.Index, score: m.Score})
			seen[e.keys[m.Index]] = true
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].score != results[b].score {
			return results[a].score < results[b].score
		}
		return results[a].index < results[b].index
	})

	if len(results) > limit {
		results = results[:limit]
	}

	out := make([]ingredient.CatalogEntry, len(results))
	for i, r := range results {
		out[i] = e.entries[r.index]
	}
	return out
}

// Suggest returns the properly-cased catalog name for a query that is a known
// synonym of a catalog entry, for "did you mean" prompts when direct search
// found nothing. The second return is false when no suggestion exists.
func (e *Engine) Suggest(query string) (string, bool) {
	canonical, ok := ingredient.CanonicalFor(query)
	if !ok {
		return "", false
	}
	if ent, ok := e.catalog.EntryForName(canonical); ok {
		return ent.Name, true
	}
	return "", false
}
