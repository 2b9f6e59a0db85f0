// Package search ranks project records against free-text queries and routes
// new RFIs using similarity to past RFIs. Both call sites share the lexical
// relevance scorer; ranking is stable so equal scores keep insertion order.
package search

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ppiankov/fieldlens/internal/classify"
	"github.com/ppiankov/fieldlens/internal/model"
	"github.com/ppiankov/fieldlens/internal/score"
)

// Engine performs relevance-ranked entity search and RFI routing
type Engine struct {
	maxWorkers int
	minScore   int // Similar-RFI cutoff, exclusive
	maxSimilar int
	maxSearch  int // 0 keeps all results
}

// NewEngine creates a search engine. Zero values fall back to sensible
// defaults matching DefaultConfig.
func NewEngine(maxWorkers, minScore, maxSimilar, maxSearch int) *Engine {
	if maxWorkers <= 0 {
		maxWorkers = 4
	}
	if maxSimilar <= 0 {
		maxSimilar = 5
	}
	return &Engine{
		maxWorkers: maxWorkers,
		minScore:   minScore,
		maxSimilar: maxSimilar,
		maxSearch:  maxSearch,
	}
}

// Source groups the records of one entity type for fan-out
type Source struct {
	Type    string
	Records []model.Record
}

// Sources splits a flat record list into per-type sources, preserving order
func Sources(records []model.Record) []Source {
	index := make(map[string]int)
	var sources []Source
	for _, r := range records {
		i, ok := index[r.Type]
		if !ok {
			i = len(sources)
			index[r.Type] = i
			sources = append(sources, Source{Type: r.Type})
		}
		sources[i].Records = append(sources[i].Records, r)
	}
	return sources
}

// Search scores every record of every source against the query, concurrently
// per source, then merges and stable-sorts by score descending. Records with
// zero score are dropped. The core scoring stays pure; only the fan-out here
// is concurrent.
func (e *Engine) Search(ctx context.Context, query string, sources []Source) []model.Match {
	terms := score.Terms(query)
	if len(terms) == 0 || len(sources) == 0 {
		return nil
	}

	perSource := make([][]model.Match, len(sources))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, e.maxWorkers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			var matches []model.Match
			for _, r := range s.Records {
				n := score.Relevance(terms, r.Fields)
				if n > 0 {
					matches = append(matches, model.Match{
						Type:  s.Type,
						ID:    r.ID,
						Title: r.Title,
						Score: n,
					})
				}
			}
			perSource[idx] = matches
		}(i, src)
	}
	wg.Wait()

	// Merge in source order so the stable sort has a deterministic base
	var merged []model.Match
	for _, matches := range perSource {
		merged = append(merged, matches...)
	}
	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].Score > merged[b].Score
	})

	if e.maxSearch > 0 && len(merged) > e.maxSearch {
		merged = merged[:e.maxSearch]
	}
	return merged
}

// RouteRFI suggests a recipient for a new RFI: the question text classifies
// to a trade, the trade maps to a subcontractor, and past RFIs scoring above
// the cutoff are surfaced as precedent (top N by score).
func (e *Engine) RouteRFI(question, subject string, past []model.RFI, subs []model.Subcontractor) *model.RFIRouting {
	text := subject + " " + question
	terms := score.Terms(text)

	routing := &model.RFIRouting{
		SuggestedTrade: classify.Trades.Classify(text, "General"),
	}

	for _, sub := range subs {
		if strings.EqualFold(sub.Trade, routing.SuggestedTrade) {
			routing.SuggestedCompany = sub.CompanyName
			break
		}
	}

	var similar []model.RFIMatch
	for _, rfi := range past {
		n := score.Relevance(terms, []string{rfi.Subject, rfi.Question})
		if n > e.minScore {
			similar = append(similar, model.RFIMatch{RFI: rfi, Score: n})
		}
	}
	sort.SliceStable(similar, func(a, b int) bool {
		return similar[a].Score > similar[b].Score
	})
	if len(similar) > e.maxSimilar {
		similar = similar[:e.maxSimilar]
	}
	routing.SimilarRFIs = similar

	return routing
}
