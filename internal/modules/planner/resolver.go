// README: Place resolver; maps one errand to the best nearby place.
package planner

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"urnav/internal/places"
	"urnav/internal/types"
)

// Searcher is the slice of the place-search client the resolver needs.
type Searcher interface {
	Search(ctx context.Context, p places.SearchParams) ([]places.Candidate, error)
}

// CategorySuggester asks a text-understanding collaborator for search
// categories. May be nil when no LLM is configured.
type CategorySuggester interface {
	SuggestCategories(ctx context.Context, task string) ([]string, error)
}

// radiusLadderM is the ascending sequence of search radii tried until any
// category produces results. Closer rungs win outright.
var radiusLadderM = []int{5000, 10000, 15000, 20000}

const suggestTimeout = 20 * time.Second

// Resolver turns a task description into a single place candidate. It never
// fails outward: every search-strategy error is absorbed as "zero results for
// this attempt" and the ladder bottoms out at a deterministic synthetic place.
type Resolver struct {
	search         Searcher
	suggest        CategorySuggester
	defaultRadiusM int
}

func NewResolver(search Searcher, suggest CategorySuggester, defaultRadiusM int) *Resolver {
	if defaultRadiusM <= 0 {
		defaultRadiusM = 25000
	}
	return &Resolver{search: search, suggest: suggest, defaultRadiusM: defaultRadiusM}
}

// Resolve finds the best place for a task near origin. index identifies the
// task's position in its batch and keeps synthetic fallback coordinates
// stable across repeated calls.
func (r *Resolver) Resolve(ctx context.Context, task string, origin types.Point, index int) places.Candidate {
	categories := r.searchCategories(ctx, task)
	if len(categories) == 0 {
		return syntheticCandidate("general", origin, index)
	}

	for _, radius := range radiusLadderM {
		pool := r.fanOut(ctx, origin, categories, radius)
		if len(pool) == 0 {
			continue
		}
		rankCandidates(pool, categories)
		return pool[0]
	}

	// Retry with the plain keyword tables at the wide default radius,
	// ignoring whatever the LLM suggested.
	for _, keyword := range extractTaskKeywords(task) {
		results, err := r.search.Search(ctx, searchParams(origin, keyword, r.defaultRadiusM, 15))
		if err != nil {
			log.Printf("planner: keyword retry %q failed: %v", keyword, err)
			continue
		}
		for _, c := range results {
			if c.HasCoordinates() {
				return c
			}
		}
	}

	return syntheticCandidate(categories[0], origin, index)
}

// searchCategories asks the LLM first and falls back to the keyword tables
// on any failure or malformed response.
func (r *Resolver) searchCategories(ctx context.Context, task string) []string {
	if r.suggest != nil {
		suggestCtx, cancel := context.WithTimeout(ctx, suggestTimeout)
		defer cancel()
		if categories, err := r.suggest.SuggestCategories(suggestCtx, task); err == nil && len(categories) > 0 {
			return categories
		} else if err != nil {
			log.Printf("planner: category suggestion failed for %q: %v", task, err)
		}
	}
	return extractTaskKeywords(task)
}

// fanOut queries every category at one radius concurrently and merges the
// coordinate-bearing results into a single pool. Individual failures are
// dropped, not propagated.
func (r *Resolver) fanOut(ctx context.Context, origin types.Point, categories []string, radiusM int) []places.Candidate {
	var (
		mu   sync.Mutex
		pool []places.Candidate
		wg   sync.WaitGroup
	)

	for _, category := range categories {
		wg.Add(1)
		go func(category string) {
			defer wg.Done()
			results, err := r.search.Search(ctx, searchParams(origin, category, radiusM, 20))
			if err != nil {
				log.Printf("planner: search %q radius %dm failed: %v", category, radiusM, err)
				return
			}
			var valid []places.Candidate
			for _, c := range results {
				if !c.HasCoordinates() {
					continue
				}
				c.SourceCategory = category
				valid = append(valid, c)
			}
			mu.Lock()
			pool = append(pool, valid...)
			mu.Unlock()
		}(category)
	}
	wg.Wait()
	return pool
}

// rankCandidates orders the pool by distance ascending, breaking ties with
// the relevance score descending.
func rankCandidates(pool []places.Candidate, keywords []string) {
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].DistanceM != pool[j].DistanceM {
			return pool[i].DistanceM < pool[j].DistanceM
		}
		return relevanceScore(pool[i], keywords) > relevanceScore(pool[j], keywords)
	})
}

// relevanceScore weighs keyword hits in the place name and category, plus a
// proximity bonus and a small rating contribution.
func relevanceScore(c places.Candidate, keywords []string) float64 {
	score := 0.0
	name := strings.ToLower(c.Name)
	category := strings.ToLower(c.Category)

	for _, kw := range keywords {
		kwLower := strings.ToLower(kw)
		if strings.Contains(name, kwLower) {
			score += 2.0
		}
		if strings.Contains(category, kwLower) {
			score += 1.5
		}
	}

	switch {
	case c.DistanceM < 500:
		score += 1.0
	case c.DistanceM < 1000:
		score += 0.5
	}

	score += c.Rating * 0.2
	return score
}

func searchParams(origin types.Point, query string, radiusM, limit int) places.SearchParams {
	lat, lng := origin.Lat, origin.Lng
	return places.SearchParams{
		Lat:     &lat,
		Lng:     &lng,
		Query:   query,
		RadiusM: radiusM,
		Limit:   limit,
	}
}

// spiralOffset returns the deterministic coordinate offset for the nth
// synthetic fallback place. Pure function of the index so repeated
// resolutions land on identical coordinates.
func spiralOffset(index int) (latOffset, lngOffset float64) {
	var angle, radius float64
	switch index {
	case 0:
		angle, radius = 0.3, 0.0005
	case 1:
		angle, radius = 1.2, 0.001
	case 2:
		angle, radius = 2.1, 0.0015
	default:
		angle = float64(index) * 0.8
		radius = float64(index+1) * 0.0008
	}
	return radius * math.Cos(angle), radius * math.Sin(angle)
}

// syntheticCandidate fabricates a plannable stop when every search strategy
// came back empty. The upstream provider is unreliable and rate-limited; the
// itinerary must still contain a stop for the task.
func syntheticCandidate(keyword string, origin types.Point, index int) places.Candidate {
	keywordLower := strings.ToLower(keyword)

	var match *fallbackPlace
	for _, entry := range fallbackPlaces {
		if strings.Contains(keywordLower, entry.category) {
			p := entry.places[minInt(index, len(entry.places)-1)]
			match = &p
			break
		}
	}
	if match == nil {
		match = &fallbackPlace{
			name:      fmt.Sprintf("Local %s Place", titleCase(keyword)),
			category:  "General",
			distanceM: float64(index+1) * 200,
			rating:    4.0,
		}
	}

	latOffset, lngOffset := spiralOffset(index)
	return places.Candidate{
		Name:       match.name,
		Lat:        origin.Lat + latOffset,
		Lng:        origin.Lng + lngOffset,
		Category:   match.category,
		DistanceM:  match.distanceM,
		Rating:     match.rating,
		ExternalID: fmt.Sprintf("fallback_%s_%d", keyword, index),
	}
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " ")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
