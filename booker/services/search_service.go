package services

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/squaredcircle/booker/booker/game"
)

// WrestlerSearchItems implements fuzzy.Source for roster searching
type WrestlerSearchItems []WrestlerSearchItem

// WrestlerSearchItem represents a single searchable wrestler
type WrestlerSearchItem struct {
	Wrestler game.Wrestler
	Name     string
}

// Len returns the length of the collection
func (items WrestlerSearchItems) Len() int {
	return len(items)
}

// String returns the searchable string at index i
func (items WrestlerSearchItems) String(i int) string {
	return items[i].Name
}

// SearchFilters narrows a roster search before fuzzy matching runs.
type SearchFilters struct {
	Company   string
	Alignment game.Alignment
	MinRating int
}

// SearchService provides fuzzy roster search over a game snapshot.
type SearchService struct{}

func NewSearchService() *SearchService {
	return &SearchService{}
}

// Search returns wrestlers matching the query ordered by match score. An
// empty query returns the filtered roster sorted by overall rating.
func (s *SearchService) Search(wrestlers map[string]game.Wrestler, query string, filters SearchFilters) []game.Wrestler {
	filtered := s.applyFilters(wrestlers, filters)
	if len(filtered) == 0 {
		return nil
	}

	if query == "" {
		sort.Slice(filtered, func(i, j int) bool {
			if filtered[i].Overall != filtered[j].Overall {
				return filtered[i].Overall > filtered[j].Overall
			}
			return filtered[i].Name < filtered[j].Name
		})
		return filtered
	}

	items := make(WrestlerSearchItems, len(filtered))
	for i, w := range filtered {
		items[i] = WrestlerSearchItem{
			Wrestler: w,
			Name:     normalizeName(w.Name),
		}
	}

	matches := fuzzy.FindFrom(normalizeName(query), items)
	out := make([]game.Wrestler, 0, len(matches))
	for _, m := range matches {
		out = append(out, items[m.Index].Wrestler)
	}
	return out
}

func (s *SearchService) applyFilters(wrestlers map[string]game.Wrestler, filters SearchFilters) []game.Wrestler {
	var out []game.Wrestler
	for _, w := range wrestlers {
		if filters.Company != "" && w.Company != filters.Company {
			continue
		}
		if filters.Alignment != "" && w.Alignment != filters.Alignment {
			continue
		}
		if filters.MinRating > 0 && w.Overall < filters.MinRating {
			continue
		}
		out = append(out, w)
	}
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
