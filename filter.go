package pokedex

import (
	"slices"
	"strings"
)

// PageSize is the number of entries shown per page.
const PageSize = 24

// MaxSelectedTypes caps how many types can be selected at once.
const MaxSelectedTypes = 2

// FilterState holds the user's current type selection, search term and page.
// The zero value is usable and refers to page 1 with no filters.
type FilterState struct {
	SelectedTypes []string `json:"selectedTypes"`
	SearchTerm    string   `json:"searchTerm"`
	Page          int      `json:"page"`
}

// ToggleType selects the type, or deselects it if already selected.
// Selecting past MaxSelectedTypes is ignored. Returns true if the selection
// changed, in which case the page is reset to 1.
func (s *FilterState) ToggleType(t string) bool {
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "" {
		return false
	}
	if i := slices.Index(s.SelectedTypes, t); i >= 0 {
		s.SelectedTypes = slices.Delete(slices.Clone(s.SelectedTypes), i, i+1)
		s.Page = 1
		return true
	}
	if len(s.SelectedTypes) >= MaxSelectedTypes {
		return false
	}
	s.SelectedTypes = append(slices.Clone(s.SelectedTypes), t)
	s.Page = 1
	return true
}

// ClearTypes removes every selected type and resets the page.
func (s *FilterState) ClearTypes() {
	s.SelectedTypes = nil
	s.Page = 1
}

// SetSearchTerm replaces the search term and resets the page.
func (s *FilterState) SetSearchTerm(term string) {
	s.SearchTerm = term
	s.Page = 1
}

// SetPage moves to page p. Pages below 1 are clamped to 1.
func (s *FilterState) SetPage(p int) {
	s.Page = max(p, 1)
}

// NextPage advances one page unless already on the last page.
func (s *FilterState) NextPage(totalPages int) bool {
	if s.currentPage() >= totalPages {
		return false
	}
	s.Page = s.currentPage() + 1
	return true
}

// PrevPage goes back one page unless already on the first page.
func (s *FilterState) PrevPage() bool {
	if s.currentPage() <= 1 {
		return false
	}
	s.Page = s.currentPage() - 1
	return true
}

func (s *FilterState) currentPage() int {
	return max(s.Page, 1)
}

// Result is the visible slice of the catalog for a FilterState.
type Result struct {
	Entries    []Entry `json:"entries"`
	Total      int     `json:"total"`
	TotalPages int     `json:"totalPages"`
	Page       int     `json:"page"`
	Suggestion string  `json:"suggestion,omitempty"`
}

// Apply derives the visible entries for the given state: type intersection,
// then case-insensitive name substring, then pagination. When a non-empty
// search term matches nothing, idx (if non-nil) supplies a suggestion.
func Apply(c *Catalog, idx SearchIndex, s FilterState) Result {
	filtered := FilterEntries(c, s.SelectedTypes, s.SearchTerm)

	page := s.currentPage()
	res := Result{
		Total:      len(filtered),
		TotalPages: (len(filtered) + PageSize - 1) / PageSize,
		Page:       page,
	}

	start := (page - 1) * PageSize
	if start < len(filtered) {
		end := min(start+PageSize, len(filtered))
		res.Entries = filtered[start:end]
	}

	if s.SearchTerm != "" && res.Total == 0 && idx != nil {
		if name, ok := idx.Suggest(s.SearchTerm); ok {
			res.Suggestion = name
		}
	}

	return res
}

// FilterEntries returns catalog entries carrying every given type whose
// names contain term, case-insensitively. Catalog order is preserved.
func FilterEntries(c *Catalog, types []string, term string) []Entry {
	types = normalizeTypes(types)
	term = strings.ToLower(term)

	var out []Entry
	for _, e := range c.Entries() {
		if !e.HasTypes(types) {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(e.Name), term) {
			continue
		}
		out = append(out, e)
	}
	return out
}
