package shared

import (
	"net/http"
	"strings"
)

// ListFilters narrows list queries. Lists are unpaginated; the collections of a
// single farm stay small.
type ListFilters struct {
	Search string
}

// FiltersFromRequest reads list filters from the query string.
func FiltersFromRequest(r *http.Request) ListFilters {
	return ListFilters{Search: strings.TrimSpace(r.URL.Query().Get("search"))}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Pattern returns the ILIKE pattern for Search with wildcards in Search taken
// literally. Queries must declare ESCAPE '\'.
func (f ListFilters) Pattern() string {
	return "%" + likeEscaper.Replace(f.Search) + "%"
}

// Matches reports whether any of the values contains Search, ignoring case.
// In-memory repositories use it to mirror the SQL filter.
func (f ListFilters) Matches(values ...string) bool {
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
