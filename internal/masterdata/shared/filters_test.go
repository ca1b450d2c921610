package shared

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternEscapesWildcards(t *testing.T) {
	cases := map[string]string{
		"kiwi":    `%kiwi%`,
		"5_":      `%5\_%`,
		"100%":    `%100\%%`,
		`a\b`:     `%a\\b%`,
		"":        `%%`,
		"1PG_20%": `%1PG\_20\%%`,
	}
	for search, want := range cases {
		assert.Equal(t, want, ListFilters{Search: search}.Pattern(), search)
	}
}

func TestMatchesTreatsWildcardsLiterally(t *testing.T) {
	f := ListFilters{Search: "5_"}

	assert.True(t, f.Matches("lot 5_a"))
	assert.False(t, f.Matches("lot 5a"))
	assert.True(t, ListFilters{}.Matches("anything"))
}

func TestFiltersFromRequestTrimsSearch(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/suppliers?search=%20Frutta%20", nil)

	assert.Equal(t, "Frutta", FiltersFromRequest(r).Search)
}
