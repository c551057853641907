package country

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCountries() []Country {
	return []Country{
		{CommonName: "Botswana", Region: "Africa", Population: 2351625, Capital: []string{"Gaborone"}},
		{CommonName: "Brazil", Region: "Americas", Population: 212559409, Capital: []string{"Brasília"}},
		{CommonName: "Argentina", Region: "Americas", Population: 45376763},
		{CommonName: "Bulgaria", Region: "Europe", Population: 6927288},
		{CommonName: "Brunei", Region: "Asia", Population: 437483},
	}
}

func names(cs []Country) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.CommonName
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		search string
		region string
		want   []string
	}{
		{name: "no constraints", want: []string{"Botswana", "Brazil", "Argentina", "Bulgaria", "Brunei"}},
		{name: "substring", search: "bru", want: []string{"Brunei"}},
		{name: "case-insensitive search", search: "BR", want: []string{"Brazil", "Brunei"}},
		{name: "inner substring", search: "ar", want: []string{"Argentina", "Bulgaria"}},
		{name: "region only", region: "americas", want: []string{"Brazil", "Argentina"}},
		{name: "region case-insensitive", region: "AMERICAS", want: []string{"Brazil", "Argentina"}},
		{name: "search and region", search: "b", region: "americas", want: []string{"Brazil"}},
		{name: "no match", search: "zz", want: []string{}},
		{name: "unknown region", region: "antarctic", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Filter(testCountries(), tt.search, tt.region))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter(%q, %q) mismatch (-want +got):\n%s", tt.search, tt.region, diff)
			}
		})
	}
}

func TestFilter_IdentityWithoutConstraints(t *testing.T) {
	in := testCountries()
	got := Filter(in, "", "")
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("Filter(C, \"\", \"\") changed the collection (-want +got):\n%s", diff)
	}
}

func TestFilter_PreservesOrderAndExactness(t *testing.T) {
	in := testCountries()
	got := Filter(in, "a", "americas")

	// Every kept element satisfies both predicates, every dropped one fails one.
	kept := map[string]bool{}
	for _, c := range got {
		kept[c.CommonName] = true
	}
	for _, c := range in {
		want := c.Region == "Americas" && containsFold(c.CommonName, "a")
		assert.Equal(t, want, kept[c.CommonName], c.CommonName)
	}

	// Relative order matches the input.
	last := -1
	for _, c := range got {
		idx := indexOf(in, c.CommonName)
		require.Greater(t, idx, last, "order not preserved at %s", c.CommonName)
		last = idx
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	in := testCountries()
	before := names(in)
	_ = Filter(in, "bra", "")
	assert.Equal(t, before, names(in))
}

func TestFilter_Deterministic(t *testing.T) {
	in := testCountries()
	assert.Equal(t, Filter(in, "b", "asia"), Filter(in, "b", "asia"))
}

func TestFilter_SearchThenClear(t *testing.T) {
	in := []Country{
		{CommonName: "Botswana", Region: "Africa"},
		{CommonName: "Brazil", Region: "Americas"},
	}
	assert.Equal(t, []string{"Brazil"}, names(Filter(in, "Brazil", "")))
	assert.Equal(t, []string{"Botswana", "Brazil"}, names(Filter(in, "", "")))
}

func TestRegionLabel(t *testing.T) {
	assert.Equal(t, "America", RegionLabel("americas"))
	assert.Equal(t, "Europe", RegionLabel("EUROPE"))
	assert.Equal(t, "Filter by Region", RegionLabel(""))
	assert.Equal(t, "Filter by Region", RegionLabel("mars"))
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func indexOf(cs []Country, name string) int {
	for i, c := range cs {
		if c.CommonName == name {
			return i
		}
	}
	return -1
}
