package country

import "strings"

// Region is a selectable region filter.
type Region struct {
	Key   string // matched case-insensitively against Country.Region
	Label string
}

// Regions lists the region filters in menu order.
var Regions = []Region{
	{Key: "africa", Label: "Africa"},
	{Key: "americas", Label: "America"},
	{Key: "asia", Label: "Asia"},
	{Key: "europe", Label: "Europe"},
	{Key: "oceania", Label: "Oceania"},
}

// RegionLabel returns the menu label for key, or "Filter by Region" when key
// is empty or unknown.
func RegionLabel(key string) string {
	for _, r := range Regions {
		if strings.EqualFold(r.Key, key) {
			return r.Label
		}
	}
	return "Filter by Region"
}

// Filter returns the countries whose common name contains search
// (case-insensitive) and, when region is non-empty, whose region equals
// region (case-insensitive). Order is preserved and the input is not
// modified.
func Filter(countries []Country, search, region string) []Country {
	needle := strings.ToLower(search)
	out := make([]Country, 0, len(countries))
	for _, c := range countries {
		if !strings.Contains(strings.ToLower(c.CommonName), needle) {
			continue
		}
		if region != "" && !strings.EqualFold(c.Region, region) {
			continue
		}
		out = append(out, c)
	}
	return out
}
