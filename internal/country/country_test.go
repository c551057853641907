package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountry_DisplayDefaults(t *testing.T) {
	var c Country
	assert.Equal(t, NotAvailable, c.DisplayName())
	assert.Equal(t, NotAvailable, c.DisplayNativeName())
	assert.Equal(t, NotAvailable, c.DisplayRegion())
	assert.Equal(t, NotAvailable, c.DisplaySubregion())
	assert.Equal(t, NotAvailable, c.DisplayCapital())
	assert.Equal(t, NotAvailable, c.DisplayTopLevelDomain())
	assert.Equal(t, NotAvailable, c.DisplayCurrencies())
	assert.Equal(t, NotAvailable, c.DisplayLanguages())
	assert.Equal(t, "0", c.DisplayPopulation())
}

func TestCountry_DisplayValues(t *testing.T) {
	c := Country{
		CommonName:     "Brazil",
		NativeName:     "Brasil",
		Population:     212559409,
		Region:         "Americas",
		Subregion:      "South America",
		Capital:        []string{"Brasília", "ignored"},
		TopLevelDomain: ".br",
		Currencies:     []string{"Brazilian real"},
		Languages:      []string{"Portuguese"},
	}
	assert.Equal(t, "212,559,409", c.DisplayPopulation())
	assert.Equal(t, "Brasília", c.DisplayCapital())
	assert.Equal(t, "Brazilian real", c.DisplayCurrencies())

	c.Languages = []string{"Portuguese", "Spanish"}
	assert.Equal(t, "Portuguese, Spanish", c.DisplayLanguages())
}

func TestCountry_FieldsOrder(t *testing.T) {
	fields := Country{CommonName: "Chad"}.Fields()
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.Label
	}
	assert.Equal(t, []string{
		"Native Name", "Population", "Region", "Sub Region",
		"Capital", "Top Level Domain", "Currencies", "Languages",
	}, labels)
}

func TestDetail_PromotesCountry(t *testing.T) {
	d := Detail{
		Country: Country{CommonName: "Chad", Capital: []string{"N'Djamena"}, FlagEmoji: "🇹🇩"},
		Borders: []string{"Niger"},
	}
	assert.Equal(t, "Chad", d.CommonName)
	assert.Equal(t, "🇹🇩", d.FlagEmoji)
	assert.Equal(t, "Chad", d.DisplayName())
	assert.Equal(t, d.Country.Fields(), d.Fields())
	assert.Equal(t, "N'Djamena", d.Fields()[4].Value)
}
