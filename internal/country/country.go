// Package country holds the country domain model, display helpers and the
// directory filter.
package country

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable is rendered for optional fields the API did not supply.
const NotAvailable = "N/A"

// Country is one record from the country service, reduced to the fields the
// explorer displays. Values are never mutated after decoding.
type Country struct {
	CommonName     string
	NativeName     string
	Code           string // ISO 3166-1 alpha-3 (cca3)
	Population     int64
	Region         string
	Subregion      string
	Capital        []string
	TopLevelDomain string
	Currencies     []string // currency names, in API order
	Languages      []string // language names, in API order
	FlagURL        string
	FlagEmoji      string
	BorderCodes    []string // alpha-3 codes of neighbouring countries
}

// Detail is a country together with the resolved display names of its
// border countries. Borders follows the order of Country.BorderCodes;
// codes the service could not resolve are absent.
type Detail struct {
	Country
	Borders []string
}

var populationPrinter = message.NewPrinter(language.English)

// orNA returns s, or NotAvailable when s is blank.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}

// joinOrNA joins parts with ", ", or returns NotAvailable for an empty list.
func joinOrNA(parts []string) string {
	if len(parts) == 0 {
		return NotAvailable
	}
	return strings.Join(parts, ", ")
}

// DisplayName returns the common name, or NotAvailable.
func (c Country) DisplayName() string { return orNA(c.CommonName) }

// DisplayNativeName returns the first native name, or NotAvailable.
func (c Country) DisplayNativeName() string { return orNA(c.NativeName) }

// DisplayPopulation formats the population with English digit grouping,
// e.g. 212,559,409.
func (c Country) DisplayPopulation() string {
	return populationPrinter.Sprintf("%d", c.Population)
}

// DisplayRegion returns the region, or NotAvailable.
func (c Country) DisplayRegion() string { return orNA(c.Region) }

// DisplaySubregion returns the subregion, or NotAvailable.
func (c Country) DisplaySubregion() string { return orNA(c.Subregion) }

// DisplayCapital returns the first capital, or NotAvailable.
func (c Country) DisplayCapital() string {
	if len(c.Capital) == 0 {
		return NotAvailable
	}
	return orNA(c.Capital[0])
}

// DisplayTopLevelDomain returns the first top level domain, or NotAvailable.
func (c Country) DisplayTopLevelDomain() string { return orNA(c.TopLevelDomain) }

// DisplayCurrencies returns the comma-joined currency names, or NotAvailable.
func (c Country) DisplayCurrencies() string { return joinOrNA(c.Currencies) }

// DisplayLanguages returns the comma-joined language names, or NotAvailable.
func (c Country) DisplayLanguages() string { return joinOrNA(c.Languages) }

// Field is one labelled line of a detail sheet.
type Field struct {
	Label string
	Value string
}

// Fields returns the detail sheet lines in display order.
func (c Country) Fields() []Field {
	return []Field{
		{Label: "Native Name", Value: c.DisplayNativeName()},
		{Label: "Population", Value: c.DisplayPopulation()},
		{Label: "Region", Value: c.DisplayRegion()},
		{Label: "Sub Region", Value: c.DisplaySubregion()},
		{Label: "Capital", Value: c.DisplayCapital()},
		{Label: "Top Level Domain", Value: c.DisplayTopLevelDomain()},
		{Label: "Currencies", Value: c.DisplayCurrencies()},
		{Label: "Languages", Value: c.DisplayLanguages()},
	}
}
