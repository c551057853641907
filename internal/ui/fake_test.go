package ui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"countryexplorer/internal/country"
	"countryexplorer/internal/restcountries"
)

var (
	botswana = country.Country{
		CommonName: "Botswana", NativeName: "Botswana", Code: "BWA",
		Population: 2351625, Region: "Africa", Subregion: "Southern Africa",
		Capital: []string{"Gaborone"}, TopLevelDomain: ".bw",
		Currencies: []string{"Botswana pula"}, Languages: []string{"English", "Tswana"},
		BorderCodes: []string{"NAM", "ZAF", "ZMB", "ZWE"},
	}
	brazil = country.Country{
		CommonName: "Brazil", NativeName: "Brasil", Code: "BRA",
		Population: 212559409, Region: "Americas", Subregion: "South America",
		Capital: []string{"Brasília"}, TopLevelDomain: ".br",
		Currencies: []string{"Brazilian real"}, Languages: []string{"Portuguese"},
		BorderCodes: []string{"ARG", "BOL"},
	}
	iceland = country.Country{
		CommonName: "Iceland", NativeName: "Ísland", Code: "ISL",
		Population: 366425, Region: "Europe", Subregion: "Northern Europe",
		Capital: []string{"Reykjavik"}, TopLevelDomain: ".is",
		Currencies: []string{"Icelandic króna"}, Languages: []string{"Icelandic"},
	}
)

// fakeSource serves fixed countries and records the contexts of detail loads.
type fakeSource struct {
	countries []country.Country
	details   map[string]country.Detail
	errs      map[string]error

	mu   sync.Mutex
	ctxs map[string]context.Context
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		countries: []country.Country{botswana, brazil},
		details: map[string]country.Detail{
			"Brazil":    {Country: brazil, Borders: []string{"Argentina", "Bolivia"}},
			"Argentina": {Country: country.Country{CommonName: "Argentina", Region: "Americas"}, Borders: []string{"Brazil"}},
			"Iceland":   {Country: iceland, Borders: []string{}},
		},
		errs: map[string]error{},
		ctxs: map[string]context.Context{},
	}
}

func (f *fakeSource) LoadDirectory(context.Context) []country.Country {
	return f.countries
}

func (f *fakeSource) LoadDetail(ctx context.Context, name string) (country.Detail, error) {
	f.mu.Lock()
	f.ctxs[name] = ctx
	f.mu.Unlock()
	if err, ok := f.errs[name]; ok {
		return country.Detail{}, err
	}
	d, ok := f.details[name]
	if !ok {
		return country.Detail{}, &restcountries.DetailError{
			Stage: restcountries.StagePrimary,
			Name:  name,
			Err:   errors.New("404 Not Found"),
		}
	}
	return d, nil
}

func (f *fakeSource) ctxFor(name string) context.Context {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ctxs[name]
}

// drain runs cmd and any batched commands, returning the messages produced.
// Only use it on commands known to return immediately.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// only returns the single message of type T in msgs.
func only[T any](msgs []tea.Msg) (T, bool) {
	var zero T
	var found []T
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			found = append(found, v)
		}
	}
	if len(found) != 1 {
		return zero, false
	}
	return found[0], true
}
