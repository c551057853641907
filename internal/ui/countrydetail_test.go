package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"countryexplorer/internal/country"
	"countryexplorer/internal/nav"
	"countryexplorer/internal/theme"
)

func newLoadedDetail(d country.Detail) *DetailView {
	v := NewDetailView(d.CommonName, NewStyles(theme.Light))
	v.SetDetail(d)
	return v
}

func TestDetailView_LoadingRendersNoContent(t *testing.T) {
	v := NewDetailView("Brazil", NewStyles(theme.Light))
	view := v.View()
	if !strings.Contains(view, "Loading country details...") {
		t.Errorf("expected loading text:\n%s", view)
	}
	for _, unwanted := range []string{"Native Name", "Bordering Countries:", "None"} {
		if strings.Contains(view, unwanted) {
			t.Errorf("loading view contains %q", unwanted)
		}
	}
	if _, ok := v.SelectedBorderName(); ok {
		t.Error("no border selection while loading")
	}
}

func TestDetailView_FieldsInOrder(t *testing.T) {
	v := newLoadedDetail(country.Detail{Country: brazil, Borders: []string{"Argentina"}})
	view := v.View()

	labels := []string{"Native Name", "Population", "Region", "Sub Region", "Capital", "Top Level Domain", "Currencies", "Languages", "Bordering Countries:"}
	last := -1
	for _, l := range labels {
		i := strings.Index(view, l+":")
		if l == "Bordering Countries:" {
			i = strings.Index(view, l)
		}
		if i < 0 {
			t.Fatalf("missing %q in:\n%s", l, view)
		}
		if i < last {
			t.Errorf("%q out of order", l)
		}
		last = i
	}
	for _, want := range []string{"Brasil", "212,559,409", "Brazilian real", "Portuguese", ".br"} {
		if !strings.Contains(view, want) {
			t.Errorf("missing value %q", want)
		}
	}
}

func TestDetailView_NoBorders(t *testing.T) {
	v := newLoadedDetail(country.Detail{Country: iceland, Borders: []string{}})
	if !strings.Contains(v.View(), "None") {
		t.Errorf("expected None:\n%s", v.View())
	}
	if _, cmd := v.Update(keyMsg("enter")); cmd != nil {
		t.Error("enter with no borders should do nothing")
	}
}

func TestDetailView_ChipSelection(t *testing.T) {
	v := newLoadedDetail(country.Detail{Country: brazil, Borders: []string{"Argentina", "Bolivia", "Peru"}})

	steps := []struct {
		key  string
		want string
	}{
		{"l", "Bolivia"},
		{"tab", "Peru"},
		{"l", "Argentina"}, // wraps
		{"h", "Peru"},
		{"h", "Bolivia"},
	}
	for _, s := range steps {
		v.Update(keyMsg(s.key))
		if got, _ := v.SelectedBorderName(); got != s.want {
			t.Errorf("after %q: selected %q, want %q", s.key, got, s.want)
		}
	}

	_, cmd := v.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should navigate to the selected border")
	}
	if nm, ok := cmd().(NavigateMsg); !ok || nm.Route != nav.Detail("Bolivia") {
		t.Errorf("enter = %v", nm)
	}
}

func TestDetailView_BackKeys(t *testing.T) {
	for _, k := range []string{"esc", "backspace", "b"} {
		v := NewDetailView("Brazil", NewStyles(theme.Light))
		_, cmd := v.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s: expected back command", k)
		}
		if _, ok := cmd().(BackMsg); !ok {
			t.Errorf("%s: expected BackMsg", k)
		}
	}
}

func TestDetailView_WrapsChips(t *testing.T) {
	v := newLoadedDetail(country.Detail{Country: brazil, Borders: []string{
		"Argentina", "Bolivia", "Colombia", "French Guiana", "Guyana", "Paraguay", "Peru", "Suriname", "Uruguay", "Venezuela",
	}})
	v.Update(tea.WindowSizeMsg{Width: 40, Height: 30})
	for _, line := range strings.Split(v.View(), "\n") {
		if w := len([]rune(line)); w > 60 {
			t.Errorf("line too wide (%d): %q", w, line)
		}
	}
}
