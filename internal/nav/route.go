// Package nav models the explorer's two routes and its back/forward history.
package nav

import (
	"net/url"
	"strings"
)

// Kind distinguishes the directory root from a country detail page.
type Kind int

const (
	KindRoot Kind = iota
	KindDetail
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindDetail:
		return "detail"
	default:
		return "unknown"
	}
}

const detailPrefix = "/country/"

// Route is a location in the app.
type Route struct {
	Kind Kind
	Name string // country common name, for KindDetail
}

// Root returns the directory route.
func Root() Route { return Route{Kind: KindRoot} }

// Detail returns the detail route for name.
func Detail(name string) Route { return Route{Kind: KindDetail, Name: name} }

// Path renders the route: "/" or "/country/{escaped name}".
func (r Route) Path() string {
	if r.Kind != KindDetail {
		return "/"
	}
	return detailPrefix + url.PathEscape(r.Name)
}

func (r Route) String() string { return r.Path() }

// Parse is the inverse of Path. Anything that is not a well-formed detail
// path resolves to Root.
func Parse(path string) Route {
	if !strings.HasPrefix(path, detailPrefix) {
		return Root()
	}
	raw := strings.TrimPrefix(path, detailPrefix)
	if raw == "" || strings.Contains(raw, "/") {
		return Root()
	}
	name, err := url.PathUnescape(raw)
	if err != nil || name == "" {
		return Root()
	}
	return Detail(name)
}
