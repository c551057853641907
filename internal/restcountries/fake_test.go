package restcountries

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

const brazilJSON = `{
  "name": {"common": "Brazil", "official": "Federative Republic of Brazil",
           "nativeName": {"por": {"official": "República Federativa do Brasil", "common": "Brasil"}}},
  "tld": [".br"], "cca3": "BRA",
  "currencies": {"BRL": {"name": "Brazilian real", "symbol": "R$"}},
  "capital": ["Brasília"], "region": "Americas", "subregion": "South America",
  "languages": {"por": "Portuguese"},
  "borders": ["ARG", "BOL"],
  "population": 212559409, "flag": "🇧🇷",
  "flags": {"png": "https://flagcdn.com/w320/br.png", "svg": "https://flagcdn.com/br.svg"}
}`

const argentinaJSON = `{
  "name": {"common": "Argentina", "nativeName": {"grn": {"common": "Argentina"}, "spa": {"common": "Argentina"}}},
  "cca3": "ARG", "region": "Americas", "population": 45376763,
  "borders": ["BOL", "BRA", "CHL", "PRY", "URY"],
  "flags": {"svg": "https://flagcdn.com/ar.svg"}
}`

const boliviaJSON = `{
  "name": {"common": "Bolivia"}, "cca3": "BOL", "region": "Americas", "population": 11673029,
  "languages": {"aym": "Aymara", "grn": "Guaraní", "que": "Quechua", "spa": "Spanish"}
}`

const icelandJSON = `{
  "name": {"common": "Iceland", "nativeName": {"isl": {"common": "Ísland"}}},
  "cca3": "ISL", "region": "Europe", "subregion": "Northern Europe", "population": 366425,
  "capital": ["Reykjavik"], "tld": [".is"],
  "currencies": {"ISK": {"name": "Icelandic króna"}}, "languages": {"isl": "Icelandic"}
}`

const botswanaJSON = `{
  "name": {"common": "Botswana"}, "cca3": "BWA", "region": "Africa",
  "population": 2351625, "capital": ["Gaborone"], "flags": {"png": "botswana.png"}
}`

// fakeAPI serves a tiny REST Countries lookalike and records each request.
type fakeAPI struct {
	mu       sync.Mutex
	records  map[string]string // cca3 -> JSON record
	requests []*http.Request

	// Overrides keyed by path prefix ("/name/", "/alpha", "/all").
	status map[string]int
	body   map[string]string
	delay  map[string]time.Duration
}

func newFakeAPI(records ...string) *fakeAPI {
	f := &fakeAPI{
		records: map[string]string{},
		status:  map[string]int{},
		body:    map[string]string{},
		delay:   map[string]time.Duration{},
	}
	for _, r := range records {
		var head struct {
			CCA3 string `json:"cca3"`
		}
		if err := json.Unmarshal([]byte(r), &head); err != nil {
			panic(err)
		}
		f.records[head.CCA3] = r
	}
	return f
}

func (f *fakeAPI) requestsTo(prefix string) []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*http.Request
	for _, r := range f.requests {
		if strings.HasPrefix(r.URL.Path, prefix) {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.Clone(r.Context()))
	f.mu.Unlock()

	prefix := r.URL.Path
	switch {
	case strings.HasPrefix(prefix, "/name/"):
		prefix = "/name/"
	case strings.HasPrefix(prefix, "/alpha"):
		prefix = "/alpha"
	}
	if d := f.delay[prefix]; d > 0 {
		select {
		case <-time.After(d):
		case <-r.Context().Done():
			return
		}
	}
	if code, ok := f.status[prefix]; ok {
		w.WriteHeader(code)
		_, _ = w.Write([]byte(http.StatusText(code)))
		return
	}
	if body, ok := f.body[prefix]; ok {
		_, _ = w.Write([]byte(body))
		return
	}

	var matches []string
	switch prefix {
	case "/name/":
		name := strings.TrimPrefix(r.URL.Path, "/name/")
		for _, rec := range f.records {
			var head struct {
				Name struct {
					Common string `json:"common"`
				} `json:"name"`
			}
			_ = json.Unmarshal([]byte(rec), &head)
			if r.URL.Query().Get("fullText") == "true" && strings.EqualFold(head.Name.Common, name) {
				matches = append(matches, rec)
			}
		}
		if len(matches) == 0 {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":404,"message":"Not Found"}`))
			return
		}
	case "/alpha":
		for _, code := range strings.Split(r.URL.Query().Get("codes"), ",") {
			if rec, ok := f.records[code]; ok {
				matches = append(matches, rec)
			}
		}
		// Answer in reverse so callers cannot rely on response order.
		for i, j := 0, len(matches)-1; i < j; i, j = i+1, j-1 {
			matches[i], matches[j] = matches[j], matches[i]
		}
	case "/all":
		for _, rec := range f.records {
			matches = append(matches, rec)
		}
	default:
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte("[" + strings.Join(matches, ",") + "]"))
}

// newTestClient starts api on an httptest server and returns a client for it.
func newTestClient(t *testing.T, api http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(api)
	hc := srv.Client()
	t.Cleanup(func() {
		hc.CloseIdleConnections()
		srv.Close()
	})
	c, err := NewClient(srv.URL, append([]Option{WithHTTPClient(hc)}, opts...)...)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}
