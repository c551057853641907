package restcountries

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"countryexplorer/internal/country"
	"countryexplorer/internal/logging"
)

// Directory memoizes the full country collection for the session.
// Concurrent first calls share one request. A failed fetch yields an empty
// collection and is not retried.
type Directory struct {
	fetch func(context.Context) ([]country.Country, error)
	log   *logging.Logger

	group     singleflight.Group
	mu        sync.Mutex
	loaded    bool
	countries []country.Country
}

// NewDirectory wraps fetch, typically Client.All.
func NewDirectory(fetch func(context.Context) ([]country.Country, error), log *logging.Logger) *Directory {
	return &Directory{fetch: fetch, log: log}
}

// Load returns the collection, fetching it on first use. The shared fetch
// outlives any single caller; a caller whose ctx ends first gets an empty
// collection and the result is still memoized for later calls.
func (d *Directory) Load(ctx context.Context) []country.Country {
	if list, ok := d.cached(); ok {
		return list
	}
	if ctx.Err() != nil {
		return []country.Country{}
	}
	fetchCtx := context.WithoutCancel(ctx)
	ch := d.group.DoChan("all", func() (any, error) {
		if list, ok := d.cached(); ok {
			return list, nil
		}
		list, err := d.fetch(fetchCtx)
		if err != nil {
			d.log.Error(err, "failed to fetch countries")
			list = []country.Country{}
		}
		if list == nil {
			list = []country.Country{}
		}
		d.mu.Lock()
		d.loaded = true
		d.countries = list
		d.mu.Unlock()
		d.log.WithFields(map[string]any{"count": len(list)}).Debug("directory loaded")
		return list, nil
	})
	select {
	case res := <-ch:
		return res.Val.([]country.Country)
	case <-ctx.Done():
		return []country.Country{}
	}
}

func (d *Directory) cached() ([]country.Country, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.countries, d.loaded
}
