package restcountries

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countryexplorer/internal/country"
)

func TestDirectory_FetchesOncePerSession(t *testing.T) {
	api := newFakeAPI(brazilJSON, botswanaJSON)
	svc := NewService(newTestClient(t, api))

	first := svc.LoadDirectory(context.Background())
	second := svc.LoadDirectory(context.Background())
	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Len(t, api.requestsTo("/all"), 1)
}

func TestDirectory_FailOpen(t *testing.T) {
	api := newFakeAPI(brazilJSON)
	api.status["/all"] = http.StatusServiceUnavailable
	svc := NewService(newTestClient(t, api))

	got := svc.LoadDirectory(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)

	// No retry within the session.
	_ = svc.LoadDirectory(context.Background())
	assert.Len(t, api.requestsTo("/all"), 1)
}

func TestDirectory_ConcurrentCallersShareFetch(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	d := NewDirectory(func(context.Context) ([]country.Country, error) {
		calls.Add(1)
		<-release
		return []country.Country{{CommonName: "Brazil"}}, nil
	}, nil)

	var wg sync.WaitGroup
	results := make([][]country.Country, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = d.Load(context.Background())
		}(i)
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Len(t, r, 1)
	}
}

func TestDirectory_CanceledLoadIsNotMemoized(t *testing.T) {
	var calls int
	d := NewDirectory(func(context.Context) ([]country.Country, error) {
		calls++
		return []country.Country{{CommonName: "Chad"}}, nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Empty(t, d.Load(ctx))
	assert.Len(t, d.Load(context.Background()), 1)
	assert.Equal(t, 1, calls)
}

func TestDirectory_CanceledCallerDoesNotAbortSharedFetch(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	fetchErr := make(chan error, 1)
	d := NewDirectory(func(ctx context.Context) ([]country.Country, error) {
		calls.Add(1)
		close(started)
		<-release
		fetchErr <- ctx.Err()
		return []country.Country{{CommonName: "Chad"}, {CommonName: "Togo"}}, nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan []country.Country, 1)
	go func() { first <- d.Load(ctx) }()
	<-started

	second := make(chan []country.Country, 1)
	go func() { second <- d.Load(context.Background()) }()

	cancel()
	assert.Empty(t, <-first)

	close(release)
	assert.Len(t, <-second, 2)
	assert.NoError(t, <-fetchErr)

	assert.Len(t, d.Load(context.Background()), 2)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDirectory_ErrorMemoized(t *testing.T) {
	var calls int
	d := NewDirectory(func(context.Context) ([]country.Country, error) {
		calls++
		return nil, errors.New("boom")
	}, nil)

	assert.Empty(t, d.Load(context.Background()))
	assert.Empty(t, d.Load(context.Background()))
	assert.Equal(t, 1, calls)
}
