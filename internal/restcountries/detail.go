package restcountries

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"countryexplorer/internal/country"
)

// ErrCountryNotFound is matched by every detail load failure. Callers that
// only care about "render or redirect" test for it with errors.Is.
var ErrCountryNotFound = errors.New("country not found")

// Stage identifies which request of a detail load failed.
type Stage int

const (
	// StagePrimary is the exact-name lookup.
	StagePrimary Stage = iota
	// StageBorders is the batched border lookup; the primary record was fine.
	StageBorders
)

func (s Stage) String() string {
	switch s {
	case StagePrimary:
		return "primary"
	case StageBorders:
		return "borders"
	default:
		return "unknown"
	}
}

// DetailError describes a failed detail load.
type DetailError struct {
	Stage Stage
	Name  string
	Err   error
}

func (e *DetailError) Error() string {
	return fmt.Sprintf("load %q (%s): %v", e.Name, e.Stage, e.Err)
}

// Unwrap exposes both ErrCountryNotFound and the underlying cause.
func (e *DetailError) Unwrap() []error {
	return []error{ErrCountryNotFound, e.Err}
}

// lookup is the subset of Client a detail load needs.
type lookup interface {
	ByName(ctx context.Context, name string) (country.Country, error)
	ByCodes(ctx context.Context, codes []string) ([]country.Country, error)
}

// loadDetail fetches name and then, only if it has border codes, resolves
// them to common names in border order. Unresolved codes are dropped.
func loadDetail(ctx context.Context, tracer oteltrace.Tracer, src lookup, name string) (country.Detail, error) {
	ctx, span := tracer.Start(ctx, "restcountries.detail",
		oteltrace.WithAttributes(attribute.String("country.name", name)))
	defer span.End()

	primary, err := src.ByName(ctx, name)
	if err != nil {
		derr := &DetailError{Stage: StagePrimary, Name: name, Err: err}
		recordError(span, derr)
		return country.Detail{}, derr
	}

	borders := []string{}
	if len(primary.BorderCodes) > 0 {
		found, err := src.ByCodes(ctx, primary.BorderCodes)
		if err != nil {
			derr := &DetailError{Stage: StageBorders, Name: name, Err: err}
			recordError(span, derr)
			return country.Detail{}, derr
		}
		borders = resolveBorders(primary.BorderCodes, found)
	}
	span.SetAttributes(attribute.Int("country.border_count", len(borders)))

	return country.Detail{Country: primary, Borders: borders}, nil
}

// resolveBorders maps codes to the common names in found, keeping the order
// of codes and skipping codes with no record.
func resolveBorders(codes []string, found []country.Country) []string {
	byCode := make(map[string]string, len(found))
	for _, c := range found {
		if c.Code != "" && c.CommonName != "" {
			byCode[c.Code] = c.CommonName
		}
	}
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if name, ok := byCode[code]; ok {
			out = append(out, name)
		}
	}
	return out
}
