package restcountries

import (
	"context"

	oteltrace "go.opentelemetry.io/otel/trace"

	"countryexplorer/internal/country"
	"countryexplorer/internal/logging"
)

// Service combines the session directory and detail loading over one Client.
type Service struct {
	client    *Client
	directory *Directory
	tracer    oteltrace.Tracer
	log       *logging.Logger
}

// NewService builds a Service on client.
func NewService(client *Client) *Service {
	return &Service{
		client:    client,
		directory: NewDirectory(client.All, client.log),
		tracer:    client.tracer,
		log:       client.log,
	}
}

// LoadDirectory returns the session's country collection (empty on failure).
func (s *Service) LoadDirectory(ctx context.Context) []country.Country {
	return s.directory.Load(ctx)
}

// LoadDetail fetches one country by exact name with its border names.
// Every failure is a *DetailError matching ErrCountryNotFound.
func (s *Service) LoadDetail(ctx context.Context, name string) (country.Detail, error) {
	d, err := loadDetail(ctx, s.tracer, s.client, name)
	if err != nil {
		s.log.WithFields(map[string]any{"country": name}).Warn(err, "error loading country")
		return country.Detail{}, err
	}
	return d, nil
}
