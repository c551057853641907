package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"countryexplorer/internal/config"
	"countryexplorer/internal/logging"
	"countryexplorer/internal/restcountries"
	"countryexplorer/internal/trace"
)

// appContext holds the services one command invocation works with.
type appContext struct {
	cfg     config.Config
	log     *logging.Logger
	tracing *trace.Provider
	service *restcountries.Service
	closers []func(context.Context) error
}

// newAppContext loads configuration from cmd's flags and builds the logger,
// trace provider and REST Countries service.
func newAppContext(cmd *cobra.Command) (*appContext, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	ac := &appContext{cfg: cfg}

	f, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	ac.closers = append(ac.closers, func(context.Context) error { return f.Close() })
	ac.log, err = logging.New(logging.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        f,
	})
	if err != nil {
		ac.close()
		return nil, err
	}

	ac.tracing, err = trace.NewProvider(cmd.Context(), trace.Options{
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		ac.log.Warn(err, "tracing disabled")
		ac.tracing = trace.Disabled()
	}
	ac.closers = append(ac.closers, ac.tracing.Shutdown)

	client, err := restcountries.NewClient(cfg.API.BaseURL,
		restcountries.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		restcountries.WithTracing(ac.tracing),
		restcountries.WithLogger(ac.log),
	)
	if err != nil {
		ac.close()
		return nil, err
	}
	ac.service = restcountries.NewService(client)

	ac.log.WithFields(map[string]any{
		"command":  cmd.Name(),
		"api":      cfg.API.BaseURL,
		"tracing":  ac.tracing.Enabled(),
		"log_file": cfg.Log.File,
	}).Info("starting")
	return ac, nil
}

// close flushes traces and closes the log file, newest first.
func (ac *appContext) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var errs []error
	for i := len(ac.closers) - 1; i >= 0; i-- {
		if err := ac.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	ac.closers = nil
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// withAppContext runs fn with a fresh appContext and closes it afterwards.
func withAppContext(cmd *cobra.Command, fn func(*appContext, io.Writer) error) (err error) {
	ac, err := newAppContext(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ac.close(); err == nil {
			err = cerr
		}
	}()
	return fn(ac, cmd.OutOrStdout())
}
