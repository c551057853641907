// Package config loads explorer settings from defaults, an optional YAML
// file, COUNTRYEXPLORER_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"countryexplorer/internal/restcountries"
	"countryexplorer/internal/trace"
)

// EnvPrefix prefixes every environment override, e.g. COUNTRYEXPLORER_API_BASE_URL.
const EnvPrefix = "COUNTRYEXPLORER"

// Config is the resolved configuration.
type Config struct {
	API       API       `mapstructure:"api"`
	Log       Log       `mapstructure:"log"`
	Telemetry Telemetry `mapstructure:"telemetry"`
}

// API configures the REST Countries client.
type API struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// Log configures the file logger.
type Log struct {
	File  string `mapstructure:"file" validate:"required"`
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Human bool   `mapstructure:"human"`
}

// Telemetry configures OTLP trace export. An empty endpoint disables it.
type Telemetry struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name" validate:"required"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		API: API{
			BaseURL: restcountries.DefaultBaseURL,
			Timeout: restcountries.DefaultTimeout,
		},
		Log: Log{
			File:  filepath.Join(os.TempDir(), "countryexplorer.log"),
			Level: "info",
		},
		Telemetry: Telemetry{
			ServiceName: trace.DefaultServiceName,
		},
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"api-url":   "api.base_url",
	"timeout":   "api.timeout",
	"log-file":  "log.file",
	"log-level": "log.level",
}

// RegisterFlags adds the overridable settings to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("config", "", "path to a YAML config file")
	fs.String("api-url", d.API.BaseURL, "REST Countries base URL")
	fs.Duration("timeout", d.API.Timeout, "per-request HTTP timeout")
	fs.String("log-file", d.Log.File, "log file path")
	fs.String("log-level", d.Log.Level, "log level (trace, debug, info, warn, error)")
}

// Load resolves the configuration. fs may be nil; when set, flags the user
// changed take precedence over env and file values.
func Load(fs *pflag.FlagSet) (Config, error) {
	d := Default()
	v := viper.New()
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.human", d.Log.Human)
	v.SetDefault("telemetry.otlp_endpoint", d.Telemetry.OTLPEndpoint)
	v.SetDefault("telemetry.service_name", d.Telemetry.ServiceName)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Standard OpenTelemetry variables are honoured as a fallback.
	if err := v.BindEnv("telemetry.otlp_endpoint", EnvPrefix+"_TELEMETRY_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT"); err != nil {
		return Config{}, err
	}
	if err := v.BindEnv("telemetry.service_name", EnvPrefix+"_TELEMETRY_SERVICE_NAME", "OTEL_SERVICE_NAME"); err != nil {
		return Config{}, err
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", f.Value.String(), err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports every violation.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
