// Package config provides the configuration loader for chronos.
package config

import (
	"errors"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // timezone validation must not depend on the host zoneinfo

	"github.com/go-playground/validator/v10"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file configuration.
const (
	EnvGroupURL      = "CHRONOS_GROUP_URL"
	EnvTimetableURL  = "CHRONOS_EDT_URL"
	EnvCacheURI      = "CHRONOS_CACHE_URI"
	EnvCacheHost     = "REDIS_DOMAIN"
	EnvCachePort     = "REDIS_PORT"
	EnvCacheTTL      = "EDT_CACHE_TIME"
	EnvTimeout       = "CHRONOS_TIMEOUT"
	EnvRetries       = "CHRONOS_RETRIES"
	EnvBackoffFactor = "CHRONOS_BACKOFF_FACTOR"
	EnvLogLevel      = "CHRONOS_LOG_LEVEL"
	EnvLogFile       = "CHRONOS_LOG_FILE"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file and the
// process environment.
type FileConfigLoader struct {
	// LookupEnv resolves environment overrides. Nil means os.LookupEnv.
	LookupEnv func(key string) (string, bool)
	validate  *validator.Validate
}

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// NewLoader creates a FileConfigLoader reading the process environment.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{LookupEnv: os.LookupEnv}
}

// Load reads the configuration file at path, applies environment overrides and
// defaults, then validates the result. A missing file is not an error.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	cfg := &domain.Config{}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if err := l.validator().Struct(cfg); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}

	return cfg, nil
}

func (l *FileConfigLoader) validator() *validator.Validate {
	if l.validate == nil {
		l.validate = newValidator()
	}
	return l.validate
}

func (l *FileConfigLoader) lookup(key string) (string, bool) {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (l *FileConfigLoader) applyEnv(cfg *domain.Config) error {
	strs := []struct {
		key string
		dst *string
	}{
		{EnvGroupURL, &cfg.Upstream.GroupURL},
		{EnvTimetableURL, &cfg.Upstream.TimetableURL},
		{EnvCacheURI, &cfg.Cache.URI},
		{EnvCacheHost, &cfg.Cache.Host},
		{EnvLogLevel, &cfg.Log.Level},
		{EnvLogFile, &cfg.Log.File},
	}
	for _, s := range strs {
		if v, ok := l.lookup(s.key); ok {
			*s.dst = v
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvCachePort, &cfg.Cache.Port},
		{EnvRetries, &cfg.Upstream.Retries},
	}
	for _, i := range ints {
		v, ok := l.lookup(i.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(err, i.key, v)
		}
		*i.dst = n
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{EnvCacheTTL, &cfg.Cache.TTL},
		{EnvTimeout, &cfg.Upstream.Timeout},
		{EnvBackoffFactor, &cfg.Upstream.BackoffFactor},
	}
	for _, d := range durations {
		v, ok := l.lookup(d.key)
		if !ok {
			continue
		}
		parsed, err := parseDuration(v)
		if err != nil {
			return envError(err, d.key, v)
		}
		*d.dst = parsed
	}

	return nil
}

func envError(err error, key, value string) error {
	err = zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	err = zerr.With(err, "env", key)
	return zerr.With(err, "value", value)
}

// parseDuration accepts a bare number of seconds or a Go duration string.
func parseDuration(v string) (time.Duration, error) {
	if secs, err := strconv.ParseFloat(v, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	return time.ParseDuration(v)
}

func applyDefaults(cfg *domain.Config) {
	up := &cfg.Upstream
	if up.Timeout == 0 {
		up.Timeout = domain.DefaultRequestTimeout
	}
	if up.Retries == 0 {
		up.Retries = domain.DefaultRetries
	}
	if up.BackoffFactor == 0 {
		up.BackoffFactor = domain.DefaultBackoffFactor
	}
	if up.MaxRedirects == 0 {
		up.MaxRedirects = domain.DefaultMaxRedirects
	}

	c := &cfg.Cache
	if c.TTL == 0 {
		c.TTL = domain.DefaultCacheTTL
	}
	if c.Timeout == 0 {
		c.Timeout = domain.DefaultCacheTimeout
	}
	if c.Port == 0 {
		c.Port = domain.DefaultCachePort
	}
	if c.URI == "" && c.Host != "" {
		c.URI = (&url.URL{
			Scheme: "redis",
			Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
			Path:   "/" + strconv.Itoa(c.DB),
		}).String()
	}

	if cfg.Timezone == "" {
		cfg.Timezone = domain.DefaultTimezone
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = domain.DefaultConcurrency
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = domain.DefaultLogLevel
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("groupurl", validGroupURL)
	return v
}

// validGroupURL accepts an absolute URL holding exactly one group id placeholder.
func validGroupURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if strings.Count(raw, domain.GroupIDPlaceholder) != 1 {
		return false
	}
	u, err := url.Parse(strings.ReplaceAll(raw, domain.GroupIDPlaceholder, "0"))
	return err == nil && u.Scheme != "" && u.Host != ""
}
