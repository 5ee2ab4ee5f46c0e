package domain

import (
	"strings"
	"time"
)

// Config is the resolved application configuration.
// It is loaded once and handed to each component's constructor.
type Config struct {
	Upstream UpstreamConfig `yaml:"upstream"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`

	// Timezone is the IANA location the export's naive dates are read in.
	Timezone string `yaml:"timezone" validate:"required,timezone"`

	// Concurrency bounds parallel resolves of distinct groups.
	Concurrency int `yaml:"concurrency" validate:"gte=1"`
}

// UpstreamConfig describes the remote Chronos site.
type UpstreamConfig struct {
	GroupURL      string        `yaml:"group_url" validate:"required,url"`
	TimetableURL  string        `yaml:"timetable_url" validate:"required,groupurl"`
	Timeout       time.Duration `yaml:"timeout" validate:"gt=0"`
	Retries       int           `yaml:"retries" validate:"gte=0"`
	BackoffFactor time.Duration `yaml:"backoff_factor" validate:"gte=0"`
	MaxRedirects  int           `yaml:"max_redirects" validate:"gte=0"`
	UserAgent     string        `yaml:"user_agent"`
}

// CacheConfig describes the cache store endpoint.
type CacheConfig struct {
	Disabled bool          `yaml:"disabled"`
	URI      string        `yaml:"uri" validate:"omitempty,url"`
	Host     string        `yaml:"host" validate:"omitempty,hostname_rfc1123|ip"`
	Port     int           `yaml:"port" validate:"gte=0,lte=65535"`
	DB       int           `yaml:"db" validate:"gte=0"`
	TTL      time.Duration `yaml:"ttl" validate:"gt=0"`
	Timeout  time.Duration `yaml:"timeout" validate:"gt=0"`
}

// LogConfig controls process logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
	File  string `yaml:"file"`
}

// TimetableURLFor substitutes groupID into the timetable URL template.
func (c UpstreamConfig) TimetableURLFor(groupID string) string {
	return strings.ReplaceAll(c.TimetableURL, GroupIDPlaceholder, groupID)
}
