package domain

import "time"

const (
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "chronos.yaml"

	// CacheKeyPrefix namespaces cached timetables in the store.
	CacheKeyPrefix = "cache_edt_"

	// GroupIDPlaceholder is replaced by the group id in the timetable URL template.
	GroupIDPlaceholder = "{group_id}"

	// SubheadingPrefix is the label the export puts in front of the group name.
	SubheadingPrefix = "Emploi du temps Groupe - "

	// DefaultCacheTTL is how long a cached timetable is served.
	DefaultCacheTTL = 15 * time.Minute

	// DefaultCacheTimeout bounds a single cache store operation.
	DefaultCacheTimeout = 2 * time.Second

	// DefaultCachePort is the redis port used when only a host is configured.
	DefaultCachePort = 6379

	// DefaultRequestTimeout bounds a single upstream request attempt.
	DefaultRequestTimeout = 10 * time.Second

	// DefaultRetries is the number of retries after the first attempt.
	DefaultRetries = 3

	// DefaultBackoffFactor is the delay before the first retry; it doubles on each retry.
	DefaultBackoffFactor = time.Second

	// DefaultMaxRedirects is the number of redirects followed before giving up.
	DefaultMaxRedirects = 10

	// DefaultTimezone is the location the export's dates are expressed in.
	DefaultTimezone = "Europe/Paris"

	// DefaultConcurrency bounds parallel resolves.
	DefaultConcurrency = 4

	// DefaultLogLevel is the minimum level written to the console.
	DefaultLogLevel = "warn"

	// FilePerm is the permission used for log files (rw-r--r--).
	FilePerm = 0o644
)

// CacheKey returns the store key holding groupID's timetable.
func CacheKey(groupID string) string {
	return CacheKeyPrefix + groupID
}
