package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the loaded configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrExportMalformed is returned when the timetable export is not well-formed XML.
	ErrExportMalformed = zerr.New("malformed timetable export")

	// ErrExportNoWeeks is returned when the export declares no week anchors.
	ErrExportNoWeeks = zerr.New("timetable export has no weeks")

	// ErrExportNoSubheading is returned when the export has no group subheading.
	ErrExportNoSubheading = zerr.New("timetable export has no subheading")

	// ErrExportMissingField is returned when a required node or attribute is absent.
	ErrExportMissingField = zerr.New("timetable export is missing a required field")

	// ErrExportInvalidField is returned when a field cannot be decoded.
	ErrExportInvalidField = zerr.New("timetable export has an invalid field")

	// ErrExportUnknownWeek is returned when an event references a week that is not declared.
	ErrExportUnknownWeek = zerr.New("timetable event references an unknown week")

	// ErrGroupListMalformed is returned when the group list page has no usable select.
	ErrGroupListMalformed = zerr.New("malformed group list page")

	// ErrGroupListFetchFailed is returned when the group list page cannot be fetched.
	ErrGroupListFetchFailed = zerr.New("failed to fetch group list")

	// ErrEmptyDocument is returned when the upstream answered with an empty body.
	ErrEmptyDocument = zerr.New("upstream returned an empty timetable document")

	// ErrStoreUnavailable is returned when the cache store cannot be reached.
	ErrStoreUnavailable = zerr.New("cache store unavailable")

	// ErrStoreOperationFailed is returned when a cache read or write fails.
	ErrStoreOperationFailed = zerr.New("cache store operation failed")

	// ErrStoreUnmarshalFailed is returned when a cached entry cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cached timetable")

	// ErrStoreMarshalFailed is returned when a timetable cannot be encoded for caching.
	ErrStoreMarshalFailed = zerr.New("failed to marshal timetable")

	// ErrResolutionFailed is returned by the CLI when at least one group resolved to ERROR.
	ErrResolutionFailed = zerr.New("timetable resolution failed")

	// ErrGroupNotFound is returned by the CLI when at least one group resolved to NOT_FOUND.
	ErrGroupNotFound = zerr.New("group not found")
)
