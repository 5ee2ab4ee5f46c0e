package domain

import (
	"errors"
	"fmt"
)

// FetchErrorKind classifies why a request to the upstream source failed.
type FetchErrorKind int

const (
	// KindNetworkUnavailable covers connection failures and other transport errors.
	KindNetworkUnavailable FetchErrorKind = iota
	// KindTimeout means the request did not complete in time.
	KindTimeout
	// KindTooManyRedirects means the upstream kept redirecting.
	KindTooManyRedirects
	// KindUpstreamHTTP means the upstream answered with a non-2xx, non-404 status.
	KindUpstreamHTTP
	// KindNotFound means the upstream answered 404.
	KindNotFound
)

// String returns the name of the kind as used in logs.
func (k FetchErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindTooManyRedirects:
		return "too_many_redirects"
	case KindUpstreamHTTP:
		return "upstream_http_error"
	case KindNotFound:
		return "not_found"
	default:
		return "network_unavailable"
	}
}

// FetchError is the single error type returned by the remote fetcher.
type FetchError struct {
	Kind       FetchErrorKind
	GroupID    string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s: %s", e.URL, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status=%d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// RemoteFetchStatus is the coarse outcome of a timetable document fetch.
type RemoteFetchStatus int

const (
	// FetchOK means a document body was received.
	FetchOK RemoteFetchStatus = iota
	// FetchNotFound means the upstream does not know the group.
	FetchNotFound
	// FetchFailed means any other failure.
	FetchFailed
)

// String returns the upper-case name of the status.
func (s RemoteFetchStatus) String() string {
	switch s {
	case FetchOK:
		return "OK"
	case FetchNotFound:
		return "NOT_FOUND"
	default:
		return "ERROR"
	}
}

// FetchStatusOf maps a fetcher error to its RemoteFetchStatus.
func FetchStatusOf(err error) RemoteFetchStatus {
	if err == nil {
		return FetchOK
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) && fetchErr.Kind == KindNotFound {
		return FetchNotFound
	}
	return FetchFailed
}
