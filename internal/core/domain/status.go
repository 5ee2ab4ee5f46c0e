package domain

// ResolutionStatus is the terminal outcome of resolving a group's timetable.
type ResolutionStatus int

const (
	// StatusError means the timetable could not be produced.
	StatusError ResolutionStatus = iota
	// StatusCacheHit means the timetable was served from the cache.
	StatusCacheHit
	// StatusCacheMiss means the timetable was fetched and parsed from upstream.
	StatusCacheMiss
	// StatusNotFound means the upstream source does not know the group.
	StatusNotFound
)

// String returns the upper-case name of the status.
func (s ResolutionStatus) String() string {
	switch s {
	case StatusCacheHit:
		return "CACHE_HIT"
	case StatusCacheMiss:
		return "CACHE_MISS"
	case StatusNotFound:
		return "NOT_FOUND"
	default:
		return "ERROR"
	}
}

// Resolution is the result of a resolve call.
// Record is set if and only if Status is StatusCacheHit or StatusCacheMiss.
type Resolution struct {
	GroupID string
	Status  ResolutionStatus
	Record  *CachedTimeTable
}

// Found reports whether the resolution carries a timetable.
func (r Resolution) Found() bool {
	return r.Record != nil
}

// Hit returns a cache-hit resolution.
func Hit(groupID string, record *CachedTimeTable) Resolution {
	return Resolution{GroupID: groupID, Status: StatusCacheHit, Record: record}
}

// Miss returns a cache-miss resolution.
func Miss(groupID string, record *CachedTimeTable) Resolution {
	return Resolution{GroupID: groupID, Status: StatusCacheMiss, Record: record}
}

// NotFound returns a not-found resolution.
func NotFound(groupID string) Resolution {
	return Resolution{GroupID: groupID, Status: StatusNotFound}
}

// Failed returns an error resolution.
func Failed(groupID string) Resolution {
	return Resolution{GroupID: groupID, Status: StatusError}
}
