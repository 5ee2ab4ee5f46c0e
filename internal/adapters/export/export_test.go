package export

// Exported for white-box testing.
var ParseTimeSortExported = parseTimeSort
