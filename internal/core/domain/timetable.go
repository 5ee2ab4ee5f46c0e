package domain

import "time"

// DefaultColor is the course color used when the export carries none.
const DefaultColor = "FFFFFF"

// Course is one scheduled event of a timetable.
type Course struct {
	WeekDate  time.Time `json:"week_date"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Color     string    `json:"color"`
	Groups    []string  `json:"groups"`
	Modules   []string  `json:"modules"`
	Staff     []string  `json:"staff"`
	Rooms     []string  `json:"rooms"`
	Notes     *string   `json:"notes"`
}

// TimeTable is the normalized schedule of a group.
// Weeks are sorted ascending and courses are sorted by start date.
type TimeTable struct {
	GroupName string      `json:"group_name"`
	Weeks     []time.Time `json:"weeks"`
	Courses   []Course    `json:"courses"`
}

// CachedTimeTable pairs a timetable with the moment it was cached.
type CachedTimeTable struct {
	CacheDate time.Time `json:"cache_date"`
	TimeTable TimeTable `json:"timetable"`
}

// HasWeek reports whether date is one of the timetable's week anchors.
func (t *TimeTable) HasWeek(date time.Time) bool {
	for _, w := range t.Weeks {
		if w.Equal(date) {
			return true
		}
	}
	return false
}
