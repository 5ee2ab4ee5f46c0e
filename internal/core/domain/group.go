package domain

// Group identifies the scope of a timetable, such as a class section.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
