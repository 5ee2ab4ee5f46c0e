package ports

import "go.trai.ch/chronos/internal/core/domain"

// TimetableParser turns an export document into a timetable.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type TimetableParser interface {
	// Parse decodes the whole document or fails; it never returns a partial timetable.
	Parse(document string) (*domain.TimeTable, error)
}
