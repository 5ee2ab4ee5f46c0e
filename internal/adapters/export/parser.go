// Package export decodes the Chronos XML timetable export into domain timetables.
package export

import (
	"encoding/xml"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	weekMarker   = 'Y'
	weekLayout   = "02/01/2006"
	timesortSize = 8
)

// Parser implements ports.TimetableParser. It holds no state besides the
// location the export's naive dates are read in, so it is safe for concurrent use.
type Parser struct {
	loc *time.Location
}

var _ ports.TimetableParser = (*Parser)(nil)

// NewParser creates a Parser reading dates in loc. A nil loc means UTC.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{loc: loc}
}

// Parse converts an export document into a TimeTable. Any missing or
// undecodable required field fails the whole document.
func (p *Parser) Parse(doc string) (*domain.TimeTable, error) {
	var d document

	dec := xml.NewDecoder(strings.NewReader(doc))
	// The fetcher hands over decoded text whatever the declared charset.
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := dec.Decode(&d); err != nil {
		return nil, zerr.Wrap(err, domain.ErrExportMalformed.Error())
	}

	weeks, err := p.parseWeeks(d.Weeks)
	if err != nil {
		return nil, err
	}

	groupName, err := parseGroupName(d.Options)
	if err != nil {
		return nil, err
	}

	courses := make([]domain.Course, 0, len(d.Events))
	for i := range d.Events {
		course, err := p.parseEvent(&d.Events[i], weeks)
		if err != nil {
			return nil, zerr.With(err, "event_index", i)
		}
		courses = append(courses, course)
	}

	slices.SortStableFunc(courses, func(a, b domain.Course) int {
		return a.StartDate.Compare(b.StartDate)
	})

	weekList := slices.SortedFunc(maps.Values(weeks), time.Time.Compare)

	return &domain.TimeTable{
		GroupName: groupName,
		Weeks:     weekList,
		Courses:   courses,
	}, nil
}

// parseWeeks builds the rawix to week date mapping. A later span with the
// same rawix replaces an earlier one.
func (p *Parser) parseWeeks(spans []week) (map[int]time.Time, error) {
	if len(spans) == 0 {
		return nil, domain.ErrExportNoWeeks
	}

	weeks := make(map[int]time.Time, len(spans))
	for i, s := range spans {
		if text(s.Date) == "" {
			return nil, zerr.With(zerr.With(domain.ErrExportMissingField, "field", "span.date"), "span_index", i)
		}
		if text(s.RawIx) == "" {
			return nil, zerr.With(zerr.With(domain.ErrExportMissingField, "field", "span.rawix"), "span_index", i)
		}

		ix, err := strconv.Atoi(strings.TrimSpace(*s.RawIx))
		if err != nil {
			return nil, invalidField(err, "span.rawix", *s.RawIx)
		}

		date, err := time.ParseInLocation(weekLayout, *s.Date, p.loc)
		if err != nil {
			return nil, invalidField(err, "span.date", *s.Date)
		}

		weeks[ix] = date
	}

	return weeks, nil
}

func parseGroupName(options []option) (string, error) {
	if len(options) == 0 || text(options[0].Subheading) == "" {
		return "", domain.ErrExportNoSubheading
	}
	return strings.TrimPrefix(*options[0].Subheading, domain.SubheadingPrefix), nil
}

func (p *Parser) parseEvent(e *event, weeks map[int]time.Time) (domain.Course, error) {
	rawWeeks := text(e.RawWeeks)
	if rawWeeks == "" {
		return domain.Course{}, zerr.With(domain.ErrExportMissingField, "field", "rawweeks")
	}
	day := text(e.Day)
	if day == "" {
		return domain.Course{}, zerr.With(domain.ErrExportMissingField, "field", "day")
	}
	timeSort := text(e.TimeSort)
	if timeSort == "" {
		return domain.Course{}, zerr.With(domain.ErrExportMissingField, "field", "timesort")
	}

	// Only the first marked week anchors the event.
	pos := strings.IndexRune(rawWeeks, weekMarker)
	if pos < 0 {
		return domain.Course{}, invalidField(nil, "rawweeks", rawWeeks)
	}
	weekDate, ok := weeks[pos+1]
	if !ok {
		return domain.Course{}, zerr.With(domain.ErrExportUnknownWeek, "week_index", pos+1)
	}

	dayOffset, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil {
		return domain.Course{}, invalidField(err, "day", day)
	}

	startH, startM, endH, endM, err := parseTimeSort(timeSort)
	if err != nil {
		return domain.Course{}, err
	}

	if e.Resources == nil {
		return domain.Course{}, zerr.With(domain.ErrExportMissingField, "field", "resources")
	}

	y, m, d := weekDate.Date()
	color := domain.DefaultColor
	if e.Colour != nil {
		color = *e.Colour
	}

	var notes *string
	if text(e.Notes) != "" {
		n := *e.Notes
		notes = &n
	}

	return domain.Course{
		WeekDate:  weekDate,
		StartDate: time.Date(y, m, d+dayOffset, startH, startM, 0, 0, p.loc),
		EndDate:   time.Date(y, m, d+dayOffset, endH, endM, 0, 0, p.loc),
		Color:     color,
		Groups:    values(e.Resources.Groups),
		Modules:   values(e.Resources.Modules),
		Staff:     values(e.Resources.Staff),
		Rooms:     values(e.Resources.Rooms),
		Notes:     notes,
	}, nil
}

// parseTimeSort decodes "HHMMhhmm" into start and end hour/minute pairs.
func parseTimeSort(ts string) (startH, startM, endH, endM int, err error) {
	if len(ts) != timesortSize {
		return 0, 0, 0, 0, invalidField(nil, "timesort", ts)
	}

	parts := [4]int{}
	for i := range parts {
		n, convErr := strconv.ParseUint(ts[i*2:i*2+2], 10, 8)
		if convErr != nil {
			return 0, 0, 0, 0, invalidField(convErr, "timesort", ts)
		}
		parts[i] = int(n)
	}

	if parts[0] > 23 || parts[2] > 23 || parts[1] > 59 || parts[3] > 59 {
		return 0, 0, 0, 0, invalidField(nil, "timesort", ts)
	}

	return parts[0], parts[1], parts[2], parts[3], nil
}

func invalidField(cause error, field, value string) error {
	var err error = domain.ErrExportInvalidField
	if cause != nil {
		err = zerr.Wrap(cause, domain.ErrExportInvalidField.Error())
	}
	return zerr.With(zerr.With(err, "field", field), "value", value)
}
