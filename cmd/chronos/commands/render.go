package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/ui/output"
	"go.trai.ch/chronos/internal/ui/style"
)

const (
	courseDayLayout  = "Mon 02/01/2006"
	courseTimeLayout = "15:04"
	cacheDateLayout  = "2006-01-02 15:04:05"
)

func renderGroups(w io.Writer, groups []domain.Group) string {
	r := output.NewRenderer(w)
	if len(groups) == 0 {
		return r.NewStyle().Foreground(style.Slate).Render("No groups found.") + "\n"
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{g.ID, g.Name})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(style.Slate)).
		Headers("ID", "NAME").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.NewStyle().Bold(true).Foreground(style.Iris).Padding(0, 1)
			}
			return r.NewStyle().Padding(0, 1)
		})

	return t.String() + "\n"
}

func renderResolutions(w io.Writer, results []domain.Resolution) string {
	r := output.NewRenderer(w)

	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderHeadline(r, res))
		b.WriteString("\n")

		if res.Record == nil || len(res.Record.TimeTable.Courses) == 0 {
			continue
		}
		b.WriteString(renderCourses(r, res.Record.TimeTable.Courses))
		b.WriteString("\n")
	}
	return b.String()
}

func renderHeadline(r *lipgloss.Renderer, res domain.Resolution) string {
	icon, color := statusIcon(res.Status)

	parts := []string{
		r.NewStyle().Foreground(color).Render(icon + " " + res.GroupID),
		r.NewStyle().Foreground(color).Bold(true).Render(res.Status.String()),
	}

	if rec := res.Record; rec != nil {
		muted := r.NewStyle().Foreground(style.Slate)
		parts = append(parts,
			rec.TimeTable.GroupName,
			muted.Render("cached "+rec.CacheDate.Format(cacheDateLayout)),
			muted.Render(pluralize(len(rec.TimeTable.Courses), "course")),
		)
	}

	return strings.Join(parts, " "+style.Dot+" ")
}

func renderCourses(r *lipgloss.Renderer, courses []domain.Course) string {
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			c.StartDate.Format(courseDayLayout),
			c.StartDate.Format(courseTimeLayout) + "-" + c.EndDate.Format(courseTimeLayout),
			strings.Join(c.Modules, ", "),
			strings.Join(c.Rooms, ", "),
			strings.Join(c.Staff, ", "),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(style.Slate)).
		Headers("DAY", "TIME", "MODULES", "ROOMS", "STAFF").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.NewStyle().Bold(true).Foreground(style.Iris).Padding(0, 1)
			}
			return r.NewStyle().Padding(0, 1)
		}).
		String()
}

func statusIcon(s domain.ResolutionStatus) (string, lipgloss.Color) {
	switch s {
	case domain.StatusCacheHit:
		return style.Check, style.Green
	case domain.StatusCacheMiss:
		return style.Tilde, style.Iris
	case domain.StatusNotFound:
		return style.Warning, style.Yellow
	default:
		return style.Cross, style.Red
	}
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
