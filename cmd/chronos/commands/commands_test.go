package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/chronos/cmd/chronos/commands"
	"go.trai.ch/chronos/internal/adapters/config"
	"go.trai.ch/chronos/internal/build"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
	"go.trai.ch/chronos/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	resolveAllFunc func(ctx context.Context, groupIDs []string) []domain.Resolution
	listGroupsFunc func(ctx context.Context) ([]domain.Group, error)
}

func (m *mockApp) ResolveAll(ctx context.Context, groupIDs []string) []domain.Resolution {
	if m.resolveAllFunc != nil {
		return m.resolveAllFunc(ctx, groupIDs)
	}
	return nil
}

func (m *mockApp) ListGroups(ctx context.Context) ([]domain.Group, error) {
	if m.listGroupsFunc != nil {
		return m.listGroupsFunc(ctx)
	}
	return []domain.Group{}, nil
}

func loaderFor(a commands.Application, log ports.Logger) commands.Loader {
	return func(context.Context) (commands.Application, ports.Logger, error) {
		return a, log, nil
	}
}

func sampleRecord() *domain.CachedTimeTable {
	start := time.Date(2024, 1, 8, 8, 30, 0, 0, time.UTC)
	return &domain.CachedTimeTable{
		CacheDate: time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC),
		TimeTable: domain.TimeTable{
			GroupName: "INF3-A",
			Weeks:     []time.Time{time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
			Courses: []domain.Course{{
				WeekDate:  time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
				StartDate: start,
				EndDate:   start.Add(90 * time.Minute),
				Color:     domain.DefaultColor,
				Groups:    []string{"INF3-A"},
				Modules:   []string{"Algorithms"},
				Staff:     []string{"Dupont"},
				Rooms:     []string{"B101"},
			}},
		},
	}
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(func(context.Context) (commands.Application, ports.Logger, error) {
		panic("should not be called")
	})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
	assert.Contains(t, buf.String(), build.Commit)
}

func TestCommands_Groups(t *testing.T) {
	t.Run("prints groups as JSON", func(t *testing.T) {
		a := &mockApp{
			listGroupsFunc: func(context.Context) ([]domain.Group, error) {
				return []domain.Group{{ID: "4242", Name: "INF3-A"}}, nil
			},
		}

		cli := commands.New(loaderFor(a, nil))
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, new(bytes.Buffer))
		cli.SetArgs([]string{"groups", "--json"})

		require.NoError(t, cli.Execute(context.Background()))

		var got []domain.Group
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []domain.Group{{ID: "4242", Name: "INF3-A"}}, got)
	})

	t.Run("prints a table", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		a := &mockApp{
			listGroupsFunc: func(context.Context) ([]domain.Group, error) {
				return []domain.Group{{ID: "4242", Name: "INF3-A"}}, nil
			},
		}

		cli := commands.New(loaderFor(a, nil))
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, new(bytes.Buffer))
		cli.SetArgs([]string{"groups"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "4242")
		assert.Contains(t, buf.String(), "INF3-A")
	})

	t.Run("reports an empty list when upstream fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		log := mocks.NewMockLogger(ctrl)
		log.EXPECT().Warn(gomock.Any()).Times(1)

		a := &mockApp{
			listGroupsFunc: func(context.Context) ([]domain.Group, error) {
				return nil, errors.New("unreachable")
			},
		}

		cli := commands.New(loaderFor(a, log))
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, new(bytes.Buffer))
		cli.SetArgs([]string{"groups", "--json"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.JSONEq(t, "[]", buf.String())
	})

	t.Run("returns loader errors", func(t *testing.T) {
		cli := commands.New(func(context.Context) (commands.Application, ports.Logger, error) {
			return nil, nil, errors.New("bad config")
		})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"groups"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad config")
	})
}

func TestCommands_Timetable(t *testing.T) {
	t.Run("passes group ids in order", func(t *testing.T) {
		var captured []string
		a := &mockApp{
			resolveAllFunc: func(_ context.Context, ids []string) []domain.Resolution {
				captured = ids
				out := make([]domain.Resolution, 0, len(ids))
				for _, id := range ids {
					out = append(out, domain.Hit(id, sampleRecord()))
				}
				return out
			},
		}

		cli := commands.New(loaderFor(a, nil))
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"timetable", "b", "a"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"b", "a"}, captured)
	})

	t.Run("prints resolutions as JSON", func(t *testing.T) {
		a := &mockApp{
			resolveAllFunc: func(context.Context, []string) []domain.Resolution {
				return []domain.Resolution{domain.Miss("4242", sampleRecord())}
			},
		}

		cli := commands.New(loaderFor(a, nil))
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, new(bytes.Buffer))
		cli.SetArgs([]string{"timetable", "--json", "4242"})

		require.NoError(t, cli.Execute(context.Background()))

		var got []struct {
			GroupID string                  `json:"group_id"`
			Status  string                  `json:"status"`
			Record  *domain.CachedTimeTable `json:"record"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "4242", got[0].GroupID)
		assert.Equal(t, "CACHE_MISS", got[0].Status)
		require.NotNil(t, got[0].Record)
		assert.Equal(t, "INF3-A", got[0].Record.TimeTable.GroupName)
	})

	t.Run("renders statuses and courses", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		a := &mockApp{
			resolveAllFunc: func(context.Context, []string) []domain.Resolution {
				return []domain.Resolution{
					domain.Hit("4242", sampleRecord()),
					domain.NotFound("9999"),
				}
			},
		}

		cli := commands.New(loaderFor(a, nil))
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, new(bytes.Buffer))
		cli.SetArgs([]string{"timetable", "4242", "9999"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrGroupNotFound)

		out := buf.String()
		assert.Contains(t, out, "CACHE_HIT")
		assert.Contains(t, out, "NOT_FOUND")
		assert.Contains(t, out, "Algorithms")
		assert.Contains(t, out, "08:30-10:00")
		assert.Contains(t, out, "1 course")
	})

	t.Run("maps statuses to errors", func(t *testing.T) {
		tests := []struct {
			name    string
			results []domain.Resolution
			wantErr error
		}{
			{
				name:    "all found",
				results: []domain.Resolution{domain.Hit("a", sampleRecord())},
			},
			{
				name:    "not found",
				results: []domain.Resolution{domain.Hit("a", sampleRecord()), domain.NotFound("b")},
				wantErr: domain.ErrGroupNotFound,
			},
			{
				name:    "error wins over not found",
				results: []domain.Resolution{domain.NotFound("a"), domain.Failed("b")},
				wantErr: domain.ErrResolutionFailed,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				a := &mockApp{
					resolveAllFunc: func(context.Context, []string) []domain.Resolution {
						return tt.results
					},
				}

				cli := commands.New(loaderFor(a, nil))
				cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
				cli.SetArgs([]string{"timetable", "--json", "a", "b"})

				err := cli.Execute(context.Background())
				if tt.wantErr == nil {
					require.NoError(t, err)
					return
				}
				require.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("shows usage when no groups provided", func(t *testing.T) {
		cli := commands.New(func(context.Context) (commands.Application, ports.Logger, error) {
			panic("should not be called")
		})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"timetable"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Overrides(t *testing.T) {
	var got config.Overrides
	cli := commands.New(func(ctx context.Context) (commands.Application, ports.Logger, error) {
		got = config.OverridesFrom(ctx)
		return &mockApp{}, nil, nil
	})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"--config", "/etc/chronos.yaml", "--log-json", "groups", "--json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "/etc/chronos.yaml", got.Path)
	assert.True(t, got.LogJSON)
}
