package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/chronos/internal/app"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type stubResolver struct {
	results map[string]domain.Resolution
}

func (s stubResolver) Resolve(_ context.Context, groupID string) domain.Resolution {
	return s.results[groupID]
}

func providerFor(a *app.App, log *mocks.MockLogger) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: a, Logger: log}, func() {}, nil
	}
}

// TestRun_Version verifies that the version command succeeds without resolving anything.
func TestRun_Version(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		panic("should not be called")
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "chronos version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"groups"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExitCodes verifies the mapping of resolution statuses to exit codes.
func TestRun_ExitCodes(t *testing.T) {
	record := &domain.CachedTimeTable{}
	resolver := stubResolver{results: map[string]domain.Resolution{
		"hit":     domain.Hit("hit", record),
		"missing": domain.NotFound("missing"),
		"broken":  domain.Failed("broken"),
	}}

	tests := []struct {
		name     string
		args     []string
		wantExit int
	}{
		{name: "all resolved", args: []string{"timetable", "--json", "hit"}, wantExit: 0},
		{name: "not found", args: []string{"timetable", "--json", "hit", "missing"}, wantExit: 2},
		{name: "error", args: []string{"timetable", "--json", "missing", "broken"}, wantExit: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)
			source := mocks.NewMockTimetableSource(ctrl)

			a := app.New(resolver, source, 2)
			exitCode := run(context.Background(), tt.args, new(bytes.Buffer), new(bytes.Buffer), providerFor(a, log))
			assert.Equal(t, tt.wantExit, exitCode)
		})
	}
}

// TestRun_UnknownCommand verifies that command errors are logged once components exist.
func TestRun_UnknownCommand(t *testing.T) {
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"nope"}, new(bytes.Buffer), stderr, func(context.Context) (*app.Components, func(), error) {
		panic("should not be called")
	})

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: unknown command")
}
