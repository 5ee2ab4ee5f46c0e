package resolver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports/mocks"
	"go.trai.ch/chronos/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

const groupID = "4242"

var now = time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store    *mocks.MockTimetableStore
	source   *mocks.MockTimetableSource
	parser   *mocks.MockTimetableParser
	logger   *mocks.MockLogger
	resolver *resolver.Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		store:  mocks.NewMockTimetableStore(ctrl),
		source: mocks.NewMockTimetableSource(ctrl),
		parser: mocks.NewMockTimetableParser(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	f.resolver = resolver.New(f.store, f.source, f.parser, f.logger, clockwork.NewFakeClockAt(now), 10*time.Minute)
	return f
}

func sampleTimeTable() *domain.TimeTable {
	return &domain.TimeTable{
		GroupName: "INF3-A",
		Weeks:     []time.Time{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestResolve_CacheHitSkipsUpstream(t *testing.T) {
	f := newFixture(t)
	cached := &domain.CachedTimeTable{CacheDate: now, TimeTable: *sampleTimeTable()}

	f.store.EXPECT().Get(gomock.Any(), groupID).Return(cached, nil)
	// No source, parser or Put expectations: any call fails the test.

	res := f.resolver.Resolve(context.Background(), groupID)

	assert.Equal(t, domain.StatusCacheHit, res.Status)
	assert.Same(t, cached, res.Record)
	assert.Equal(t, groupID, res.GroupID)
}

func TestResolve_CacheMiss(t *testing.T) {
	f := newFixture(t)
	tt := sampleTimeTable()
	stored := &domain.CachedTimeTable{CacheDate: now, TimeTable: *tt}

	gomock.InOrder(
		f.store.EXPECT().Get(gomock.Any(), groupID).Return(nil, nil),
		f.source.EXPECT().FetchTimetable(gomock.Any(), groupID).Return("<timetable/>", nil),
		f.parser.EXPECT().Parse("<timetable/>").Return(tt, nil),
		f.store.EXPECT().Put(gomock.Any(), groupID, tt, 10*time.Minute).Return(stored, nil),
	)

	res := f.resolver.Resolve(context.Background(), groupID)

	assert.Equal(t, domain.StatusCacheMiss, res.Status)
	assert.Same(t, stored, res.Record)
	assert.True(t, res.Found())
}

func TestResolve_NotFoundIgnoresCacheState(t *testing.T) {
	notFound := &domain.FetchError{Kind: domain.KindNotFound, GroupID: groupID, StatusCode: 404}

	tests := []struct {
		name   string
		getErr error
	}{
		{name: "empty cache"},
		{name: "store outage", getErr: domain.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.store.EXPECT().Get(gomock.Any(), groupID).Return(nil, tt.getErr)
			f.source.EXPECT().FetchTimetable(gomock.Any(), groupID).Return("", notFound)
			f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

			res := f.resolver.Resolve(context.Background(), groupID)

			assert.Equal(t, domain.StatusNotFound, res.Status)
			assert.Nil(t, res.Record)
		})
	}
}

func TestResolve_FetchFailures(t *testing.T) {
	kinds := []domain.FetchErrorKind{
		domain.KindNetworkUnavailable,
		domain.KindTimeout,
		domain.KindTooManyRedirects,
		domain.KindUpstreamHTTP,
	}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			f := newFixture(t)
			f.store.EXPECT().Get(gomock.Any(), groupID).Return(nil, nil)
			f.source.EXPECT().FetchTimetable(gomock.Any(), groupID).Return("", &domain.FetchError{Kind: kind})
			f.logger.EXPECT().Error(gomock.Any())

			res := f.resolver.Resolve(context.Background(), groupID)

			assert.Equal(t, domain.StatusError, res.Status)
			assert.Nil(t, res.Record)
		})
	}
}

func TestResolve_BlankBody(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Get(gomock.Any(), groupID).Return(nil, nil)
	f.source.EXPECT().FetchTimetable(gomock.Any(), groupID).Return(" \n\t", nil)
	f.logger.EXPECT().Error(gomock.Any())

	res := f.resolver.Resolve(context.Background(), groupID)

	assert.Equal(t, domain.StatusError, res.Status)
	assert.Nil(t, res.Record)
}

func TestResolve_ParseFailure(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Get(gomock.Any(), groupID).Return(nil, nil)
	f.source.EXPECT().FetchTimetable(gomock.Any(), groupID).Return("<html/>", nil)
	f.parser.EXPECT().Parse("<html/>").Return(nil, domain.ErrExportNoWeeks)

	var logged error
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err })

	res := f.resolver.Resolve(context.Background(), groupID)

	assert.Equal(t, domain.StatusError, res.Status)
	assert.Nil(t, res.Record)
	require.Error(t, logged)
	assert.Contains(t, logged.Error(), domain.ErrExportNoWeeks.Error())
}

func TestResolve_StoreOutageStillServes(t *testing.T) {
	f := newFixture(t)
	tt := sampleTimeTable()

	f.store.EXPECT().Get(gomock.Any(), groupID).Return(nil, domain.ErrStoreUnavailable)
	f.source.EXPECT().FetchTimetable(gomock.Any(), groupID).Return("<timetable/>", nil)
	f.parser.EXPECT().Parse("<timetable/>").Return(tt, nil)
	f.store.EXPECT().Put(gomock.Any(), groupID, tt, gomock.Any()).Return(nil, domain.ErrStoreUnavailable)
	f.logger.EXPECT().Warn(gomock.Any()).Times(2)

	res := f.resolver.Resolve(context.Background(), groupID)

	assert.Equal(t, domain.StatusCacheMiss, res.Status)
	require.NotNil(t, res.Record)
	assert.Equal(t, now, res.Record.CacheDate)
	assert.Equal(t, *tt, res.Record.TimeTable)
}

func TestResolve_PutReturnsNothing(t *testing.T) {
	f := newFixture(t)
	tt := sampleTimeTable()

	f.store.EXPECT().Get(gomock.Any(), groupID).Return(nil, nil)
	f.source.EXPECT().FetchTimetable(gomock.Any(), groupID).Return("<timetable/>", nil)
	f.parser.EXPECT().Parse(gomock.Any()).Return(tt, nil)
	f.store.EXPECT().Put(gomock.Any(), groupID, tt, gomock.Any()).Return(nil, nil)
	f.logger.EXPECT().Warn(gomock.Any())

	res := f.resolver.Resolve(context.Background(), groupID)

	assert.Equal(t, domain.StatusCacheMiss, res.Status)
	require.NotNil(t, res.Record)
	assert.Equal(t, now, res.Record.CacheDate)
}

func TestResolve_UntypedFetchError(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Get(gomock.Any(), groupID).Return(nil, nil)
	f.source.EXPECT().FetchTimetable(gomock.Any(), groupID).Return("", errors.New("boom"))
	f.logger.EXPECT().Error(gomock.Any())

	res := f.resolver.Resolve(context.Background(), groupID)
	assert.Equal(t, domain.StatusError, res.Status)
}

func TestNew_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTimetableStore(ctrl)
	source := mocks.NewMockTimetableSource(ctrl)
	parser := mocks.NewMockTimetableParser(ctrl)
	log := mocks.NewMockLogger(ctrl)
	tt := sampleTimeTable()

	store.EXPECT().Get(gomock.Any(), groupID).Return(nil, nil)
	source.EXPECT().FetchTimetable(gomock.Any(), groupID).Return("x", nil)
	parser.EXPECT().Parse("x").Return(tt, nil)
	store.EXPECT().Put(gomock.Any(), groupID, tt, domain.DefaultCacheTTL).
		Return(&domain.CachedTimeTable{TimeTable: *tt}, nil)

	res := resolver.New(store, source, parser, log, nil, 0).Resolve(context.Background(), groupID)
	assert.Equal(t, domain.StatusCacheMiss, res.Status)
}
