package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kpi-dashboard/backend/internal/application/adapter/mocks"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/progress"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
	"github.com/kpi-dashboard/backend/internal/integration/cache"
)

var now = time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC)

func salesObjective() *entity.Objective {
	return &entity.Objective{
		ID:               uuid.New(),
		Department:       valueobject.DepartmentSales,
		SmartDescription: "Nuovi clienti",
		Type:             valueobject.ObjectiveTypeCumulative,
		Target:           100,
		StartDate:        time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetDepartmentAnalyticsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockObjectiveRepository, values *mocks.MockValueRepository, cache *mocks.MockAnalyticsCache)
		validate func(t *testing.T, out *GetDepartmentAnalyticsOutput, err error)
	}{
		{
			name: "cache hit skips the database",
			setup: func(_ *mocks.MockObjectiveRepository, _ *mocks.MockValueRepository, cache *mocks.MockAnalyticsCache) {
				cache.EXPECT().Version(gomock.Any()).Return(int64(3), nil)
				cache.EXPECT().Get(gomock.Any(), valueobject.DepartmentSales, now, int64(3)).Return(&progress.DepartmentAnalytics{AsOf: now}, nil)
			},
			validate: func(t *testing.T, out *GetDepartmentAnalyticsOutput, err error) {
				require.NoError(t, err)
				assert.True(t, out.Cached)
			},
		},
		{
			name: "miss computes and stores",
			setup: func(repo *mocks.MockObjectiveRepository, values *mocks.MockValueRepository, cache *mocks.MockAnalyticsCache) {
				obj := salesObjective()
				cache.EXPECT().Version(gomock.Any()).Return(int64(3), nil)
				cache.EXPECT().Get(gomock.Any(), valueobject.DepartmentSales, now, int64(3)).Return(nil, nil)
				repo.EXPECT().FindByDepartment(gomock.Any(), valueobject.DepartmentSales).Return([]*entity.Objective{obj}, nil)
				values.EXPECT().FindByObjectiveIDs(gomock.Any(), []uuid.UUID{obj.ID}).Return(map[uuid.UUID][]entity.MonthlyValue{
					obj.ID: {{Month: 1, Year: 2025, Value: 30}, {Month: 2, Year: 2025, Value: 30}},
				}, nil)
				cache.EXPECT().Set(gomock.Any(), valueobject.DepartmentSales, now, int64(3), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, out *GetDepartmentAnalyticsOutput, err error) {
				require.NoError(t, err)
				assert.False(t, out.Cached)
				assert.Equal(t, 1, out.Analytics.Summary.TotalObjectives)
				assert.Equal(t, 60.0, out.Analytics.Objectives[0].Result.ProgressPercent)
				assert.Equal(t, progress.HealthOnTrack, out.Analytics.Objectives[0].HealthStatus)
			},
		},
		{
			name: "cache failures degrade to computing",
			setup: func(repo *mocks.MockObjectiveRepository, values *mocks.MockValueRepository, cache *mocks.MockAnalyticsCache) {
				cache.EXPECT().Version(gomock.Any()).Return(int64(0), nil)
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
				repo.EXPECT().FindByDepartment(gomock.Any(), gomock.Any()).Return(nil, nil)
				values.EXPECT().FindByObjectiveIDs(gomock.Any(), gomock.Any()).Return(map[uuid.UUID][]entity.MonthlyValue{}, nil)
				cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			validate: func(t *testing.T, out *GetDepartmentAnalyticsOutput, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, out.Analytics.Summary.TotalObjectives)
				assert.Nil(t, out.Analytics.Summary.TopPerformer)
			},
		},
		{
			name: "unreadable version bypasses the cache",
			setup: func(repo *mocks.MockObjectiveRepository, values *mocks.MockValueRepository, cache *mocks.MockAnalyticsCache) {
				cache.EXPECT().Version(gomock.Any()).Return(int64(0), errors.New("connection refused"))
				repo.EXPECT().FindByDepartment(gomock.Any(), gomock.Any()).Return(nil, nil)
				values.EXPECT().FindByObjectiveIDs(gomock.Any(), gomock.Any()).Return(map[uuid.UUID][]entity.MonthlyValue{}, nil)
			},
			validate: func(t *testing.T, out *GetDepartmentAnalyticsOutput, err error) {
				require.NoError(t, err)
				assert.False(t, out.Cached)
			},
		},
		{
			name: "corrupt objective surfaces as invalid configuration",
			setup: func(repo *mocks.MockObjectiveRepository, values *mocks.MockValueRepository, cache *mocks.MockAnalyticsCache) {
				broken := salesObjective()
				broken.Type = "Settimanale"
				cache.EXPECT().Version(gomock.Any()).Return(int64(0), nil)
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				repo.EXPECT().FindByDepartment(gomock.Any(), gomock.Any()).Return([]*entity.Objective{broken}, nil)
				values.EXPECT().FindByObjectiveIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, _ *GetDepartmentAnalyticsOutput, err error) {
				var objErr *domainerror.ObjectiveError
				require.True(t, errors.As(err, &objErr))
				assert.Equal(t, domainerror.ErrCodeInvalidConfiguration, objErr.Code)
				assert.ErrorIs(t, err, progress.ErrInvalidConfiguration)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockObjectiveRepository(ctrl)
			values := mocks.NewMockValueRepository(ctrl)
			cache := mocks.NewMockAnalyticsCache(ctrl)
			clock := mocks.NewMockClock(ctrl)
			clock.EXPECT().Now().Return(now).AnyTimes()
			tt.setup(repo, values, cache)

			out, err := NewGetDepartmentAnalyticsUseCase(repo, values, cache, clock).Execute(ctx, GetDepartmentAnalyticsInput{Department: valueobject.DepartmentSales})

			tt.validate(t, out, err)
		})
	}
}

func TestGetDepartmentAnalyticsUseCase_WriteDuringLoadIsNotServedStale(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	analyticsCache := cache.NewRedisAnalyticsCache(client, time.Minute)

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockObjectiveRepository(ctrl)
	values := mocks.NewMockValueRepository(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	obj := salesObjective()
	repo.EXPECT().FindByDepartment(gomock.Any(), valueobject.DepartmentSales).Return([]*entity.Objective{obj}, nil).Times(2)
	gomock.InOrder(
		values.EXPECT().FindByObjectiveIDs(gomock.Any(), []uuid.UUID{obj.ID}).DoAndReturn(
			func(ctx context.Context, _ []uuid.UUID) (map[uuid.UUID][]entity.MonthlyValue, error) {
				// an upsert commits after the rows were read
				require.NoError(t, analyticsCache.Invalidate(ctx))
				return map[uuid.UUID][]entity.MonthlyValue{obj.ID: {{Month: 1, Year: 2025, Value: 30}}}, nil
			}),
		values.EXPECT().FindByObjectiveIDs(gomock.Any(), []uuid.UUID{obj.ID}).Return(
			map[uuid.UUID][]entity.MonthlyValue{obj.ID: {{Month: 1, Year: 2025, Value: 90}}}, nil),
	)

	uc := NewGetDepartmentAnalyticsUseCase(repo, values, analyticsCache, clock)
	input := GetDepartmentAnalyticsInput{Department: valueobject.DepartmentSales}

	first, err := uc.Execute(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 30.0, first.Analytics.Objectives[0].Result.CurrentValue)

	second, err := uc.Execute(ctx, input)
	require.NoError(t, err)
	assert.False(t, second.Cached)
	assert.Equal(t, 90.0, second.Analytics.Objectives[0].Result.CurrentValue)

	third, err := uc.Execute(ctx, input)
	require.NoError(t, err)
	assert.True(t, third.Cached)
	assert.Equal(t, 90.0, third.Analytics.Objectives[0].Result.CurrentValue)
}

func TestGetDepartmentAnalyticsUseCase_InvalidDepartment(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := NewGetDepartmentAnalyticsUseCase(mocks.NewMockObjectiveRepository(ctrl), mocks.NewMockValueRepository(ctrl), nil, mocks.NewMockClock(ctrl))

	_, err := uc.Execute(context.Background(), GetDepartmentAnalyticsInput{Department: "HR"})

	assert.ErrorIs(t, err, domainerror.ErrInvalidDepartment)
}

func TestGetCompanyAnalyticsUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockObjectiveRepository(ctrl)
	values := mocks.NewMockValueRepository(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	obj := salesObjective()
	repo.EXPECT().FindByDepartment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d valueobject.Department) ([]*entity.Objective, error) {
			if d == valueobject.DepartmentSales {
				return []*entity.Objective{obj}, nil
			}
			return nil, nil
		}).Times(len(valueobject.Departments()))
	values.EXPECT().FindByObjectiveIDs(gomock.Any(), gomock.Any()).Return(map[uuid.UUID][]entity.MonthlyValue{}, nil).Times(len(valueobject.Departments()))

	uc := NewGetCompanyAnalyticsUseCase(NewGetDepartmentAnalyticsUseCase(repo, values, nil, clock))
	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, out.Departments, len(valueobject.Departments()))
	for i, d := range valueobject.Departments() {
		assert.Equal(t, d, out.Departments[i].Summary.Department)
	}
	assert.Equal(t, 1, out.Departments[1].Summary.TotalObjectives)
}
