package objective

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kpi-dashboard/backend/internal/application/adapter/mocks"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/progress"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

var now = time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func validFields(department valueobject.Department) Fields {
	return Fields{
		Department:       department,
		SmartDescription: "Raggiungere fatturato annuale di 500.000 euro",
		Type:             valueobject.ObjectiveTypeCumulative,
		Target:           500000,
		NumberFormat:     valueobject.NumberFormatCurrency,
		StartDate:        date(2025, time.January, 1),
		EndDate:          date(2025, time.December, 31),
	}
}

func codeOf(t *testing.T, err error) domainerror.ObjectiveErrorCode {
	t.Helper()
	var objErr *domainerror.ObjectiveError
	require.True(t, errors.As(err, &objErr), "expected ObjectiveError, got %v", err)
	return objErr.Code
}

func newClock(ctrl *gomock.Controller) *mocks.MockClock {
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()
	return clock
}

func TestCreateObjectiveUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		input    func() CreateObjectiveInput
		setup    func(repo *mocks.MockObjectiveRepository, cache *mocks.MockAnalyticsCache)
		wantCode domainerror.ObjectiveErrorCode
		validate func(t *testing.T, out *CreateObjectiveOutput)
	}{
		{
			name: "appends to the end of the department",
			input: func() CreateObjectiveInput {
				return CreateObjectiveInput{Fields: validFields(valueobject.DepartmentSales)}
			},
			setup: func(repo *mocks.MockObjectiveRepository, cache *mocks.MockAnalyticsCache) {
				repo.EXPECT().NextOrderIndex(gomock.Any(), valueobject.DepartmentSales).Return(4, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, out *CreateObjectiveOutput) {
				assert.Equal(t, 4, out.Objective.OrderIndex)
				assert.NotEqual(t, uuid.Nil, out.Objective.ID)
				assert.Equal(t, now, out.Objective.CreatedAt)
			},
		},
		{
			name: "explicit order index skips lookup and cache errors are ignored",
			input: func() CreateObjectiveInput {
				idx := 0
				return CreateObjectiveInput{Fields: validFields(valueobject.DepartmentSales), OrderIndex: &idx}
			},
			setup: func(repo *mocks.MockObjectiveRepository, cache *mocks.MockAnalyticsCache) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))
			},
			validate: func(t *testing.T, out *CreateObjectiveOutput) {
				assert.Equal(t, 0, out.Objective.OrderIndex)
			},
		},
		{
			name: "unknown department",
			input: func() CreateObjectiveInput {
				return CreateObjectiveInput{Fields: validFields("Legal")}
			},
			wantCode: domainerror.ErrCodeInvalidDepartment,
		},
		{
			name: "unknown type",
			input: func() CreateObjectiveInput {
				f := validFields(valueobject.DepartmentSales)
				f.Type = "Trimestrale"
				return CreateObjectiveInput{Fields: f}
			},
			wantCode: domainerror.ErrCodeInvalidObjectiveType,
		},
		{
			name: "missing smart description",
			input: func() CreateObjectiveInput {
				f := validFields(valueobject.DepartmentSales)
				f.SmartDescription = "  "
				return CreateObjectiveInput{Fields: f}
			},
			wantCode: domainerror.ErrCodeMissingObjectiveField,
		},
		{
			name: "start after end",
			input: func() CreateObjectiveInput {
				f := validFields(valueobject.DepartmentSales)
				f.StartDate = date(2026, time.January, 1)
				return CreateObjectiveInput{Fields: f}
			},
			wantCode: domainerror.ErrCodeInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockObjectiveRepository(ctrl)
			cache := mocks.NewMockAnalyticsCache(ctrl)
			if tt.setup != nil {
				tt.setup(repo, cache)
			}

			uc := NewCreateObjectiveUseCase(repo, cache, newClock(ctrl))
			out, err := uc.Execute(ctx, tt.input())

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, codeOf(t, err))
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			tt.validate(t, out)
		})
	}
}

func TestBulkCreateObjectivesUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("continues order per department", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockObjectiveRepository(ctrl)
		cache := mocks.NewMockAnalyticsCache(ctrl)

		repo.EXPECT().NextOrderIndex(gomock.Any(), valueobject.DepartmentSales).Return(2, nil).Times(1)
		repo.EXPECT().NextOrderIndex(gomock.Any(), valueobject.DepartmentAgency).Return(0, nil).Times(1)
		repo.EXPECT().CreateMany(gomock.Any(), gomock.Len(3)).Return(nil)
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		uc := NewBulkCreateObjectivesUseCase(repo, cache, newClock(ctrl))
		out, err := uc.Execute(ctx, BulkCreateObjectivesInput{Objectives: []Fields{
			validFields(valueobject.DepartmentSales),
			validFields(valueobject.DepartmentAgency),
			validFields(valueobject.DepartmentSales),
		}})

		require.NoError(t, err)
		assert.Equal(t, []int{2, 0, 3}, []int{out.Objectives[0].OrderIndex, out.Objectives[1].OrderIndex, out.Objectives[2].OrderIndex})
	})

	t.Run("one invalid objective rejects the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockObjectiveRepository(ctrl)

		bad := validFields(valueobject.DepartmentSales)
		bad.NumberFormat = "roman"

		uc := NewBulkCreateObjectivesUseCase(repo, mocks.NewMockAnalyticsCache(ctrl), newClock(ctrl))
		_, err := uc.Execute(ctx, BulkCreateObjectivesInput{Objectives: []Fields{validFields(valueobject.DepartmentSales), bad}})

		assert.Equal(t, domainerror.ErrCodeInvalidNumberFormat, codeOf(t, err))
		assert.Contains(t, err.Error(), "objective 2")
	})

	t.Run("empty batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewBulkCreateObjectivesUseCase(mocks.NewMockObjectiveRepository(ctrl), nil, newClock(ctrl))

		_, err := uc.Execute(ctx, BulkCreateObjectivesInput{})

		assert.Equal(t, domainerror.ErrCodeMissingObjectiveField, codeOf(t, err))
	})
}

func TestUpdateObjectiveUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	stored := func() *entity.Objective {
		f := validFields(valueobject.DepartmentSales)
		o := newObjective(f, fixedClock{})
		o.ID = id
		return o
	}

	t.Run("empty patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewUpdateObjectiveUseCase(mocks.NewMockObjectiveRepository(ctrl), nil, newClock(ctrl))

		_, err := uc.Execute(ctx, UpdateObjectiveInput{ID: id})

		assert.Equal(t, domainerror.ErrCodeNoFieldsToUpdate, codeOf(t, err))
		assert.ErrorIs(t, err, domainerror.ErrNoFieldsToUpdate)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockObjectiveRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, domainerror.ErrObjectiveNotFound)

		target := 10.0
		uc := NewUpdateObjectiveUseCase(repo, nil, newClock(ctrl))
		_, err := uc.Execute(ctx, UpdateObjectiveInput{ID: id, Target: &target})

		assert.Equal(t, domainerror.ErrCodeObjectiveNotFound, codeOf(t, err))
	})

	t.Run("patched end date before start is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockObjectiveRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(stored(), nil)

		end := date(2024, time.June, 30)
		uc := NewUpdateObjectiveUseCase(repo, nil, newClock(ctrl))
		_, err := uc.Execute(ctx, UpdateObjectiveInput{ID: id, EndDate: &end})

		assert.Equal(t, domainerror.ErrCodeInvalidDateRange, codeOf(t, err))
	})

	t.Run("applies only given fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockObjectiveRepository(ctrl)
		cache := mocks.NewMockAnalyticsCache(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(stored(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *entity.Objective) error {
			assert.True(t, o.ReverseLogic)
			assert.Equal(t, 500000.0, o.Target)
			return nil
		})
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		reverse := true
		uc := NewUpdateObjectiveUseCase(repo, cache, newClock(ctrl))
		out, err := uc.Execute(ctx, UpdateObjectiveInput{ID: id, ReverseLogic: &reverse})

		require.NoError(t, err)
		assert.Equal(t, now, out.Objective.UpdatedAt)
	})
}

func TestDeleteUseCases(t *testing.T) {
	ctx := context.Background()

	t.Run("delete missing objective", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockObjectiveRepository(ctrl)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(domainerror.ErrObjectiveNotFound)

		err := NewDeleteObjectiveUseCase(repo, nil).Execute(ctx, DeleteObjectiveInput{ID: uuid.New()})

		assert.Equal(t, domainerror.ErrCodeObjectiveNotFound, codeOf(t, err))
	})

	t.Run("bulk delete requires ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		_, err := NewBulkDeleteObjectivesUseCase(mocks.NewMockObjectiveRepository(ctrl), nil).Execute(ctx, BulkDeleteObjectivesInput{})

		assert.Equal(t, domainerror.ErrCodeEmptyObjectiveIDs, codeOf(t, err))
	})

	t.Run("bulk delete reports the deleted count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockObjectiveRepository(ctrl)
		cache := mocks.NewMockAnalyticsCache(ctrl)
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		repo.EXPECT().DeleteMany(gomock.Any(), ids).Return(int64(1), nil)
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		out, err := NewBulkDeleteObjectivesUseCase(repo, cache).Execute(ctx, BulkDeleteObjectivesInput{IDs: ids})

		require.NoError(t, err)
		assert.Equal(t, int64(1), out.DeletedCount)
	})
}

func TestReorderObjectivesUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	t.Run("duplicates are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewReorderObjectivesUseCase(mocks.NewMockObjectiveRepository(ctrl), nil)

		err := uc.Execute(ctx, ReorderObjectivesInput{Department: valueobject.DepartmentSales, OrderedIDs: []uuid.UUID{a, a}})

		assert.Equal(t, domainerror.ErrCodeReorderMismatch, codeOf(t, err))
	})

	t.Run("foreign objective is a mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockObjectiveRepository(ctrl)
		repo.EXPECT().Reorder(gomock.Any(), valueobject.DepartmentSales, []uuid.UUID{b, a}).Return(domainerror.ErrReorderMismatch)

		err := NewReorderObjectivesUseCase(repo, nil).Execute(ctx, ReorderObjectivesInput{Department: valueobject.DepartmentSales, OrderedIDs: []uuid.UUID{b, a}})

		assert.Equal(t, domainerror.ErrCodeReorderMismatch, codeOf(t, err))
	})
}

func TestListDepartmentObjectivesUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	obj := newObjective(validFields(valueobject.DepartmentFinancial), fixedClock{})
	obj.Type = valueobject.ObjectiveTypeCumulative
	obj.Target = 100
	values := []entity.MonthlyValue{
		{ObjectiveID: obj.ID, Month: 1, Year: 2025, Value: 10},
		{ObjectiveID: obj.ID, Month: 2, Year: 2025, Value: 20},
		{ObjectiveID: obj.ID, Month: 6, Year: 2025, Value: 30},
	}

	setup := func(t *testing.T) *ListDepartmentObjectivesUseCase {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockObjectiveRepository(ctrl)
		valueRepo := mocks.NewMockValueRepository(ctrl)
		repo.EXPECT().FindByDepartment(gomock.Any(), valueobject.DepartmentFinancial).Return([]*entity.Objective{obj}, nil)
		valueRepo.EXPECT().FindByObjectiveIDs(gomock.Any(), gomock.Any()).Return(map[uuid.UUID][]entity.MonthlyValue{obj.ID: values}, nil)
		return NewListDepartmentObjectivesUseCase(repo, valueRepo, newClock(ctrl))
	}

	t.Run("year to date without a period", func(t *testing.T) {
		out, err := setup(t).Execute(ctx, ListDepartmentObjectivesInput{Department: valueobject.DepartmentFinancial})

		require.NoError(t, err)
		require.Len(t, out.Objectives, 1)
		assert.Equal(t, 30.0, out.Objectives[0].Progress.CurrentValue)
		assert.Nil(t, out.Objectives[0].TimeElapsedPercent)
		assert.Empty(t, out.PeriodLabel)
	})

	t.Run("period restricts values", func(t *testing.T) {
		period := progress.Period{StartMonth: 1, EndMonth: 6, Year: 2025}

		out, err := setup(t).Execute(ctx, ListDepartmentObjectivesInput{Department: valueobject.DepartmentFinancial, Period: &period})

		require.NoError(t, err)
		view := out.Objectives[0]
		assert.Equal(t, 60.0, view.Progress.CurrentValue)
		assert.Len(t, view.Values, 3)
		require.NotNil(t, view.TimeElapsedPercent)
		assert.Equal(t, "Gennaio - Giugno 2025", out.PeriodLabel)
	})

	t.Run("invalid period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewListDepartmentObjectivesUseCase(mocks.NewMockObjectiveRepository(ctrl), mocks.NewMockValueRepository(ctrl), newClock(ctrl))
		period := progress.Period{StartMonth: 0, EndMonth: 6, Year: 2025}

		_, err := uc.Execute(ctx, ListDepartmentObjectivesInput{Department: valueobject.DepartmentFinancial, Period: &period})

		assert.Equal(t, domainerror.ErrCodeInvalidPeriod, codeOf(t, err))
	})
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return now }
