package analytics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kpi-dashboard/backend/internal/domain/progress"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// GetCompanyAnalyticsOutput holds the analytics of every department in
// display order.
type GetCompanyAnalyticsOutput struct {
	Departments []*progress.DepartmentAnalytics
}

// GetCompanyAnalyticsUseCase computes all departments concurrently.
type GetCompanyAnalyticsUseCase struct {
	department *GetDepartmentAnalyticsUseCase
}

// NewGetCompanyAnalyticsUseCase creates a new GetCompanyAnalyticsUseCase instance.
func NewGetCompanyAnalyticsUseCase(department *GetDepartmentAnalyticsUseCase) *GetCompanyAnalyticsUseCase {
	return &GetCompanyAnalyticsUseCase{department: department}
}

// Execute returns the first error any department produced.
func (uc *GetCompanyAnalyticsUseCase) Execute(ctx context.Context) (*GetCompanyAnalyticsOutput, error) {
	departments := valueobject.Departments()
	results := make([]*progress.DepartmentAnalytics, len(departments))

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range departments {
		g.Go(func() error {
			out, err := uc.department.Execute(gctx, GetDepartmentAnalyticsInput{Department: d})
			if err != nil {
				return err
			}
			results[i] = out.Analytics
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &GetCompanyAnalyticsOutput{Departments: results}, nil
}
