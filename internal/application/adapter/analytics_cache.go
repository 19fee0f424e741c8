package adapter

import (
	"context"
	"time"

	"github.com/kpi-dashboard/backend/internal/domain/progress"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// AnalyticsCache stores department analytics snapshots until the next write.
//
// Snapshots are addressed by the data version a reader observed before it
// loaded its inputs, so a write landing mid-load leaves the new snapshot
// under an already retired version.
type AnalyticsCache interface {
	// Version returns the current data version.
	Version(ctx context.Context) (int64, error)

	// Get returns the snapshot for department at day and version, or nil on a miss.
	Get(ctx context.Context, department valueobject.Department, day time.Time, version int64) (*progress.DepartmentAnalytics, error)

	// Set stores the snapshot for department at day and version.
	Set(ctx context.Context, department valueobject.Department, day time.Time, version int64, analytics *progress.DepartmentAnalytics) error

	// Invalidate makes every stored snapshot unreachable.
	Invalidate(ctx context.Context) error
}
