// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/kpi-dashboard/backend/internal/domain/entity"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// ObjectiveRepository defines the interface for objective persistence operations.
type ObjectiveRepository interface {
	// Create inserts a new objective.
	Create(ctx context.Context, objective *entity.Objective) error

	// CreateMany inserts all objectives in one transaction.
	CreateMany(ctx context.Context, objectives []*entity.Objective) error

	// FindByID retrieves an objective by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Objective, error)

	// FindAll retrieves every objective ordered by department order.
	FindAll(ctx context.Context) ([]*entity.Objective, error)

	// FindByDepartment retrieves the objectives of a department ordered by order_index.
	FindByDepartment(ctx context.Context, department valueobject.Department) ([]*entity.Objective, error)

	// NextOrderIndex returns the order index a new objective of the department should get.
	NextOrderIndex(ctx context.Context, department valueobject.Department) (int, error)

	// Update saves changes to an existing objective.
	Update(ctx context.Context, objective *entity.Objective) error

	// Delete removes an objective and its monthly values.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteMany removes the given objectives and their values, returning how many were deleted.
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)

	// Reorder sets order_index to each ID's position in orderedIDs.
	Reorder(ctx context.Context, department valueobject.Department, orderedIDs []uuid.UUID) error

	// DeleteAll removes every objective and value.
	DeleteAll(ctx context.Context) error
}

// ValueRepository defines the interface for monthly value persistence operations.
type ValueRepository interface {
	// FindByObjectiveID retrieves the values of one objective ordered by year and month.
	FindByObjectiveID(ctx context.Context, objectiveID uuid.UUID) ([]entity.MonthlyValue, error)

	// FindByObjectiveIDs retrieves the values of several objectives keyed by objective ID.
	FindByObjectiveIDs(ctx context.Context, objectiveIDs []uuid.UUID) (map[uuid.UUID][]entity.MonthlyValue, error)

	// Upsert inserts the value or replaces the one stored for the same month and year.
	Upsert(ctx context.Context, value *entity.MonthlyValue) error

	// Delete removes the value of one month.
	Delete(ctx context.Context, objectiveID uuid.UUID, year, month int) error
}
