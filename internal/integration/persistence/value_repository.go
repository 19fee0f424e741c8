package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/integration/persistence/model"
)

// valueRepository implements the adapter.ValueRepository interface.
type valueRepository struct {
	db *gorm.DB
}

// NewValueRepository creates a new monthly value repository instance.
func NewValueRepository(db *gorm.DB) adapter.ValueRepository {
	return &valueRepository{
		db: db,
	}
}

// FindByObjectiveID retrieves the values of one objective ordered by year and month.
func (r *valueRepository) FindByObjectiveID(ctx context.Context, objectiveID uuid.UUID) ([]entity.MonthlyValue, error) {
	var models []model.ObjectiveValueModel
	result := r.db.WithContext(ctx).
		Where("objective_id = ?", objectiveID).
		Order("year ASC, month ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	values := make([]entity.MonthlyValue, len(models))
	for i := range models {
		values[i] = models[i].ToEntity()
	}
	return values, nil
}

// FindByObjectiveIDs retrieves the values of several objectives in one query.
// Objectives without values are absent from the map.
func (r *valueRepository) FindByObjectiveIDs(ctx context.Context, objectiveIDs []uuid.UUID) (map[uuid.UUID][]entity.MonthlyValue, error) {
	byObjective := make(map[uuid.UUID][]entity.MonthlyValue, len(objectiveIDs))
	if len(objectiveIDs) == 0 {
		return byObjective, nil
	}

	var models []model.ObjectiveValueModel
	result := r.db.WithContext(ctx).
		Where("objective_id IN ?", objectiveIDs).
		Order("year ASC, month ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range models {
		v := models[i].ToEntity()
		byObjective[v.ObjectiveID] = append(byObjective[v.ObjectiveID], v)
	}
	return byObjective, nil
}

// Upsert inserts the value or replaces the one stored for the same month and year.
func (r *valueRepository) Upsert(ctx context.Context, value *entity.MonthlyValue) error {
	valueModel := model.ObjectiveValueFromEntity(value)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "objective_id"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(valueModel).Error
}

// Delete removes the value of one month.
func (r *valueRepository) Delete(ctx context.Context, objectiveID uuid.UUID, year, month int) error {
	result := r.db.WithContext(ctx).
		Where("objective_id = ? AND year = ? AND month = ?", objectiveID, year, month).
		Delete(&model.ObjectiveValueModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrValueNotFound
	}
	return nil
}
