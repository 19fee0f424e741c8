// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
	"github.com/kpi-dashboard/backend/internal/integration/persistence/model"
)

// listOrder is the display order of objectives inside a department.
const listOrder = "order_index ASC, created_at DESC"

// objectiveRepository implements the adapter.ObjectiveRepository interface.
type objectiveRepository struct {
	db *gorm.DB
}

// NewObjectiveRepository creates a new objective repository instance.
func NewObjectiveRepository(db *gorm.DB) adapter.ObjectiveRepository {
	return &objectiveRepository{
		db: db,
	}
}

// Create inserts a new objective.
func (r *objectiveRepository) Create(ctx context.Context, objective *entity.Objective) error {
	return r.db.WithContext(ctx).Create(model.ObjectiveFromEntity(objective)).Error
}

// CreateMany inserts all objectives in one transaction.
func (r *objectiveRepository) CreateMany(ctx context.Context, objectives []*entity.Objective) error {
	if len(objectives) == 0 {
		return nil
	}
	models := make([]*model.ObjectiveModel, len(objectives))
	for i, o := range objectives {
		models[i] = model.ObjectiveFromEntity(o)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&models).Error
	})
}

// FindByID retrieves an objective by its ID.
func (r *objectiveRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Objective, error) {
	var objectiveModel model.ObjectiveModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&objectiveModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrObjectiveNotFound
		}
		return nil, result.Error
	}
	return objectiveModel.ToEntity(), nil
}

// FindAll retrieves every objective ordered by department order.
func (r *objectiveRepository) FindAll(ctx context.Context) ([]*entity.Objective, error) {
	var models []model.ObjectiveModel
	if err := r.db.WithContext(ctx).Order("department ASC, " + listOrder).Find(&models).Error; err != nil {
		return nil, err
	}
	return toObjectives(models), nil
}

// FindByDepartment retrieves the objectives of a department ordered by order_index.
func (r *objectiveRepository) FindByDepartment(ctx context.Context, department valueobject.Department) ([]*entity.Objective, error) {
	var models []model.ObjectiveModel
	result := r.db.WithContext(ctx).
		Where("department = ?", string(department)).
		Order(listOrder).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toObjectives(models), nil
}

// NextOrderIndex returns one past the highest order_index of the department.
func (r *objectiveRepository) NextOrderIndex(ctx context.Context, department valueobject.Department) (int, error) {
	var maxIndex sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&model.ObjectiveModel{}).
		Where("department = ?", string(department)).
		Select("MAX(order_index)").
		Row().
		Scan(&maxIndex)
	if err != nil {
		return 0, err
	}
	if !maxIndex.Valid {
		return 0, nil
	}
	return int(maxIndex.Int64) + 1, nil
}

// Update saves changes to an existing objective.
func (r *objectiveRepository) Update(ctx context.Context, objective *entity.Objective) error {
	result := r.db.WithContext(ctx).
		Model(&model.ObjectiveModel{ID: objective.ID}).
		Select("*").
		Omit("id", "created_at", "Values").
		Updates(model.ObjectiveFromEntity(objective))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrObjectiveNotFound
	}
	return nil
}

// Delete removes an objective and its monthly values. Values are removed
// explicitly because SQLite only cascades with foreign keys enabled.
func (r *objectiveRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("objective_id = ?", id).Delete(&model.ObjectiveValueModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete values: %w", err)
		}
		result := tx.Where("id = ?", id).Delete(&model.ObjectiveModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrObjectiveNotFound
		}
		return nil
	})
}

// DeleteMany removes the given objectives and their values.
func (r *objectiveRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("objective_id IN ?", ids).Delete(&model.ObjectiveValueModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete values: %w", err)
		}
		result := tx.Where("id IN ?", ids).Delete(&model.ObjectiveModel{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// Reorder sets order_index to each ID's position in orderedIDs. Either every
// objective is moved or none is.
func (r *objectiveRepository) Reorder(ctx context.Context, department valueobject.Department, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			result := tx.Model(&model.ObjectiveModel{}).
				Where("id = ? AND department = ?", id, string(department)).
				Update("order_index", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerror.ErrReorderMismatch
			}
		}
		return nil
	})
}

// DeleteAll removes every objective and value.
func (r *objectiveRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ObjectiveValueModel{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ObjectiveModel{}).Error
	})
}

func toObjectives(models []model.ObjectiveModel) []*entity.Objective {
	objectives := make([]*entity.Objective, len(models))
	for i := range models {
		objectives[i] = models[i].ToEntity()
	}
	return objectives
}
