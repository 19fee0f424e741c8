package steps

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kpi-dashboard/backend/internal/domain/entity"
	"github.com/kpi-dashboard/backend/internal/integration/persistence/model"
)

// theFollowingObjectivesExist inserts one objective per table row. Required
// columns are department, name, type, target, start and end; smart, format,
// reverse and order are optional.
func (t *testContext) theFollowingObjectivesExist(table *godog.Table) error {
	rows, err := tableRecords(table)
	if err != nil {
		return err
	}

	now := t.timeMock.Now().UTC()
	for i, row := range rows {
		target, err := strconv.ParseFloat(row["target"], 64)
		if err != nil {
			return fmt.Errorf("row %d: invalid target '%s'", i+1, row["target"])
		}
		start, err := time.Parse(entity.DateLayout, row["start"])
		if err != nil {
			return fmt.Errorf("row %d: invalid start '%s'", i+1, row["start"])
		}
		end, err := time.Parse(entity.DateLayout, row["end"])
		if err != nil {
			return fmt.Errorf("row %d: invalid end '%s'", i+1, row["end"])
		}

		order := i
		if raw, ok := row["order"]; ok && raw != "" {
			if order, err = strconv.Atoi(raw); err != nil {
				return fmt.Errorf("row %d: invalid order '%s'", i+1, raw)
			}
		}

		smart := row["smart"]
		if smart == "" {
			smart = row["name"]
		}

		objectiveModel := &model.ObjectiveModel{
			ID:             uuid.New(),
			Department:     row["department"],
			ObjectiveName:  row["name"],
			ObjectiveSmart: smart,
			TypeObjective:  row["type"],
			TargetNumeric:  target,
			NumberFormat:   row["format"],
			StartDate:      start,
			EndDate:        end,
			OrderIndex:     order,
			ReverseLogic:   row["reverse"] == "true",
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if objectiveModel.NumberFormat == "" {
			objectiveModel.NumberFormat = "number"
		}

		if err := t.db.DbConn.Create(objectiveModel).Error; err != nil {
			return err
		}
		t.objectiveIDs[row["name"]] = objectiveModel.ID
	}
	return nil
}

func (t *testContext) theObjectiveHasTheValues(name string, table *godog.Table) error {
	objectiveID, ok := t.objectiveIDs[name]
	if !ok {
		return fmt.Errorf("no objective named '%s' was created in this scenario", name)
	}

	rows, err := tableRecords(table)
	if err != nil {
		return err
	}

	now := t.timeMock.Now().UTC()
	for i, row := range rows {
		month, errMonth := strconv.Atoi(row["month"])
		year, errYear := strconv.Atoi(row["year"])
		value, errValue := strconv.ParseFloat(row["value"], 64)
		if err := errors.Join(errMonth, errYear, errValue); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}

		valueModel := &model.ObjectiveValueModel{
			ObjectiveID: objectiveID,
			Month:       month,
			Year:        year,
			Value:       value,
			UpdatedAt:   now,
		}
		if err := t.db.DbConn.Create(valueModel).Error; err != nil {
			return err
		}
	}
	return nil
}

func tableRecords(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("table needs a header row and at least one record")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	records := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		record := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			record[header[i]] = cell.Value
		}
		records = append(records, record)
	}
	return records, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	count, err := t.db.Count(table)
	if err != nil {
		return err
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	raw, err := t.replacePlaceholders(content.Content)
	if err != nil {
		return err
	}

	var criteria map[string]any
	if err := json.Unmarshal([]byte(raw), &criteria); err != nil {
		return err
	}

	tableModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(tableModel).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}
