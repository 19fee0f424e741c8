// Package main copies the local SQLite database into the remote Postgres replica.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kpi-dashboard/backend/config"
	"github.com/kpi-dashboard/backend/internal/infra/db"
	"github.com/kpi-dashboard/backend/internal/integration/persistence/model"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	source := flag.String("source", cfg.Database.Path, "path of the SQLite database to read")
	dest := flag.String("dest", cfg.Database.URL, "Postgres DSN to write to")
	batchSize := flag.Int("batch", 100, "rows per insert batch")
	dryRun := flag.Bool("dry-run", false, "count rows without writing")
	flag.Parse()

	if err := run(*source, *dest, *batchSize, *dryRun, cfg.Database); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(source, dest string, batchSize int, dryRun bool, base config.DatabaseConfig) error {
	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("source database not found: %w", err)
	}

	srcCfg := base
	srcCfg.Driver = config.DriverSQLite
	srcCfg.Path = source
	src, err := db.Open(&srcCfg)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer src.Close()

	if dryRun {
		counts, err := countRows(src.DB())
		if err != nil {
			return err
		}
		slog.Info("dry run, nothing written", "objectives", counts.objectives, "values", counts.values)
		return nil
	}

	dstCfg := base
	dstCfg.Driver = config.DriverPostgres
	dstCfg.URL = dest
	dst, err := db.Open(&dstCfg)
	if err != nil {
		return fmt.Errorf("failed to open destination: %w", err)
	}
	defer dst.Close()

	if err := dst.AutoMigrate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	counts, err := copyAll(ctx, src.DB(), dst.DB(), batchSize)
	if err != nil {
		return err
	}

	slog.Info("migration completed", "objectives", counts.objectives, "values", counts.values)
	return nil
}

type rowCounts struct {
	objectives int64
	values     int64
}

func countRows(gdb *gorm.DB) (rowCounts, error) {
	var counts rowCounts
	if err := gdb.Model(&model.ObjectiveModel{}).Count(&counts.objectives).Error; err != nil {
		return counts, fmt.Errorf("failed to count objectives: %w", err)
	}
	if err := gdb.Model(&model.ObjectiveValueModel{}).Count(&counts.values).Error; err != nil {
		return counts, fmt.Errorf("failed to count values: %w", err)
	}
	return counts, nil
}

// copyAll copies objectives before their values so foreign keys hold. Rows
// already present in the destination are overwritten.
func copyAll(ctx context.Context, src, dst *gorm.DB, batchSize int) (rowCounts, error) {
	var counts rowCounts

	var objectives []model.ObjectiveModel
	if err := src.WithContext(ctx).Order("department, order_index").Find(&objectives).Error; err != nil {
		return counts, fmt.Errorf("failed to read objectives: %w", err)
	}

	var values []model.ObjectiveValueModel
	if err := src.WithContext(ctx).Order("objective_id, year, month").Find(&values).Error; err != nil {
		return counts, fmt.Errorf("failed to read values: %w", err)
	}
	// Value IDs are local sequence numbers; the destination assigns its own.
	for i := range values {
		values[i].ID = 0
	}

	err := dst.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(objectives) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(&objectives, batchSize).Error; err != nil {
				return fmt.Errorf("failed to write objectives: %w", err)
			}
		}
		if len(values) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "objective_id"}, {Name: "month"}, {Name: "year"}},
				UpdateAll: true,
			}).CreateInBatches(&values, batchSize).Error; err != nil {
				return fmt.Errorf("failed to write values: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return counts, err
	}

	counts.objectives = int64(len(objectives))
	counts.values = int64(len(values))
	return counts, nil
}
