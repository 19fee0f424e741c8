// Package alert contains the scheduled objective expiry notifications.
package alert

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/progress"
)

// SendExpiryDigestInput represents the input for the expiry digest.
type SendExpiryDigestInput struct {
	Recipients []string
	WindowDays int
}

// SendExpiryDigestOutput represents the output of the expiry digest.
type SendExpiryDigestOutput struct {
	Items  []adapter.ExpiryDigestItem
	Queued int
}

// SendExpiryDigestUseCase queues a digest of objectives that are about to
// expire or expired without being reached.
type SendExpiryDigestUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	valueRepo     adapter.ValueRepository
	emailService  adapter.EmailService
	clock         adapter.Clock
}

// NewSendExpiryDigestUseCase creates a new SendExpiryDigestUseCase instance.
func NewSendExpiryDigestUseCase(
	objectiveRepo adapter.ObjectiveRepository,
	valueRepo adapter.ValueRepository,
	emailService adapter.EmailService,
	clock adapter.Clock,
) *SendExpiryDigestUseCase {
	return &SendExpiryDigestUseCase{
		objectiveRepo: objectiveRepo,
		valueRepo:     valueRepo,
		emailService:  emailService,
		clock:         clock,
	}
}

// Execute selects the objectives and queues the digest. Nothing is queued
// when no objective qualifies.
func (uc *SendExpiryDigestUseCase) Execute(ctx context.Context, input SendExpiryDigestInput) (*SendExpiryDigestOutput, error) {
	if len(input.Recipients) == 0 {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeNoRecipients,
			"no alert recipients configured",
			domainerror.ErrNoRecipients,
		)
	}

	now := uc.clock.Now()

	objectives, err := uc.objectiveRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}
	withValues, err := analytics.LoadValues(ctx, uc.valueRepo, objectives)
	if err != nil {
		return nil, err
	}

	items := make([]adapter.ExpiryDigestItem, 0)
	for _, item := range withValues {
		result, err := progress.Calculate(item.Objective, item.Values, now)
		if err != nil {
			slog.Warn("skipping objective with invalid configuration",
				"objective_id", item.Objective.ID,
				"error", err,
			)
			continue
		}
		if !qualifies(result, input.WindowDays) {
			continue
		}
		items = append(items, digestItem(item.Objective, result))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysUntilExpiry < items[j].DaysUntilExpiry
	})

	if len(items) == 0 {
		slog.Info("no objectives near expiry, digest skipped")
		return &SendExpiryDigestOutput{Items: items}, nil
	}

	queued, err := uc.emailService.QueueExpiryDigest(ctx, adapter.QueueExpiryDigestInput{
		Recipients:  input.Recipients,
		GeneratedAt: now,
		WindowDays:  input.WindowDays,
		Items:       items,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to queue expiry digest: %w", err)
	}

	slog.Info("expiry digest queued", "objectives", len(items), "emails", queued)

	return &SendExpiryDigestOutput{Items: items, Queued: queued}, nil
}

func qualifies(result progress.Result, windowDays int) bool {
	if result.IsExpired {
		return result.Status != progress.StatusCompleted
	}
	return result.DaysUntilExpiry <= windowDays
}

func digestItem(obj *entity.Objective, result progress.Result) adapter.ExpiryDigestItem {
	return adapter.ExpiryDigestItem{
		Department:      string(obj.Department),
		Name:            obj.DisplayName(),
		EndDate:         obj.EndDate.Format(entity.DateLayout),
		DaysUntilExpiry: result.DaysUntilExpiry,
		ProgressPercent: result.ProgressPercent,
		Status:          string(result.Status),
		Expired:         result.IsExpired,
	}
}
