package email

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
	"github.com/kpi-dashboard/backend/internal/integration/email/templates"
)

// Service handles email queueing operations.
type Service struct {
	queue        adapter.EmailQueueRepository
	dashboardURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, dashboardURL string) *Service {
	return &Service{
		queue:        queue,
		dashboardURL: dashboardURL,
	}
}

// QueueExpiryDigest queues one digest email per recipient.
func (s *Service) QueueExpiryDigest(ctx context.Context, input adapter.QueueExpiryDigestInput) (int, error) {
	if len(input.Recipients) == 0 {
		return 0, domainerror.NewEmailError(
			domainerror.ErrCodeNoRecipients,
			"no alert recipients configured",
			domainerror.ErrNoRecipients,
		)
	}

	digest := templates.ExpiryDigestData{
		GeneratedOn:  valueobject.FormatItalianDate(input.GeneratedAt),
		WindowDays:   input.WindowDays,
		DashboardURL: s.dashboardURL,
	}
	for _, item := range input.Items {
		row := templates.DigestItem(item)
		if item.Expired {
			digest.Expired = append(digest.Expired, row)
		} else {
			digest.Expiring = append(digest.Expiring, row)
		}
	}

	data, err := toTemplateData(digest)
	if err != nil {
		return 0, domainerror.NewEmailError(domainerror.ErrCodeEmailQueueFailed, "failed to encode digest", err)
	}

	subject := fmt.Sprintf("Obiettivi in scadenza - %s", digest.GeneratedOn)

	queued := 0
	for _, recipient := range input.Recipients {
		job := entity.NewEmailJob(entity.TemplateExpiryDigest, recipient, "", subject, data, input.GeneratedAt)
		if err := s.queue.Create(ctx, job); err != nil {
			return queued, domainerror.NewEmailError(
				domainerror.ErrCodeEmailQueueFailed,
				"failed to queue expiry digest email",
				err,
			)
		}
		queued++
	}

	return queued, nil
}

// toTemplateData flattens a template payload into the map stored with the job.
func toTemplateData(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// fromTemplateData decodes the stored job map into a template payload.
func fromTemplateData(data map[string]interface{}, v interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

var _ adapter.EmailService = (*Service)(nil)
