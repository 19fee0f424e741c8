package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/adapter/mocks"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/integration/email/templates"
)

var now = time.Date(2025, time.August, 28, 8, 0, 0, 0, time.UTC)

func digestInput(recipients ...string) adapter.QueueExpiryDigestInput {
	return adapter.QueueExpiryDigestInput{
		Recipients:  recipients,
		GeneratedAt: now,
		WindowDays:  30,
		Items: []adapter.ExpiryDigestItem{
			{Department: "Grafico", Name: "Progetti Q3", EndDate: "2024-09-30", DaysUntilExpiry: -332, ProgressPercent: 0, Status: "Not achieved", Expired: true},
			{Department: "Sales", Name: "Campagna Natale", EndDate: "2025-09-15", DaysUntilExpiry: 18, ProgressPercent: 60, Status: "Behind"},
		},
	}
}

func TestService_QueueExpiryDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mocks.NewMockEmailQueueRepository(ctrl)

	var jobs []*entity.EmailJob
	queue.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, job *entity.EmailJob) error {
		jobs = append(jobs, job)
		return nil
	}).Times(2)

	queued, err := NewService(queue, "https://kpi.example.com").QueueExpiryDigest(context.Background(), digestInput("a@example.com", "b@example.com"))

	require.NoError(t, err)
	assert.Equal(t, 2, queued)
	require.Len(t, jobs, 2)
	assert.Equal(t, "b@example.com", jobs[1].RecipientEmail)
	assert.Equal(t, entity.TemplateExpiryDigest, jobs[0].TemplateType)
	assert.Equal(t, "Obiettivi in scadenza - 28 Agosto 2025", jobs[0].Subject)
	assert.Equal(t, entity.EmailStatusPending, jobs[0].Status)

	var data templates.ExpiryDigestData
	require.NoError(t, fromTemplateData(jobs[0].TemplateData, &data))
	require.Len(t, data.Expired, 1)
	require.Len(t, data.Expiring, 1)
	assert.Equal(t, "Campagna Natale", data.Expiring[0].Name)
	assert.Equal(t, "https://kpi.example.com", data.DashboardURL)
}

func TestService_QueueExpiryDigest_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mocks.NewMockEmailQueueRepository(ctrl)
	svc := NewService(queue, "")

	_, err := svc.QueueExpiryDigest(context.Background(), digestInput())
	assert.ErrorIs(t, err, domainerror.ErrNoRecipients)

	queue.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))
	queued, err := svc.QueueExpiryDigest(context.Background(), digestInput("a@example.com"))

	var emailErr *domainerror.EmailError
	require.True(t, errors.As(err, &emailErr))
	assert.Equal(t, domainerror.ErrCodeEmailQueueFailed, emailErr.Code)
	assert.Zero(t, queued)
}

func TestRenderer_ExpiryDigest(t *testing.T) {
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	html, text, err := renderer.Render(string(entity.TemplateExpiryDigest), templates.ExpiryDigestData{
		RecipientName: "Giulia",
		GeneratedOn:   "28 Agosto 2025",
		WindowDays:    30,
		Expiring:      []templates.DigestItem{{Department: "Sales", Name: "Campagna Natale", DaysUntilExpiry: 18, ProgressPercent: 60, Status: "Behind"}},
	})

	require.NoError(t, err)
	assert.Contains(t, html, "Ciao Giulia")
	assert.Contains(t, html, "Campagna Natale")
	assert.Contains(t, html, "60.00%")
	assert.NotContains(t, html, "Scaduti senza")
	assert.Contains(t, text, "IN SCADENZA NEI PROSSIMI 30 GIORNI")
	assert.Contains(t, text, "- [Sales] Campagna Natale: 18 giorni")
}

type workerFixture struct {
	queue  *mocks.MockEmailQueueRepository
	sender *mocks.MockEmailSender
	worker *Worker
}

func newWorkerFixture(t *testing.T) *workerFixture {
	ctrl := gomock.NewController(t)
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	f := &workerFixture{
		queue:  mocks.NewMockEmailQueueRepository(ctrl),
		sender: mocks.NewMockEmailSender(ctrl),
	}
	f.worker = NewWorker(f.queue, f.sender, renderer, clock, WorkerConfig{})
	return f
}

func queuedDigest(t *testing.T) *entity.EmailJob {
	data, err := toTemplateData(templates.ExpiryDigestData{GeneratedOn: "28 Agosto 2025", WindowDays: 30})
	require.NoError(t, err)
	return entity.NewEmailJob(entity.TemplateExpiryDigest, "a@example.com", "", "Obiettivi in scadenza", data, now)
}

func TestWorker_SendsPendingJobs(t *testing.T) {
	f := newWorkerFixture(t)
	job := queuedDigest(t)

	f.queue.EXPECT().GetPendingJobs(gomock.Any(), now, 10).Return([]*entity.EmailJob{job}, nil)
	f.queue.EXPECT().Update(gomock.Any(), job).Return(nil).Times(2)
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
		assert.Equal(t, "a@example.com", input.To)
		assert.Contains(t, input.HTML, "Riepilogo scadenze obiettivi")
		return &adapter.SendEmailResult{ResendID: "re_123"}, nil
	})

	f.worker.ProcessNow(context.Background())

	assert.Equal(t, entity.EmailStatusSent, job.Status)
	assert.Equal(t, "re_123", job.ResendID)
}

func TestWorker_TemporaryFailureIsRetried(t *testing.T) {
	f := newWorkerFixture(t)
	job := queuedDigest(t)

	f.queue.EXPECT().GetPendingJobs(gomock.Any(), now, 10).Return([]*entity.EmailJob{job}, nil)
	f.queue.EXPECT().Update(gomock.Any(), job).Return(nil).Times(2)
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, domainerror.NewEmailError(
		domainerror.ErrCodeTemporaryEmailFailure, "temporary email failure", errors.New("429"),
	))

	f.worker.ProcessNow(context.Background())

	assert.Equal(t, entity.EmailStatusPending, job.Status)
	assert.Equal(t, 1, job.Attempts)
	assert.Equal(t, now.Add(time.Minute), job.ScheduledAt)
}

func TestWorker_PermanentFailure(t *testing.T) {
	f := newWorkerFixture(t)
	job := queuedDigest(t)

	f.queue.EXPECT().GetPendingJobs(gomock.Any(), now, 10).Return([]*entity.EmailJob{job}, nil)
	f.queue.EXPECT().Update(gomock.Any(), job).Return(nil).Times(2)
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, domainerror.NewEmailError(
		domainerror.ErrCodePermanentEmailFailure, "permanent email failure", errors.New("422 validation_error"),
	))

	f.worker.ProcessNow(context.Background())

	assert.Equal(t, entity.EmailStatusFailed, job.Status)
}

func TestWorker_UnknownTemplateFailsPermanently(t *testing.T) {
	f := newWorkerFixture(t)
	job := entity.NewEmailJob("newsletter", "a@example.com", "", "?", nil, now)

	f.queue.EXPECT().GetPendingJobs(gomock.Any(), now, 10).Return([]*entity.EmailJob{job}, nil)
	f.queue.EXPECT().Update(gomock.Any(), job).Return(nil).Times(2)

	f.worker.ProcessNow(context.Background())

	assert.Equal(t, entity.EmailStatusFailed, job.Status)
	assert.Contains(t, job.LastError, "unknown template type")
}

func TestWorker_Cleanup(t *testing.T) {
	f := newWorkerFixture(t)
	f.queue.EXPECT().DeleteSentBefore(gomock.Any(), now.Add(-30*24*time.Hour)).Return(int64(4), nil)

	deleted, err := f.worker.Cleanup(context.Background(), 30*24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}

func TestIsPermanentError(t *testing.T) {
	assert.True(t, isPermanentError(errors.New("[ERROR]: 422 validation_error")))
	assert.True(t, isPermanentError(errors.New("403 Forbidden")))
	assert.False(t, isPermanentError(errors.New("429 rate limit exceeded")))
	assert.False(t, isPermanentError(nil))
}
