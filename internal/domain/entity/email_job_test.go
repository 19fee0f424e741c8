package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailJob_MarkFailed(t *testing.T) {
	now := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	t.Run("temporary failure reschedules with backoff", func(t *testing.T) {
		job := NewEmailJob(TemplateExpiryDigest, "ops@example.com", "", "digest", nil, now)

		job.MarkFailed(errors.New("timeout"), false, now)

		assert.Equal(t, EmailStatusPending, job.Status)
		assert.Equal(t, 1, job.Attempts)
		assert.Equal(t, now.Add(time.Minute), job.ScheduledAt)
		assert.False(t, job.IsReadyToProcess(now))
		assert.True(t, job.IsReadyToProcess(now.Add(time.Minute)))
	})

	t.Run("permanent failure stops", func(t *testing.T) {
		job := NewEmailJob(TemplateExpiryDigest, "ops@example.com", "", "digest", nil, now)

		job.MarkFailed(errors.New("invalid recipient"), true, now)

		assert.Equal(t, EmailStatusFailed, job.Status)
		require.NotNil(t, job.ProcessedAt)
		assert.Equal(t, "invalid recipient", job.LastError)
	})

	t.Run("exhausted attempts fail", func(t *testing.T) {
		job := NewEmailJob(TemplateExpiryDigest, "ops@example.com", "", "digest", nil, now)

		for i := 0; i < job.MaxAttempts; i++ {
			job.MarkFailed(errors.New("timeout"), false, now)
		}

		assert.Equal(t, EmailStatusFailed, job.Status)
		assert.False(t, job.CanRetry())
	})
}

func TestObjective_DisplayName(t *testing.T) {
	obj := &Objective{Name: "Fatturato"}
	assert.Equal(t, "Fatturato", obj.DisplayName())

	obj = &Objective{SmartDescription: "Breve"}
	assert.Equal(t, "Breve", obj.DisplayName())

	obj = &Objective{SmartDescription: "Aumentare il fatturato annuale del reparto vendite del dieci per cento"}
	assert.Equal(t, "Aumentare il fatturato annuale del reparto vendite...", obj.DisplayName())
}

func TestNewObjective_TruncatesDatesAndDefaultsFormat(t *testing.T) {
	now := time.Date(2025, time.March, 3, 15, 4, 5, 0, time.UTC)
	start := time.Date(2025, time.January, 1, 13, 0, 0, 0, time.UTC)

	obj := NewObjective("Sales", "", "smart", "Cumulativo", 10, "", start, start.AddDate(0, 11, 30), false, now)

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), obj.StartDate)
	assert.EqualValues(t, "number", obj.NumberFormat)
	assert.Equal(t, now, obj.CreatedAt)
}
