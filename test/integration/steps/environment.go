package steps

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kpi-dashboard/backend/internal/domain/entity"
	"github.com/kpi-dashboard/backend/test/integration/mock"
)

func (t *testContext) todayIs(day string) error {
	today, err := time.Parse(entity.DateLayout, day)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", day, err)
	}
	t.timeMock.SetCurrentTime(today.Add(10 * time.Hour))
	return nil
}

func (t *testContext) operatorAuthenticationIsEnabled() error {
	if t.server != nil {
		return fmt.Errorf("authentication must be configured before the first request")
	}
	t.cfg.Auth.Enabled = true
	return nil
}

func (t *testContext) iAmAuthenticatedAs(subject string) error {
	if err := t.ensureServer(); err != nil {
		return err
	}
	token, _, err := t.injector.Tokens.GenerateToken(context.Background(), subject)
	if err != nil {
		return err
	}
	t.headers["Authorization"] = "Bearer " + token
	return nil
}

func (t *testContext) iSendAnExpiredToken() error {
	issuedAt := t.timeMock.Now().Add(-48 * time.Hour)
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		Issuer:    "kpi-dashboard",
		Subject:   "operator",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign expired token: %w", err)
	}
	t.headers["Authorization"] = "Bearer " + token
	return nil
}

func (t *testContext) theAnalyticsCacheIsDisabled() error {
	t.cfg.Redis.Enabled = false
	return nil
}

func (t *testContext) theChatAssistantIsNotConfigured() error {
	t.chatModel.SetAvailable(false)
	return nil
}

func (t *testContext) theChatAssistantReplies(reply string) error {
	t.chatModel.SetReply(reply)
	return nil
}

func (t *testContext) theChatAssistantFailsWith(message string) error {
	t.chatModel.SetFailure(message)
	return nil
}

func (t *testContext) theChatRateLimitWindowHasElapsed() error {
	mock.FastForwardRedis(t.cfg.Chat.RateWindow + time.Second)
	return nil
}

func (t *testContext) theEmailProviderRejectsMessagesWithStatus(status int) error {
	t.resendAPI.SetResponse(http.MethodPost, "/emails", status, map[string]any{
		"statusCode": status,
		"name":       "validation_error",
		"message":    "invalid recipient",
	})
	return nil
}

func (t *testContext) theEmailWorkerProcessesTheQueue() error {
	if err := t.ensureServer(); err != nil {
		return err
	}
	if t.injector.Worker == nil {
		return fmt.Errorf("the e-mail worker is not configured")
	}
	t.injector.Worker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) theScheduledExpiryDigestRuns() error {
	if err := t.ensureServer(); err != nil {
		return err
	}
	_, err := t.injector.Scheduler.RunDigest(context.Background())
	return err
}

func (t *testContext) theChatAssistantShouldHaveReceivedAPromptContaining(text string) error {
	request, ok := t.chatModel.LastRequest()
	if !ok {
		return fmt.Errorf("the chat assistant received no request")
	}
	if !strings.Contains(request.SystemPrompt, text) {
		return fmt.Errorf("expected the prompt to contain '%s'", text)
	}
	return nil
}

func (t *testContext) theEmailProviderShouldHaveReceivedMessages(count int) error {
	received := t.resendAPI.RequestCount(http.MethodPost, "/emails")
	if received != count {
		return fmt.Errorf("expected %d messages sent to the e-mail provider, got %d", count, received)
	}
	return nil
}

func (t *testContext) theRedisCacheShouldHoldAnalyticsSnapshots(count int) error {
	keys, err := mock.KeyCount(t.redis, "analytics:*:*:v*")
	if err != nil {
		return err
	}
	if keys != count {
		return fmt.Errorf("expected %d analytics snapshots in redis, got %d", count, keys)
	}
	return nil
}
