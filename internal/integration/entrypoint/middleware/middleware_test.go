package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/adapter/mocks"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthEngine(m *AuthMiddleware) *gin.Engine {
	engine := gin.New()
	engine.POST("/write", m.Authenticate(), func(c *gin.Context) {
		operator, _ := GetOperatorFromContext(c)
		c.JSON(http.StatusOK, gin.H{"operator": operator})
	})
	return engine
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(tokens *mocks.MockTokenService)
		wantStatus int
		wantCode   domainerror.AuthErrorCode
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerror.ErrCodeMissingToken,
		},
		{
			name:       "not a bearer token",
			header:     "Basic b3BlcmF0b3I=",
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerror.ErrCodeInvalidToken,
		},
		{
			name:       "empty bearer token",
			header:     "Bearer   ",
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerror.ErrCodeMissingToken,
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setup: func(tokens *mocks.MockTokenService) {
				tokens.EXPECT().ValidateToken(gomock.Any(), "old").
					Return(nil, fmt.Errorf("%w: exp", domainerror.ErrExpiredToken))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerror.ErrCodeExpiredToken,
		},
		{
			name:   "forged token",
			header: "Bearer forged",
			setup: func(tokens *mocks.MockTokenService) {
				tokens.EXPECT().ValidateToken(gomock.Any(), "forged").Return(nil, domainerror.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerror.ErrCodeInvalidToken,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokens *mocks.MockTokenService) {
				tokens.EXPECT().ValidateToken(gomock.Any(), "good").
					Return(&adapter.TokenClaims{Subject: "direzione", ExpiresAt: time.Now().Add(time.Hour)}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tokens := mocks.NewMockTokenService(ctrl)
			if tt.setup != nil {
				tt.setup(tokens)
			}

			req := httptest.NewRequest(http.MethodPost, "/write", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			newAuthEngine(NewAuthMiddleware(tokens, true)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, string(tt.wantCode), decodeError(t, rec).Code)
				return
			}
			assert.JSONEq(t, `{"operator":"direzione"}`, rec.Body.String())
		})
	}
}

func TestAuthenticate_DisabledPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mocks.NewMockTokenService(ctrl)

	rec := httptest.NewRecorder()
	newAuthEngine(NewAuthMiddleware(tokens, false)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/write", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

type stubCounter struct {
	counts map[string]int64
	err    error
}

func (s *stubCounter) Increment(_ context.Context, key string, _ time.Duration) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.counts[key]++
	return s.counts[key], nil
}

func newLimitedEngine(rl *RateLimiter) *gin.Engine {
	engine := gin.New()
	engine.POST("/chat", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func send(engine *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_InMemoryWindow(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "")

	now := time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(nil, "chat", 2, time.Minute)
	rl.now = func() time.Time { return now }
	engine := newLimitedEngine(rl)

	assert.Equal(t, http.StatusOK, send(engine).Code)
	assert.Equal(t, http.StatusOK, send(engine).Code)

	rec := send(engine)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Equal(t, string(domainerror.ErrCodeChatRateLimited), decodeError(t, rec).Code)

	now = now.Add(time.Minute + time.Second)
	rl.Cleanup()
	assert.Empty(t, rl.entries)
	assert.Equal(t, http.StatusOK, send(engine).Code)
}

func TestRateLimiter_SharedCounter(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "")

	counter := &stubCounter{counts: map[string]int64{}}
	engine := newLimitedEngine(NewRateLimiterWithConfig(counter, "chat", 1, time.Minute))

	assert.Equal(t, http.StatusOK, send(engine).Code)
	assert.Equal(t, http.StatusTooManyRequests, send(engine).Code)
	assert.Equal(t, int64(2), counter.counts["chat:10.0.0.1"])
}

func TestRateLimiter_FallsBackWhenCounterFails(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "")

	counter := &stubCounter{err: errors.New("connection refused")}
	rl := NewRateLimiterWithConfig(counter, "chat", 1, time.Minute)
	engine := newLimitedEngine(rl)

	assert.Equal(t, http.StatusOK, send(engine).Code)
	assert.Equal(t, http.StatusTooManyRequests, send(engine).Code)

	rl.Reset()
	assert.Equal(t, http.StatusOK, send(engine).Code)
}

func TestRateLimiter_SkippedInTests(t *testing.T) {
	t.Setenv("ENV", "test")

	engine := newLimitedEngine(NewRateLimiterWithConfig(nil, "chat", 1, time.Minute))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, send(engine).Code)
	}
}

type validatedRequest struct {
	Department string `json:"department" binding:"required,department"`
	Type       string `json:"typeObjective" binding:"required,objective_type"`
	Format     string `json:"numberFormat" binding:"omitempty,number_format"`
}

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())
	require.NoError(t, RegisterValidators())

	valid := validatedRequest{Department: "PM Company", Type: "Ultimo mese", Format: "currency"}
	assert.NoError(t, binding.Validator.ValidateStruct(&valid))

	invalid := validatedRequest{Department: "Logistica", Type: "Settimanale", Format: "euro"}
	err := binding.Validator.ValidateStruct(&invalid)
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"department":    "department",
		"typeObjective": "objective_type",
		"numberFormat":  "number_format",
	}, ValidationDetails(err))
}

func TestValidationDetails_NotAValidationError(t *testing.T) {
	var syntaxErr *json.SyntaxError
	err := json.Unmarshal([]byte(strings.Repeat("{", 2)), &struct{}{})
	require.ErrorAs(t, err, &syntaxErr)

	assert.Nil(t, ValidationDetails(err))
}
