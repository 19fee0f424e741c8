// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kpi-dashboard/backend/config"
	"github.com/kpi-dashboard/backend/internal/infra/dependency"
	"github.com/kpi-dashboard/backend/internal/integration/persistence/model"
	"github.com/kpi-dashboard/backend/test/integration/mock"
)

const (
	testJWTSecret     = "test-jwt-secret-key-for-testing-purposes"
	testResendAPIKey  = "re_test_key"
	testChatRateLimit = 5
)

// testContext holds the state of one scenario.
type testContext struct {
	cfg      *config.Config
	server   *httptest.Server
	injector *dependency.Injector
	client   *http.Client
	headers  map[string]string
	response *response

	db        *mock.Db
	redis     *redis.Client
	timeMock  *mock.Time
	chatModel *mock.ChatModel
	resendAPI *mock.ApiMock

	objectiveIDs map[string]uuid.UUID
}

type response struct {
	status  int
	headers http.Header
	body    any
	raw     []byte
}

var resendAPI *mock.ApiMock

// InitializeTestSuite starts the resources shared by every scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		resendAPI = mock.NewApiServer()
		resendAPI.Start()
	})

	ctx.AfterSuite(func() {
		resendAPI.Close()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:    &http.Client{Timeout: 10 * time.Second},
		timeMock:  mock.NewTime(),
		chatModel: mock.NewChatModel(),
		redis:     mock.NewRedis(),
		db: mock.NewDb(map[string]any{
			"objectives":       &model.ObjectiveModel{},
			"objective_values": &model.ObjectiveValueModel{},
			"email_queue":      &model.EmailQueueModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.after()
		return ctx, nil
	})

	// Environment steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)
	ctx.Given(`^operator authentication is enabled$`, test.operatorAuthenticationIsEnabled)
	ctx.Given(`^I am authenticated as "([^"]*)"$`, test.iAmAuthenticatedAs)
	ctx.Given(`^I send an expired token$`, test.iSendAnExpiredToken)
	ctx.Given(`^the analytics cache is disabled$`, test.theAnalyticsCacheIsDisabled)
	ctx.Given(`^the chat assistant is not configured$`, test.theChatAssistantIsNotConfigured)
	ctx.Given(`^the chat assistant replies "([^"]*)"$`, test.theChatAssistantReplies)
	ctx.Given(`^the chat assistant fails with "([^"]*)"$`, test.theChatAssistantFailsWith)
	ctx.Given(`^the chat rate limit window has elapsed$`, test.theChatRateLimitWindowHasElapsed)
	ctx.Given(`^the e-mail provider rejects messages with status (\d+)$`, test.theEmailProviderRejectsMessagesWithStatus)

	// Data steps
	ctx.Given(`^the following objectives exist:$`, test.theFollowingObjectivesExist)
	ctx.Given(`^the objective "([^"]*)" has the values:$`, test.theObjectiveHasTheValues)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I send (\d+) "([^"]*)" requests to "([^"]*)" with body:$`, test.iSendRequestsToWithBody)
	ctx.When(`^the e-mail worker processes the queue$`, test.theEmailWorkerProcessesTheQueue)
	ctx.When(`^the scheduled expiry digest runs$`, test.theScheduledExpiryDigestRuns)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should be "([^"]*)"$`, test.theResponseHeaderShouldBe)
	ctx.Then(`^the response objectives should be ordered as:$`, test.theResponseObjectivesShouldBeOrderedAs)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Collaborator assertion steps
	ctx.Then(`^the chat assistant should have received a prompt containing "([^"]*)"$`, test.theChatAssistantShouldHaveReceivedAPromptContaining)
	ctx.Then(`^the e-mail provider should have received (\d+) messages?$`, test.theEmailProviderShouldHaveReceivedMessages)
	ctx.Then(`^the redis cache should hold (\d+) analytics snapshots?$`, test.theRedisCacheShouldHoldAnalyticsSnapshots)
}

func (t *testContext) before() error {
	t.cfg = testConfig()
	t.headers = make(map[string]string)
	t.response = nil
	t.objectiveIDs = make(map[string]uuid.UUID)
	t.resendAPI = resendAPI
	t.resendAPI.Reset()
	t.resendAPI.SetResponse(http.MethodPost, "/emails", http.StatusOK, map[string]any{"id": uuid.NewString()})
	t.cfg.Email.ResendBaseURL = t.resendAPI.GetUrl()
	t.timeMock.Reset()
	t.chatModel.Reset()

	if err := mock.ClearRedis(t.redis); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) after() {
	if t.server != nil {
		t.server.Close()
		t.server = nil
	}
	t.injector = nil
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Redis.Enabled = true
	cfg.Auth.Enabled = false
	cfg.Auth.Secret = testJWTSecret
	cfg.Auth.TokenExpiry = time.Hour
	cfg.Chat.RateLimit = testChatRateLimit
	cfg.Chat.RateWindow = time.Minute
	cfg.Email.ResendAPIKey = testResendAPIKey
	cfg.Email.WorkerEnabled = false
	cfg.Alert.Enabled = false
	cfg.Alert.Recipients = []string{"direzione@example.com"}
	cfg.Alert.WindowDays = 30
	return cfg
}

// ensureServer builds the application from the scenario configuration the
// first time a request is sent.
func (t *testContext) ensureServer() error {
	if t.server != nil {
		return nil
	}

	opts := dependency.Options{
		Clock:     t.timeMock,
		ChatModel: t.chatModel,
	}
	if t.cfg.Redis.Enabled {
		opts.Redis = t.redis
	}

	injector, err := dependency.NewInjector(t.cfg, t.db.DbConn, opts)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	t.injector = injector
	t.server = httptest.NewServer(injector.Router.Setup(t.cfg.Server.Environment))
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	return nil
}
