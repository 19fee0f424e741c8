// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kpi-dashboard/backend/config"
	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/alert"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	"github.com/kpi-dashboard/backend/internal/application/usecase/chat"
	"github.com/kpi-dashboard/backend/internal/application/usecase/objective"
	"github.com/kpi-dashboard/backend/internal/application/usecase/seed"
	"github.com/kpi-dashboard/backend/internal/application/usecase/value"
	"github.com/kpi-dashboard/backend/internal/infra/scheduler"
	"github.com/kpi-dashboard/backend/internal/infra/server/router"
	"github.com/kpi-dashboard/backend/internal/integration/adapters"
	"github.com/kpi-dashboard/backend/internal/integration/cache"
	"github.com/kpi-dashboard/backend/internal/integration/email"
	"github.com/kpi-dashboard/backend/internal/integration/email/templates"
	"github.com/kpi-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/kpi-dashboard/backend/internal/integration/entrypoint/middleware"
	"github.com/kpi-dashboard/backend/internal/integration/persistence"
)

// Options overrides the adapters the injector would otherwise build from
// the configuration. Zero values fall back to the production adapters.
type Options struct {
	Clock       adapter.Clock
	ChatModel   adapter.ChatModel
	Redis       *redis.Client
	EmailSender adapter.EmailSender
}

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.Client
	Router    *router.Router
	Worker    *email.Worker
	Scheduler *scheduler.Service
	Tokens    adapter.TokenService
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The database handle is owned by the caller.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	if err := middleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	redisClient := opts.Redis
	if redisClient == nil && cfg.Redis.Enabled {
		client, err := cache.NewClient(cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		redisClient = client
	}

	// Create repositories
	objectiveRepo := persistence.NewObjectiveRepository(db)
	valueRepo := persistence.NewValueRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	analyticsCache := cache.NewNoopAnalyticsCache()
	var counter middleware.Counter
	if redisClient != nil {
		analyticsCache = cache.NewRedisAnalyticsCache(redisClient, cfg.Analytics.CacheTTL)
		counter = cache.NewRedisCounter(redisClient)
	}

	chatModel := opts.ChatModel
	if chatModel == nil {
		chatModel = adapters.NewGeminiChatModel(cfg.Chat.GeminiAPIKey, cfg.Chat.Model)
	}
	if !chatModel.IsAvailable() {
		slog.Warn("chat assistant disabled, GEMINI_API_KEY is not set")
	}

	tokenService := adapters.NewTokenService(cfg.Auth.Secret, cfg.Auth.TokenExpiry, clock)
	emailService := email.NewService(emailQueueRepo, cfg.Email.DashboardURL)

	// Create objective use cases
	listObjectivesUseCase := objective.NewListObjectivesUseCase(objectiveRepo, valueRepo, clock)
	createObjectiveUseCase := objective.NewCreateObjectiveUseCase(objectiveRepo, analyticsCache, clock)
	bulkCreateObjectivesUseCase := objective.NewBulkCreateObjectivesUseCase(objectiveRepo, analyticsCache, clock)
	getObjectiveUseCase := objective.NewGetObjectiveUseCase(objectiveRepo, valueRepo, clock)
	updateObjectiveUseCase := objective.NewUpdateObjectiveUseCase(objectiveRepo, analyticsCache, clock)
	deleteObjectiveUseCase := objective.NewDeleteObjectiveUseCase(objectiveRepo, analyticsCache)
	bulkDeleteObjectivesUseCase := objective.NewBulkDeleteObjectivesUseCase(objectiveRepo, analyticsCache)
	reorderObjectivesUseCase := objective.NewReorderObjectivesUseCase(objectiveRepo, analyticsCache)
	listDepartmentObjectivesUseCase := objective.NewListDepartmentObjectivesUseCase(objectiveRepo, valueRepo, clock)

	// Create value use cases
	listValuesUseCase := value.NewListValuesUseCase(objectiveRepo, valueRepo)
	upsertValueUseCase := value.NewUpsertValueUseCase(objectiveRepo, valueRepo, analyticsCache, clock)
	deleteValueUseCase := value.NewDeleteValueUseCase(valueRepo, analyticsCache)

	// Create analytics and chat use cases
	departmentAnalyticsUseCase := analytics.NewGetDepartmentAnalyticsUseCase(objectiveRepo, valueRepo, analyticsCache, clock)
	companyAnalyticsUseCase := analytics.NewGetCompanyAnalyticsUseCase(departmentAnalyticsUseCase)
	chatUseCase := chat.NewChatUseCase(chatModel, departmentAnalyticsUseCase, companyAnalyticsUseCase, clock)

	seedUseCase := seed.NewSeedUseCase(objectiveRepo, valueRepo, analyticsCache, clock)
	digestUseCase := alert.NewSendExpiryDigestUseCase(objectiveRepo, valueRepo, emailService, clock)

	// Create the e-mail worker when a sender is available
	var worker *email.Worker
	sender := opts.EmailSender
	if sender == nil && cfg.Email.ResendAPIKey != "" {
		resendClient := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		if cfg.Email.ResendBaseURL != "" {
			var err error
			if resendClient, err = resendClient.WithBaseURL(cfg.Email.ResendBaseURL); err != nil {
				return nil, err
			}
		}
		sender = resendClient
	}
	if sender != nil {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, err
		}
		worker = email.NewWorker(emailQueueRepo, sender, renderer, clock, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	} else {
		slog.Warn("e-mail delivery disabled, RESEND_API_KEY is not set; digests stay queued")
	}

	chatRateLimiter := middleware.NewRateLimiterWithConfig(counter, "chat", cfg.Chat.RateLimit, cfg.Chat.RateWindow)

	var cleaner scheduler.QueueCleaner
	if worker != nil {
		cleaner = worker
	}
	schedulerService := scheduler.NewService(digestUseCase, cleaner, chatRateLimiter, scheduler.Config{
		DigestEnabled:  cfg.Alert.Enabled,
		DigestCron:     cfg.Alert.Cron,
		WindowDays:     cfg.Alert.WindowDays,
		Recipients:     cfg.Alert.Recipients,
		CleanupEnabled: worker != nil,
		Retention:      time.Duration(cfg.Email.RetentionDays) * 24 * time.Hour,
		PruneInterval:  cfg.Chat.RateWindow,
	})

	// Create controllers
	dbHealth := func(ctx context.Context) bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.PingContext(ctx) == nil
	}
	var redisHealth controller.HealthChecker
	if redisClient != nil {
		redisHealth = func(ctx context.Context) bool {
			return cache.Ping(ctx, redisClient)
		}
	}
	healthController := controller.NewHealthController(dbHealth, redisHealth)

	objectiveController := controller.NewObjectiveController(
		listObjectivesUseCase,
		createObjectiveUseCase,
		bulkCreateObjectivesUseCase,
		getObjectiveUseCase,
		updateObjectiveUseCase,
		deleteObjectiveUseCase,
		bulkDeleteObjectivesUseCase,
		reorderObjectivesUseCase,
	)

	valueController := controller.NewValueController(
		listValuesUseCase,
		upsertValueUseCase,
		deleteValueUseCase,
	)

	departmentController := controller.NewDepartmentController(
		listDepartmentObjectivesUseCase,
		departmentAnalyticsUseCase,
	)

	chatController := controller.NewChatController(chatUseCase)
	seedController := controller.NewSeedController(seedUseCase)
	alertController := controller.NewAlertController(digestUseCase, cfg.Alert.Recipients, cfg.Alert.WindowDays)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService, cfg.Auth.Enabled)

	// Create router
	r := router.NewRouter(
		healthController,
		objectiveController,
		valueController,
		departmentController,
		chatController,
		seedController,
		alertController,
		chatRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:    cfg,
		DB:        db,
		Redis:     redisClient,
		Router:    r,
		Worker:    worker,
		Scheduler: schedulerService,
		Tokens:    tokenService,
	}, nil
}
