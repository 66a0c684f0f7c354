package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillcal_backend/internal/catalog"
	"skillcal_backend/internal/config"
	"skillcal_backend/internal/controller"
	"skillcal_backend/internal/repository"
	"skillcal_backend/internal/service"
	"skillcal_backend/pkg/configwatcher"
	"skillcal_backend/pkg/database"
	"skillcal_backend/pkg/logger"
	"skillcal_backend/pkg/monitoring"
	"skillcal_backend/pkg/security"
	"skillcal_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Bank   *catalog.Bank
	Policy *service.PolicyHolder

	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	profile *repository.ProfileRepository
	course  *repository.CourseRepository
	cache   service.CatalogCache
}

type services struct {
	assessment     *service.AssessmentService
	profile        *service.ProfileService
	recommendation *service.RecommendationService
}

type controllers struct {
	assessment *controller.AssessmentController
	learner    *controller.LearnerController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	repos := &repositories{
		profile: repository.NewProfileRepository(db),
		course:  repository.NewCourseRepository(db),
	}
	if rdb != nil {
		repos.cache = repository.NewRecommendationCache(rdb, cfg.Engine.CatalogCacheTTL)
	}
	return repos
}

func (a *App) initServices(repos *repositories) *services {
	s := &services{}
	s.recommendation = service.NewRecommendationService(repos.course, repos.cache, repos.profile, a.Policy)
	s.assessment = service.NewAssessmentService(a.Bank, repos.profile, s.recommendation, a.Policy)
	s.profile = service.NewProfileService(repos.profile)
	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		assessment: controller.NewAssessmentController(s.assessment),
		learner:    controller.NewLearnerController(s.profile, s.recommendation),
		health:     controller.NewHealthController(a.DB, a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp 初始化存储、服务与路由；MigrateOnly 时迁移完成即返回
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	policy, err := service.PolicyFromConfig(cfg.Engine)
	if err != nil {
		return nil, err
	}

	db, err := database.InitDB(&cfg.Database, cfg.ForceMigrate || cfg.MigrateOnly || cfg.Server.Mode != gin.ReleaseMode)
	if err != nil {
		logger.Log.Error("Failed to initialize database", zap.Error(err))
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Policy: service.NewPolicyHolder(policy),
	}
	if cfg.MigrateOnly {
		return app, nil
	}

	app.Redis, err = database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Error("Failed to initialize redis", zap.Error(err))
		return nil, err
	}

	app.Bank, err = LoadBank(context.Background(), &cfg.Storage)
	if err != nil {
		logger.Log.Error("Failed to load question bank", zap.Error(err))
		return nil, err
	}
	logger.Log.Info("Question bank loaded", zap.Int("assessments", app.Bank.Len()))

	repos := app.initRepositories(db, app.Redis, cfg)
	controllers := app.initControllers(app.initServices(repos))

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		app.tracer, err = tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
			return nil, err
		}
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	// 评分策略热更新，非法配置保持旧策略
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		p, err := service.PolicyFromConfig(newCfg.Engine)
		if err != nil {
			logger.Log.Error("Ignoring invalid engine config", zap.Error(err))
			return
		}
		app.Policy.Store(p)
		logger.Log.Info("Engine policy updated",
			zap.String("level", string(p.Policy.Level)),
			zap.String("merge", string(p.Policy.Merge)),
			zap.String("answerMode", string(p.AnswerMode)))
	})

	return app, nil
}

func (a *App) Run() error {
	defer logger.Log.Sync()

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.Config.ConfigFile != "" {
		if err := configwatcher.Watch(ctx, a.Config.ConfigFile, a.applyConfig); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return a.Close(shutdownCtx)
}

// Close 关闭 tracer、Redis 与数据库连接
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.tracer != nil {
		errs = append(errs, a.tracer.Shutdown(ctx))
	}
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	logger.Log.Info("Server exiting")
	return errors.Join(errs...)
}
