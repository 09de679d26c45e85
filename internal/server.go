package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/mvukovic/trophystats/internal/auth"
	"github.com/mvukovic/trophystats/internal/config"
	"github.com/mvukovic/trophystats/internal/db"
	"github.com/mvukovic/trophystats/internal/dispatch"
	"github.com/mvukovic/trophystats/internal/middleware"
	"github.com/mvukovic/trophystats/internal/statistics"
	"github.com/mvukovic/trophystats/internal/telemetry/metrics"
	metricsmiddleware "github.com/mvukovic/trophystats/internal/telemetry/metrics/middleware"
	"github.com/mvukovic/trophystats/internal/telemetry/tracing"
	"github.com/mvukovic/trophystats/internal/trophies"
	"github.com/mvukovic/trophystats/internal/users"
	"github.com/mvukovic/trophystats/internal/workouts"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	workoutsRepo *workouts.Repo
	statsRepo    *statistics.Repo
	trophiesRepo *trophies.Repo
	usersRepo    *users.Repo

	aggregator *statistics.Aggregator
	registry   *trophies.Registry
	evaluator  *trophies.Evaluator
	dispatcher *dispatch.Dispatcher

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("trophystats", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "trophystats-backend", rdb)
	if err != nil {
		return nil, err
	}

	workoutsRepo := workouts.NewRepo(dbPool)
	statsRepo := statistics.NewRepo(dbPool)
	trophiesRepo := trophies.NewRepo(dbPool)
	usersRepo := users.NewRepo(dbPool)

	aggregator := statistics.NewAggregator(
		workoutsRepo,
		statsRepo,
		metricsManager,
		statistics.AggregatorConfig{
			WorkoutGapResetDays:   params.Config.WorkoutGapResetDays,
			WeekendStaleAfterDays: params.Config.WeekendStaleAfterDays,
		},
	)

	registry := trophies.DefaultRegistry()
	evaluator := trophies.NewEvaluator(
		trophiesRepo,
		statsRepo,
		usersRepo,
		registry,
		metricsManager,
		trophies.EvaluatorConfig{
			TrophiesEnabled:    params.Config.TrophiesEnabled,
			UserInactivityDays: params.Config.UserInactivityDays,
		},
	)

	catalog := trophies.DefaultCatalog()
	if params.Config.TrophyCatalogPath != "" {
		catalog, err = trophies.LoadCatalog(params.Config.TrophyCatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load trophy catalog: %w", err)
		}
	}
	synced, err := trophies.SyncCatalog(ctx, trophiesRepo, registry, catalog)
	if err != nil {
		log.Errorf("failed to sync trophy catalog: %s", err)
	} else {
		log.Debugf("trophy catalog synced, %d trophies", synced)
	}

	dispatcher := dispatch.NewDispatcher(metricsManager, 0, 0)
	dispatcher.Start(ctx)

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		workoutsRepo: workoutsRepo,
		statsRepo:    statsRepo,
		trophiesRepo: trophiesRepo,
		usersRepo:    usersRepo,

		aggregator: aggregator,
		registry:   registry,
		evaluator:  evaluator,
		dispatcher: dispatcher,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("trophystats-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	authHandler := auth.NewHandler(s.authService, s.versionInfo)
	authHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	workoutUpdates := dispatch.NewWorkoutUpdates(s.dispatcher, s.aggregator, s.evaluator)
	workoutsHandler := workouts.NewHandler(s.workoutsRepo, workoutUpdates)
	workoutsHandler.SetupRoutes(r)

	statsHandler := statistics.NewHandler(s.aggregator, s.statsRepo)
	statsHandler.SetupRoutes(r)

	trophiesHandler := trophies.NewHandler(s.evaluator, s.trophiesRepo, s.config.ProgressCacheTTL)
	trophiesHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.ReevaluateRateLimitAllowedPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
		))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.dispatcher != nil {
		log.Debugln("stopping dispatcher ...")
		s.dispatcher.Stop()
		log.Debugln("dispatcher stopped")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}
