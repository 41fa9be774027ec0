package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/easyjobs/resume-summary-api/internal/facades"
	"github.com/easyjobs/resume-summary-api/internal/handlers"
	"github.com/easyjobs/resume-summary-api/internal/jwt"
	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/middlewares"
	"github.com/easyjobs/resume-summary-api/internal/repositories"
	"github.com/easyjobs/resume-summary-api/internal/services"

	_ "github.com/easyjobs/resume-summary-api/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// summaryAPITimeout is the hard timeout on remote generation calls.
const summaryAPITimeout = 30 * time.Second

// config holds everything parsed from flags and environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int
	pgFallbackDSNs []string

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	statsCacheTTL     time.Duration

	kafkaBrokers []string
	kafkaTopic   string

	jwtSecretKey string
	jwtExpSecond int

	freeTrialLimit int

	summaryAPIURL string
	summaryAPIKey string

	razorpayKeyID     string
	razorpayKeySecret string

	adminKey string
}

// @title resume-summary-api
// @version 1.0.0
// @description Service for account entitlement, free-trial quotas, premium payments, and resume-summary generation
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}

	cfg := &config{
		appHost:  getEnv("APP_HOST", "localhost"),
		appPort:  getEnv("APP_PORT", "8080"),
		logLevel: getEnv("APP_LOG_LEVEL", "info"),

		pgHost:     getEnv("POSTGRES_HOST", "localhost"),
		pgUser:     getEnv("POSTGRES_USER", "user"),
		pgPassword: getEnv("POSTGRES_PASSWORD", "password"),
		pgDB:       getEnv("POSTGRES_DB", "resume_generator"),

		redisHost:     getEnv("REDIS_HOST", ""),
		redisPassword: getEnv("REDIS_PASSWORD", ""),

		kafkaTopic: getEnv("KAFKA_AUDIT_TOPIC", "audit-events"),

		jwtSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),

		summaryAPIURL: getEnv("SUMMARY_API_URL", ""),
		summaryAPIKey: getEnv("SUMMARY_API_KEY", ""),

		razorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		razorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),

		adminKey: getEnv("ADMIN_KEY", ""),
	}

	var err error
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if fallbacks := getEnv("POSTGRES_FALLBACK_DSNS", ""); fallbacks != "" {
		cfg.pgFallbackDSNs = strings.Split(fallbacks, ",")
	}

	if cfg.redisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.redisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.redisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.redisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	statsCacheTTLSecond, err := getEnvInt("STATS_CACHE_TTL_SECOND", 60)
	if err != nil {
		return nil, err
	}
	cfg.statsCacheTTL = time.Duration(statsCacheTTLSecond) * time.Second

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.kafkaBrokers = strings.Split(brokers, ",")
	}

	if cfg.jwtExpSecond, err = getEnvInt("JWT_EXP_SECOND", 86400); err != nil {
		return nil, err
	}

	if cfg.freeTrialLimit, err = getEnvInt("FREE_TRIAL_LIMIT", 3); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL, trying the primary DSN then any configured fallbacks
	primaryDSN := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	dsns := append([]string{primaryDSN}, cfg.pgFallbackDSNs...)

	db, err := repositories.Connect(ctx, "pgx", dsns, 10*time.Second)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)

	// Connect to Redis when configured; the stats cache degrades to storage-only without it
	var rdb *redis.Client
	if cfg.redisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password:     cfg.redisPassword,
			DB:           cfg.redisDB,
			PoolSize:     cfg.redisPoolSize,
			MinIdleConns: cfg.redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()
	}

	// Kafka audit writer, optional
	var kafkaWriter *kafka.Writer
	if len(cfg.kafkaBrokers) > 0 {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBrokers...),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
	}

	// Initialize JWT service
	tokens := jwt.New(cfg.jwtSecretKey, time.Duration(cfg.jwtExpSecond)*time.Second)

	// Initialize repositories
	accountReadRepo := repositories.NewAccountReadRepository(db)
	accountWriteRepo := repositories.NewAccountWriteRepository(db)
	generationWriteRepo := repositories.NewGenerationWriteRepository(db)
	statsReadRepo := repositories.NewStatsReadRepository(db)

	var statsCache services.StatsCache
	if rdb != nil {
		statsCache = repositories.NewStatsCacheRepository(rdb, cfg.statsCacheTTL)
	}

	// Initialize facades
	var summaryAPI services.SummaryGenerator
	if cfg.summaryAPIURL != "" {
		summaryAPI = facades.NewSummaryAPIFacade(cfg.summaryAPIURL, cfg.summaryAPIKey, summaryAPITimeout)
	} else {
		logger.Log.Warn("No summary API URL configured, using template generation only")
	}

	var orderFacade services.OrderFacade
	if cfg.razorpayKeyID != "" && cfg.razorpayKeySecret != "" {
		orderFacade = facades.NewRazorpayFacade(cfg.razorpayKeyID, cfg.razorpayKeySecret)
	} else {
		logger.Log.Warn("Razorpay credentials not configured, payment endpoints will fail cleanly")
	}

	// kafka-go's Writer satisfies services.KafkaWriter, but a typed nil must stay nil
	var auditWriter services.KafkaWriter
	if kafkaWriter != nil {
		auditWriter = kafkaWriter
	}

	// Initialize services
	authService := services.NewAuthService(accountReadRepo, accountWriteRepo, tokens)
	quotaService := services.NewQuotaService(accountWriteRepo, cfg.freeTrialLimit)
	paymentService := services.NewPaymentService(accountWriteRepo, orderFacade, cfg.razorpayKeySecret, auditWriter)
	summaryService := services.NewSummaryService(summaryAPI, quotaService, accountReadRepo, generationWriteRepo, auditWriter)
	statsService := services.NewStatsService(statsReadRepo, statsCache, 24*time.Hour)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/api/auth/signup", handlers.NewSignupHandler(authService))
	r.Post("/api/auth/login", handlers.NewLoginHandler(authService))
	r.Get("/api/health", handlers.NewHealthHandler())
	r.Get("/api/admin/stats", handlers.NewStatsHandler(statsService, cfg.adminKey))

	// Protected routes behind the session gate
	authMiddleware := middlewares.AuthMiddleware(tokens, authService)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/api/usage-status", handlers.NewUsageStatusHandler(quotaService))
		r.Post("/api/generate-summary", handlers.NewGenerateSummaryHandler(summaryService))
		r.Post("/api/upgrade-premium", handlers.NewUpgradePremiumHandler(paymentService))
		r.Post("/api/create-razorpay-order", handlers.NewCreateOrderHandler(paymentService))
		r.Post("/api/verify-razorpay-payment", handlers.NewVerifyPaymentHandler(paymentService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
