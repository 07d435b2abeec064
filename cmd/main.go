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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/seidlp/vault-gateway/internal/facades"
	"github.com/seidlp/vault-gateway/internal/handlers"
	"github.com/seidlp/vault-gateway/internal/jwt"
	"github.com/seidlp/vault-gateway/internal/logger"
	"github.com/seidlp/vault-gateway/internal/middlewares"
	"github.com/seidlp/vault-gateway/internal/repositories"
	"github.com/seidlp/vault-gateway/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title vault-gateway API
// @version 1.0.0
// @description Gateway between vault UI clients and the SEI DLP vault contracts: vault listings, balances, positions and deposit/withdrawal orchestration
// @host localhost:8080
// @BasePath /api
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

// config holds all application, database, Redis, Kafka, chain, and JWT
// configuration parsed from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBroker string
	KafkaTopic  string

	RegistryURL     string
	BridgeRPCURL    string
	BridgeWSURL     string
	ChainID         string
	SupportedVaults []string

	JWTSecretKey string
	JWTExpSecond int

	VaultCacheTTLSecond  int
	ReceiptPollMillis    int
	WatchTimeoutSecond   int
	AutoResetSecond      int
	BalanceTTLSecond     int
	BalanceDebounceMilli int
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key, defaultValue string) (int, error) {
		return strconv.Atoi(getEnv(key, defaultValue))
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PgUser = getEnv("POSTGRES_USER", "user")
	cfg.PgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PgDB = getEnv("POSTGRES_DB", "database")
	if cfg.PgPort, err = getEnvInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config
	cfg.KafkaBroker = getEnv("KAFKA_BROKER", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "vault-transactions")

	// Chain and registry config
	cfg.RegistryURL = getEnv("REGISTRY_URL", "http://localhost:3000")
	cfg.BridgeRPCURL = getEnv("BRIDGE_RPC_URL", "http://localhost:8545")
	cfg.BridgeWSURL = getEnv("BRIDGE_WS_URL", "")
	cfg.ChainID = getEnv("CHAIN_ID", "713715")
	if raw := getEnv("SUPPORTED_VAULTS", ""); raw != "" {
		for _, addr := range strings.Split(raw, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				cfg.SupportedVaults = append(cfg.SupportedVaults, addr)
			}
		}
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getEnvInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	// Orchestration tuning
	if cfg.VaultCacheTTLSecond, err = getEnvInt("VAULT_CACHE_TTL_SECOND", "60"); err != nil {
		return
	}
	if cfg.ReceiptPollMillis, err = getEnvInt("RECEIPT_POLL_MS", "2000"); err != nil {
		return
	}
	if cfg.WatchTimeoutSecond, err = getEnvInt("WATCH_TIMEOUT_SECOND", "300"); err != nil {
		return
	}
	if cfg.AutoResetSecond, err = getEnvInt("AUTO_RESET_SECOND", "0"); err != nil {
		return
	}
	if cfg.BalanceTTLSecond, err = getEnvInt("BALANCE_TTL_SECOND", "120"); err != nil {
		return
	}
	if cfg.BalanceDebounceMilli, err = getEnvInt("BALANCE_DEBOUNCE_MS", "500"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, chain facades, and
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for settled-transaction events. Optional: without a
	// broker the orchestrator just skips publishing.
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBroker),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	jwtSvc := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Initialize facades
	registryFacade := facades.NewVaultRegistryFacade(cfg.RegistryURL)
	chainGateway := facades.NewChainGatewayFacade(cfg.BridgeRPCURL, cfg.ChainID)
	receiptWatcher := facades.NewReceiptWatcher(cfg.BridgeWSURL, chainGateway,
		time.Duration(cfg.ReceiptPollMillis)*time.Millisecond)

	// Initialize repositories
	vaultCache := repositories.NewVaultCacheRepository(rdb, cfg.ChainID,
		time.Duration(cfg.VaultCacheTTLSecond)*time.Second)
	txWriterRepo := repositories.NewTransactionWriterRepository(db)
	txReaderRepo := repositories.NewTransactionReaderRepository(db)

	// Initialize services
	vaultService := services.NewVaultService(registryFacade, vaultCache, cfg.ChainID, cfg.SupportedVaults)
	balanceKeeper, err := services.NewBalanceKeeper(chainGateway,
		time.Duration(cfg.BalanceTTLSecond)*time.Second,
		time.Duration(cfg.BalanceDebounceMilli)*time.Millisecond)
	if err != nil {
		logger.Log.Fatal("failed to initialize balance keeper:", err)
	}

	orchestrators := services.NewOrchestratorPool(func() *services.Orchestrator {
		return services.NewOrchestrator(
			chainGateway,
			receiptWatcher,
			vaultService,
			balanceKeeper,
			txWriterRepo,
			kafkaWriter,
			time.Duration(cfg.WatchTimeoutSecond)*time.Second,
			time.Duration(cfg.AutoResetSecond)*time.Second,
		)
	})

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(jwtSvc)
	vaultsHandler := handlers.NewGetVaultsHandler(vaultService)
	vaultHandler := handlers.NewGetVaultHandler(vaultService)
	balanceHandler := handlers.NewGetBalanceHandler(balanceKeeper, jwtSvc)
	positionHandler := handlers.NewGetPositionHandler(chainGateway, jwtSvc)
	depositHandler := handlers.NewDepositHandler(orchestrators, jwtSvc)
	withdrawHandler := handlers.NewWithdrawHandler(orchestrators, jwtSvc)
	statusHandler := handlers.NewTransactionStatusHandler(orchestrators, jwtSvc)
	resetHandler := handlers.NewTransactionResetHandler(orchestrators, jwtSvc)
	historyHandler := handlers.NewTransactionHistoryHandler(txReaderRepo, jwtSvc)
	detailHandler := handlers.NewTransactionDetailHandler(txReaderRepo, jwtSvc)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/api/session", sessionHandler)
	r.Get("/api/vaults", vaultsHandler)
	r.Get("/api/vaults/{address}", vaultHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/api/balance", balanceHandler)
		r.Get("/api/vaults/{address}/position", positionHandler)
		r.Post("/api/vaults/{address}/deposit", depositHandler)
		r.Post("/api/vaults/{address}/withdraw", withdrawHandler)
		r.Get("/api/transactions/current", statusHandler)
		r.Post("/api/transactions/reset", resetHandler)
		r.Get("/api/transactions", historyHandler)
		r.Get("/api/transactions/{id}", detailHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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
