package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-29"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	// Check if all expected strings are present
	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2026-08-29") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.AppHost != "localhost" || cfg.AppPort != "8080" || cfg.LogLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.AppHost, cfg.AppPort, cfg.LogLevel)
	}

	// PostgreSQL
	if cfg.PgHost != "localhost" || cfg.PgPort != 5432 || cfg.PgUser != "user" || cfg.PgPassword != "password" || cfg.PgDB != "database" ||
		cfg.PgMaxOpenConns != 16 || cfg.PgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Redis
	if cfg.RedisHost != "localhost" || cfg.RedisPort != 6379 || cfg.RedisDB != 0 || cfg.RedisPassword != "" ||
		cfg.RedisPoolSize != 10 || cfg.RedisMinIdleConns != 2 {
		t.Errorf("unexpected redis config")
	}

	// Kafka is optional and off by default
	if cfg.KafkaBroker != "" || cfg.KafkaTopic != "vault-transactions" {
		t.Errorf("unexpected kafka config")
	}

	// Chain and registry
	if cfg.RegistryURL != "http://localhost:3000" || cfg.BridgeRPCURL != "http://localhost:8545" ||
		cfg.BridgeWSURL != "" || cfg.ChainID != "713715" || len(cfg.SupportedVaults) != 0 {
		t.Errorf("unexpected chain config")
	}

	// JWT
	if cfg.JWTSecretKey != "my_super_secret_key" || cfg.JWTExpSecond != 3600 {
		t.Errorf("unexpected jwt config")
	}

	// Orchestration tuning
	if cfg.VaultCacheTTLSecond != 60 || cfg.ReceiptPollMillis != 2000 || cfg.WatchTimeoutSecond != 300 ||
		cfg.AutoResetSecond != 0 || cfg.BalanceTTLSecond != 120 || cfg.BalanceDebounceMilli != 500 {
		t.Errorf("unexpected orchestration config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")

	os.Setenv("KAFKA_BROKER", "kafka.example.com:9092")
	os.Setenv("KAFKA_TOPIC", "settled-events")

	os.Setenv("REGISTRY_URL", "https://registry.example.com")
	os.Setenv("BRIDGE_RPC_URL", "https://bridge.example.com/rpc")
	os.Setenv("BRIDGE_WS_URL", "wss://bridge.example.com/ws")
	os.Setenv("CHAIN_ID", "1329")
	os.Setenv("SUPPORTED_VAULTS", "0x1111111111111111111111111111111111111111, 0x2222222222222222222222222222222222222222")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	os.Setenv("VAULT_CACHE_TTL_SECOND", "30")
	os.Setenv("RECEIPT_POLL_MS", "500")
	os.Setenv("WATCH_TIMEOUT_SECOND", "120")
	os.Setenv("AUTO_RESET_SECOND", "5")
	os.Setenv("BALANCE_TTL_SECOND", "60")
	os.Setenv("BALANCE_DEBOUNCE_MS", "250")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.AppHost != "127.0.0.1" || cfg.AppPort != "9090" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if cfg.PgHost != "pg.example.com" || cfg.PgPort != 5433 || cfg.PgUser != "admin" || cfg.PgPassword != "secret" || cfg.PgDB != "mydb" ||
		cfg.PgMaxOpenConns != 20 || cfg.PgMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.RedisHost != "redis.example.com" || cfg.RedisPort != 6380 || cfg.RedisDB != 2 || cfg.RedisPassword != "redispass" ||
		cfg.RedisPoolSize != 15 || cfg.RedisMinIdleConns != 5 {
		t.Errorf("unexpected redis config")
	}
	if cfg.KafkaBroker != "kafka.example.com:9092" || cfg.KafkaTopic != "settled-events" {
		t.Errorf("unexpected kafka config")
	}
	if cfg.RegistryURL != "https://registry.example.com" || cfg.BridgeRPCURL != "https://bridge.example.com/rpc" ||
		cfg.BridgeWSURL != "wss://bridge.example.com/ws" || cfg.ChainID != "1329" {
		t.Errorf("unexpected chain config")
	}
	if len(cfg.SupportedVaults) != 2 || cfg.SupportedVaults[0] != "0x1111111111111111111111111111111111111111" {
		t.Errorf("unexpected supported vaults: %v", cfg.SupportedVaults)
	}
	if cfg.JWTSecretKey != "supersecret" || cfg.JWTExpSecond != 300 {
		t.Errorf("unexpected jwt config")
	}
	if cfg.VaultCacheTTLSecond != 30 || cfg.ReceiptPollMillis != 500 || cfg.WatchTimeoutSecond != 120 ||
		cfg.AutoResetSecond != 5 || cfg.BalanceTTLSecond != 60 || cfg.BalanceDebounceMilli != 250 {
		t.Errorf("unexpected orchestration config")
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Run ------------------
	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cfg := config{
		AppHost:  "127.0.0.1",
		AppPort:  "8086",
		LogLevel: "debug",

		PgHost:         pgHost,
		PgPort:         pgPort.Int(),
		PgUser:         "user",
		PgPassword:     "password",
		PgDB:           "testdb",
		PgMaxOpenConns: 5,
		PgMaxIdleConns: 2,

		RedisHost:         redisHost,
		RedisPort:         redisPort.Int(),
		RedisPoolSize:     10,
		RedisMinIdleConns: 2,

		RegistryURL:  "http://localhost:3000",
		BridgeRPCURL: "http://localhost:8545",
		ChainID:      "713715",

		JWTSecretKey: "testsecret",
		JWTExpSecond: 60,

		VaultCacheTTLSecond:  60,
		ReceiptPollMillis:    2000,
		WatchTimeoutSecond:   300,
		BalanceTTLSecond:     120,
		BalanceDebounceMilli: 500,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
