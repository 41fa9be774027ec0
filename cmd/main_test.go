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

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2025-09-26") {
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

	if cfg.appHost != "localhost" || cfg.appPort != "8080" || cfg.logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.appHost, cfg.appPort, cfg.logLevel)
	}

	if cfg.pgHost != "localhost" || cfg.pgPort != 5432 || cfg.pgUser != "user" ||
		cfg.pgPassword != "password" || cfg.pgDB != "resume_generator" ||
		cfg.pgMaxOpenConns != 16 || cfg.pgMaxIdleConns != 8 || cfg.pgFallbackDSNs != nil {
		t.Errorf("unexpected postgres config")
	}

	if cfg.redisHost != "" || cfg.redisPort != 6379 || cfg.redisDB != 0 ||
		cfg.redisPoolSize != 10 || cfg.redisMinIdleConns != 2 || cfg.statsCacheTTL != 60*time.Second {
		t.Errorf("unexpected redis config")
	}

	if cfg.kafkaBrokers != nil || cfg.kafkaTopic != "audit-events" {
		t.Errorf("unexpected kafka config")
	}

	if cfg.jwtSecretKey != "my_super_secret_key" || cfg.jwtExpSecond != 86400 {
		t.Errorf("unexpected jwt config")
	}

	if cfg.freeTrialLimit != 3 {
		t.Errorf("unexpected free trial limit: %d", cfg.freeTrialLimit)
	}

	if cfg.summaryAPIURL != "" || cfg.razorpayKeyID != "" || cfg.adminKey != "" {
		t.Errorf("expected optional integrations to be unset")
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
	os.Setenv("POSTGRES_FALLBACK_DSNS", "postgres://a/db,postgres://b/db")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")
	os.Setenv("STATS_CACHE_TTL_SECOND", "120")

	os.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	os.Setenv("KAFKA_AUDIT_TOPIC", "events")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	os.Setenv("FREE_TRIAL_LIMIT", "5")

	os.Setenv("SUMMARY_API_URL", "https://summaries.example.com/generate")
	os.Setenv("SUMMARY_API_KEY", "apikey")

	os.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	os.Setenv("RAZORPAY_KEY_SECRET", "rzp_secret")

	os.Setenv("ADMIN_KEY", "admin123")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.appHost != "127.0.0.1" || cfg.appPort != "9090" || cfg.logLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if cfg.pgHost != "pg.example.com" || cfg.pgPort != 5433 || cfg.pgUser != "admin" ||
		cfg.pgPassword != "secret" || cfg.pgDB != "mydb" ||
		cfg.pgMaxOpenConns != 20 || cfg.pgMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if len(cfg.pgFallbackDSNs) != 2 || cfg.pgFallbackDSNs[0] != "postgres://a/db" {
		t.Errorf("unexpected fallback DSNs: %v", cfg.pgFallbackDSNs)
	}
	if cfg.redisHost != "redis.example.com" || cfg.redisPort != 6380 || cfg.redisDB != 2 ||
		cfg.redisPassword != "redispass" || cfg.redisPoolSize != 15 ||
		cfg.redisMinIdleConns != 5 || cfg.statsCacheTTL != 120*time.Second {
		t.Errorf("unexpected redis config")
	}
	if len(cfg.kafkaBrokers) != 2 || cfg.kafkaTopic != "events" {
		t.Errorf("unexpected kafka config")
	}
	if cfg.jwtSecretKey != "supersecret" || cfg.jwtExpSecond != 300 {
		t.Errorf("unexpected jwt config")
	}
	if cfg.freeTrialLimit != 5 {
		t.Errorf("unexpected free trial limit")
	}
	if cfg.summaryAPIURL != "https://summaries.example.com/generate" || cfg.summaryAPIKey != "apikey" {
		t.Errorf("unexpected summary API config")
	}
	if cfg.razorpayKeyID != "rzp_test_key" || cfg.razorpayKeySecret != "rzp_secret" {
		t.Errorf("unexpected razorpay config")
	}
	if cfg.adminKey != "admin123" {
		t.Errorf("unexpected admin key")
	}
}

func TestParseConfig_InvalidInt(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")

	_, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Fatal("expected error for invalid POSTGRES_PORT")
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

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

	cfg := &config{
		appHost:  "127.0.0.1",
		appPort:  "8086",
		logLevel: "debug",

		pgHost:         pgHost,
		pgPort:         pgPort.Int(),
		pgUser:         "user",
		pgPassword:     "password",
		pgDB:           "testdb",
		pgMaxOpenConns: 5,
		pgMaxIdleConns: 2,

		redisHost:         redisHost,
		redisPort:         redisPort.Int(),
		redisPoolSize:     10,
		redisMinIdleConns: 2,
		statsCacheTTL:     time.Minute,

		jwtSecretKey: "testsecret",
		jwtExpSecond: 60,

		freeTrialLimit: 3,
	}

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
