package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	PostgresSSLMode  string
	StorageTimeout   time.Duration

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	BaseCurrency    string
	OperatorWorkers int

	LookupCacheSize int
	LookupCacheTTL  time.Duration

	BootstrapAdminEmail    string
	BootstrapAdminPassword string

	LogLevel string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is fine, the process environment still applies.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "9446",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		PostgresSSLMode:  "disable",
		StorageTimeout:   5 * time.Second,
		JWTSecret:        "development-secret-change-me",
		TokenTTL:         30 * 24 * time.Hour,
		BcryptCost:       10,
		BaseCurrency:     "CNY",
		OperatorWorkers:  4,
		LookupCacheSize:  1024,
		LookupCacheTTL:   5 * time.Minute,
		LogLevel:         "info",
	}

	env.Port = getEnv("PORT", env.Port)
	env.PostgresAddress = getEnv("POSTGRES_ADDRESS", env.PostgresAddress)
	env.PostgresPort = getEnv("POSTGRES_PORT", env.PostgresPort)
	env.PostgresDB = getEnv("POSTGRES_DB", env.PostgresDB)
	env.PostgresUsername = getEnv("POSTGRES_USERNAME", env.PostgresUsername)
	env.PostgresPassword = getEnv("POSTGRES_PASSWORD", env.PostgresPassword)
	env.PostgresSSLMode = getEnv("POSTGRES_SSLMODE", env.PostgresSSLMode)
	env.JWTSecret = getEnv("JWT_SECRET", env.JWTSecret)
	env.BaseCurrency = strings.ToUpper(getEnv("BASE_CURRENCY", env.BaseCurrency))
	env.BootstrapAdminEmail = getEnv("BOOTSTRAP_ADMIN_EMAIL", "")
	env.BootstrapAdminPassword = getEnv("BOOTSTRAP_ADMIN_PASSWORD", "")
	env.LogLevel = getEnv("LOG_LEVEL", env.LogLevel)

	var err error
	if env.StorageTimeout, err = getEnvDuration("STORAGE_TIMEOUT", env.StorageTimeout); err != nil {
		return nil, err
	}
	if env.TokenTTL, err = getEnvDuration("TOKEN_TTL", env.TokenTTL); err != nil {
		return nil, err
	}
	if env.LookupCacheTTL, err = getEnvDuration("LOOKUP_CACHE_TTL", env.LookupCacheTTL); err != nil {
		return nil, err
	}
	if env.BcryptCost, err = getEnvInt("BCRYPT_COST", env.BcryptCost); err != nil {
		return nil, err
	}
	if env.OperatorWorkers, err = getEnvInt("OPERATOR_WORKERS", env.OperatorWorkers); err != nil {
		return nil, err
	}
	if env.LookupCacheSize, err = getEnvInt("LOOKUP_CACHE_SIZE", env.LookupCacheSize); err != nil {
		return nil, err
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// PostgresDSN builds the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=" + c.PostgresSSLMode
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %q", c.Port))
	}
	if c.StorageTimeout <= 0 {
		problems = append(problems, "STORAGE_TIMEOUT must be positive")
	}
	if c.TokenTTL <= 0 {
		problems = append(problems, "TOKEN_TTL must be positive")
	}
	if len(c.JWTSecret) < 16 {
		problems = append(problems, "JWT_SECRET must be at least 16 characters")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		problems = append(problems, fmt.Sprintf("invalid BCRYPT_COST %d", c.BcryptCost))
	}
	if len(c.BaseCurrency) != 3 {
		problems = append(problems, fmt.Sprintf("invalid BASE_CURRENCY %q", c.BaseCurrency))
	}
	if c.OperatorWorkers < 1 {
		problems = append(problems, "OPERATOR_WORKERS must be at least 1")
	}
	if c.LookupCacheSize < 1 {
		problems = append(problems, "LOOKUP_CACHE_SIZE must be at least 1")
	}
	if (c.BootstrapAdminEmail == "") != (c.BootstrapAdminPassword == "") {
		problems = append(problems, "BOOTSTRAP_ADMIN_EMAIL and BOOTSTRAP_ADMIN_PASSWORD must be set together")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); len(value) != 0 {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if len(value) == 0 {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return i, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if len(value) == 0 {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
