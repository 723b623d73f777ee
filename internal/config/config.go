package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bsimkins11/project-agent-admin/internal/secrets"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Backend   BackendConfig
	ConsoleDB ConsoleDBConfig
	Auth      AuthConfig
	Storage   StorageConfig
	Secrets   SecretsConfig
	Logging   LoggingConfig
	Server    ServerConfig
	CORS      CORSConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
	Migration MigrationConfig
	Taxonomy  TaxonomyConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

// BackendConfig holds connectivity settings for the external document API.
// All inventory, ingestion, classification and tenant data lives there; the
// console only keeps its own session and audit state locally.
type BackendConfig struct {
	// BaseURL is the document API root, e.g. https://api.example.com/api
	BaseURL string
	// APIKey is the bearer token presented on every backend call (from secrets)
	APIKey string
	// RequestTimeout is the per-call timeout (seconds)
	RequestTimeout int
	// BreakerEnabled toggles the circuit breaker around backend calls
	BreakerEnabled bool
	// BreakerMaxFailures is the consecutive failure count that opens the breaker
	BreakerMaxFailures int
	// BreakerCooldown is how long the breaker stays open (seconds)
	BreakerCooldown int
}

// ConsoleDBConfig holds settings for the local sqlite console database
// (audit log and session state)
type ConsoleDBConfig struct {
	Path string
}

// AuthConfig holds console authentication settings
type AuthConfig struct {
	// JWTSecret signs and verifies console bearer tokens (from secrets)
	JWTSecret string
	// Issuer is the expected token issuer
	Issuer string
	// APIKey allows system integrations to bypass JWT auth (from secrets)
	APIKey string
}

type StorageConfig struct {
	Mode                  string
	LocalBasePath         string
	CloudConnectionString string
	CloudContainer        string
	MaxUploadSizeMB       int64
}

type SecretsConfig struct {
	// Source determines where secrets are loaded from: "environment", "vault", or "auto"
	// "auto" uses environment in development, vault in staging/production
	Source       string
	KeyVaultName string
	CacheEnabled bool
	CacheTTL     int // seconds
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout int
	EnableSwagger  bool
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// SecurityConfig holds security header configuration
type SecurityConfig struct {
	EnableHSTS            bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
	HSTSPreload           bool
	ContentSecurityPolicy string
	FrameOptions          string
	ContentTypeNosniff    bool
	XSSProtection         string
	ReferrerPolicy        string
	PermissionsPolicy     string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled               bool
	RequestsPerMinute     int
	RequestsPerMinuteAuth int
	WhitelistIPs          []string
	WhitelistPaths        []string
}

// MigrationConfig pins the fixed targets of the one-shot RBAC migration.
// The console always posts these values regardless of prior state; the
// backend deduplicates re-invocations.
type MigrationConfig struct {
	ClientID  string
	ProjectID string
}

// TaxonomyConfig controls the classification taxonomy cache
type TaxonomyConfig struct {
	// CacheTTL is how long a fetched taxonomy stays fresh (seconds)
	CacheTTL int
	// RefreshEnabled enables the background refresh job
	RefreshEnabled bool
	// RefreshCron is the refresh schedule
	RefreshCron string
}

// RequestTimeoutDuration returns the backend per-call timeout as duration
func (b *BackendConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(b.RequestTimeout) * time.Second
}

// BreakerCooldownDuration returns the breaker open interval as duration
func (b *BackendConfig) BreakerCooldownDuration() time.Duration {
	return time.Duration(b.BreakerCooldown) * time.Second
}

// MaxUploadSizeBytes returns the upload cap in bytes
func (s *StorageConfig) MaxUploadSizeBytes() int64 {
	return s.MaxUploadSizeMB * 1024 * 1024
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// RequestTimeoutDuration returns request timeout as duration
func (s *ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

// CacheTTLDuration returns the taxonomy cache TTL as duration
func (t *TaxonomyConfig) CacheTTLDuration() time.Duration {
	return time.Duration(t.CacheTTL) * time.Second
}

// Load loads configuration from file and environment variables
// This is a basic load that doesn't fetch secrets from vault
// Use LoadWithSecrets for full secret resolution
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read from config file
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Environment fallbacks for values commonly set outside the config file
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = v.GetString("BACKEND_BASE_URL")
	}
	if cfg.Backend.APIKey == "" {
		cfg.Backend.APIKey = v.GetString("BACKEND_API_KEY")
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = v.GetString("CONSOLE_JWT_SECRET")
	}
	if cfg.Auth.APIKey == "" {
		cfg.Auth.APIKey = v.GetString("ADMIN_API_KEY")
	}
	if cfg.Secrets.KeyVaultName == "" {
		cfg.Secrets.KeyVaultName = v.GetString("AZURE_KEY_VAULT_NAME")
	}

	return &cfg, nil
}

// LoadWithSecrets loads configuration and resolves secrets from the
// configured source. In development secrets come from env vars; in
// staging/production they come from Azure Key Vault when USE_AZURE_KEY_VAULT
// is enabled.
func LoadWithSecrets(ctx context.Context, logger *zap.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	provider, err := secrets.NewProvider(&secrets.ProviderConfig{
		Source:       secrets.SecretSource(cfg.Secrets.Source),
		VaultName:    cfg.Secrets.KeyVaultName,
		Environment:  cfg.App.Environment,
		CacheEnabled: cfg.Secrets.CacheEnabled,
		CacheTTL:     time.Duration(cfg.Secrets.CacheTTL) * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets provider: %w", err)
	}

	if !provider.IsVaultEnabled() {
		logger.Info("Using environment variables for secrets",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	logger.Info("Loading secrets from Azure Key Vault",
		zap.String("key_vault_name", cfg.Secrets.KeyVaultName),
	)

	if apiKey, err := provider.GetSecretOrEnv(ctx, "BACKEND-API-KEY", "BACKEND_API_KEY"); err == nil && apiKey != "" {
		cfg.Backend.APIKey = apiKey
	}
	if jwtSecret, err := provider.GetSecretOrEnv(ctx, "CONSOLE-JWT-SECRET", "CONSOLE_JWT_SECRET"); err == nil && jwtSecret != "" {
		cfg.Auth.JWTSecret = jwtSecret
	}
	if adminKey, err := provider.GetSecretOrEnv(ctx, "admin-api-key", "ADMIN_API_KEY"); err == nil && adminKey != "" {
		cfg.Auth.APIKey = adminKey
	}
	if connStr, err := provider.GetSecretOrEnv(ctx, "storage-connection-string", "STORAGE_CLOUDCONNECTIONSTRING"); err == nil && connStr != "" {
		cfg.Storage.CloudConnectionString = connStr
	}

	logger.Info("Secrets loaded from vault successfully")
	return cfg, nil
}

// Validate checks that required settings are present before startup
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend base URL is required (BACKEND_BASE_URL)")
	}
	if c.Auth.JWTSecret == "" && c.App.Environment != "development" {
		return fmt.Errorf("console JWT secret is required outside development (CONSOLE_JWT_SECRET)")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Project Agent Admin Console")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	// Backend defaults
	v.SetDefault("backend.requestTimeout", 30)
	v.SetDefault("backend.breakerEnabled", true)
	v.SetDefault("backend.breakerMaxFailures", 5)
	v.SetDefault("backend.breakerCooldown", 30)

	// Console database defaults
	v.SetDefault("consoledb.path", "./console.db")

	// Auth defaults
	v.SetDefault("auth.issuer", "project-agent-admin")

	// Storage defaults
	v.SetDefault("storage.mode", "local")
	v.SetDefault("storage.localBasePath", "./spool")
	v.SetDefault("storage.cloudContainer", "upload-spool")
	v.SetDefault("storage.maxUploadSizeMB", 50)

	// Secrets defaults
	v.SetDefault("secrets.source", "auto")
	v.SetDefault("secrets.cacheEnabled", true)
	v.SetDefault("secrets.cacheTTL", 300) // 5 minutes

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Server defaults
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 30)
	v.SetDefault("server.requestTimeout", 60)
	v.SetDefault("server.enableSwagger", true)

	// CORS defaults - restrictive by default
	v.SetDefault("cors.allowedOrigins", []string{})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-Request-ID"})
	v.SetDefault("cors.exposedHeaders", []string{"Location", "X-Request-ID"})
	v.SetDefault("cors.allowCredentials", true)
	v.SetDefault("cors.maxAge", 300) // 5 minutes

	// Security header defaults - secure by default
	v.SetDefault("security.enableHSTS", false)
	v.SetDefault("security.hstsMaxAge", 31536000) // 1 year
	v.SetDefault("security.hstsIncludeSubdomains", true)
	v.SetDefault("security.hstsPreload", false)
	v.SetDefault("security.contentSecurityPolicy", "default-src 'self'")
	v.SetDefault("security.frameOptions", "DENY")
	v.SetDefault("security.contentTypeNosniff", true)
	v.SetDefault("security.xssProtection", "1; mode=block")
	v.SetDefault("security.referrerPolicy", "strict-origin-when-cross-origin")
	v.SetDefault("security.permissionsPolicy", "geolocation=(), microphone=(), camera=()")

	// Rate limiting defaults
	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 60)
	v.SetDefault("rateLimit.requestsPerMinuteAuth", 120)
	v.SetDefault("rateLimit.whitelistIPs", []string{"127.0.0.1", "::1"})
	v.SetDefault("rateLimit.whitelistPaths", []string{"/health", "/health/backend", "/health/ready", "/metrics"})

	// RBAC migration targets
	v.SetDefault("migration.clientId", "client-transparent-partners")
	v.SetDefault("migration.projectId", "project-chr-martech")

	// Taxonomy cache defaults
	v.SetDefault("taxonomy.cacheTTL", 300)
	v.SetDefault("taxonomy.refreshEnabled", true)
	v.SetDefault("taxonomy.refreshCron", "@every 10m")
}
