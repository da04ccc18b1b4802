package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Provider identifiers known to the gateway. Kept here so defaults can be
// registered for every provider key.
var providerIDs = []string{"orange_money", "moov_money", "wave", "telecel_money"}

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig              `mapstructure:"server"`
	Database   DatabaseConfig            `mapstructure:"database"`
	Redis      RedisConfig               `mapstructure:"redis"`
	Storage    StorageConfig             `mapstructure:"storage"`
	Auth       AuthConfig                `mapstructure:"auth"`
	Payments   PaymentsConfig            `mapstructure:"payments"`
	Wallet     WalletConfig              `mapstructure:"wallet"`
	Gateway    GatewayConfig             `mapstructure:"gateway"`
	Providers  map[string]ProviderConfig `mapstructure:"providers"`
	Encryption EncryptionConfig          `mapstructure:"encryption"`
	Log        LogConfig                 `mapstructure:"log"`
	Metrics    MetricsConfig             `mapstructure:"metrics"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres, memory
}

// AuthConfig configures validation of platform-issued bearer tokens and the
// shared key required on the server-to-server dispatch endpoint.
type AuthConfig struct {
	JWTSecret  string `mapstructure:"jwt_secret"`
	JWTIssuer  string `mapstructure:"jwt_issuer"`
	ServiceKey string `mapstructure:"service_key"`
}

type PaymentsConfig struct {
	PlatformFeeRate float64 `mapstructure:"platform_fee_rate"`
	Currency        string  `mapstructure:"currency"`
}

type WalletConfig struct {
	ApplicationFee             int64 `mapstructure:"application_fee"`
	EnforceRechargeIdempotency bool  `mapstructure:"enforce_recharge_idempotency"`
	IdempotencyTTLHours        int   `mapstructure:"idempotency_ttl_hours"`
}

type GatewayConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	CallbackURL string        `mapstructure:"callback_url"`
	ReturnURL   string        `mapstructure:"return_url"`
}

// ProviderConfig holds the server-side credentials for one mobile-money provider.
type ProviderConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	MerchantID     string `mapstructure:"merchant_id"`
	CallbackSecret string `mapstructure:"callback_secret"`
}

// Configured reports whether both required credentials are present.
func (p ProviderConfig) Configured() bool {
	return p.APIKey != "" && p.MerchantID != ""
}

type EncryptionConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BHP_ (BuilderHub Payments).
// Nested keys use underscore: BHP_DATABASE_HOST, BHP_PROVIDERS_WAVE_API_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "builderhub")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_issuer", "")
	v.SetDefault("auth.service_key", "")
	v.SetDefault("payments.platform_fee_rate", 0.05)
	v.SetDefault("payments.currency", "XOF")
	v.SetDefault("wallet.application_fee", 1000)
	v.SetDefault("wallet.enforce_recharge_idempotency", true)
	v.SetDefault("wallet.idempotency_ttl_hours", 24)
	v.SetDefault("gateway.timeout", "30s")
	v.SetDefault("gateway.callback_url", "")
	v.SetDefault("gateway.return_url", "")
	v.SetDefault("encryption.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// Provider keys need defaults so AutomaticEnv can resolve them during Unmarshal.
	for _, id := range providerIDs {
		v.SetDefault("providers."+id+".base_url", "")
		v.SetDefault("providers."+id+".api_key", "")
		v.SetDefault("providers."+id+".merchant_id", "")
		v.SetDefault("providers."+id+".callback_secret", "")
	}

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: BHP_DATABASE_HOST -> database.host
	v.SetEnvPrefix("BHP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values that would make the payment flow misbehave.
func (c *Config) Validate() error {
	if c.Payments.PlatformFeeRate < 0 || c.Payments.PlatformFeeRate >= 1 {
		return fmt.Errorf("payments.platform_fee_rate must be in [0, 1), got %v", c.Payments.PlatformFeeRate)
	}
	if c.Wallet.ApplicationFee <= 0 {
		return fmt.Errorf("wallet.application_fee must be positive, got %d", c.Wallet.ApplicationFee)
	}
	switch c.Storage.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("storage.driver must be postgres or memory, got %q", c.Storage.Driver)
	}
	return nil
}

// Provider returns the credentials for a provider id (zero value when absent).
func (c *Config) Provider(id string) ProviderConfig {
	if c.Providers == nil {
		return ProviderConfig{}
	}
	return c.Providers[id]
}

// ProviderIDs lists the provider keys with registered defaults.
func ProviderIDs() []string {
	out := make([]string, len(providerIDs))
	copy(out, providerIDs)
	return out
}
