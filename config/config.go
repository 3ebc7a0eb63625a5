package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Gateway   GatewayConfig   `mapstructure:"gateway"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	Operator  OperatorConfig  `mapstructure:"operator"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
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
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	PoolSize    int           `mapstructure:"pool_size"`    // 0 = go-redis default
	DialTimeout time.Duration `mapstructure:"dial_timeout"` // 0 = go-redis default
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// GatewayConfig holds merchant credentials and environment hosts for the card gateway.
type GatewayConfig struct {
	MerchantID        string `mapstructure:"merchant_id"`
	MerchantKeyID     string `mapstructure:"merchant_key_id"`
	MerchantSecretKey string `mapstructure:"merchant_secret_key"` // base64 shared secret for HTTP signatures
	Sandbox           bool   `mapstructure:"sandbox"`
	SandboxHost       string `mapstructure:"sandbox_host"`
	ProductionHost    string `mapstructure:"production_host"`
	Scheme            string `mapstructure:"scheme"` // https outside tests
	CardTypes         string `mapstructure:"card_types"`
	ClientVersion     string `mapstructure:"client_version"`
	SingleMessageMode bool   `mapstructure:"single_message_mode"`
	DefaultStoreID    string `mapstructure:"default_store_id"` // used when a checkout names no store

	// ValidateSignatureRetryCount bounds capture-context verification attempts. 0 disables verification.
	ValidateSignatureRetryCount int           `mapstructure:"validate_signature_retry_count"`
	ValidateSignatureBackoff    time.Duration `mapstructure:"validate_signature_backoff"`
	Timeout                     time.Duration `mapstructure:"timeout"`
}

// Host returns the API host for the selected environment.
func (g GatewayConfig) Host(sandbox bool) string {
	if sandbox {
		return g.SandboxHost
	}
	return g.ProductionHost
}

// BaseURL returns scheme://host for the selected environment.
func (g GatewayConfig) BaseURL(sandbox bool) string {
	scheme := g.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + g.Host(sandbox)
}

// CardTypeList splits the comma separated card brand setting.
func (g GatewayConfig) CardTypeList() []string {
	var out []string
	for _, part := range strings.Split(g.CardTypes, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// WebhookConfig describes the gateway-side subscription this service maintains.
type WebhookConfig struct {
	Name            string        `mapstructure:"name"`
	Description     string        `mapstructure:"description"`
	ProductID       string        `mapstructure:"product_id"`
	EventTypes      []string      `mapstructure:"event_types"`
	ProxyDomain     string        `mapstructure:"proxy_domain"`
	SharedSecret    string        `mapstructure:"shared_secret"`
	NotificationTTL time.Duration `mapstructure:"notification_ttl"`
	RegisterOnStart bool          `mapstructure:"register_on_start"`
}

// VerifiesSignatures reports whether notification deliveries are checked against a shared secret.
func (w WebhookConfig) VerifiesSignatures() bool {
	return w.SharedSecret != ""
}

type OperatorConfig struct {
	KeyHash string `mapstructure:"key_hash"` // argon2id encoded; empty disables operator routes
}

// RateLimitConfig holds per-client request budgets. A zero limit disables the group.
type RateLimitConfig struct {
	Window        time.Duration `mapstructure:"window"`
	Payments      int64         `mapstructure:"payments"`
	Notifications int64         `mapstructure:"notifications"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CSG_.
// Nested keys use underscore: CSG_GATEWAY_MERCHANT_ID, CSG_DATABASE_HOST, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "payments")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("redis.dial_timeout", "5s")
	v.SetDefault("gateway.merchant_id", "")
	v.SetDefault("gateway.merchant_key_id", "")
	v.SetDefault("gateway.merchant_secret_key", "")
	v.SetDefault("gateway.sandbox", true)
	v.SetDefault("gateway.sandbox_host", "apitest.cybersource.com")
	v.SetDefault("gateway.production_host", "api.cybersource.com")
	v.SetDefault("gateway.scheme", "https")
	v.SetDefault("gateway.card_types", "VISA, MASTERCARD, AMEX, DISCOVER, DINERSCLUB, JCB, CARTESBANCAIRES, MAESTRO, CUP")
	v.SetDefault("gateway.client_version", "v2.0")
	v.SetDefault("gateway.single_message_mode", false)
	v.SetDefault("gateway.default_store_id", "")
	v.SetDefault("gateway.validate_signature_retry_count", 3)
	v.SetDefault("gateway.validate_signature_backoff", "200ms")
	v.SetDefault("gateway.timeout", "30s")
	v.SetDefault("webhook.name", "Card Gateway Webhook")
	v.SetDefault("webhook.description", "Notifies the order platform when a transaction held for fraud review is accepted or rejected.")
	v.SetDefault("webhook.product_id", "decisionManager")
	v.SetDefault("webhook.event_types", []string{
		"risk.casemanagement.decision.accept",
		"risk.casemanagement.decision.reject",
	})
	v.SetDefault("webhook.proxy_domain", "")
	v.SetDefault("webhook.shared_secret", "")
	v.SetDefault("webhook.notification_ttl", "24h")
	v.SetDefault("webhook.register_on_start", false)
	v.SetDefault("operator.key_hash", "")
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("rate_limit.payments", 100)
	v.SetDefault("rate_limit.notifications", 600)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CSG_GATEWAY_SANDBOX -> gateway.sandbox
	v.SetEnvPrefix("CSG")
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

	if cfg.Gateway.ValidateSignatureRetryCount < 0 {
		return nil, fmt.Errorf("gateway.validate_signature_retry_count must be >= 0, got %d", cfg.Gateway.ValidateSignatureRetryCount)
	}

	return &cfg, nil
}
