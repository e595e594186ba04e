package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	AES        AESConfig        `mapstructure:"aes"`
	Log        LogConfig        `mapstructure:"log"`
	Wallet     WalletConfig     `mapstructure:"wallet"`
	Checkout   CheckoutConfig   `mapstructure:"checkout"`
	Topup      TopupConfig      `mapstructure:"topup"`
	CashIn     CashInConfig     `mapstructure:"cashin"`
	Codes      CodesConfig      `mapstructure:"codes"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Events     EventsConfig     `mapstructure:"events"`
	Janitor    JanitorConfig    `mapstructure:"janitor"`
	Retry      RetryConfig      `mapstructure:"retry"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
	// MigrateOnStart applies pending schema migrations before serving.
	MigrateOnStart bool `mapstructure:"migrate_on_start"`
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
	LockTimeout     time.Duration `mapstructure:"lock_timeout"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// MigrateURL returns the DSN in the pgx5:// scheme expected by golang-migrate.
func (d DatabaseConfig) MigrateURL() string {
	return "pgx5" + strings.TrimPrefix(d.DSN(), "postgres")
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

// JWTConfig validates identity tokens issued by the account subsystem.
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

type WalletConfig struct {
	Currency string `mapstructure:"currency"`
}

// CheckoutConfig carries the fee and tax schedule used by the checkout calculator.
type CheckoutConfig struct {
	DeliveryFee    float64 `mapstructure:"delivery_fee"`
	ServiceFeeMin  float64 `mapstructure:"service_fee_min"`
	ServiceFeeRate float64 `mapstructure:"service_fee_rate"`
	TaxRate        float64 `mapstructure:"tax_rate"`
}

type TopupMethodConfig struct {
	Min          float64 `mapstructure:"min"`
	Max          float64 `mapstructure:"max"`
	Instructions string  `mapstructure:"instructions"`
}

type TopupConfig struct {
	TTL     time.Duration                `mapstructure:"ttl"`
	Methods map[string]TopupMethodConfig `mapstructure:"methods"`
}

type CashInConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	PartnerCacheTTL time.Duration `mapstructure:"partner_cache_ttl"`
}

type CodesConfig struct {
	MaxAttempts       int `mapstructure:"max_attempts"`
	MaxInsertAttempts int `mapstructure:"max_insert_attempts"`
}

type SettlementConfig struct {
	// PlatformOwnerID receives fees and tax. Empty means the merchant is credited the whole total.
	PlatformOwnerID string        `mapstructure:"platform_owner_id"`
	IdempotencyTTL  time.Duration `mapstructure:"idempotency_ttl"`
}

type EventsConfig struct {
	Driver       string   `mapstructure:"driver"` // redis, kafka, none
	Channel      string   `mapstructure:"channel"`
	KafkaBrokers []string `mapstructure:"kafka_brokers"`
	KafkaTopic   string   `mapstructure:"kafka_topic"`
}

type JanitorConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

type RetryConfig struct {
	MaxElapsed      time.Duration `mapstructure:"max_elapsed"`
	InitialInterval time.Duration `mapstructure:"initial_interval"`
}

// Load reads configuration from an optional .env file, the config file and
// environment variables, in increasing order of precedence. Prefix: DWP_
// (delivery wallet platform). Nested keys use underscore: DWP_DATABASE_HOST.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("DWP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

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

// Validate rejects fee schedules and limits that would break money invariants.
func (c *Config) Validate() error {
	if c.Checkout.DeliveryFee < 0 || c.Checkout.ServiceFeeMin < 0 ||
		c.Checkout.ServiceFeeRate < 0 || c.Checkout.TaxRate < 0 {
		return fmt.Errorf("checkout fees and rates must not be negative")
	}
	for name, m := range c.Topup.Methods {
		if m.Min <= 0 || m.Max < m.Min {
			return fmt.Errorf("topup method %q: invalid limits [%v, %v]", name, m.Min, m.Max)
		}
	}
	switch c.Events.Driver {
	case "redis", "kafka", "none", "":
	default:
		return fmt.Errorf("unknown events driver %q", c.Events.Driver)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.migrate_on_start", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "delivery_wallet")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.lock_timeout", "5s")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "delivery-accounts")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("wallet.currency", "USD")

	v.SetDefault("checkout.delivery_fee", 1500)
	v.SetDefault("checkout.service_fee_min", 500)
	v.SetDefault("checkout.service_fee_rate", 0.02)
	v.SetDefault("checkout.tax_rate", 0.165)

	v.SetDefault("topup.ttl", "24h")
	v.SetDefault("topup.methods", map[string]any{
		"bank_transfer": map[string]any{
			"min":          100,
			"max":          5000000,
			"instructions": "Transfer the exact amount and quote the reference code in the payment note.",
		},
		"mobile_money": map[string]any{
			"min":          100,
			"max":          1000000,
			"instructions": "Send the exact amount to the merchant number and enter the reference code as the message.",
		},
	})

	v.SetDefault("cashin.ttl", "30m")
	v.SetDefault("cashin.partner_cache_ttl", "5m")

	v.SetDefault("codes.max_attempts", 100)
	v.SetDefault("codes.max_insert_attempts", 5)

	v.SetDefault("settlement.platform_owner_id", "")
	v.SetDefault("settlement.idempotency_ttl", "24h")

	v.SetDefault("events.driver", "redis")
	v.SetDefault("events.channel", "wallet_events")
	v.SetDefault("events.kafka_brokers", []string{"localhost:9092"})
	v.SetDefault("events.kafka_topic", "wallet-events")

	v.SetDefault("janitor.enabled", false)
	v.SetDefault("janitor.schedule", "@every 5m")

	v.SetDefault("retry.max_elapsed", "2s")
	v.SetDefault("retry.initial_interval", "50ms")
}
