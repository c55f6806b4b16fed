package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, policy thresholds, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	Store        StoreConfig
	DB           DBConfig
	Redis        RedisConfig
	Kafka        KafkaConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Booking      BookingConfig
	Verification VerificationConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// Empty Addr disables the service definition cache.
type RedisConfig struct {
	Addr       string        `envconfig:"REDIS_ADDR"`
	Password   string        `envconfig:"REDIS_PASSWORD"`
	DB         int           `envconfig:"REDIS_DB" default:"0"`
	ServiceTTL time.Duration `envconfig:"REDIS_SERVICE_TTL" default:"5m"`
}

// Empty Brokers disables the outbox relay; events stay queued in booking_events.
type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS"`
	Topic        string        `envconfig:"KAFKA_TOPIC" default:"booking-events"`
	PollInterval time.Duration `envconfig:"KAFKA_RELAY_POLL_INTERVAL" default:"2s"`
	BatchSize    int           `envconfig:"KAFKA_RELAY_BATCH_SIZE" default:"100"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret        string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer        string        `envconfig:"JWT_ISSUER" default:"booking-core"`
	TokenDuration time.Duration `envconfig:"JWT_TOKEN_DURATION" default:"1h"`
}

type BookingConfig struct {
	FreeCancellationWindow time.Duration `envconfig:"BOOKING_FREE_CANCELLATION_WINDOW" default:"48h"`
	LateCancelFeePercent   int64         `envconfig:"BOOKING_LATE_CANCEL_FEE_PERCENT" default:"50"`
	NoShowFeePercent       int64         `envconfig:"BOOKING_NOSHOW_FEE_PERCENT" default:"100"`
	ScheduleTimeZone       string        `envconfig:"BOOKING_SCHEDULE_TIMEZONE" default:"UTC"`
}

type VerificationConfig struct {
	WindowOpen    time.Duration `envconfig:"VERIFY_WINDOW_OPEN" default:"3h"`
	Grace         time.Duration `envconfig:"VERIFY_GRACE" default:"1h"`
	CodeLength    int           `envconfig:"VERIFY_CODE_LENGTH" default:"6"`
	MaxAttempts   int           `envconfig:"VERIFY_MAX_ATTEMPTS" default:"5"`
	RatePerMinute int           `envconfig:"VERIFY_RATE_PER_MINUTE" default:"10"`
	RateBurst     int           `envconfig:"VERIFY_RATE_BURST" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.ScheduleTimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_SCHEDULE_TIMEZONE %q: %w", c.ScheduleTimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Store.Driver != StoreDriverPostgres && cfg.Store.Driver != StoreDriverMemory {
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Kafka: KafkaConfig{
			Topic:        "booking-events",
			PollInterval: time.Second,
			BatchSize:    10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:        "test-secret",
			Issuer:        "booking-core-test",
			TokenDuration: time.Hour,
		},
		Booking: BookingConfig{
			FreeCancellationWindow: 48 * time.Hour,
			LateCancelFeePercent:   50,
			NoShowFeePercent:       100,
			ScheduleTimeZone:       "UTC",
		},
		Verification: VerificationConfig{
			WindowOpen:    3 * time.Hour,
			Grace:         time.Hour,
			CodeLength:    6,
			MaxAttempts:   5,
			RatePerMinute: 60,
			RateBurst:     10,
		},
	}
}
