package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Redis   RedisConfig
	AMQP    AMQPConfig
	Payment PaymentConfig
	Booking BookingConfig
	Site    SiteConfig
	Metrics MetricsConfig
	Tracing TracingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
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

// Tokens are minted by the account service; this service only validates them.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// An empty URL selects the logging sender.
type AMQPConfig struct {
	URL   string `envconfig:"AMQP_URL"`
	Queue string `envconfig:"AMQP_NOTIFICATION_QUEUE" default:"booking.notifications"`
}

// An empty secret key selects the test provider.
type PaymentConfig struct {
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`
}

type BookingConfig struct {
	Currency       string        `envconfig:"BOOKING_CURRENCY" default:"usd"`
	DraftTTL       time.Duration `envconfig:"BOOKING_DRAFT_TTL" default:"30m"`
	FromEmail      string        `envconfig:"BOOKING_FROM_EMAIL" default:"bookings@wanderwise.example"`
	ReferenceTries int           `envconfig:"BOOKING_REFERENCE_TRIES" default:"5"`
}

type SiteConfig struct {
	Name          string `envconfig:"SITE_NAME" default:"WanderWise"`
	CustomHeader  string `envconfig:"SITE_CUSTOM_HEADER"`
	Advertisement string `envconfig:"SITE_ADVERTISEMENT"`
	HeroImageURL  string `envconfig:"SITE_HERO_IMAGE_URL" default:"https://images.unsplash.com/photo-1507525428034-b723cf961d3e"`
}

type MetricsConfig struct {
	Namespace string `envconfig:"METRICS_NAMESPACE" default:"travel_booking"`
}

// Exporter is "none" or "stdout"; with "none" spans still carry the
// propagated trace context but are not exported.
type TracingConfig struct {
	Exporter    string  `envconfig:"TRACING_EXPORTER" default:"none"`
	ServiceName string  `envconfig:"TRACING_SERVICE_NAME" default:"travel-booking"`
	SampleRatio float64 `envconfig:"TRACING_SAMPLE_RATIO" default:"1"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings envconfig accepts but the booking flow cannot run
// with.
func (c Config) Validate() error {
	var problems []string
	if c.Booking.ReferenceTries < 1 {
		problems = append(problems, "BOOKING_REFERENCE_TRIES must be at least 1")
	}
	if len(c.Booking.Currency) != 3 {
		problems = append(problems, fmt.Sprintf("BOOKING_CURRENCY %q is not a three-letter code", c.Booking.Currency))
	}
	if c.Booking.DraftTTL <= 0 {
		problems = append(problems, "BOOKING_DRAFT_TTL must be positive")
	}
	if _, err := time.ParseDuration(c.JWT.Duration); err != nil {
		problems = append(problems, fmt.Sprintf("JWT_DURATION %q: %v", c.JWT.Duration, err))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		problems = append(problems, "TRACING_SAMPLE_RATIO must be within [0, 1]")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Booking: BookingConfig{
			Currency:       "usd",
			DraftTTL:       30 * time.Minute,
			FromEmail:      "bookings@test.example",
			ReferenceTries: 5,
		},
		Site: SiteConfig{
			Name: "WanderWise",
		},
		Metrics: MetricsConfig{
			Namespace: "travel_booking_test",
		},
		Tracing: TracingConfig{
			Exporter:    "none",
			ServiceName: "travel-booking-test",
			SampleRatio: 1,
		},
	}
}
