package config

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - empty default: optional collaborators (carrier, SMTP, Kafka) that are disabled when unset
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Redis   RedisConfig
	Carrier CarrierConfig
	Kafka   KafkaConfig
	Mail    MailConfig
	Worker  WorkerConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns    int32  `envconfig:"DB_MIN_CONNS" default:"2"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`

	ConnectTimeout  time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
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
	Format         string `envconfig:"LOG_FORMAT"` // json or text; empty follows GIN_MODE
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string `envconfig:"JWT_ISSUER" default:"cellar-storefront"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CarrierConfig struct {
	Name          string        `envconfig:"CARRIER_NAME" default:"UPS"`
	BaseURL       string        `envconfig:"CARRIER_BASE_URL" default:"https://wwwcie.ups.com"`
	ClientID      string        `envconfig:"CARRIER_CLIENT_ID"`
	ClientSecret  string        `envconfig:"CARRIER_CLIENT_SECRET"`
	AccountNumber string        `envconfig:"CARRIER_ACCOUNT_NUMBER"`
	Timeout       time.Duration `envconfig:"CARRIER_TIMEOUT" default:"15s"`
	WebhookSecret string        `envconfig:"CARRIER_WEBHOOK_SECRET"`
	PollInterval  time.Duration `envconfig:"CARRIER_POLL_INTERVAL" default:"15m"`
	PollBatchSize int32         `envconfig:"CARRIER_POLL_BATCH_SIZE" default:"50"`
	ServiceCode   string        `envconfig:"CARRIER_SERVICE_CODE" default:"11"`
	Shipper       ShipperConfig
}

type ShipperConfig struct {
	Name        string `envconfig:"SHIPPER_NAME" default:"Cellar Shop"`
	Phone       string `envconfig:"SHIPPER_PHONE"`
	Line1       string `envconfig:"SHIPPER_ADDRESS_LINE1"`
	City        string `envconfig:"SHIPPER_CITY"`
	PostalCode  string `envconfig:"SHIPPER_POSTAL_CODE"`
	CountryCode string `envconfig:"SHIPPER_COUNTRY_CODE" default:"GB"`
}

type KafkaConfig struct {
	Brokers    []string `envconfig:"KAFKA_BROKERS"`
	OrderTopic string   `envconfig:"KAFKA_ORDER_TOPIC" default:"order-events"`
}

type MailConfig struct {
	SMTPHost     string        `envconfig:"SMTP_HOST"`
	SMTPPort     string        `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string        `envconfig:"SMTP_USERNAME"`
	SMTPPassword string        `envconfig:"SMTP_PASSWORD"`
	SMTPTimeout  time.Duration `envconfig:"SMTP_TIMEOUT" default:"15s"`
	From         string        `envconfig:"MAIL_FROM" default:"orders@cellar-shop.local"`
	OwnerEmail   string        `envconfig:"SHOP_OWNER_EMAIL" default:"owner@cellar-shop.local"`
}

type WorkerConfig struct {
	OutboxInterval  time.Duration `envconfig:"OUTBOX_INTERVAL" default:"2s"`
	OutboxBatchSize int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"20"`
}

// BuildDSN escapes credentials so passwords may contain URL metacharacters.
func (c *DBConfig) BuildDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}, "timezone": {c.TimeZone}}.Encode(),
	}
	return u.String()
}

// Enabled reports whether carrier credentials are configured.
func (c CarrierConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: 5 * time.Second,
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
			MinConns: 1,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-cellar-shop",
			Issuer:   "cellar-storefront-test",
			Duration: "1h",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Carrier: CarrierConfig{
			Name:          "UPS",
			Timeout:       2 * time.Second,
			WebhookSecret: "test-webhook-secret",
			PollInterval:  time.Minute,
			PollBatchSize: 10,
			ServiceCode:   "11",
		},
		Kafka: KafkaConfig{
			OrderTopic: "order-events",
		},
		Mail: MailConfig{
			From:       "orders@cellar-shop.test",
			OwnerEmail: "owner@cellar-shop.test",
		},
		Worker: WorkerConfig{
			OutboxInterval:  100 * time.Millisecond,
			OutboxBatchSize: 10,
		},
	}
}
