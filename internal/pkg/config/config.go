package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timeouts, category tables, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	Hotel  HotelConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host           string        `envconfig:"DB_HOST" default:"localhost"`
	Port           string        `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName         string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSL_MODE" default:"disable"`
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"5s"`
	MaxConns       int32         `envconfig:"DB_MAX_CONNS" default:"25"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Bogota"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

// HotelConfig drives the category mapping table and allocation behavior.
// CategoryMap translates stored room types to presentation categories, with
// FallbackCategory covering anything unmapped; ReverseMap translates
// presentation categories back to acceptable stored types (multiple types
// separated by ';').
type HotelConfig struct {
	ReservationPrefix string             `envconfig:"HOTEL_RESERVATION_PREFIX" default:"HTR-"`
	Categories        []string           `envconfig:"HOTEL_CATEGORIES" default:"estandar,deluxe,suite,presidencial"`
	CategoryMap       map[string]string  `envconfig:"HOTEL_CATEGORY_MAP" default:"Sencilla:estandar,Doble:deluxe,Suite:suite"`
	FallbackCategory  string             `envconfig:"HOTEL_FALLBACK_CATEGORY" default:"presidencial"`
	ReverseMap        map[string]string  `envconfig:"HOTEL_REVERSE_CATEGORY_MAP" default:"estandar:Sencilla,deluxe:Doble,suite:Suite,presidencial:Suite"`
	BaselinePrices    map[string]float64 `envconfig:"HOTEL_BASELINE_PRICES" default:"estandar:150000,deluxe:250000,suite:400000,presidencial:500000"`
	PricePolicy       string             `envconfig:"HOTEL_PRICE_POLICY" default:"min"` // min | last
	AllocationRetries int                `envconfig:"HOTEL_ALLOCATION_RETRIES" default:"1"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, int(c.ConnectTimeout.Seconds()),
	)
}

func LoadConfig() (Config, error) {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

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
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:           "localhost",
			Port:           "15433", // Test DB port
			User:           "test",
			Password:       "test",
			DBName:         "test_db",
			SSLMode:        "disable",
			ConnectTimeout: 5 * time.Second,
			MaxConns:       5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Bogota",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		Hotel: HotelConfig{
			ReservationPrefix: "HTR-",
			Categories:        []string{"estandar", "deluxe", "suite", "presidencial"},
			CategoryMap: map[string]string{
				"Sencilla": "estandar",
				"Doble":    "deluxe",
				"Suite":    "suite",
			},
			FallbackCategory: "presidencial",
			ReverseMap: map[string]string{
				"estandar":     "Sencilla",
				"deluxe":       "Doble",
				"suite":        "Suite",
				"presidencial": "Suite",
			},
			BaselinePrices: map[string]float64{
				"estandar":     150000,
				"deluxe":       250000,
				"suite":        400000,
				"presidencial": 500000,
			},
			PricePolicy:       "min",
			AllocationRetries: 1,
		},
	}
}
