package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Printer   PrinterConfig
	Shop      ShopConfig
	Retention RetentionConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// PrinterConfig selects the receipt printer transport: "usb", "network" or
// "none" for terminals without hardware.
type PrinterConfig struct {
	Type         string
	USBPath      string
	Address      string
	CharWidth    int
	CodePage     int
	DialTimeout  time.Duration
	WriteTimeout time.Duration
}

// ShopConfig is the shop identity printed on receipt headers.
type ShopConfig struct {
	Name        string
	Phone       string
	Hours       string
	PalmKeyword string
	PalmRuang   string
}

// RetentionConfig drives the stale pending-group sweep.
type RetentionConfig struct {
	AgeHours  int
	BatchSize int
	Schedule  string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "farmgate-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "farmgate")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Bangkok")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_CHAR_WIDTH", 42)
	viper.SetDefault("PRINTER_CODE_PAGE", 20)
	viper.SetDefault("PRINTER_DIAL_TIMEOUT_SECONDS", 5)
	viper.SetDefault("PRINTER_WRITE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("SHOP_NAME", "")
	viper.SetDefault("SHOP_PHONE", "")
	viper.SetDefault("SHOP_HOURS", "")
	viper.SetDefault("SHOP_PALM_KEYWORD", "ปาล์ม")
	viper.SetDefault("SHOP_PALM_RUANG", "ปาล์มร่วง")
	viper.SetDefault("RETENTION_AGE_HOURS", 48)
	viper.SetDefault("RETENTION_BATCH_SIZE", 200)
	viper.SetDefault("RETENTION_SCHEDULE", "0 * * * *")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Printer: PrinterConfig{
			Type:         viper.GetString("PRINTER_TYPE"),
			USBPath:      viper.GetString("PRINTER_USB_PATH"),
			Address:      viper.GetString("PRINTER_ADDRESS"),
			CharWidth:    viper.GetInt("PRINTER_CHAR_WIDTH"),
			CodePage:     viper.GetInt("PRINTER_CODE_PAGE"),
			DialTimeout:  time.Duration(viper.GetInt("PRINTER_DIAL_TIMEOUT_SECONDS")) * time.Second,
			WriteTimeout: time.Duration(viper.GetInt("PRINTER_WRITE_TIMEOUT_SECONDS")) * time.Second,
		},
		Shop: ShopConfig{
			Name:        viper.GetString("SHOP_NAME"),
			Phone:       viper.GetString("SHOP_PHONE"),
			Hours:       viper.GetString("SHOP_HOURS"),
			PalmKeyword: viper.GetString("SHOP_PALM_KEYWORD"),
			PalmRuang:   viper.GetString("SHOP_PALM_RUANG"),
		},
		Retention: RetentionConfig{
			AgeHours:  viper.GetInt("RETENTION_AGE_HOURS"),
			BatchSize: viper.GetInt("RETENTION_BATCH_SIZE"),
			Schedule:  viper.GetString("RETENTION_SCHEDULE"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
