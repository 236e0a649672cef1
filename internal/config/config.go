package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	API       APIConfig
	Session   SessionConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Printer   PrinterConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// APIConfig describes the remote POS backend every screen talks to.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig describes where the signed-in session is persisted.
type SessionConfig struct {
	Path string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// RateLimitConfig bounds outbound requests to the POS backend.
type RateLimitConfig struct {
	Requests int
	Duration int
}

// PrinterConfig describes the till receipt printer, if any.
type PrinterConfig struct {
	Type    string // "usb", "network", or "none"
	USBPath string
	Address string
	Width   int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "pos-console")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("API_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SESSION_PATH", "./storage/session.json")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{})
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 32)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
		},
		Session: SessionConfig{
			Path: viper.GetString("SESSION_PATH"),
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
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
	}
}
