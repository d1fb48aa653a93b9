package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Backend REST API.
	APIBaseURL string `mapstructure:"API_BASE_URL"`

	// Redis configuration for the progress store. Leave REDIS_ADDR
	// empty to run on the in-memory store.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisStoreDB  int    `mapstructure:"REDIS_STORE_DB"`

	// Geocoder (Nominatim-compatible).
	GeocoderBaseURL string  `mapstructure:"GEOCODER_BASE_URL"`
	GeocoderRPS     float64 `mapstructure:"GEOCODER_RPS"`

	// Fallback map center when device location is unavailable.
	DefaultLat float64 `mapstructure:"DEFAULT_LAT"`
	DefaultLng float64 `mapstructure:"DEFAULT_LNG"`

	// Local listener for payment checkout callbacks.
	PaymentCallbackPort string `mapstructure:"PAYMENT_CALLBACK_PORT"`

	// Cloudinary (optional media uploads during vendor onboarding).
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_STORE_DB", 0)
	viper.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("GEOCODER_RPS", 1.0)
	// Mumbai, same fallback the booking map uses.
	viper.SetDefault("DEFAULT_LAT", 19.0760)
	viper.SetDefault("DEFAULT_LNG", 72.8777)
	viper.SetDefault("PAYMENT_CALLBACK_PORT", "9754")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
