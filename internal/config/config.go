package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Counters  CountersConfig
	Data      DataConfig
	Branding  BrandingConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// CountersConfig locates the per-document-type counter files.
type CountersConfig struct {
	Dir string
}

// DataConfig locates the JSON directory files.
type DataConfig struct {
	VendorsFile      string
	EndUsersFile     string
	ProductsFile     string
	SalesPersonsFile string
}

// BrandingConfig is the fixed organization identity stamped on documents.
type BrandingConfig struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	CompanyPhone   string
	CompanyGSTNo   string
	LogoPath       string
	StampPath      string
	Declaration    string
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

type LogConfig struct {
	Level string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "comdesk-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("COUNTERS_DIR", "./data/counters")
	viper.SetDefault("VENDORS_FILE", "./data/vendor.json")
	viper.SetDefault("ENDUSERS_FILE", "./data/endusers.json")
	viper.SetDefault("PRODUCTS_FILE", "./data/products.json")
	viper.SetDefault("SALES_PERSONS_FILE", "./data/salespersons.json")
	viper.SetDefault("COMPANY_NAME", "Company Pvt. Ltd.")
	viper.SetDefault("COMPANY_ADDRESS", "Company Address")
	viper.SetDefault("COMPANY_EMAIL", "sales@company.com")
	viper.SetDefault("COMPANY_PHONE", "+91 00000 00000")
	viper.SetDefault("COMPANY_GST_NO", "")
	viper.SetDefault("LOGO_PATH", "./assets/logo.jpg")
	viper.SetDefault("STAMP_PATH", "./assets/stamp.jpg")
	viper.SetDefault("DECLARATION", "We declare that this invoice shows the actual price of the goods described and that all particulars are true and correct.")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("LOG_LEVEL", "info")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Counters: CountersConfig{
			Dir: viper.GetString("COUNTERS_DIR"),
		},
		Data: DataConfig{
			VendorsFile:      viper.GetString("VENDORS_FILE"),
			EndUsersFile:     viper.GetString("ENDUSERS_FILE"),
			ProductsFile:     viper.GetString("PRODUCTS_FILE"),
			SalesPersonsFile: viper.GetString("SALES_PERSONS_FILE"),
		},
		Branding: BrandingConfig{
			CompanyName:    viper.GetString("COMPANY_NAME"),
			CompanyAddress: viper.GetString("COMPANY_ADDRESS"),
			CompanyEmail:   viper.GetString("COMPANY_EMAIL"),
			CompanyPhone:   viper.GetString("COMPANY_PHONE"),
			CompanyGSTNo:   viper.GetString("COMPANY_GST_NO"),
			LogoPath:       viper.GetString("LOGO_PATH"),
			StampPath:      viper.GetString("STAMP_PATH"),
			Declaration:    viper.GetString("DECLARATION"),
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
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}
}
