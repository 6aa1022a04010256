package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration, loaded from the environment.
type Config struct {
	AppPort string
	Env     string

	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	DBMaxOpenConns int

	PublicBaseURL string
	UploadDir     string
	CORSOrigins   string

	RabbitMQURL string

	AuthEnabled bool
	JWTSecret   string
}

// Load reads configuration from environment variables via viper.
// The database variables have no defaults and must be present.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:3000")
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("CORS_ORIGINS", "http://localhost:4200,http://localhost:53834")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", "")
	v.AutomaticEnv()

	var missing []string
	for _, key := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME"} {
		if v.GetString(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		AppPort:        v.GetString("APP_PORT"),
		Env:            v.GetString("APP_ENV"),
		DBHost:         v.GetString("DB_HOST"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		DBPort:         v.GetString("DB_PORT"),
		DBMaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		PublicBaseURL:  v.GetString("PUBLIC_BASE_URL"),
		UploadDir:      v.GetString("UPLOAD_DIR"),
		CORSOrigins:    v.GetString("CORS_ORIGINS"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		AuthEnabled:    v.GetBool("AUTH_ENABLED"),
		JWTSecret:      v.GetString("JWT_SECRET"),
	}

	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when AUTH_ENABLED is true")
	}
	return cfg, nil
}

// Production reports whether the service runs in production mode.
// Outside production, error responses carry diagnostic detail.
func (c *Config) Production() bool {
	return c.Env == "production"
}
