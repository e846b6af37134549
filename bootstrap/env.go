package bootstrap

import (
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Env struct {
	AppEnv            string `mapstructure:"APP_ENV"`
	ServerAddress     string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout    int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBURI             string `mapstructure:"DB_URI"`
	DBName            string `mapstructure:"DB_NAME"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	LogFormat         string `mapstructure:"LOG_FORMAT"`
	IdentityJWTSecret string `mapstructure:"IDENTITY_JWT_SECRET"`
	IdentityIssuer    string `mapstructure:"IDENTITY_ISSUER"`
	PublicBaseURL     string `mapstructure:"PUBLIC_BASE_URL"`
	BlobBucket        string `mapstructure:"BLOB_BUCKET"`
	UploadMaxSizeMB   int    `mapstructure:"UPLOAD_MAX_SIZE_MB"`
	UploadMaxFiles    int    `mapstructure:"UPLOAD_MAX_FILES"`
	PageSize          int    `mapstructure:"PAGE_SIZE"`
	FeedPageSize      int    `mapstructure:"FEED_PAGE_SIZE"`
}

var envKeys = []string{
	"APP_ENV", "SERVER_ADDRESS", "CONTEXT_TIMEOUT", "DB_URI", "DB_NAME",
	"LOG_LEVEL", "LOG_FORMAT", "IDENTITY_JWT_SECRET", "IDENTITY_ISSUER",
	"PUBLIC_BASE_URL", "BLOB_BUCKET", "UPLOAD_MAX_SIZE_MB", "UPLOAD_MAX_FILES",
	"PAGE_SIZE", "FEED_PAGE_SIZE",
}

func setEnvDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("CONTEXT_TIMEOUT", 10)
	v.SetDefault("DB_URI", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "catalogue")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("BLOB_BUCKET", "recording_images")
	v.SetDefault("UPLOAD_MAX_SIZE_MB", 5)
	v.SetDefault("UPLOAD_MAX_FILES", 10)
	v.SetDefault("PAGE_SIZE", 25)
	v.SetDefault("FEED_PAGE_SIZE", 12)
}

// NewEnv 读取 .env（可缺省），环境变量优先
func NewEnv() *Env {
	env, err := LoadEnv(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment")
	}
	if env.AppEnv == "development" {
		log.Info().Msg("The App is running in development env")
	}
	return env
}

func LoadEnv(path string) (*Env, error) {
	v := viper.New()
	setEnvDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	env := Env{}
	if err := v.Unmarshal(&env); err != nil {
		return nil, err
	}

	if env.IdentityJWTSecret == "" {
		return nil, errors.New("IDENTITY_JWT_SECRET is required")
	}
	return &env, nil
}
