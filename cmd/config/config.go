package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// LoadConfig reads config/server.yaml, when present, and the DATAFORGE_* environment once per
// process.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("dataforge")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		configInstance = Load(viper.GetViper())
	})

	return configInstance
}

// Load builds the configuration from v. A missing config file is not an error.
func Load(v *viper.Viper) AppConfig {
	SetDefaults(v)
	bindLegacyEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel: v.GetString("general.log_level"),
		},
		HTTP: HTTPConfig{
			Port:           v.GetInt("http.port"),
			StaticDir:      v.GetString("http.static_dir"),
			AllowedOrigins: v.GetStringSlice("http.cors.allowed_origins"),
		},
		Upload: UploadConfig{
			MaxFileSize: v.GetInt64("upload.max_file_size"),
		},
		Generation: GenerationConfig{
			PreviewMaxRows: v.GetInt("generation.preview_max_rows"),
			ExportMaxRows:  v.GetInt("generation.export_max_rows"),
		},
		Gemini: GeminiConfig{
			APIKey: v.GetString("gemini.api_key"),
			Model:  v.GetString("gemini.model"),
		},
		Cache: CacheConfig{
			Backend:  v.GetString("cache.backend"),
			TTL:      v.GetDuration("cache.ttl"),
			MaxItems: v.GetInt64("cache.max_items"),
			Redis: RedisConfig{
				Addr:     v.GetString("cache.redis.addr"),
				Password: v.GetString("cache.redis.password"),
				DB:       v.GetInt("cache.redis.db"),
			},
		},
		Database: DatabaseConfig{
			Name: v.GetString("database.name"),
		},
		OTel: OTelConfig{
			Enabled:  v.GetBool("otel.enabled"),
			Endpoint: v.GetString("otel.endpoint"),
		},
	}
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("http.port", 5000)
	v.SetDefault("http.static_dir", "")
	v.SetDefault("http.cors.allowed_origins", []string{"*"})
	v.SetDefault("upload.max_file_size", 10*1024*1024)
	v.SetDefault("generation.preview_max_rows", 10)
	v.SetDefault("generation.export_max_rows", 100000)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("cache.backend", "none")
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("cache.max_items", 1000)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("database.name", "dataforge")
	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.endpoint", "localhost:4317")
}

// bindLegacyEnv keeps the unprefixed variables hosting platforms set.
func bindLegacyEnv(v *viper.Viper) {
	v.BindEnv("http.port", "DATAFORGE_HTTP_PORT", "PORT")
	v.BindEnv("gemini.api_key", "DATAFORGE_GEMINI_API_KEY", "GEMINI_API_KEY")
}

type AppConfig struct {
	General    GeneralConfig
	HTTP       HTTPConfig
	Upload     UploadConfig
	Generation GenerationConfig
	Gemini     GeminiConfig
	Cache      CacheConfig
	Database   DatabaseConfig
	OTel       OTelConfig
}

type GeneralConfig struct {
	LogLevel string
}

type HTTPConfig struct {
	Port           int
	StaticDir      string
	AllowedOrigins []string
}

func (c HTTPConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

type UploadConfig struct {
	MaxFileSize int64
}

type GenerationConfig struct {
	PreviewMaxRows int
	ExportMaxRows  int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// String hides the key so the config can be logged.
func (c GeminiConfig) String() string {
	key := "<unset>"
	if c.APIKey != "" {
		key = "<redacted>"
	}
	return fmt.Sprintf("{APIKey:%s Model:%s}", key, c.Model)
}

type CacheConfig struct {
	Backend  string
	TTL      time.Duration
	MaxItems int64
	Redis    RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DatabaseConfig names the in-memory sqlite database. It lives as long as the process.
type DatabaseConfig struct {
	Name string
}

type OTelConfig struct {
	Enabled  bool
	Endpoint string
}
