package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/telemetry"
	"github.com/NeuralTrust/TrustGuard/pkg/guardrails"
	"github.com/spf13/viper"
)

type MetricsConfig struct {
	Enabled        bool `mapstructure:"enabled"`
	EnableLatency  bool `mapstructure:"enable_latency"`
	EnablePIITypes bool `mapstructure:"enable_pii_types"`
	Workers        int  `mapstructure:"workers"`
	QueueSize      int  `mapstructure:"queue_size"`
}

type Config struct {
	Server     ServerConfig      `mapstructure:"server"`
	Log        LogConfig         `mapstructure:"log"`
	Metrics    MetricsConfig     `mapstructure:"metrics"`
	Database   DatabaseConfig    `mapstructure:"database"`
	Redis      RedisConfig       `mapstructure:"redis"`
	Auth       AuthConfig        `mapstructure:"auth"`
	Telemetry  TelemetryConfig   `mapstructure:"telemetry"`
	AuditStore AuditStoreConfig  `mapstructure:"audit_store"`
	Guardrails guardrails.Config `mapstructure:"guardrails"`
}

type ServerConfig struct {
	AdminPort   int        `mapstructure:"admin_port"`
	MetricsPort int        `mapstructure:"metrics_port"`
	Host        string     `mapstructure:"host"`
	CORS        CORSConfig `mapstructure:"cors"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Dir     string `mapstructure:"dir"`
	Console bool   `mapstructure:"console"`
}

type CORSConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           string   `mapstructure:"max_age"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"name"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

// AuthConfig guards the review endpoints. When disabled the reviewer id is
// taken from the request body.
type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	SecretKey string `mapstructure:"secret_key"`
}

type TelemetryConfig struct {
	Exporters []telemetry.ExporterConfig `mapstructure:"exporters"`
}

type AuditStoreConfig struct {
	BreakerTimeout     time.Duration `mapstructure:"breaker_timeout"`
	BreakerMaxFailures uint32        `mapstructure:"breaker_max_failures"`
}

var globalConfig Config

func Load(configPath string) error {
	cfg, err := load(configPath, "config")
	if err != nil {
		return fmt.Errorf("⚠️ Warning: Could not load main config file: %v", err)
	}
	globalConfig = *cfg
	return nil
}

func load(configPath, fileName string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setViperDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
		}
	}

	// Scalars not present in the file keep these defaults.
	cfg := &Config{
		Guardrails: guardrails.Config{Thresholds: guardrails.DefaultThresholds()},
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	setDefaultValues(cfg)
	return cfg, nil
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("server.admin_port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.enable_latency", true)
	v.SetDefault("metrics.enable_pii_types", true)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
}

func setDefaultValues(cfg *Config) {
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Metrics.Workers <= 0 {
		cfg.Metrics.Workers = 4
	}
	if cfg.Metrics.QueueSize <= 0 {
		cfg.Metrics.QueueSize = 1000
	}
	if cfg.AuditStore.BreakerTimeout <= 0 {
		cfg.AuditStore.BreakerTimeout = 30 * time.Second
	}
	if cfg.AuditStore.BreakerMaxFailures == 0 {
		cfg.AuditStore.BreakerMaxFailures = 5
	}
}

// EngineConfig overlays configured tables on the built-in defaults. A list
// that is set replaces the default list as a whole.
func (c *Config) EngineConfig() guardrails.Config {
	out := guardrails.DefaultConfig()
	g := c.Guardrails
	if g.HighRiskKeywords != nil {
		out.HighRiskKeywords = g.HighRiskKeywords
	}
	if g.ModerateRiskKeywords != nil {
		out.ModerateRiskKeywords = g.ModerateRiskKeywords
	}
	if g.PIIPatterns != nil {
		out.PIIPatterns = g.PIIPatterns
	}
	if g.HarmfulPatterns != nil {
		out.HarmfulPatterns = g.HarmfulPatterns
	}
	if g.ModerationCategories != nil {
		out.ModerationCategories = g.ModerationCategories
	}
	out.Thresholds = g.Thresholds
	return out
}

func GetConfig() *Config {
	return &globalConfig
}
