package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host              string
	Port              int
	ReadTimeoutSec    int
	WriteTimeoutSec   int
	IdleTimeoutSec    int
	RequestTimeoutSec int
	RateLimitRPS      float64
	RateLimitBurst    int
	MaxInFlight       int64
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile
}

// LogFile turns on lumberjack rotation when Filename is set.
type LogFile struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

// Source picks where the user list comes from: "sample", "db" or "http".
type Source struct {
	Kind       string
	URL        string
	TimeoutSec int
	// CacheTTLSec > 0 puts Redis in front of the source.
	CacheTTLSec int
	CacheKey    string
}

type Table struct {
	PageSize int
}

type Config struct {
	App    App
	Log    Log
	DB     DB
	Redis  Redis `mapstructure:"redis"`
	Source Source
	Table  Table
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "user-table")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.readTimeoutSec", 5)
	v.SetDefault("app.http.writeTimeoutSec", 10)
	v.SetDefault("app.http.idleTimeoutSec", 60)
	v.SetDefault("app.http.requestTimeoutSec", 10)
	v.SetDefault("app.http.rateLimitRPS", 200)
	v.SetDefault("app.http.rateLimitBurst", 400)
	v.SetDefault("app.http.maxInFlight", 300)
	v.SetDefault("log.level", "info")
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.maxOpenConns", 20)
	v.SetDefault("db.maxIdleConns", 5)
	v.SetDefault("db.connMaxLifetimeMin", 30)
	v.SetDefault("db.logLevel", "warn")
	v.SetDefault("source.kind", "sample")
	v.SetDefault("source.timeoutSec", 5)
	v.SetDefault("source.cacheKey", "users:list")
	v.SetDefault("table.pageSize", 5)
}

// Load reads the yaml file at path (or $CONFIG_PATH, or ./configs/config.local.yaml)
// with APP_* environment overrides. A missing file is fine: defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Table.PageSize <= 0 {
		return nil, fmt.Errorf("config: table.pageSize must be positive, got %d", c.Table.PageSize)
	}
	switch c.Source.Kind {
	case "sample", "db", "http":
	default:
		return nil, fmt.Errorf("config: unknown source.kind %q", c.Source.Kind)
	}
	if c.Source.Kind == "http" && c.Source.URL == "" {
		return nil, fmt.Errorf("config: source.url is required for http source")
	}
	return &c, nil
}
