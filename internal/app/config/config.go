package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultEnv           = EnvLocal
	defaultLogLevel      = ""
	defaultConfigDir     = ".projectx"
	defaultStorageDriver = "sqlite"
	defaultRunAddress    = "localhost:8080"
	defaultRedisPrefix   = "projectx:"
	defaultCalendar      = "Personal"
	defaultAccess        = "granted"
)

type Config struct {
	Env        string `mapstructure:"app_env"`
	LogLevel   string `mapstructure:"log_level"`
	ConfigDir  string `mapstructure:"config_dir"`
	Storage    Storage
	Server     Server
	Capability Capability
}

type Storage struct {
	Driver         string `mapstructure:"storage_driver"`
	SQLitePath     string `mapstructure:"sqlite_path"`
	DatabaseURI    string `mapstructure:"database_uri"`
	MigrationsPath string `mapstructure:"migrations_path"`
	RedisURL       string `mapstructure:"redis_url"`
	RedisPrefix    string `mapstructure:"redis_prefix"`
}

type Server struct {
	RunAddress string `mapstructure:"run_address"`
	APIToken   string `mapstructure:"api_token"`
}

type Capability struct {
	CalendarAccess   bool
	CalendarName     string `mapstructure:"calendar_name"`
	AudioCommand     string `mapstructure:"audio_command"`
	AudioPlayCommand string `mapstructure:"audio_play_command"`
	MediaDir         string `mapstructure:"media_dir"`
}

// Load reads configuration from the environment, an optional .env file
// in the working directory and an optional YAML file. An explicit
// cfgFile must exist; the default ~/.projectx/config.yaml may not.
func Load(cfgFile string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("CONFIG_DIR", defaultConfigDir)
	v.SetDefault("STORAGE_DRIVER", defaultStorageDriver)
	v.SetDefault("REDIS_PREFIX", defaultRedisPrefix)
	v.SetDefault("RUN_ADDRESS", defaultRunAddress)
	v.SetDefault("CALENDAR_ACCESS", defaultAccess)
	v.SetDefault("CALENDAR_NAME", defaultCalendar)

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(filepath.Join(home, defaultConfigDir))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v, home)
}

func fromViper(v *viper.Viper, home string) (*Config, error) {
	configDir := v.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(home, configDir)
	}

	sqlitePath := v.GetString("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = filepath.Join(configDir, "prefs.db")
	}
	mediaDir := v.GetString("MEDIA_DIR")
	if mediaDir == "" {
		mediaDir = filepath.Join(configDir, "media")
	}

	cfg := &Config{
		Env:       strings.ToLower(v.GetString("APP_ENV")),
		LogLevel:  v.GetString("LOG_LEVEL"),
		ConfigDir: configDir,
		Storage: Storage{
			Driver:         strings.ToLower(v.GetString("STORAGE_DRIVER")),
			SQLitePath:     sqlitePath,
			DatabaseURI:    v.GetString("DATABASE_URI"),
			MigrationsPath: v.GetString("MIGRATIONS_PATH"),
			RedisURL:       v.GetString("REDIS_URL"),
			RedisPrefix:    v.GetString("REDIS_PREFIX"),
		},
		Server: Server{
			RunAddress: v.GetString("RUN_ADDRESS"),
			APIToken:   v.GetString("API_TOKEN"),
		},
		Capability: Capability{
			CalendarAccess:   !strings.EqualFold(v.GetString("CALENDAR_ACCESS"), "denied"),
			CalendarName:     v.GetString("CALENDAR_NAME"),
			AudioCommand:     v.GetString("AUDIO_COMMAND"),
			AudioPlayCommand: v.GetString("AUDIO_PLAY_COMMAND"),
			MediaDir:         mediaDir,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("app_env must be one of local, dev, prod; got %q", c.Env)
	}

	switch c.Storage.Driver {
	case "memory", "sqlite":
	case "postgres":
		if c.Storage.DatabaseURI == "" {
			return errors.New("database_uri is required for the postgres driver")
		}
	case "redis":
		if c.Storage.RedisURL == "" {
			return errors.New("redis_url is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown storage_driver %q", c.Storage.Driver)
	}

	if c.Server.RunAddress == "" {
		return errors.New("run_address must not be empty")
	}
	return nil
}

// SetEnv overrides the environment, e.g. from a command line flag, and
// revalidates the configuration.
func (c *Config) SetEnv(env string) error {
	prev := c.Env
	c.Env = strings.ToLower(env)
	if err := c.validate(); err != nil {
		c.Env = prev
		return err
	}
	return nil
}

// IsProd reports whether the prod environment is selected.
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}
