package config

import (
	"net"
	"strconv"
	"strings"

	"github.com/nobl9/govy/pkg/govy"
	"github.com/nobl9/govy/pkg/rules"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is the prefix of environment variables overriding the configuration,
// e.g. CATALOG_SERVER_PORT.
const EnvPrefix = "CATALOG"

// Config is the catalog service configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Render RenderConfig `mapstructure:"render"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Address returns the host:port the server listens on.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// RenderConfig holds the defaults applied to every rendered projection.
type RenderConfig struct {
	Indented bool `mapstructure:"indented"`
}

type LogConfig struct {
	Development bool   `mapstructure:"development"`
	Level       string `mapstructure:"level"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

var validator = govy.New(
	govy.For(func(c Config) string { return c.Server.Host }).
		WithName("server.host").
		Required(),
	govy.For(func(c Config) int { return c.Server.Port }).
		WithName("server.port").
		Rules(rules.GTE(0), rules.LTE(65535)),
	govy.For(func(c Config) string { return c.Log.Level }).
		WithName("log.level").
		Required().
		Rules(rules.OneOf(logLevels...)),
).WithName("Config")

// Load reads the configuration file at path and applies environment overrides.
// Without a path, [DefaultFileName] is looked up with [FindFile];
// when it does not exist only defaults and environment variables are used.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("render.indented", false)
	v.SetDefault("log.development", false)
	v.SetDefault("log.level", "info")

	if path == "" {
		found, err := FindFile(DefaultFileName)
		switch {
		case err == nil:
			path = found
		case !errors.Is(err, ErrFileNotFound):
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c Config) Validate() error {
	if err := validator.Validate(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// NewLogger builds the logger described by the configuration.
func (l LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	cfg := zap.NewProductionConfig()
	if l.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return logger, nil
}
