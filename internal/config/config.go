package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultDir         = ".tloc"
	DefaultDBPath      = DefaultDir + "/tloc.db"
	DefaultConcurrency = 4
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
)

type Config struct {
	DBPath      string
	Concurrency int
	LogLevel    string
	LogFormat   string
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("db.path", DefaultDBPath)
	v.SetDefault("resolve.concurrency", DefaultConcurrency)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}

// Load reads cfgFile, or .tloc.yaml in the working directory when cfgFile
// is empty. A missing default file is not an error. TLOC_* environment
// variables override file values, e.g. TLOC_DB_PATH.
func Load(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("tloc")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".tloc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

func New(v *viper.Viper) *Config {
	return &Config{
		DBPath:      v.GetString("db.path"),
		Concurrency: v.GetInt("resolve.concurrency"),
		LogLevel:    v.GetString("log.level"),
		LogFormat:   v.GetString("log.format"),
	}
}

// Logger builds the slog logger described by the log settings.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch c.LogFormat {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
}
