// Package config loads service settings from configs/config.yml and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	dw "controlling_dishwasher"

	"github.com/spf13/viper"
)

const envPrefix = "DISHWASHER"

type Config struct {
	Port            string
	ShutdownTimeout time.Duration
	LogLevel        string
	DBPath          string
	Auth            Auth
	Dishwasher      Dishwasher
}

type Auth struct {
	SigningKey string
	TokenTTL   time.Duration
}

// Dishwasher holds controller constants that vary per appliance model.
type Dishwasher struct {
	FilterThreshold  float64
	DefaultFillLevel string
	Durations        map[string]int // program name -> minutes
}

var errMissingSigningKey = errors.New("auth.signing_key must be set")

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("dishwasher.filter_threshold", dw.DefaultFilterThreshold)
	v.SetDefault("dishwasher.default_fill_level", string(dw.DefaultFillLevel))
}

// Load reads config.yml from dir. A missing file is tolerated; defaults and
// DISHWASHER_* environment variables still apply.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:            v.GetString("port"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		LogLevel:        v.GetString("log.level"),
		DBPath:          v.GetString("db.path"),
		Auth: Auth{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
		Dishwasher: Dishwasher{
			FilterThreshold:  v.GetFloat64("dishwasher.filter_threshold"),
			DefaultFillLevel: v.GetString("dishwasher.default_fill_level"),
			Durations:        map[string]int{},
		},
	}
	for name := range v.GetStringMap("dishwasher.durations") {
		cfg.Dishwasher.Durations[name] = v.GetInt("dishwasher.durations." + name)
	}

	if cfg.Auth.SigningKey == "" {
		return nil, errMissingSigningKey
	}
	opts, err := cfg.ControllerOptions()
	if err != nil {
		return nil, err
	}
	if err := dw.CheckOptions(opts...); err != nil {
		return nil, fmt.Errorf("dishwasher: %w", err)
	}
	return cfg, nil
}

// ControllerOptions converts the dishwasher section into controller options.
func (c *Config) ControllerOptions() ([]dw.Option, error) {
	level, err := dw.ParseFillLevel(c.Dishwasher.DefaultFillLevel)
	if err != nil {
		return nil, fmt.Errorf("dishwasher.default_fill_level: %w", err)
	}
	if level == dw.FillLevelUnset {
		level = dw.DefaultFillLevel
	}

	durations := make(map[dw.WashingProgram]int, len(c.Dishwasher.Durations))
	for name, minutes := range c.Dishwasher.Durations {
		p, err := dw.ParseWashingProgram(name)
		if err != nil {
			return nil, fmt.Errorf("dishwasher.durations: %w", err)
		}
		durations[p] = minutes
	}

	return []dw.Option{
		dw.WithFilterThreshold(c.Dishwasher.FilterThreshold),
		dw.WithDefaultFillLevel(level),
		dw.WithProgramDurations(durations),
	}, nil
}
