// Package config loads the relay configuration from flags, environment,
// an optional YAML file and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"

	"github.com/valpere/travelrelay/internal/logging"
	"github.com/valpere/travelrelay/internal/places"
	"github.com/valpere/travelrelay/internal/server"
	"github.com/valpere/travelrelay/internal/translator"
)

const (
	EnvPrefix      = "TRAVELRELAY"
	PlacesKeyEnv   = "GOOGLE_PLACES_API_KEY"
	configFileName = ".travelrelay"

	ProviderMagicLoop = "magicloop"
	ProviderGoogle    = "google"
)

type TranslationConfig struct {
	Provider string `mapstructure:"provider"`
	Endpoint string `mapstructure:"endpoint"`
}

type GoogleConfig struct {
	Credentials string `mapstructure:"credentials"`
	ProjectID   string `mapstructure:"project_id"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type Config struct {
	Server      server.Config     `mapstructure:"server"`
	Places      places.Config     `mapstructure:"places"`
	Translation TranslationConfig `mapstructure:"translation"`
	Google      GoogleConfig      `mapstructure:"google"`
	HTTP        HTTPConfig        `mapstructure:"http"`
	Log         logging.Config    `mapstructure:"log"`
}

// SetDefaults registers every known key so environment overrides apply to
// all of them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5000)
	v.SetDefault("places.api_key", "")
	v.SetDefault("places.base_url", places.DefaultBaseURL)
	v.SetDefault("places.photo_max_width", places.DefaultPhotoMaxWidth)
	v.SetDefault("translation.provider", ProviderMagicLoop)
	v.SetDefault("translation.endpoint", translator.DefaultMagicLoopEndpoint)
	v.SetDefault("google.credentials", "")
	v.SetDefault("google.project_id", "")
	v.SetDefault("http.timeout", time.Duration(0))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.add_source", false)
}

// Init wires config file discovery and environment lookup into v. A missing
// config file is not an error unless cfgFile names it explicitly.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("places.api_key", PlacesKeyEnv, EnvPrefix+"_PLACES_API_KEY"); err != nil {
		return fmt.Errorf("failed to bind %s: %w", PlacesKeyEnv, err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(configFileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// LoadDotEnv copies variables from a dotenv file into the process
// environment without overriding ones already set. A missing file is
// ignored.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	env := viper.New()
	env.SetConfigFile(path)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, key := range env.AllKeys() {
		name := strings.ToUpper(key)
		if _, exists := os.LookupEnv(name); exists {
			continue
		}
		if err := os.Setenv(name, env.GetString(key)); err != nil {
			return fmt.Errorf("failed to set %s: %w", name, err)
		}
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Translation.Provider = strings.ToLower(strings.TrimSpace(cfg.Translation.Provider))
	cfg.Places.APIKey = strings.TrimSpace(cfg.Places.APIKey)
	cfg.Places.Timeout = cfg.HTTP.Timeout

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	return validation.Errors{
		"server.port": validation.Validate(c.Server.Port, validation.Min(0), validation.Max(65535)),
		"translation.provider": validation.Validate(c.Translation.Provider,
			validation.Required, validation.In(ProviderMagicLoop, ProviderGoogle)),
		"translation.endpoint": validation.Validate(c.Translation.Endpoint,
			validation.When(c.Translation.Provider == ProviderMagicLoop, validation.Required), is.URL),
		"places.base_url":        validation.Validate(c.Places.BaseURL, validation.Required, is.URL),
		"places.photo_max_width": validation.Validate(c.Places.PhotoMaxWidth, validation.Min(1)),
		"http.timeout":           validation.Validate(c.HTTP.Timeout, validation.Min(time.Duration(0))),
		"log.format":             validation.Validate(c.Log.Format, validation.In("console", "json", "pretty")),
	}.Filter()
}

// ServiceConfig returns the settings handed to translation backends.
func (c Config) ServiceConfig() translator.ServiceConfig {
	return translator.ServiceConfig{
		Credentials: c.Google.Credentials,
		ProjectID:   c.Google.ProjectID,
		Endpoint:    c.Translation.Endpoint,
		Timeout:     c.HTTP.Timeout,
	}
}
