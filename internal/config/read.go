package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/bearylogical/folio/internal/entity"
)

const envPrefix = "FOLIO"

// Read loads the site configuration from configPath (YAML, JSON or TOML by
// extension), applying defaults and FOLIO_* environment overrides such as
// FOLIO_MAXDISPLAY or FOLIO_SERVER_PORT.
func Read(configPath string) (*entity.Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var config entity.Config

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not parse config file: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "folio")
	v.SetDefault("locale", entity.LocaleDefault)
	v.SetDefault("maxDisplay", entity.MaxDisplayDefault)
	v.SetDefault("postsPerPage", entity.PostsPerPageDefault)
	v.SetDefault("contentPath", "content.yaml")
	v.SetDefault("cacheTTL", entity.CacheTTLDefault)
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.redisAddr", "")
}

// Validate rejects values the selection and rendering code cannot work with.
func Validate(config *entity.Config) error {
	var errs []error

	if config.MaxDisplay < 1 {
		errs = append(errs, fmt.Errorf("maxDisplay must be positive, got %d", config.MaxDisplay))
	}

	if config.PostsPerPage < 1 {
		errs = append(errs, fmt.Errorf("postsPerPage must be positive, got %d", config.PostsPerPage))
	}

	if config.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("cacheTTL must be non-negative"))
	}

	if config.ContentPath == "" {
		errs = append(errs, fmt.Errorf("contentPath is required"))
	}

	for i, interest := range config.Hero.Interests {
		if strings.TrimSpace(interest.Text) == "" {
			errs = append(errs, fmt.Errorf("hero interest #%d has no text", i+1))
		}
	}

	return errors.Join(errs...)
}
