package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// APIKeyEnv is the only environment variable the tool reads.
const APIKeyEnv = "WEATHER_API_KEY"

// ErrMissingAPIKey is returned when WEATHER_API_KEY is unset or blank.
var ErrMissingAPIKey = fmt.Errorf("please set the %s environment variable", APIKeyEnv)

var validate = validator.New()

type AppConfig struct {
	// APIKey is sent to the provider as the appid query parameter.
	APIKey string `validate:"required"`

	// Endpoint overrides the provider URL; empty means the public endpoint.
	Endpoint string `validate:"omitempty,url"`
}

// Load reads configuration through getenv (os.Getenv when nil).
func Load(getenv func(string) string) (*AppConfig, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := &AppConfig{
		APIKey: strings.TrimSpace(getenv(APIKeyEnv)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the required fields, mapping a missing key to ErrMissingAPIKey.
func (c *AppConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "APIKey" {
				return ErrMissingAPIKey
			}
		}
	}
	return fmt.Errorf("invalid configuration: %w", err)
}
