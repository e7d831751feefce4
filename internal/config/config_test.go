package config

import (
	"errors"
	"testing"
)

func env(values map[string]string) func(string) string {
	return func(k string) string { return values[k] }
}

func TestLoad(t *testing.T) {
	cfg, err := Load(env(map[string]string{"WEATHER_API_KEY": "abc123"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "abc123" {
		t.Fatalf("expected abc123, got %q", cfg.APIKey)
	}
	if cfg.Endpoint != "" {
		t.Fatalf("expected default endpoint, got %q", cfg.Endpoint)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	for name, values := range map[string]map[string]string{
		"unset": {},
		"empty": {"WEATHER_API_KEY": ""},
		"blank": {"WEATHER_API_KEY": "   "},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(env(values))
			if !errors.Is(err, ErrMissingAPIKey) {
				t.Fatalf("expected ErrMissingAPIKey, got %v", err)
			}
			if err.Error() != "please set the WEATHER_API_KEY environment variable" {
				t.Fatalf("unexpected message: %q", err.Error())
			}
		})
	}
}

func TestValidateEndpoint(t *testing.T) {
	cfg := &AppConfig{APIKey: "k", Endpoint: "not a url"}
	err := cfg.Validate()
	if err == nil || errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected endpoint validation error, got %v", err)
	}

	cfg.Endpoint = "http://127.0.0.1:8080/data/2.5/weather"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
