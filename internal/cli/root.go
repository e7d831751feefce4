package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/i474232898/weather-cli/internal/config"
	"github.com/i474232898/weather-cli/internal/logging"
	"github.com/i474232898/weather-cli/internal/report"
	"github.com/i474232898/weather-cli/internal/weather"
	"github.com/i474232898/weather-cli/internal/weather/providers"
)

var validate = validator.New()

// App wires the command to its environment. Zero fields fall back to the
// process defaults.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// Getenv looks up environment variables (os.Getenv when nil).
	Getenv func(string) string

	// Client performs the provider request (http.DefaultClient when nil).
	Client *http.Client

	// Location is the zone sunrise and sunset are shown in (time.Local when nil).
	Location *time.Location

	// Terminal reports that Stdout is a color-capable terminal.
	Terminal bool

	// LoadDotEnv loads ./.env before reading the environment.
	LoadDotEnv bool

	Version string
}

// options are the parsed command-line flags.
type options struct {
	fahrenheit bool
	noColor    bool
	verbose    bool
	endpoint   string
}

// lookup is the validated positional input.
type lookup struct {
	City string `validate:"required"`
}

func (a *App) stdout() io.Writer {
	if a.Stdout == nil {
		return os.Stdout
	}
	return a.Stdout
}

func (a *App) stderr() io.Writer {
	if a.Stderr == nil {
		return os.Stderr
	}
	return a.Stderr
}

// Command builds the root command.
func (a *App) Command() *cobra.Command {
	var opts options

	version := a.Version
	if version == "" {
		version = "dev"
	}

	cmd := &cobra.Command{
		Use:   "weather <city>",
		Short: "Show the current weather for a city",
		Long: "Show the current weather for a city using OpenWeatherMap.\n\n" +
			"The API key is read from the " + config.APIKeyEnv + " environment variable.",
		Example: "  weather London\n  weather \"New York\" --fahrenheit",
		Version: version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usage(fmt.Errorf("expected exactly one city, got %d arguments", len(args)))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args[0], opts)
		},
	}

	cmd.SetOut(a.stdout())
	cmd.SetErr(a.stderr())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usage(err)
	})

	flags := cmd.Flags()
	flags.BoolVarP(&opts.fahrenheit, "fahrenheit", "f", false, "display temperatures in Fahrenheit instead of Celsius")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log request details to stderr")
	flags.StringVar(&opts.endpoint, "endpoint", "", "override the provider endpoint URL")
	_ = flags.MarkHidden("endpoint")

	return cmd
}

// Run executes the command with args. Every error it returns is an *ExitError.
func (a *App) Run(ctx context.Context, args []string) error {
	cmd := a.Command()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything cobra rejects before RunE is a usage problem.
	return usage(err)
}

func (a *App) run(ctx context.Context, city string, opts options) error {
	noColor := opts.noColor || !a.Terminal
	logger := logging.New(a.stderr(), opts.verbose, noColor)

	if a.LoadDotEnv {
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file loaded", "error", err)
		}
	}

	if err := validate.Struct(lookup{City: strings.TrimSpace(city)}); err != nil {
		return usage(errors.New("city must not be empty"))
	}

	cfg, err := config.Load(a.Getenv)
	if err != nil {
		return failure(err)
	}
	cfg.Endpoint = opts.endpoint
	if err := cfg.Validate(); err != nil {
		return usage(err)
	}

	unit := weather.UnitFor(opts.fahrenheit)
	logger.Debug("lookup",
		slog.String("city", city),
		slog.String("unit", unit.String()),
	)

	provider := providers.NewOpenWeatherProvider(a.Client, cfg.APIKey, cfg.Endpoint)
	service := weather.NewService(provider, logger)

	reading, err := service.Current(ctx, city)
	if err != nil {
		return failure(err)
	}

	summary, err := report.Build(reading, unit, a.Location)
	if err != nil {
		return failure(err)
	}

	if err := report.Render(a.stdout(), summary, report.Options{NoColor: noColor}); err != nil {
		return failure(fmt.Errorf("write report: %w", err))
	}
	return nil
}
