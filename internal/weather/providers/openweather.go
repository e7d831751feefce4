package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/weather-cli/internal/weather"
)

// DefaultOpenWeatherURL is the current-weather endpoint of OpenWeatherMap.
const DefaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenWeatherProvider builds a provider for baseURL. An empty baseURL
// selects DefaultOpenWeatherURL and a nil client selects http.DefaultClient.
func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL string) *OpenWeatherProvider {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultOpenWeatherURL
	}

	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// openWeatherPayload mirrors the fields of the /data/2.5/weather response we
// read. Fields are pointers so a missing key fails validation instead of
// decoding to zero. wind.deg is the only optional field.
type openWeatherPayload struct {
	Name *string `json:"name" validate:"required"`
	Main *struct {
		Temp      *float64 `json:"temp" validate:"required"`
		FeelsLike *float64 `json:"feels_like" validate:"required"`
		TempMin   *float64 `json:"temp_min" validate:"required"`
		TempMax   *float64 `json:"temp_max" validate:"required"`
		Humidity  *int     `json:"humidity" validate:"required"`
	} `json:"main" validate:"required"`
	Weather []struct {
		Main        *string `json:"main" validate:"required"`
		Description *string `json:"description" validate:"required"`
	} `json:"weather" validate:"required,dive"`
	Wind *struct {
		Speed *float64 `json:"speed" validate:"required"`
		Deg   *float64 `json:"deg"`
	} `json:"wind" validate:"required"`
	Sys *struct {
		Sunrise *int64 `json:"sunrise" validate:"required"`
		Sunset  *int64 `json:"sunset" validate:"required"`
	} `json:"sys" validate:"required"`
}

// Current fetches the current conditions for city. The city is sent verbatim
// as the q parameter; temperatures come back in Kelvin (no units parameter).
func (p *OpenWeatherProvider) Current(ctx context.Context, city string) (weather.Reading, error) {
	if p.apiKey == "" {
		return weather.Reading{}, fmt.Errorf("openweather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", city)
		values.Set("appid", p.apiKey)

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	resp, err := doRequest(ctx, p.client, buildRequest)
	if err != nil {
		return weather.Reading{}, err
	}
	defer resp.Body.Close()

	var payload openWeatherPayload
	if err := decodeJSON(resp.Body, &payload); err != nil {
		return weather.Reading{}, err
	}

	conditions := make([]weather.Condition, 0, len(payload.Weather))
	for _, w := range payload.Weather {
		conditions = append(conditions, weather.Condition{
			Description: *w.Description,
			Category:    *w.Main,
		})
	}

	return weather.Reading{
		Location:     *payload.Name,
		TemperatureK: *payload.Main.Temp,
		FeelsLikeK:   *payload.Main.FeelsLike,
		TempMaxK:     *payload.Main.TempMax,
		TempMinK:     *payload.Main.TempMin,
		HumidityPct:  *payload.Main.Humidity,
		Conditions:   conditions,
		WindSpeedMS:  *payload.Wind.Speed,
		WindBearing:  payload.Wind.Deg,
		Sunrise:      *payload.Sys.Sunrise,
		Sunset:       *payload.Sys.Sunset,
	}, nil
}
