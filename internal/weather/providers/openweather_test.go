package providers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"testing"

	"github.com/i474232898/weather-cli/internal/providertest"
)

func TestOpenWeatherCurrent(t *testing.T) {
	srv := providertest.NewJSON(t, http.StatusOK, providertest.LondonJSON)
	p := NewOpenWeatherProvider(&http.Client{}, "secret", srv.URL)

	r, err := p.Current(context.Background(), "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Location != "London" {
		t.Fatalf("expected London, got %q", r.Location)
	}
	if r.TemperatureK != 288.15 || r.FeelsLikeK != 287.6 || r.TempMaxK != 289.15 || r.TempMinK != 286.15 {
		t.Fatalf("unexpected temperatures: %+v", r)
	}
	if r.HumidityPct != 72 {
		t.Fatalf("expected humidity 72, got %d", r.HumidityPct)
	}
	if r.WindSpeedMS != 5 {
		t.Fatalf("expected wind 5 m/s, got %v", r.WindSpeedMS)
	}
	if r.WindBearing == nil || *r.WindBearing != 90 {
		t.Fatalf("expected bearing 90, got %v", r.WindBearing)
	}
	if r.Sunrise != 1700000000 || r.Sunset != 1700040000 {
		t.Fatalf("unexpected sun times: %d/%d", r.Sunrise, r.Sunset)
	}
	if len(r.Conditions) != 1 || r.Conditions[0].Category != "Clouds" || r.Conditions[0].Description != "overcast clouds" {
		t.Fatalf("unexpected conditions: %+v", r.Conditions)
	}

	reqs := srv.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(reqs))
	}
	if reqs[0].City != "London" || reqs[0].AppID != "secret" {
		t.Fatalf("unexpected query: %+v", reqs[0])
	}
}

func TestOpenWeatherCityIsEncoded(t *testing.T) {
	srv := providertest.NewJSON(t, http.StatusOK, providertest.LondonJSON)
	p := NewOpenWeatherProvider(nil, "k", srv.URL)

	if _, err := p.Current(context.Background(), "São Paulo,BR&x=1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := srv.Requests()[0].City; got != "São Paulo,BR&x=1" {
		t.Fatalf("city not passed verbatim: %q", got)
	}
}

func TestOpenWeatherOptionalFields(t *testing.T) {
	body := `{
		"name": "Nowhere",
		"weather": [],
		"main": {"temp": 263.15, "feels_like": 260, "temp_min": 262, "temp_max": 264, "humidity": 40},
		"wind": {"speed": 0},
		"sys": {"sunrise": 1, "sunset": 2}
	}`
	srv := providertest.NewJSON(t, http.StatusOK, body)
	p := NewOpenWeatherProvider(nil, "k", srv.URL)

	r, err := p.Current(context.Background(), "Nowhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.WindBearing != nil {
		t.Fatalf("expected no bearing, got %v", *r.WindBearing)
	}
	if len(r.Conditions) != 0 {
		t.Fatalf("expected no conditions, got %+v", r.Conditions)
	}
}

// validBody is a complete response; tests drop one key at a time from it.
const validBody = `{"name":"X","weather":[{"main":"Rain","description":"light rain"}],` +
	`"main":{"temp":280,"feels_like":278,"temp_min":279,"temp_max":281,"humidity":80},` +
	`"wind":{"speed":3,"deg":200},"sys":{"sunrise":1,"sunset":2}}`

func TestOpenWeatherErrors(t *testing.T) {
	without := func(key string) string {
		return strings.Replace(validBody, key, `"unused":`, 1)
	}

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key"}`, ErrFetch},
		{"city not found", http.StatusNotFound, `{"cod":"404","message":"city not found"}`, ErrFetch},
		{"server error without body", http.StatusBadGateway, ``, ErrFetch},
		{"not json", http.StatusOK, `<html>oops</html>`, ErrDecode},
		{"trailing garbage", http.StatusOK, validBody + `garbage`, ErrDecode},
		{"second value", http.StatusOK, validBody + `{}`, ErrDecode},
		{"empty blocks", http.StatusOK, `{"weather":[{}],"main":{},"wind":{},"sys":{}}`, ErrDecode},
		{"missing main", http.StatusOK, `{"name":"X","weather":[],"wind":{"speed":1},"sys":{"sunrise":1,"sunset":2}}`, ErrDecode},
		{"missing sys", http.StatusOK, `{"name":"X","weather":[],"main":{"temp":1},"wind":{"speed":1}}`, ErrDecode},
		{"missing weather", http.StatusOK, `{"name":"X","main":{"temp":1},"wind":{"speed":1},"sys":{"sunrise":1,"sunset":2}}`, ErrDecode},
		{"missing name", http.StatusOK, without(`"name":`), ErrDecode},
		{"null name", http.StatusOK, strings.Replace(validBody, `"name":"X"`, `"name":null`, 1), ErrDecode},
		{"missing temp", http.StatusOK, without(`"temp":`), ErrDecode},
		{"missing feels_like", http.StatusOK, without(`"feels_like":`), ErrDecode},
		{"missing temp_min", http.StatusOK, without(`"temp_min":`), ErrDecode},
		{"missing temp_max", http.StatusOK, without(`"temp_max":`), ErrDecode},
		{"missing humidity", http.StatusOK, without(`"humidity":`), ErrDecode},
		{"missing wind speed", http.StatusOK, without(`"speed":`), ErrDecode},
		{"missing sunrise", http.StatusOK, without(`"sunrise":`), ErrDecode},
		{"missing sunset", http.StatusOK, without(`"sunset":`), ErrDecode},
		{"missing condition category", http.StatusOK, strings.Replace(validBody, `"main":"Rain",`, ``, 1), ErrDecode},
		{"missing condition description", http.StatusOK, without(`"description":`), ErrDecode},
		{"wrong type", http.StatusOK, strings.Replace(validBody, `"temp":280`, `"temp":"hot"`, 1), ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := providertest.NewJSON(t, tt.status, tt.body)
			p := NewOpenWeatherProvider(nil, "k", srv.URL)

			r, err := p.Current(context.Background(), "X")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v (reading %+v)", tt.wantErr, err, r)
			}
			if len(srv.Requests()) != 1 {
				t.Fatalf("expected exactly one request, got %d", len(srv.Requests()))
			}
		})
	}
}

func TestOpenWeatherCompleteBody(t *testing.T) {
	for name, body := range map[string]string{
		"as is":            validBody,
		"no bearing":       strings.Replace(validBody, `,"deg":200`, ``, 1),
		"zero values":      strings.Replace(validBody, `"humidity":80`, `"humidity":0`, 1),
		"trailing newline": validBody + "\n",
	} {
		t.Run(name, func(t *testing.T) {
			srv := providertest.NewJSON(t, http.StatusOK, body)
			p := NewOpenWeatherProvider(nil, "k", srv.URL)

			if _, err := p.Current(context.Background(), "X"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestOpenWeatherErrorMessageIncludesProviderMessage(t *testing.T) {
	srv := providertest.NewJSON(t, http.StatusNotFound, `{"cod":"404","message":"city not found"}`)
	p := NewOpenWeatherProvider(nil, "k", srv.URL)

	_, err := p.Current(context.Background(), "Atlantis")
	if err == nil {
		t.Fatalf("expected error")
	}
	want := "failed to fetch weather data: HTTP 404: city not found"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestOpenWeatherTransportFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	// Nothing accepts on addr once the listener is closed.
	_ = ln.Close()

	p := NewOpenWeatherProvider(nil, "topsecret", "http://"+addr+providertest.WeatherPath)
	_, err = p.Current(context.Background(), "X")
	if !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
	if strings.Contains(err.Error(), "topsecret") || strings.Contains(err.Error(), "appid") {
		t.Fatalf("api key leaked into error: %q", err.Error())
	}
}

func TestOpenWeatherCancelledContext(t *testing.T) {
	srv := providertest.NewJSON(t, http.StatusOK, providertest.LondonJSON)
	p := NewOpenWeatherProvider(nil, "k", srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Current(ctx, "London")
	if !errors.Is(err, ErrFetch) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected wrapped context.Canceled, got %v", err)
	}
}

func TestOpenWeatherRequiresAPIKey(t *testing.T) {
	srv := providertest.NewJSON(t, http.StatusOK, providertest.LondonJSON)
	p := NewOpenWeatherProvider(nil, "", srv.URL)

	if _, err := p.Current(context.Background(), "London"); err == nil {
		t.Fatalf("expected error without api key")
	}
	if n := len(srv.Requests()); n != 0 {
		t.Fatalf("expected no request without api key, got %d", n)
	}
}
