// Package providertest serves a fake OpenWeatherMap endpoint on a loopback
// listener for tests.
package providertest

import (
	"net"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// WeatherPath matches the path of providers.DefaultOpenWeatherURL.
const WeatherPath = "/data/2.5/weather"

// LondonJSON is a trimmed OpenWeatherMap response for London.
const LondonJSON = `{
  "coord": {"lon": -0.1257, "lat": 51.5085},
  "weather": [{"id": 804, "main": "Clouds", "description": "overcast clouds", "icon": "04d"}],
  "base": "stations",
  "main": {"temp": 288.15, "feels_like": 287.6, "temp_min": 286.15, "temp_max": 289.15, "pressure": 1012, "humidity": 72},
  "visibility": 10000,
  "wind": {"speed": 5, "deg": 90},
  "clouds": {"all": 100},
  "dt": 1700020000,
  "sys": {"type": 2, "id": 2075535, "country": "GB", "sunrise": 1700000000, "sunset": 1700040000},
  "timezone": 0,
  "id": 2643743,
  "name": "London",
  "cod": 200
}`

// Request is what the fake server saw for one call.
type Request struct {
	Path  string
	City  string
	AppID string
}

// Server is a running fake provider.
type Server struct {
	URL string // full endpoint URL, ready for NewOpenWeatherProvider

	mu       sync.Mutex
	requests []Request
}

// Requests returns a copy of the calls received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) record(c *fiber.Ctx) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, Request{
		Path:  c.Path(),
		City:  c.Query("q"),
		AppID: c.Query("appid"),
	})
}

// New starts handler behind WeatherPath and stops it when the test ends.
func New(t testing.TB, handler fiber.Handler) *Server {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	srv := &Server{URL: "http://" + ln.Addr().String() + WeatherPath}

	app := fiber.New(fiber.Config{
		AppName:               "fake-openweathermap",
		DisableStartupMessage: true,
		// Request values are kept after the handler returns.
		Immutable: true,
	})
	app.Get(WeatherPath, func(c *fiber.Ctx) error {
		srv.record(c)
		return handler(c)
	})

	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})

	return srv
}

// JSON responds with status and a raw JSON body.
func JSON(status int, body string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(status).SendString(body)
	}
}

// NewJSON is New with a fixed JSON response.
func NewJSON(t testing.TB, status int, body string) *Server {
	t.Helper()
	return New(t, JSON(status, body))
}
