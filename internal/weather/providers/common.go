package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrFetch wraps transport-level failures: DNS, connection, non-2xx status.
	ErrFetch = errors.New("failed to fetch weather data")
	// ErrDecode wraps bodies that are not JSON or do not have the expected shape.
	ErrDecode = errors.New("failed to parse weather data")

	errNoHTTPClient = errors.New("http client not configured")
	errTrailingData = errors.New("unexpected data after JSON value")
)

var validate = validator.New()

// maxErrorBody bounds how much of a non-2xx body is read for diagnostics.
const maxErrorBody = 4 << 10

// doRequest executes a single request. There is no retry: any failure is
// returned wrapped in ErrFetch.
func doRequest(
	ctx context.Context,
	client *http.Client,
	buildRequest func() (*http.Request, error),
) (*http.Response, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, errNoHTTPClient)
	}

	req, err := buildRequest()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, withoutURL(err))
	}

	// Ensure the request obeys context cancellation.
	req = req.WithContext(ctx)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, req.URL.Host, withoutURL(err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrFetch, statusMessage(resp))
	}

	return resp, nil
}

// withoutURL drops the request URL from *url.Error values. The query string
// carries the API key, so it must not reach error messages or logs.
func withoutURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

// statusMessage describes a non-2xx response, including the provider's own
// "message" field when the body carries one.
func statusMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, body.Message)
	}
	return fmt.Sprintf("HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

// decodeJSON decodes exactly one JSON value from r into v and checks its
// shape with struct tags.
func decodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrDecode, errTrailingData)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
