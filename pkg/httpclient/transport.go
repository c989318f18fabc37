package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"

	// Packages
	attribute "go.opentelemetry.io/otel/attribute"
	metric "go.opentelemetry.io/otel/metric"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// transport reports each round trip to the observer. It passes the request
// and the response through untouched, except that an error response body is
// read in full so it can be reported and is then replaced with a copy.
type transport struct {
	http.RoundTripper
	observer Observer
	counter  metric.Int64Counter
}

var _ http.RoundTripper = (*transport)(nil)

///////////////////////////////////////////////////////////////////////////////
// INTERFACE IMPLEMENTATION

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	path := req.URL.RequestURI()

	// Before send
	t.observer.LogRequest(ctx, req.Method, path)

	// No answer
	resp, err := t.RoundTripper.RoundTrip(req)
	if err != nil {
		t.count(ctx, req.Method, 0)
		t.observer.LogError(ctx, path, err)
		return nil, err
	}
	t.count(ctx, req.Method, resp.StatusCode)

	// Success
	if resp.StatusCode < http.StatusBadRequest {
		t.observer.LogResponse(ctx, resp.StatusCode, path)
		return resp, nil
	}

	// Error status: keep the payload for the observer and the caller
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))

	respErr := &ResponseError{Status: resp.StatusCode, Path: path, Body: body}
	if c := captureFrom(ctx); c != nil {
		c.resp = respErr
	}
	t.observer.LogError(ctx, path, respErr)

	// Return the response to the client, which produces the error
	return resp, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (t *transport) count(ctx context.Context, method string, status int) {
	if t.counter == nil {
		return
	}
	t.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.Int("http.response.status_code", status),
	))
}
