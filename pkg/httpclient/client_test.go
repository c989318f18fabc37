package httpclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	// Packages
	httpclient "github.com/digg/go-digg/pkg/httpclient"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// request is one request as seen by the test backend
type request struct {
	Method   string
	Path     string // decoded
	URI      string // as sent on the wire
	RawQuery string
	Body     string
}

// recorder records every request before passing it to the handler
type recorder struct {
	sync.Mutex
	handler  http.Handler
	requests []request
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	body, _ := io.ReadAll(req.Body)
	r.Lock()
	r.requests = append(r.requests, request{
		Method:   req.Method,
		Path:     req.URL.Path,
		URI:      req.RequestURI,
		RawQuery: req.URL.RawQuery,
		Body:     string(body),
	})
	r.Unlock()
	r.handler.ServeHTTP(w, req)
}

func (r *recorder) Requests() []request {
	r.Lock()
	defer r.Unlock()
	return append([]request(nil), r.requests...)
}

// newTestServer starts a backend serving handler and returns a client for it
func newTestServer(t *testing.T, handler http.Handler, opts ...httpclient.Opt) (*httpclient.Client, *recorder) {
	t.Helper()
	rec := &recorder{handler: handler}
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)
	c, err := httpclient.New(srv.URL, opts...)
	if err != nil {
		t.Fatalf("newTestServer: failed to create client: %v", err)
	}
	return c, rec
}

// writeJSON writes body verbatim as a JSON response
func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, body)
	}
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestNew(t *testing.T) {
	assert := assert.New(t)

	c, err := httpclient.New("")
	assert.NoError(err)
	assert.NotNil(c)

	c, err = httpclient.New("http://localhost:8080",
		httpclient.WithTracer(tracenoop.NewTracerProvider().Tracer("test")),
		httpclient.WithMeter(metricnoop.NewMeterProvider().Meter("test")),
	)
	assert.NoError(err)
	assert.NotNil(c)
}

func TestNew_invalidOpts(t *testing.T) {
	assert := assert.New(t)

	_, err := httpclient.New("", httpclient.WithTimeout(0))
	assert.Error(err)

	_, err = httpclient.New("", httpclient.WithObserver(nil))
	assert.Error(err)
}

func TestNew_withMeter(t *testing.T) {
	c, rec := newTestServer(t, respond(http.StatusOK, `{"count": 3}`),
		httpclient.WithMeter(metricnoop.NewMeterProvider().Meter("test")),
	)
	n, err := c.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)
	assert.Len(t, rec.Requests(), 1)
}
