package httpclient

import (
	"context"
	"net/http"

	// Packages
	schema "github.com/digg/go-digg/pkg/schema"
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	metric "go.opentelemetry.io/otel/metric"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is a backend HTTP client that wraps the base HTTP client
// and provides typed methods for the user and health resources.
type Client struct {
	*client.Client
	tracer trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	spanPrefix  = "digg.client."
	requestsKey = "digg.client.requests"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new backend HTTP client with the given base URL and options.
// An empty url selects schema.DefaultEndpoint. The client is safe for
// concurrent use and is not modified after New returns.
func New(url string, opts ...Opt) (*Client, error) {
	o, err := applyOpts(opts)
	if err != nil {
		return nil, err
	}
	if url == "" {
		url = schema.DefaultEndpoint
	}

	// Create the base client
	cl, err := client.New(append(o.clientOpts, client.OptEndpoint(url), client.OptTimeout(o.timeout))...)
	if err != nil {
		return nil, err
	}

	// Observe every round trip
	t := &transport{
		RoundTripper: cl.Client.Transport,
		observer:     o.observer,
	}
	if t.RoundTripper == nil {
		t.RoundTripper = http.DefaultTransport
	}
	if o.meter != nil {
		counter, err := o.meter.Int64Counter(requestsKey,
			metric.WithDescription("Backend requests by method and status"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			return nil, err
		}
		t.counter = counter
	}
	cl.Client.Transport = t

	// Return success
	return &Client{Client: cl, tracer: o.tracer}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// do performs a single request within a span, returning the go-client error
// wrapped in a *ResponseError when the backend answered with an error status.
func (c *Client) do(ctx context.Context, name string, payload client.Payload, out any, opts ...client.RequestOpt) (err error) {
	child, endFunc := otel.StartSpan(c.tracer, ctx, spanPrefix+name)
	defer func() { endFunc(err) }()

	capture := new(capture)
	if err = c.DoWithContext(withCapture(child, capture), payload, out, opts...); err != nil {
		err = capture.wrap(err)
	}
	return err
}
