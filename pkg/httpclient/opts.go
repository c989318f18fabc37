package httpclient

import (
	"time"

	// Packages
	schema "github.com/digg/go-digg/pkg/schema"
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	metric "go.opentelemetry.io/otel/metric"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for client configuration.
type Opt func(*opts) error

type opts struct {
	observer   Observer
	tracer     trace.Tracer
	meter      metric.Meter
	timeout    time.Duration
	clientOpts []client.ClientOpt
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithObserver sets the observer notified of every request and its outcome.
func WithObserver(observer Observer) Opt {
	return func(o *opts) error {
		if observer == nil {
			return httpresponse.ErrBadRequest.With("nil observer")
		}
		o.observer = observer
		return nil
	}
}

// WithTracer sets the tracer used for one span per resource operation.
func WithTracer(tracer trace.Tracer) Opt {
	return func(o *opts) error {
		o.tracer = tracer
		return nil
	}
}

// WithMeter sets the meter used to count backend requests.
func WithMeter(meter metric.Meter) Opt {
	return func(o *opts) error {
		o.meter = meter
		return nil
	}
}

// WithTimeout replaces the client-wide timeout.
func WithTimeout(timeout time.Duration) Opt {
	return func(o *opts) error {
		if timeout <= 0 {
			return httpresponse.ErrBadRequest.Withf("invalid timeout: %v", timeout)
		}
		o.timeout = timeout
		return nil
	}
}

// WithClientOpt passes options through to the underlying go-client, for
// example client.OptTrace.
func WithClientOpt(opt ...client.ClientOpt) Opt {
	return func(o *opts) error {
		o.clientOpts = append(o.clientOpts, opt...)
		return nil
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func applyOpts(opt []Opt) (opts, error) {
	// Set defaults
	o := opts{
		observer: nopObserver{},
		timeout:  schema.DefaultTimeout,
	}

	// Apply options
	for _, fn := range opt {
		if err := fn(&o); err != nil {
			return opts{}, err
		}
	}

	// Return success
	return o, nil
}
