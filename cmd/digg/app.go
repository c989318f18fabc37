package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Packages
	httpclient "github.com/digg/go-digg/pkg/httpclient"
	logger "github.com/digg/go-digg/pkg/logger"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Endpoint string        `env:"DIGG_ENDPOINT" default:"http://localhost:8080" help:"Backend endpoint"`
	Timeout  time.Duration `env:"DIGG_TIMEOUT" default:"10s" help:"Backend request timeout"`
	Debug    bool          `help:"Log every backend request and response"`
	Verbose  bool          `help:"Trace request and response bodies"`

	ctx    context.Context
	cancel context.CancelFunc
	logger *logger.Logger
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewApp(app Globals) *Globals {
	// This context is cancelled when the process receives a SIGINT or SIGTERM
	app.ctx, app.cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Log to stderr so command output can be piped
	app.logger = logger.New(os.Stderr, app.Debug)

	// Return the app
	return &app
}

func (app *Globals) Close() error {
	app.cancel()
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client builds a backend client from the global flags.
func (app *Globals) Client() (*httpclient.Client, error) {
	opts := []httpclient.Opt{
		httpclient.WithObserver(app.logger),
		httpclient.WithTimeout(app.Timeout),
	}
	if app.Verbose {
		opts = append(opts, httpclient.WithClientOpt(client.OptTrace(os.Stderr, true)))
	}
	return httpclient.New(app.Endpoint, opts...)
}
