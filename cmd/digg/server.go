package main

import (
	"fmt"
	"net/http"
	"net/url"

	// Packages
	router "github.com/digg/go-digg/pkg/router"
	version "github.com/digg/go-digg/pkg/version"
	webapp "github.com/digg/go-digg/pkg/webapp"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServerCommands struct {
	Run RunServerCommand `cmd:"" name:"run" help:"Run the web front-end." group:"SERVER"`
}

type RunServerCommand struct {
	Listen  string `name:"listen" env:"DIGG_LISTEN" default:":3000" help:"Listen address"`
	NoProxy bool   `name:"no-proxy" help:"Do not forward /api to the backend"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RunServerCommand) Run(app *Globals) error {
	c, err := app.Client()
	if err != nil {
		return err
	}

	// The proxy forwards to the same backend as the client
	var backend *url.URL
	if !cmd.NoProxy {
		if backend, err = url.Parse(app.Endpoint); err != nil {
			return fmt.Errorf("invalid endpoint: %w", err)
		}
	}

	// Create the router over a mux, which carries the front-end handlers
	mux := http.NewServeMux()
	r, err := httprouter.NewRouter(app.ctx, mux, "", "*", "digg", version.Version())
	if err != nil {
		return fmt.Errorf("failed to create router: %w", err)
	}

	// Register front-end handlers
	if err := webapp.RegisterHandlers(webapp.NewMux(mux, r.Spec()), router.Routes, c, c, backend); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}

	// Create and run the HTTP server
	srv, err := httpserver.New(cmd.Listen, nil)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	srv.SetHandler(r)

	app.logger.Info("digg started", "version", version.Version(), "listen", cmd.Listen, "backend", app.Endpoint)
	if err := srv.Run(app.ctx); err != nil {
		return err
	}
	app.logger.Info("digg stopped")
	return nil
}
