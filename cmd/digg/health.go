package main

import (
	"os"

	// Packages
	httpclient "github.com/digg/go-digg/pkg/httpclient"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type HealthCommands struct {
	Health HealthCommand `cmd:"" group:"HEALTH" help:"Query backend health probes"`
}

type HealthCommand struct {
	Probe string `arg:"" optional:"" enum:"overall,live,ready,all" default:"overall" help:"Probe to query (overall, live, ready, all)"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *HealthCommand) Run(app *Globals) error {
	c, err := app.Client()
	if err != nil {
		return err
	}
	if cmd.Probe == "all" {
		probes, err := c.Probes(app.ctx)
		if err != nil {
			return err
		}
		return prettyJSON(os.Stdout, probes)
	}

	probe := c.Health
	switch cmd.Probe {
	case "live":
		probe = c.Liveness
	case "ready":
		probe = c.Readiness
	}
	report, err := probe(app.ctx)
	if down := httpclient.DownReport(err); down != nil {
		// A DOWN report is still printed before the error is returned
		if err := prettyJSON(os.Stdout, down); err != nil {
			return err
		}
	}
	if err != nil {
		return err
	}
	return prettyJSON(os.Stdout, report)
}
