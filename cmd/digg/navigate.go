package main

import (
	"fmt"
	"io"
	"os"

	// Packages
	router "github.com/digg/go-digg/pkg/router"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type NavigateCommands struct {
	Navigate NavigateCommand `cmd:"" group:"NAVIGATION" help:"Resolve a front-end path to its page and title"`
}

type NavigateCommand struct {
	Path string `arg:"" help:"Front-end path, for example /health"`
}

// document prints the title whenever it is set
type document struct {
	w io.Writer
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *NavigateCommand) Run(app *Globals) error {
	return navigate(os.Stdout, cmd.Path)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func navigate(w io.Writer, path string) error {
	r, err := router.New(router.Routes...)
	if err != nil {
		return err
	}
	route, resolved, err := r.Navigate(document{w}, path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "path: %s\npage: %s\n", resolved, route.Page)
	return err
}

func (d document) SetTitle(title string) {
	fmt.Fprintf(d.w, "title: %s\n", title)
}
