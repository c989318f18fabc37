package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	// Packages
	schema "github.com/digg/go-digg/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type UserCommands struct {
	Users      ListUsersCommand      `cmd:"" group:"USERS" help:"List users"`
	User       GetUserCommand        `cmd:"" group:"USERS" help:"Get user"`
	UserCreate CreateUserCommand     `cmd:"" group:"USERS" help:"Create a new user"`
	UserUpdate UpdateUserCommand     `cmd:"" group:"USERS" help:"Replace a user"`
	UserDelete DeleteUserCommand     `cmd:"" group:"USERS" help:"Delete user"`
	UserSearch SearchUsersCommand    `cmd:"" group:"USERS" help:"Search users by name"`
	UserCount  CountUsersCommand     `cmd:"" group:"USERS" help:"Count users"`
	UserEmail  GetUserByEmailCommand `cmd:"" group:"USERS" help:"Get user by email address"`
}

type ListUsersCommand struct{}

type GetUserCommand struct {
	Id string `arg:"" help:"User identifier"`
}

type CreateUserCommand struct {
	schema.UserMeta `embed:""`
}

type UpdateUserCommand struct {
	GetUserCommand
	schema.UserMeta `embed:""`
}

type DeleteUserCommand struct {
	GetUserCommand
}

type SearchUsersCommand struct {
	Name string `arg:"" help:"Name to search for"`
}

type CountUsersCommand struct{}

type GetUserByEmailCommand struct {
	Email string `arg:"" help:"Email address"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListUsersCommand) Run(app *Globals) error {
	c, err := app.Client()
	if err != nil {
		return err
	}
	users, err := c.ListUsers(app.ctx)
	if err != nil {
		return err
	}
	return prettyJSON(os.Stdout, users)
}

func (cmd *GetUserCommand) Run(app *Globals) error {
	c, err := app.Client()
	if err != nil {
		return err
	}
	user, err := c.GetUser(app.ctx, cmd.Id)
	if err != nil {
		return err
	}
	return prettyJSON(os.Stdout, user)
}

func (cmd *CreateUserCommand) Run(app *Globals) error {
	c, err := app.Client()
	if err != nil {
		return err
	}
	user, err := c.CreateUser(app.ctx, cmd.UserMeta)
	if err != nil {
		return err
	}
	return prettyJSON(os.Stdout, user)
}

func (cmd *UpdateUserCommand) Run(app *Globals) error {
	c, err := app.Client()
	if err != nil {
		return err
	}
	user, err := c.UpdateUser(app.ctx, cmd.Id, cmd.UserMeta)
	if err != nil {
		return err
	}
	return prettyJSON(os.Stdout, user)
}

func (cmd *DeleteUserCommand) Run(app *Globals) error {
	c, err := app.Client()
	if err != nil {
		return err
	}
	return c.DeleteUser(app.ctx, cmd.Id)
}

func (cmd *SearchUsersCommand) Run(app *Globals) error {
	c, err := app.Client()
	if err != nil {
		return err
	}
	users, err := c.SearchUsers(app.ctx, cmd.Name)
	if err != nil {
		return err
	}
	return prettyJSON(os.Stdout, users)
}

func (cmd *CountUsersCommand) Run(app *Globals) error {
	c, err := app.Client()
	if err != nil {
		return err
	}
	count, err := c.CountUsers(app.ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, count)
	return err
}

func (cmd *GetUserByEmailCommand) Run(app *Globals) error {
	c, err := app.Client()
	if err != nil {
		return err
	}
	user, err := c.GetUserByEmail(app.ctx, cmd.Email)
	if err != nil {
		return err
	}
	return prettyJSON(os.Stdout, user)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func prettyJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
