package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// UserMeta is the user payload without the server-assigned identifier,
// as sent on create and update.
type UserMeta struct {
	Name      string `json:"name" help:"Full name"`
	Address   string `json:"address,omitempty" help:"Postal address"`
	Email     string `json:"email" help:"Email address"`
	Telephone string `json:"telephone,omitempty" help:"Telephone number"`
}

// User is a user as returned by the backend.
type User struct {
	Id uint64 `json:"id"`
	UserMeta
}

// UserCount is the response of the count endpoint.
type UserCount struct {
	Count uint64 `json:"count"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (u UserMeta) String() string {
	return types.Stringify(u)
}

func (u User) String() string {
	return types.Stringify(u)
}

func (u UserCount) String() string {
	return types.Stringify(u)
}
