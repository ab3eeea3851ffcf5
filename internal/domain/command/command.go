// Package command defines the terminal command grammar as data: each command
// carries its name, minimum positional argument count, and privilege flag, so
// the router's authorization and arity rules live in one table instead of
// branching code.
package command

import "strings"

// Sigil prefixes every command line; anything else is a chat payload.
const Sigil = "/"

// Name identifies a terminal command (lowercase, without the sigil).
type Name string

const (
	Help          Name = "help"
	ListRooms     Name = "listrooms"
	Join          Name = "join"
	Users         Name = "users"
	DM            Name = "dm"
	Exit          Name = "exit"
	Logout        Name = "logout"
	Quit          Name = "quit"
	ChangePass    Name = "changepass"
	ResetPass     Name = "resetpass"
	AddUser       Name = "adduser"
	AddUsers      Name = "addmultipleusers"
	CreateRoom    Name = "createroom"
	DeleteRoom    Name = "deleteroom"
	DeleteMessage Name = "deletemessage"
	Cleanup       Name = "cleanup"
	GiveAccess    Name = "giveaccess"
)

// Spec describes one command's dispatch rules.
type Spec struct {
	Name Name
	// MinArgs is the minimum number of positional arguments. A line with
	// fewer arguments is treated exactly like an unknown command (the
	// original terminal's fallthrough behavior, preserved deliberately).
	MinArgs int
	// Privileged commands require the admin role and a valid security key
	// as their trailing argument.
	Privileged bool
	// AllowLoggedOut marks the few commands usable before login.
	AllowLoggedOut bool
}

// table is the authoritative command set. Command names, argument order, and
// arity form the wire protocol between UI and engine and must stay stable.
var table = map[Name]Spec{
	Help:          {Name: Help, MinArgs: 0, AllowLoggedOut: true},
	ListRooms:     {Name: ListRooms, MinArgs: 0},
	Join:          {Name: Join, MinArgs: 1},
	Users:         {Name: Users, MinArgs: 0},
	DM:            {Name: DM, MinArgs: 1},
	Exit:          {Name: Exit, MinArgs: 0},
	Logout:        {Name: Logout, MinArgs: 0},
	Quit:          {Name: Quit, MinArgs: 0, AllowLoggedOut: true},
	ChangePass:    {Name: ChangePass, MinArgs: 1},
	ResetPass:     {Name: ResetPass, MinArgs: 3, AllowLoggedOut: true},
	AddUser:       {Name: AddUser, MinArgs: 3, Privileged: true},
	AddUsers:      {Name: AddUsers, MinArgs: 2, Privileged: true},
	CreateRoom:    {Name: CreateRoom, MinArgs: 2, Privileged: true},
	DeleteRoom:    {Name: DeleteRoom, MinArgs: 2, Privileged: true},
	DeleteMessage: {Name: DeleteMessage, MinArgs: 2, Privileged: true},
	Cleanup:       {Name: Cleanup, MinArgs: 1, Privileged: true},
	GiveAccess:    {Name: GiveAccess, MinArgs: 3, Privileged: true},
}

// Lookup returns the spec for a command token (with or without the sigil,
// case-insensitive) and reports whether the token names a known command.
func Lookup(token string) (Spec, bool) {
	name := Name(strings.ToLower(strings.TrimPrefix(token, Sigil)))
	spec, ok := table[name]
	return spec, ok
}

// Line is a parsed input line.
type Line struct {
	// Raw is the original input, recorded verbatim in command history.
	Raw string
	// IsCommand reports whether the line starts with the sigil.
	IsCommand bool
	// Token is the first whitespace-separated field (for command lines).
	Token string
	// Args are the remaining fields.
	Args []string
}

// Parse splits a raw input line. A line not starting with the sigil is a chat
// payload; for command lines the first token selects the handler and the rest
// are positional arguments.
func Parse(raw string) Line {
	if !strings.HasPrefix(raw, Sigil) {
		return Line{Raw: raw}
	}
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Line{Raw: raw}
	}
	return Line{
		Raw:       raw,
		IsCommand: true,
		Token:     fields[0],
		Args:      fields[1:],
	}
}
