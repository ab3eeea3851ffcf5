package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		token          string
		wantName       Name
		wantMinArgs    int
		wantPrivileged bool
	}{
		{"/help", Help, 0, false},
		{"/JOIN", Join, 1, false},
		{"dm", DM, 1, false},
		{"/giveaccess", GiveAccess, 3, true},
		{"/adduser", AddUser, 3, true},
		{"/addmultipleusers", AddUsers, 2, true},
		{"/cleanup", Cleanup, 1, true},
		{"/resetpass", ResetPass, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			spec, ok := Lookup(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, spec.Name)
			assert.Equal(t, tt.wantMinArgs, spec.MinArgs)
			assert.Equal(t, tt.wantPrivileged, spec.Privileged)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()
	_, ok := Lookup("/teleport")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		raw  string
		want Line
	}{
		{
			name: "chat payload",
			raw:  "hello everyone",
			want: Line{Raw: "hello everyone"},
		},
		{
			name: "command with args",
			raw:  "/join general",
			want: Line{Raw: "/join general", IsCommand: true, Token: "/join", Args: []string{"general"}},
		},
		{
			name: "extra whitespace between fields",
			raw:  "/giveaccess  a,b   room1  KEY",
			want: Line{
				Raw:       "/giveaccess  a,b   room1  KEY",
				IsCommand: true,
				Token:     "/giveaccess",
				Args:      []string{"a,b", "room1", "KEY"},
			},
		},
		{
			name: "bare sigil",
			raw:  "/",
			want: Line{Raw: "/", IsCommand: true, Token: "/", Args: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestLoggedOutCommands(t *testing.T) {
	t.Parallel()
	for _, token := range []string{"/help", "/resetpass", "/quit"} {
		spec, ok := Lookup(token)
		require.True(t, ok, token)
		assert.True(t, spec.AllowLoggedOut, token)
	}
	spec, ok := Lookup("/join")
	require.True(t, ok)
	assert.False(t, spec.AllowLoggedOut)
}
