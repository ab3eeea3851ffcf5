package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseAddUserFlags(t *testing.T) {
	opts, err := parseAddUserFlags([]string{"-username", "alice", "-password", "secret"})
	require.NoError(t, err)
	require.Equal(t, "alice", opts.Username)
	require.Equal(t, "secret", opts.Password)
	require.Equal(t, "user", opts.Role)

	_, err = parseAddUserFlags([]string{"-password", "secret"})
	require.Error(t, err)

	_, err = parseAddUserFlags([]string{"-username", "alice", "-password", "secret", "-role", "owner"})
	require.Error(t, err)
}

func TestParseAddUsersFlags(t *testing.T) {
	opts, err := parseAddUsersFlags([]string{"-pairs", "a:1,b:2", "-role", "admin"})
	require.NoError(t, err)
	require.Equal(t, "a:1,b:2", opts.Pairs)
	require.Equal(t, "admin", opts.Role)

	_, err = parseAddUsersFlags(nil)
	require.Error(t, err)
}

func TestParseCreateRoomFlags(t *testing.T) {
	opts, err := parseCreateRoomFlags([]string{"-name", "ops", "-allow", "alice, bob"})
	require.NoError(t, err)
	require.Equal(t, "ops", opts.Name)
	require.False(t, opts.Public)
	require.Equal(t, []string{"alice", "bob"}, splitNames(opts.Allowed))

	_, err = parseCreateRoomFlags([]string{"-public"})
	require.Error(t, err)
}

func TestParseGrantAccessFlags(t *testing.T) {
	opts, err := parseGrantAccessFlags([]string{"-room", "ops", "-users", "alice,,bob"})
	require.NoError(t, err)
	require.Equal(t, "ops", opts.Room)
	require.Equal(t, []string{"alice", "bob"}, splitNames(opts.Users))

	_, err = parseGrantAccessFlags([]string{"-room", "ops"})
	require.Error(t, err)
}

func TestParseMigrateFlags(t *testing.T) {
	opts, err := parseMigrateFlags(nil)
	require.NoError(t, err)
	require.Equal(t, defaultMigrationTimeout, opts.Timeout)

	opts, err = parseMigrateFlags([]string{"-timeout", "30s"})
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, opts.Timeout)

	_, err = parseMigrateFlags([]string{"-timeout", "0"})
	require.Error(t, err)
}

func TestParseCleanupFlags(t *testing.T) {
	opts, err := parseCleanupFlags([]string{"-max-age", "48h"})
	require.NoError(t, err)
	require.Equal(t, 48*time.Hour, opts.MaxAge)

	_, err = parseCleanupFlags([]string{"-max-age", "-1h"})
	require.Error(t, err)
}

func TestSplitNames(t *testing.T) {
	require.Nil(t, splitNames(""))
	require.Equal(t, []string{"a", "b"}, splitNames(" a , b ,"))
}
