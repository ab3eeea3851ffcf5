package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tcacomm/tca-server/config"
	"github.com/tcacomm/tca-server/internal/domain/model"
	"github.com/tcacomm/tca-server/internal/mocks/memory"
	"github.com/tcacomm/tca-server/internal/service"
	"github.com/tcacomm/tca-server/internal/testutil"
)

func newTestEngine(t *testing.T) *service.Engine {
	t.Helper()

	users := memory.NewUserRepo()
	rooms := memory.NewRoomRepo()
	messages := memory.NewMessageRepo()
	directs := memory.NewDirectMessageRepo()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = users.Insert(context.Background(), &model.CreateUserRequest{
		Username: "alice",
		Password: "pw",
		Role:     model.RoleUser,
	}, string(hash))
	require.NoError(t, err)

	_, err = rooms.Insert(context.Background(), &model.CreateRoomRequest{
		Name:     "general",
		IsPublic: true,
	})
	require.NoError(t, err)

	authCfg := config.AuthConfig{SessionTTL: time.Hour, BcryptCost: bcrypt.MinCost}
	authSvc, err := service.NewAuthService(service.AuthServiceOptions{
		Users:    users,
		Sessions: memory.NewSessionStore(),
		Config:   authCfg,
	})
	require.NoError(t, err)

	roomSvc, err := service.NewRoomService(service.RoomServiceOptions{Rooms: rooms, Messages: messages})
	require.NoError(t, err)

	msgSvc, err := service.NewMessageService(service.MessageServiceOptions{
		Messages: messages,
		Directs:  directs,
		Now:      testutil.TestTime,
	})
	require.NoError(t, err)

	engine, err := service.NewEngine(service.EngineOptions{
		Auth:     authSvc,
		Rooms:    roomSvc,
		Messages: msgSvc,
		Gate:     service.NewGate(service.GateOptions{Config: authCfg}),
	})
	require.NoError(t, err)
	return engine
}

func runScript(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	term, err := New(Options{
		Engine: newTestEngine(t),
		In:     strings.NewReader(script),
		Out:    &out,
	})
	require.NoError(t, err)
	require.NoError(t, term.Run(context.Background()))
	return out.String()
}

func TestTerminal_LoginJoinChatQuit(t *testing.T) {
	out := runScript(t, "alice\npw\n/join general\nhello there\n/quit\n")

	assert.Contains(t, out, "Logged in as alice.")
	assert.Contains(t, out, "  - general")
	assert.Contains(t, out, "Joined room: general")
	assert.Contains(t, out, "[12:00:00] alice: hello there")
	assert.Contains(t, out, "Goodbye! Thanks for using TCA v2.0.")
}

func TestTerminal_PaddedCommandIsStillACommand(t *testing.T) {
	out := runScript(t, "alice\npw\n  /join general  \n/quit\n")

	// Stripped input keeps "  /join general" a command instead of chat.
	assert.Contains(t, out, "Joined room: general")
	assert.NotContains(t, out, "Error: Not in a room or direct message.")
}

func TestTerminal_BadCredentialsThenRetry(t *testing.T) {
	out := runScript(t, "alice\nwrong\nalice\npw\n/quit\n")

	assert.Contains(t, out, "Error: Invalid username or password.")
	assert.Contains(t, out, "Logged in as alice.")
}

func TestTerminal_LoggedOutCommands(t *testing.T) {
	out := runScript(t, "/help\n/listrooms\n/quit\n")

	assert.Contains(t, out, "TCA v2.0 Terminal Commands:")
	assert.Contains(t, out, "Error: You must be logged in to use this command.")
	assert.Contains(t, out, "Goodbye! Thanks for using TCA v2.0.")
}

func TestTerminal_LogoutReturnsToLoginPrompt(t *testing.T) {
	out := runScript(t, "alice\npw\n/logout\n/quit\n")

	assert.Contains(t, out, "You have been logged out successfully.")
	// After logout the next line is read at the login prompt again.
	assert.Contains(t, out, "Goodbye! Thanks for using TCA v2.0.")
}

func TestTerminal_EOFEndsLoop(t *testing.T) {
	out := runScript(t, "alice\npw\n")
	assert.Contains(t, out, "Logged in as alice.")
}
