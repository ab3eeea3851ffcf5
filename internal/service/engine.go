package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tcacomm/tca-server/config"
	domainauth "github.com/tcacomm/tca-server/internal/domain/auth"
	"github.com/tcacomm/tca-server/internal/domain/command"
	"github.com/tcacomm/tca-server/internal/domain/model"
	"github.com/tcacomm/tca-server/internal/domain/session"
	apperrors "github.com/tcacomm/tca-server/internal/errors"
	"github.com/tcacomm/tca-server/internal/observability/statsd"
)

// EngineOptions groups dependencies for Engine.
type EngineOptions struct {
	Auth      *AuthService
	Rooms     *RoomService
	Messages  *MessageService
	Retention *RetentionService
	Gate      *Gate
	Config    config.SessionConfig
	Logger    *slog.Logger
	Metrics   statsd.Sink
}

// Engine is the command router: it parses one line of input, classifies it as
// a slash-command or chat payload, enforces authorization, applies the
// mutation, and renders the outcome as display lines. Handler failures never
// escape as errors; only infrastructure faults at the session-lookup boundary
// do.
type Engine struct {
	auth      *AuthService
	rooms     *RoomService
	messages  *MessageService
	retention *RetentionService
	gate      *Gate
	registry  *session.Registry
	config    config.SessionConfig
	logger    *slog.Logger
	metrics   statsd.Sink
}

// Result is what one dispatched line renders to.
type Result struct {
	// Lines are the display lines, in order.
	Lines []string
	// SessionEnded reports that the session was terminated (logout or quit).
	SessionEnded bool
	// Quit reports that the user asked to leave the terminal entirely.
	Quit bool
}

// View is a read-only projection of a session for the presentation layer.
type View struct {
	Username     string
	Role         model.Role
	Location     session.Location
	VisibleRooms []string
	Backlog      []string
}

// NewEngine constructs a new Engine.
func NewEngine(opts EngineOptions) (*Engine, error) {
	if opts.Auth == nil || opts.Rooms == nil || opts.Messages == nil {
		return nil, errors.New("Auth, Rooms, and Messages services are required")
	}
	if opts.Gate == nil {
		return nil, errors.New("Gate is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		auth:      opts.Auth,
		rooms:     opts.Rooms,
		messages:  opts.Messages,
		retention: opts.Retention,
		gate:      opts.Gate,
		registry: session.NewRegistry(session.Limits{
			History: opts.Config.HistoryLimit,
			Backlog: opts.Config.BacklogLimit,
		}),
		config:  opts.Config,
		logger:  logger.With("component", "engine"),
		metrics: opts.Metrics,
	}, nil
}

// Login authenticates the user and sets up a lobby context with the rooms
// visible to them. On a room-listing failure the freshly created session is
// torn down again so no half-initialized session survives.
func (e *Engine) Login(ctx context.Context, username, password string) (string, View, error) {
	sess, err := e.auth.Login(ctx, username, password)
	if err != nil {
		return "", View{}, err
	}

	mctx := e.registry.Create(sess.ID, sess.Username, sess.Role)
	visible, err := e.rooms.VisibleRooms(ctx, sess.Username)
	if err != nil {
		e.registry.Remove(sess.ID)
		if logoutErr := e.auth.Logout(ctx, sess.ID); logoutErr != nil {
			e.logger.ErrorContext(ctx, "failed to roll back session after login failure",
				"error", logoutErr)
		}
		return "", View{}, err
	}
	mctx.SetVisibleRooms(visible)

	e.count("engine.login", nil)
	return sess.ID, e.view(mctx), nil
}

// Logout tears down the session record and its terminal context.
func (e *Engine) Logout(ctx context.Context, sessionID string) error {
	e.registry.Remove(sessionID)
	return e.auth.Logout(ctx, sessionID)
}

// SessionView returns the current projection of a session.
func (e *Engine) SessionView(ctx context.Context, sessionID string) (View, error) {
	sess, err := e.auth.GetSession(ctx, sessionID)
	if err != nil {
		return View{}, err
	}
	mctx, err := e.sessionContext(ctx, sess)
	if err != nil {
		return View{}, err
	}
	return e.view(mctx), nil
}

// SweepNow triggers a retention sweep outside the command path (operator
// surface; the in-band path is the /cleanup command).
func (e *Engine) SweepNow(ctx context.Context) (int64, error) {
	if e.retention == nil {
		return 0, errors.New("retention service not configured")
	}
	return e.retention.SweepNow(ctx)
}

// Dispatch routes one raw input line for the given session. An empty or
// unknown session id runs in logged-out mode, where only a few commands are
// available. Infrastructure faults looking up the session return an error;
// everything else renders as lines.
func (e *Engine) Dispatch(ctx context.Context, sessionID, raw string) (Result, error) {
	sess, mctx, err := e.resolveSession(ctx, sessionID)
	if err != nil {
		return Result{}, err
	}
	if mctx == nil {
		return e.dispatchLoggedOut(ctx, raw), nil
	}

	// Every input line lands in history, malformed or not.
	mctx.RecordInput(raw)

	line := command.Parse(raw)
	if !line.IsCommand {
		return e.handleChat(ctx, mctx, raw), nil
	}

	spec, known := command.Lookup(line.Token)
	if !known || len(line.Args) < spec.MinArgs {
		// Too few arguments reads exactly like an unknown command, a
		// preserved quirk of the terminal grammar.
		return e.unknownCommand(line.Token), nil
	}

	if spec.Privileged {
		// The key sits at the fixed grammar position (the last required
		// argument); surplus trailing tokens are ignored.
		secret := line.Args[spec.MinArgs-1]
		if authErr := e.gate.Authorize(sess, secret); authErr != nil {
			e.count("engine.denied", map[string]string{"command": string(spec.Name)})
			return Result{Lines: []string{"Error: Invalid security key."}}, nil
		}
	}

	res := e.dispatchCommand(ctx, dispatchInput{sess: sess, mctx: mctx, spec: spec, args: line.Args})
	e.count("engine.command", map[string]string{"command": string(spec.Name)})
	return res, nil
}

// dispatchInput carries one resolved command invocation.
type dispatchInput struct {
	sess domainauth.Session
	mctx *session.Context
	spec command.Spec
	args []string
}

func (e *Engine) dispatchCommand(ctx context.Context, in dispatchInput) Result {
	switch in.spec.Name {
	case command.Help:
		return e.handleHelp(in.mctx)
	case command.ListRooms:
		return e.handleListRooms(ctx, in.mctx)
	case command.Join:
		return e.handleJoin(ctx, in.mctx, in.args[0])
	case command.Users:
		return Result{Lines: []string{
			"Users in current context:",
			fmt.Sprintf("  - %s (you)", in.mctx.Username),
		}}
	case command.DM:
		return e.handleDM(ctx, in.mctx, in.args[0])
	case command.Exit:
		return e.handleExit(in.mctx)
	case command.Logout:
		return e.handleLogout(ctx, in.sess.ID)
	case command.Quit:
		return e.handleQuit(ctx, in.sess.ID)
	case command.ChangePass:
		return e.handleChangePass(ctx, in.mctx.Username, in.args[0])
	case command.ResetPass:
		return e.handleResetPass(ctx, in.args[0], in.args[1], in.args[2])
	case command.AddUser:
		return e.handleAddUser(ctx, in.args[0], in.args[1])
	case command.AddUsers:
		return e.handleAddUsers(ctx, in.args[0])
	case command.CreateRoom:
		return e.handleCreateRoom(ctx, in.mctx, in.args[0])
	case command.DeleteRoom:
		return e.handleDeleteRoom(ctx, in.mctx, in.args[0])
	case command.DeleteMessage:
		return e.handleDeleteMessage(ctx, in.args[0])
	case command.Cleanup:
		return e.handleCleanup(ctx)
	case command.GiveAccess:
		return e.handleGiveAccess(ctx, in.args[0], in.args[1])
	default:
		return e.unknownCommand(string(in.spec.Name))
	}
}

// dispatchLoggedOut handles input before login: /help, /resetpass, and /quit
// work; everything else points the user at the login prompt.
func (e *Engine) dispatchLoggedOut(ctx context.Context, raw string) Result {
	line := command.Parse(raw)
	if !line.IsCommand {
		return Result{Lines: []string{"Error: You must be logged in to send messages."}}
	}

	spec, known := command.Lookup(line.Token)
	if !known || len(line.Args) < spec.MinArgs {
		return e.unknownCommand(line.Token)
	}
	if !spec.AllowLoggedOut {
		return Result{Lines: []string{"Error: You must be logged in to use this command."}}
	}

	switch spec.Name {
	case command.Help:
		return Result{Lines: helpLines()}
	case command.ResetPass:
		return e.handleResetPass(ctx, line.Args[0], line.Args[1], line.Args[2])
	case command.Quit:
		return Result{
			Lines:        []string{"Goodbye! Thanks for using TCA v2.0."},
			SessionEnded: true,
			Quit:         true,
		}
	default:
		return e.unknownCommand(line.Token)
	}
}

// resolveSession maps a session id to its auth record and terminal context.
// A missing or expired session yields (zero, nil, nil): logged-out mode.
func (e *Engine) resolveSession(ctx context.Context, sessionID string) (domainauth.Session, *session.Context, error) {
	if sessionID == "" {
		return domainauth.Session{}, nil, nil
	}
	sess, err := e.auth.GetSession(ctx, sessionID)
	if err != nil {
		if apperrors.IsAuthFailed(err) {
			return domainauth.Session{}, nil, nil
		}
		return domainauth.Session{}, nil, err
	}
	mctx, err := e.sessionContext(ctx, sess)
	if err != nil {
		return domainauth.Session{}, nil, err
	}
	return sess, mctx, nil
}

// sessionContext returns the terminal context for an authenticated session,
// rebuilding it after a process restart loses the in-memory registry.
func (e *Engine) sessionContext(ctx context.Context, sess domainauth.Session) (*session.Context, error) {
	if mctx, ok := e.registry.Get(sess.ID); ok {
		return mctx, nil
	}
	mctx := e.registry.Create(sess.ID, sess.Username, sess.Role)
	visible, err := e.rooms.VisibleRooms(ctx, sess.Username)
	if err != nil {
		e.registry.Remove(sess.ID)
		return nil, err
	}
	mctx.SetVisibleRooms(visible)
	return mctx, nil
}

func (e *Engine) handleChat(ctx context.Context, mctx *session.Context, content string) Result {
	loc := mctx.Location()
	switch loc.Kind {
	case session.LocationRoom:
		msg, err := e.messages.SendToRoom(ctx, loc.Room, mctx.Username, content)
		if err != nil {
			e.logger.ErrorContext(ctx, "failed to send room message",
				"room", loc.Room, "error", err)
			return Result{Lines: []string{"Error: Failed to send message."}}
		}
		line := formatMessage(msg.Timestamp.Format("15:04:05"), msg.Author, msg.Content)
		mctx.AppendBacklog(line)
		return Result{Lines: []string{line}}

	case session.LocationDM:
		dm, err := e.messages.SendDirect(ctx, mctx.Username, loc.Peer, content)
		if err != nil {
			e.logger.ErrorContext(ctx, "failed to send direct message",
				"recipient", loc.Peer, "error", err)
			return Result{Lines: []string{"Error: Failed to send message."}}
		}
		line := formatMessage(dm.Timestamp.Format("15:04:05"), dm.Sender, dm.Content)
		mctx.AppendBacklog(line)
		return Result{Lines: []string{line}}

	default:
		return Result{Lines: []string{
			"Error: Not in a room or direct message. Use /join <room> or /dm <user> first.",
		}}
	}
}

func (e *Engine) handleHelp(mctx *session.Context) Result {
	lines := helpLines()
	lines = append(lines, "")
	lines = append(lines, "Available commands in current context:")
	for _, s := range contextualSuggestions(mctx) {
		lines = append(lines, fmt.Sprintf("  %-50s - %s", s.usage, s.desc))
	}
	return Result{Lines: lines}
}

func (e *Engine) handleListRooms(ctx context.Context, mctx *session.Context) Result {
	visible, err := e.rooms.VisibleRooms(ctx, mctx.Username)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to list rooms", "error", err)
		return Result{Lines: []string{"Error: Failed to list rooms."}}
	}
	mctx.SetVisibleRooms(visible)

	if len(visible) == 0 {
		return Result{Lines: []string{"No rooms available."}}
	}
	lines := make([]string, 0, len(visible)+1)
	lines = append(lines, "Available rooms:")
	for _, room := range visible {
		lines = append(lines, "  - "+room)
	}
	return Result{Lines: lines}
}

func (e *Engine) handleJoin(ctx context.Context, mctx *session.Context, name string) Result {
	if _, err := e.rooms.Authorize(ctx, name, mctx.Username); err != nil {
		if apperrors.IsNotFound(err) {
			// Unknown room and denied room read identically so room
			// existence does not leak.
			return Result{Lines: []string{
				fmt.Sprintf("Error: Room '%s' not found or access denied.", name),
			}}
		}
		e.logger.ErrorContext(ctx, "failed to authorize room join", "room", name, "error", err)
		return Result{Lines: []string{fmt.Sprintf("Error: Failed to join room '%s'.", name)}}
	}

	mctx.EnterRoom(name)
	lines := []string{fmt.Sprintf("Joined room: %s", name)}
	lines = append(lines, e.loadRoomBacklog(ctx, mctx, name)...)
	return Result{Lines: lines}
}

func (e *Engine) handleDM(ctx context.Context, mctx *session.Context, peer string) Result {
	mctx.EnterDM(peer)
	lines := []string{fmt.Sprintf("Started direct message with: %s", peer)}
	lines = append(lines, e.loadDMBacklog(ctx, mctx, peer)...)
	return Result{Lines: lines}
}

func (e *Engine) handleExit(mctx *session.Context) Result {
	prev, ok := mctx.ExitLocation()
	if !ok {
		return Result{Lines: []string{"Not in any room or direct message."}}
	}
	if prev.Kind == session.LocationDM {
		return Result{Lines: []string{fmt.Sprintf("Exited direct message with: %s", prev.Peer)}}
	}
	return Result{Lines: []string{fmt.Sprintf("Left room: %s", prev.Room)}}
}

func (e *Engine) handleLogout(ctx context.Context, sessionID string) Result {
	if err := e.Logout(ctx, sessionID); err != nil {
		e.logger.ErrorContext(ctx, "failed to remove session on logout", "error", err)
	}
	return Result{
		Lines:        []string{"You have been logged out successfully."},
		SessionEnded: true,
	}
}

func (e *Engine) handleQuit(ctx context.Context, sessionID string) Result {
	if err := e.Logout(ctx, sessionID); err != nil {
		e.logger.ErrorContext(ctx, "failed to remove session on quit", "error", err)
	}
	return Result{
		Lines:        []string{"Goodbye! Thanks for using TCA v2.0."},
		SessionEnded: true,
		Quit:         true,
	}
}

func (e *Engine) handleChangePass(ctx context.Context, username, newPassword string) Result {
	if err := e.auth.ChangePassword(ctx, username, newPassword); err != nil {
		e.logger.ErrorContext(ctx, "failed to change password", "error", err)
		return Result{Lines: []string{"Error: Failed to change password."}}
	}
	return Result{Lines: []string{"Password changed successfully."}}
}

func (e *Engine) handleResetPass(ctx context.Context, username, oldPass, newPass string) Result {
	if err := e.auth.ResetPassword(ctx, username, oldPass, newPass); err != nil {
		if apperrors.IsUnavailable(err) {
			e.logger.ErrorContext(ctx, "failed to reset password", "error", err)
		}
		return Result{Lines: []string{
			fmt.Sprintf("Error: Failed to reset password for user '%s'. Please check credentials.", username),
		}}
	}
	return Result{Lines: []string{
		fmt.Sprintf("Password for user '%s' reset successfully.", username),
	}}
}

func (e *Engine) handleAddUser(ctx context.Context, username, password string) Result {
	_, err := e.auth.CreateUser(ctx, &model.CreateUserRequest{
		Username: username,
		Password: password,
		Role:     model.RoleUser,
	})
	if err != nil {
		if apperrors.IsUnavailable(err) {
			e.logger.ErrorContext(ctx, "failed to create user", "error", err)
		}
		return Result{Lines: []string{
			fmt.Sprintf("Error: Failed to create user '%s'. Username may already exist.", username),
		}}
	}
	return Result{Lines: []string{fmt.Sprintf("User '%s' created successfully.", username)}}
}

// handleAddUsers provisions a batch from "user1:pass1,user2:pass2,..." pairs.
// Entries without a colon are skipped, matching the terminal grammar.
func (e *Engine) handleAddUsers(ctx context.Context, pairsArg string) Result {
	var reqs []*model.CreateUserRequest
	for _, pair := range strings.Split(pairsArg, ",") {
		username, password, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		reqs = append(reqs, &model.CreateUserRequest{
			Username: username,
			Password: password,
			Role:     model.RoleUser,
		})
	}

	lines := []string{"Batch user creation results:"}
	for _, res := range e.auth.CreateUsers(ctx, reqs) {
		if res.Err != nil {
			if apperrors.IsUnavailable(res.Err) {
				e.logger.ErrorContext(ctx, "failed to create user", "error", res.Err)
			}
			lines = append(lines, fmt.Sprintf(
				"  ✗ Failed to create user '%s'. Username may already exist.", res.Username))
			continue
		}
		lines = append(lines, fmt.Sprintf("  ✓ User '%s' created successfully.", res.Username))
	}
	return Result{Lines: lines}
}

func (e *Engine) handleCreateRoom(ctx context.Context, mctx *session.Context, name string) Result {
	// Terminal-created rooms start private with the creator on the allow-list.
	_, err := e.rooms.Create(ctx, &model.CreateRoomRequest{
		Name:         name,
		IsPublic:     false,
		AllowedUsers: []string{mctx.Username},
	})
	if err != nil {
		if apperrors.IsUnavailable(err) {
			e.logger.ErrorContext(ctx, "failed to create room", "room", name, "error", err)
		}
		return Result{Lines: []string{
			fmt.Sprintf("Error: Failed to create room '%s'. Room may already exist.", name),
		}}
	}
	e.refreshVisibleRooms(ctx, mctx)
	return Result{Lines: []string{fmt.Sprintf("Room '%s' created successfully.", name)}}
}

func (e *Engine) handleDeleteRoom(ctx context.Context, mctx *session.Context, name string) Result {
	if err := e.rooms.Delete(ctx, name); err != nil {
		if apperrors.IsUnavailable(err) {
			e.logger.ErrorContext(ctx, "failed to delete room", "room", name, "error", err)
		}
		return Result{Lines: []string{fmt.Sprintf("Error: Failed to delete room '%s'.", name)}}
	}
	e.refreshVisibleRooms(ctx, mctx)
	return Result{Lines: []string{fmt.Sprintf("Room '%s' deleted successfully.", name)}}
}

func (e *Engine) handleDeleteMessage(ctx context.Context, idArg string) Result {
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return Result{Lines: []string{
			fmt.Sprintf("Error: Failed to delete message #%s.", idArg),
		}}
	}
	if deleteErr := e.messages.DeleteByID(ctx, id); deleteErr != nil {
		if apperrors.IsUnavailable(deleteErr) {
			e.logger.ErrorContext(ctx, "failed to delete message", "id", id, "error", deleteErr)
		}
		return Result{Lines: []string{
			fmt.Sprintf("Error: Failed to delete message #%s.", idArg),
		}}
	}
	return Result{Lines: []string{fmt.Sprintf("Message #%s deleted successfully.", idArg)}}
}

func (e *Engine) handleCleanup(ctx context.Context) Result {
	if e.retention == nil {
		return Result{Lines: []string{"Error: Failed to cleanup old messages."}}
	}
	count, err := e.retention.SweepNow(ctx)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to sweep old messages", "error", err)
		return Result{Lines: []string{"Error: Failed to cleanup old messages."}}
	}
	return Result{Lines: []string{
		fmt.Sprintf("Cleanup completed. %d old messages deleted.", count),
	}}
}

func (e *Engine) handleGiveAccess(ctx context.Context, usersArg, room string) Result {
	users := strings.Split(usersArg, ",")
	if err := e.rooms.GrantAccess(ctx, room, users); err != nil {
		if apperrors.IsUnavailable(err) {
			e.logger.ErrorContext(ctx, "failed to grant room access", "room", room, "error", err)
		}
		return Result{Lines: []string{
			fmt.Sprintf("Error: Failed to grant access to %s for room %s.", usersArg, room),
		}}
	}
	return Result{Lines: []string{
		fmt.Sprintf("Access granted to %s for room %s.", usersArg, room),
	}}
}

// loadRoomBacklog fills the context backlog with the room's recent messages
// and returns them for display. A listing failure degrades to an error line;
// the join itself already succeeded.
func (e *Engine) loadRoomBacklog(ctx context.Context, mctx *session.Context, room string) []string {
	msgs, err := e.messages.ListRecent(ctx, room, e.config.RoomMessageLimit)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to load room messages", "room", room, "error", err)
		return []string{"Error: Failed to load messages."}
	}
	lines := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		lines = append(lines, formatMessage(msg.Timestamp.Format("15:04:05"), msg.Author, msg.Content))
	}
	mctx.AppendBacklog(lines...)
	return lines
}

func (e *Engine) loadDMBacklog(ctx context.Context, mctx *session.Context, peer string) []string {
	dms, err := e.messages.ListDirect(ctx, mctx.Username, peer, e.config.RoomMessageLimit)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to load direct messages", "peer", peer, "error", err)
		return []string{"Error: Failed to load messages."}
	}
	lines := make([]string, 0, len(dms))
	for _, dm := range dms {
		lines = append(lines, formatMessage(dm.Timestamp.Format("15:04:05"), dm.Sender, dm.Content))
	}
	mctx.AppendBacklog(lines...)
	return lines
}

func (e *Engine) refreshVisibleRooms(ctx context.Context, mctx *session.Context) {
	visible, err := e.rooms.VisibleRooms(ctx, mctx.Username)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to refresh visible rooms", "error", err)
		return
	}
	mctx.SetVisibleRooms(visible)
}

func (e *Engine) unknownCommand(token string) Result {
	e.count("engine.unknown_command", nil)
	return Result{Lines: []string{
		fmt.Sprintf("Unknown command: %s. Type /help for available commands.", strings.ToLower(token)),
	}}
}

func (e *Engine) view(mctx *session.Context) View {
	return View{
		Username:     mctx.Username,
		Role:         mctx.Role,
		Location:     mctx.Location(),
		VisibleRooms: mctx.VisibleRooms(),
		Backlog:      mctx.Backlog(),
	}
}

func (e *Engine) count(name string, tags map[string]string) {
	if e.metrics == nil {
		return
	}
	e.metrics.Count(name, 1, tags)
}

func formatMessage(ts, author, content string) string {
	return fmt.Sprintf("[%s] %s: %s", ts, author, content)
}

// helpLines is the static help screen. Command names, argument order, and the
// wording below are the terminal's compatibility surface.
func helpLines() []string {
	return []string{
		"TCA v2.0 Terminal Commands:",
		"========================",
		"/help                                          - Show this help",
		"/listrooms                                     - List available rooms",
		"/join <room>                                   - Join a room",
		"/users                                         - List users in current room",
		"/dm <username>                                 - Start direct message",
		"/exit                                          - Exit DM or leave room",
		"/logout                                        - Logout",
		"/quit                                          - Quit the app",
		"/changepass <newpass>                          - Change your password (authenticated users)",
		"/resetpass <username> <oldpass> <newpass>      - Reset password (unauthenticated users)",
		"/adduser <username> <password> <securitykey>   - (Admin) Create new user",
		"/addmultipleusers <u1:p1,u2:p2,...> <securitykey> - (Admin) Create multiple users",
		"/createroom <roomname> <securitykey>           - (Admin) Create new room",
		"/deleteroom <roomname> <securitykey>           - (Admin) Delete a room",
		"/deletemessage <message_id> <securitykey>      - (Admin) Delete a message",
		"/cleanup <securitykey>                         - (Admin) Cleanup old messages",
		"/giveaccess <user1,user2,...> <roomname> <securitykey> - (Admin) Grant room access to users",
		"",
		"Additional Information:",
		"- All commands start with '/'",
		"- Administrative commands require a security key",
		"- Direct messages are private between two users",
		"- Rooms can be public or private (access controlled)",
	}
}

type suggestion struct {
	usage string
	desc  string
}

// contextualSuggestions mirrors the terminal's context-aware command hints:
// lobby suggestions differ from in-room/DM suggestions, and admins see the
// administrative set.
func contextualSuggestions(mctx *session.Context) []suggestion {
	if mctx.Location().Kind == session.LocationLobby {
		return []suggestion{
			{"/dm <username>", "Start a direct message with a user"},
			{"/join <room>", "Join a chat room"},
			{"/listrooms", "List available rooms"},
			{"/help", "Show help information"},
			{"/logout", "Log out of the application"},
		}
	}

	out := []suggestion{
		{"/quit", "Leave the current room or DM"},
		{"/help", "Show help information"},
		{"/logout", "Log out of the application"},
	}
	if mctx.Role == model.RoleAdmin {
		return append(out,
			suggestion{"/adduser <username> <password> <securitykey>", "Create a new user"},
			suggestion{"/createroom <roomname> <securitykey>", "Create a new room"},
			suggestion{"/deleteroom <roomname> <securitykey>", "Delete a room"},
			suggestion{"/deletemessage <message_id> <securitykey>", "Delete a message"},
			suggestion{"/cleanup <securitykey>", "Cleanup old messages"},
			suggestion{"/giveaccess <user1,user2,...> <roomname> <securitykey>", "Grant room access"},
		)
	}
	return append(out, suggestion{"/changepass <newpass>", "Change your password"})
}
