// Command tca-admin is the operator CLI for the Terminal Communication
// Array. It covers the database lifecycle (migrate, db-seed) and the account
// and room provisioning tasks that do not need a logged-in terminal session.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tcacomm/tca-server/config"
	"github.com/tcacomm/tca-server/internal/bootstrap"
	"github.com/tcacomm/tca-server/internal/data"
	"github.com/tcacomm/tca-server/internal/devseed"
	domainauth "github.com/tcacomm/tca-server/internal/domain/auth"
	"github.com/tcacomm/tca-server/internal/domain/model"
	"github.com/tcacomm/tca-server/internal/service"
	"github.com/tcacomm/tca-server/internal/util"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const (
	defaultMigrationTimeout = 5 * time.Minute
	defaultCommandTimeout   = 2 * time.Minute
)

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrations,
		},
		"db-seed": {
			name:        "db-seed",
			description: "Run database migrations and seed the admin account and lobby room",
			run:         runDBSeed,
		},
		"add-user": {
			name:        "add-user",
			description: "Create a single user account",
			run:         runAddUser,
		},
		"add-users": {
			name:        "add-users",
			description: "Create several accounts from username:password pairs",
			run:         runAddUsers,
		},
		"create-room": {
			name:        "create-room",
			description: "Create a chat room",
			run:         runCreateRoom,
		},
		"grant-access": {
			name:        "grant-access",
			description: "Grant users access to a private room",
			run:         runGrantAccess,
		},
		"cleanup": {
			name:        "cleanup",
			description: "Delete messages older than the retention window",
			run:         runCleanup,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: tca-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	for _, c := range commands() {
		if err := writef(os.Stdout, "  %-24s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

type migrateOptions struct {
	Timeout time.Duration
}

type addUserOptions struct {
	Username string
	Password string
	Role     string
}

type addUsersOptions struct {
	Pairs string
	Role  string
}

type createRoomOptions struct {
	Name    string
	Public  bool
	Allowed string
}

type grantAccessOptions struct {
	Room  string
	Users string
}

type cleanupOptions struct {
	MaxAge time.Duration
}

func runMigrations(cmdCtx *commandContext, args []string) error {
	opts, err := parseMigrateFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("running database migrations")
		if migrateErr := data.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}
		cmdCtx.Logger.Info("migrations completed successfully")
		return nil
	})
}

func runDBSeed(cmdCtx *commandContext, args []string) error {
	opts, err := parseMigrateFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("ensuring database migrations are current")
		if migrateErr := data.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}

		cmdCtx.Logger.Info("seeding development data")
		if seedErr := devseed.Run(ctx, devseed.NewServices(db, cmdCtx.Config.Auth), cmdCtx.Logger); seedErr != nil {
			return fmt.Errorf("seed data: %w", seedErr)
		}

		cmdCtx.Logger.Info("database seeding completed successfully")
		return nil
	})
}

func runAddUser(cmdCtx *commandContext, args []string) error {
	opts, err := parseAddUserFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, defaultCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		user, insertErr := insertUser(ctx, insertUserRequest{
			DB:       db,
			Config:   cmdCtx.Config.Auth,
			Username: opts.Username,
			Password: opts.Password,
			Role:     model.Role(opts.Role),
		})
		if insertErr != nil {
			return insertErr
		}
		return writef(os.Stdout, "User %q created with role %q\n", user.Username, user.Role)
	})
}

func runAddUsers(cmdCtx *commandContext, args []string) error {
	opts, err := parseAddUsersFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, defaultCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		failures := 0
		for _, pair := range strings.Split(opts.Pairs, ",") {
			username, password, found := strings.Cut(strings.TrimSpace(pair), ":")
			if !found || username == "" {
				failures++
				if werr := writef(os.Stderr, "skipping malformed pair %q\n", pair); werr != nil {
					return werr
				}
				continue
			}

			user, insertErr := insertUser(ctx, insertUserRequest{
				DB:       db,
				Config:   cmdCtx.Config.Auth,
				Username: username,
				Password: password,
				Role:     model.Role(opts.Role),
			})
			if insertErr != nil {
				failures++
				if werr := writef(os.Stderr, "create user %q failed: %v\n", username, insertErr); werr != nil {
					return werr
				}
				continue
			}
			if werr := writef(os.Stdout, "User %q created with role %q\n", user.Username, user.Role); werr != nil {
				return werr
			}
		}
		if failures > 0 {
			return fmt.Errorf("%d of the requested accounts were not created", failures)
		}
		return nil
	})
}

func runCreateRoom(cmdCtx *commandContext, args []string) error {
	opts, err := parseCreateRoomFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, defaultCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		rooms := data.NewRoomRepo(db)
		room, insertErr := rooms.Insert(ctx, &model.CreateRoomRequest{
			Name:         opts.Name,
			IsPublic:     opts.Public,
			AllowedUsers: splitNames(opts.Allowed),
		})
		if insertErr != nil {
			return fmt.Errorf("create room: %w", insertErr)
		}

		visibility := "private"
		if room.IsPublic {
			visibility = "public"
		}
		return writef(os.Stdout, "Room %q created (%s)\n", room.Name, visibility)
	})
}

func runGrantAccess(cmdCtx *commandContext, args []string) error {
	opts, err := parseGrantAccessFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, defaultCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		rooms, svcErr := service.NewRoomService(service.RoomServiceOptions{
			Rooms:    data.NewRoomRepo(db),
			Messages: data.NewMessageRepo(db),
			Logger:   cmdCtx.Logger,
		})
		if svcErr != nil {
			return svcErr
		}

		usernames := splitNames(opts.Users)
		if grantErr := rooms.GrantAccess(ctx, opts.Room, usernames); grantErr != nil {
			return fmt.Errorf("grant access: %w", grantErr)
		}
		return writef(os.Stdout, "Granted %d user(s) access to room %q\n", len(usernames), opts.Room)
	})
}

func runCleanup(cmdCtx *commandContext, args []string) error {
	opts, err := parseCleanupFlags(args)
	if err != nil {
		return err
	}

	retentionCfg := cmdCtx.Config.Retention
	if opts.MaxAge > 0 {
		retentionCfg.MaxAge = opts.MaxAge
	}

	return withDatabase(cmdCtx, defaultCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		retention, svcErr := service.NewRetentionService(service.RetentionServiceOptions{
			Repo:   data.NewRetentionRepo(db),
			Config: retentionCfg,
			Logger: cmdCtx.Logger,
		})
		if svcErr != nil {
			return svcErr
		}

		start := time.Now()
		deleted, sweepErr := retention.SweepNow(ctx)
		if sweepErr != nil {
			return fmt.Errorf("cleanup: %w", sweepErr)
		}
		return writef(os.Stdout, "Deleted %d message(s) older than %s in %s\n",
			deleted, retentionCfg.MaxAge, util.FormatDuration(time.Since(start)))
	})
}

type insertUserRequest struct {
	DB       *sql.DB
	Config   config.AuthConfig
	Username string
	Password string
	Role     model.Role
}

func insertUser(ctx context.Context, req insertUserRequest) (*model.User, error) {
	hasher := domainauth.NewPasswordHasher(req.Config.BcryptCost)
	hash, err := hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	users := data.NewUserRepo(req.DB)
	user, err := users.Insert(ctx, &model.CreateUserRequest{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	}, hash)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func splitNames(list string) []string {
	var out []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

func parseMigrateFlags(args []string) (migrateOptions, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := migrateOptions{
		Timeout: defaultMigrationTimeout,
	}

	fs.DurationVar(
		&opts.Timeout,
		"timeout",
		defaultMigrationTimeout,
		"Maximum duration to wait for the command to complete",
	)

	if err := fs.Parse(args); err != nil {
		return migrateOptions{}, err
	}

	if opts.Timeout <= 0 {
		return migrateOptions{}, errors.New("--timeout must be greater than zero")
	}

	return opts, nil
}

func parseAddUserFlags(args []string) (addUserOptions, error) {
	fs := flag.NewFlagSet("add-user", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts addUserOptions
	fs.StringVar(&opts.Username, "username", "", "Account username (required)")
	fs.StringVar(&opts.Password, "password", "", "Account password (required)")
	fs.StringVar(&opts.Role, "role", string(model.RoleUser), "Account role: user or admin")

	if err := fs.Parse(args); err != nil {
		return addUserOptions{}, err
	}

	opts.Username = strings.TrimSpace(opts.Username)
	if opts.Username == "" {
		return addUserOptions{}, errors.New("--username is required")
	}
	if opts.Password == "" {
		return addUserOptions{}, errors.New("--password is required")
	}
	if !model.Role(opts.Role).Valid() {
		return addUserOptions{}, errors.New("--role must be user or admin")
	}

	return opts, nil
}

func parseAddUsersFlags(args []string) (addUsersOptions, error) {
	fs := flag.NewFlagSet("add-users", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts addUsersOptions
	fs.StringVar(&opts.Pairs, "pairs", "", "Comma-separated username:password pairs (required)")
	fs.StringVar(&opts.Role, "role", string(model.RoleUser), "Role applied to every created account")

	if err := fs.Parse(args); err != nil {
		return addUsersOptions{}, err
	}

	opts.Pairs = strings.TrimSpace(opts.Pairs)
	if opts.Pairs == "" {
		return addUsersOptions{}, errors.New("--pairs is required")
	}
	if !model.Role(opts.Role).Valid() {
		return addUsersOptions{}, errors.New("--role must be user or admin")
	}

	return opts, nil
}

func parseCreateRoomFlags(args []string) (createRoomOptions, error) {
	fs := flag.NewFlagSet("create-room", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts createRoomOptions
	fs.StringVar(&opts.Name, "name", "", "Room name (required)")
	fs.BoolVar(&opts.Public, "public", false, "Make the room visible to every user")
	fs.StringVar(&opts.Allowed, "allow", "", "Comma-separated usernames allowed into a private room")

	if err := fs.Parse(args); err != nil {
		return createRoomOptions{}, err
	}

	opts.Name = strings.TrimSpace(opts.Name)
	if opts.Name == "" {
		return createRoomOptions{}, errors.New("--name is required")
	}

	return opts, nil
}

func parseGrantAccessFlags(args []string) (grantAccessOptions, error) {
	fs := flag.NewFlagSet("grant-access", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts grantAccessOptions
	fs.StringVar(&opts.Room, "room", "", "Room name (required)")
	fs.StringVar(&opts.Users, "users", "", "Comma-separated usernames to grant (required)")

	if err := fs.Parse(args); err != nil {
		return grantAccessOptions{}, err
	}

	opts.Room = strings.TrimSpace(opts.Room)
	if opts.Room == "" {
		return grantAccessOptions{}, errors.New("--room is required")
	}
	if len(splitNames(opts.Users)) == 0 {
		return grantAccessOptions{}, errors.New("--users is required")
	}

	return opts, nil
}

func parseCleanupFlags(args []string) (cleanupOptions, error) {
	fs := flag.NewFlagSet("cleanup", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts cleanupOptions
	fs.DurationVar(
		&opts.MaxAge,
		"max-age",
		0,
		"Override the configured retention window (e.g. 72h); zero keeps the configured value",
	)

	if err := fs.Parse(args); err != nil {
		return cleanupOptions{}, err
	}

	if opts.MaxAge < 0 {
		return cleanupOptions{}, errors.New("--max-age cannot be negative")
	}

	return opts, nil
}

func withDatabase(
	cmdCtx *commandContext,
	timeout time.Duration,
	f func(context.Context, *sql.DB) error,
) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			cmdCtx.Logger.Warn("db close failed", "error", cerr)
		}
	}()

	return f(ctx, db)
}
