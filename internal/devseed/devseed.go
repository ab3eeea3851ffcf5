// Package devseed provisions the baseline records a development database
// needs before the terminal is usable: an administrator account and a public
// lobby room. Seeding is idempotent; records that already exist are left
// untouched.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tcacomm/tca-server/config"
	"github.com/tcacomm/tca-server/internal/data"
	domainauth "github.com/tcacomm/tca-server/internal/domain/auth"
	"github.com/tcacomm/tca-server/internal/domain/model"
)

const (
	// SeedAdminUsername is the development administrator account name.
	SeedAdminUsername = "admin"
	// SeedAdminPassword is the development administrator password. Never
	// used outside local environments.
	SeedAdminPassword = "admin"
	// SeedLobbyRoom is the public room every seeded database starts with.
	SeedLobbyRoom = "lobby"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	users  *data.UserRepo
	rooms  *data.RoomRepo
	hasher *domainauth.PasswordHasher
}

// NewServices constructs the repositories used for seeding from the provided DB.
func NewServices(db *sql.DB, authCfg config.AuthConfig) Services {
	return Services{
		users:  data.NewUserRepo(db),
		rooms:  data.NewRoomRepo(db),
		hasher: domainauth.NewPasswordHasher(authCfg.BcryptCost),
	}
}

// Run executes the development seeding workflow.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := seedAdminUser(ctx, svcs, logger); err != nil {
		return err
	}
	return seedLobbyRoom(ctx, svcs, logger)
}

func seedAdminUser(ctx context.Context, svcs Services, logger *slog.Logger) error {
	hash, err := svcs.hasher.Hash(SeedAdminPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	_, err = svcs.users.Insert(ctx, &model.CreateUserRequest{
		Username: SeedAdminUsername,
		Password: SeedAdminPassword,
		Role:     model.RoleAdmin,
	}, hash)
	if err != nil {
		if errors.Is(err, data.ErrUsernameExists) {
			logger.InfoContext(ctx, "seed user already present", "username", SeedAdminUsername)
			return nil
		}
		return fmt.Errorf("seed admin user: %w", err)
	}

	logger.InfoContext(ctx, "seeded admin user", "username", SeedAdminUsername)
	return nil
}

func seedLobbyRoom(ctx context.Context, svcs Services, logger *slog.Logger) error {
	_, err := svcs.rooms.Insert(ctx, &model.CreateRoomRequest{
		Name:     SeedLobbyRoom,
		IsPublic: true,
	})
	if err != nil {
		if errors.Is(err, data.ErrRoomNameExists) {
			logger.InfoContext(ctx, "seed room already present", "room", SeedLobbyRoom)
			return nil
		}
		return fmt.Errorf("seed lobby room: %w", err)
	}

	logger.InfoContext(ctx, "seeded public room", "room", SeedLobbyRoom)
	return nil
}
