package impl

import (
	"context"
	"log/slog"

	"clientes/internal/domain/entity"
	domainerrors "clientes/internal/domain/errors"
	"clientes/internal/domain/repository"
	"clientes/internal/domain/service"
	"clientes/internal/errors"
	logs "clientes/internal/infra/log"
	"clientes/internal/usecase"

	"go.uber.org/fx"
)

const tokenTypeBearer = "bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return logs.FromContext(ctx, srv.logger)
}

// Login checks the credentials and issues an access token carrying the user's roles.
// Unknown users, disabled users and wrong passwords are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, username, password string) (*usecase.AccessToken, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.NewStoreError(err, msgQueryFailed)
	}

	if !user.Enabled || !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	roles := user.Roles.ToStrings()
	token, err := srv.tokenService.GenerateToken(user.Username, roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	ttl := srv.tokenService.GetAccessTokenDuration()
	srv.log(ctx).Info("Login succeeded",
		slog.String("username", user.Username),
		slog.Duration("expiresIn", ttl),
	)

	return &usecase.AccessToken{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(ttl.Seconds()),
		Username:    user.Username,
		Roles:       roles,
	}, nil
}

// EnsureUsers creates the given accounts when they do not exist yet. Existing
// accounts are left untouched.
func (srv *authService) EnsureUsers(ctx context.Context, users []usecase.SeedUser) error {
	for _, seed := range users {
		_, err := srv.userRepo.FindByUsername(ctx, seed.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrapf(err, "failed to look up user %s", seed.Username)
		}

		hash, err := srv.hasher.Hash(seed.Password)
		if err != nil {
			return errors.Wrapf(err, "failed to hash password of %s", seed.Username)
		}

		user := &entity.User{
			Username:     seed.Username,
			PasswordHash: hash,
			Enabled:      true,
			Roles:        entity.RolesFromStrings(seed.Roles),
		}
		if err := srv.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				continue
			}

			return errors.Wrapf(err, "failed to create user %s", seed.Username)
		}

		srv.log(ctx).Info("Seeded user", slog.String("username", user.Username), slog.Any("roles", user.Roles.ToStrings()))
	}

	return nil
}
