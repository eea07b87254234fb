// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "skycast/internal/delivery/context"
	"skycast/internal/domain/entity"
	domainerrors "skycast/internal/domain/errors"
	"skycast/internal/domain/repository"
	"skycast/internal/domain/service"
	"skycast/internal/errors"
	"skycast/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process:
// validate the credentials, hash the password, then persist the account.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Debug("Starting registration", slog.String("username", input.Username))

	credentials := entity.Credentials{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	}

	if err := credentials.Validate(); err != nil {
		srv.log(ctx).Warn("Credential validation failed during registration",
			slog.String("username", input.Username),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrInvalidCredentials.WithDetails(err.Error())
	}

	passwordHash, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed.WrapMessage("failed to hash password")
	}

	account := &entity.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			srv.log(ctx).Warn("Registration conflict", slog.String("username", input.Username))

			return nil, domainerrors.ErrAlreadyRegistered
		}

		srv.log(ctx).Error("Failed to create account", slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed.WrapMessage("failed to create account")
	}

	srv.log(ctx).Debug("Registration completed", slog.Uint64("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account}, nil
}

// Login orchestrates the authentication process. The password check always
// runs, with a placeholder hash when no account matched, so a lookup miss
// costs the same as a mismatch and both produce the same outcome.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("identifier", input.Identifier))

	storedHash := ""
	var accountID uint64

	account, err := srv.accountRepo.FindByIdentifier(ctx, input.Identifier)
	switch {
	case err == nil:
		storedHash = account.PasswordHash
		accountID = account.ID
	case errors.Is(err, repository.ErrAccountNotFound):
		// Keep going with the empty hash; Verify substitutes the placeholder.
	default:
		srv.log(ctx).Error("Failed to query account during login", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	if !srv.hasher.Verify(ctx, input.Password, storedHash) || accountID == 0 {
		srv.log(ctx).Warn("Login rejected", slog.String("identifier", input.Identifier))

		return nil, domainerrors.ErrWrongCredentials
	}

	token, err := srv.tokenService.Issue(accountID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, domainerrors.ErrTokenCreation
	}

	srv.log(ctx).Debug("Login completed", slog.Uint64("accountID", accountID))

	return &usecase.LoginOutput{Token: token}, nil
}
