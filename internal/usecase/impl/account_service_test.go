package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"skycast/internal/domain/entity"
	domainerrors "skycast/internal/domain/errors"
	"skycast/internal/domain/repository"
	mockRepo "skycast/internal/mocks/repository"
	mockSvc "skycast/internal/mocks/service"
	"skycast/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username: "test.user_01",
		Email:    "test@example.com",
		Password: "Password123!",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fixtures.hasher.EXPECT().Hash(ctx, input.Password).Return("hashed_password", nil)

	fixtures.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			account.ID = 42
		}).
		Return(nil)

	output, err := fixtures.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, uint64(42), output.Account.ID)
	assert.Equal(t, input.Username, output.Account.Username)
	assert.Equal(t, "hashed_password", output.Account.PasswordHash)
}

func TestAccountService_Register_InvalidCredentials(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{
			name:  "username too short",
			input: &usecase.RegisterInput{Username: "abc", Email: "a@b.com", Password: "Password123!"},
		},
		{
			name:  "username bad charset",
			input: &usecase.RegisterInput{Username: "user name!", Email: "a@b.com", Password: "Password123!"},
		},
		{
			name:  "invalid email",
			input: &usecase.RegisterInput{Username: "valid.user", Email: "not-an-email", Password: "Password123!"},
		},
		{
			name:  "password too short",
			input: &usecase.RegisterInput{Username: "valid.user", Email: "a@b.com", Password: "short"},
		},
		{
			name:  "password bad charset",
			input: &usecase.RegisterInput{Username: "valid.user", Email: "a@b.com", Password: "Password123\x00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No hashing and no storage access on validation failure.
			output, err := fixtures.service.Register(ctx, tt.input)

			require.Error(t, err)
			assert.Nil(t, output)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
			assert.NotEmpty(t, appErr.Details())
		})
	}

	fixtures.hasher.AssertNotCalled(t, "Hash", mock.Anything, mock.Anything)
	fixtures.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_Duplicate(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fixtures.hasher.EXPECT().Hash(ctx, input.Password).Return("hashed_password", nil)
	fixtures.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrDuplicateAccount)

	output, err := fixtures.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyRegistered)
}

func TestAccountService_Register_StorageError(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fixtures.hasher.EXPECT().Hash(ctx, input.Password).Return("hashed_password", nil)
	fixtures.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(errors.New("connection reset"))

	output, err := fixtures.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationFailed)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fixtures.hasher.EXPECT().Hash(ctx, input.Password).Return("", errors.New("salt generation failed"))

	output, err := fixtures.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationFailed)
	fixtures.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Login_Success(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Identifier: "test.user_01", Password: "Password123!"}

	account := &entity.Account{
		ID:           42,
		Username:     "test.user_01",
		Email:        "test@example.com",
		PasswordHash: "stored_hash",
	}

	fixtures.accountRepo.EXPECT().FindByIdentifier(ctx, input.Identifier).Return(account, nil)
	fixtures.hasher.EXPECT().Verify(ctx, input.Password, "stored_hash").Return(true)
	fixtures.tokenService.EXPECT().Issue(uint64(42)).Return("signed.jwt.token", nil)

	output, err := fixtures.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.Token)
}

func TestAccountService_Login_UnknownIdentifier_StillVerifies(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Identifier: "nobody@example.com", Password: "Password123!"}

	fixtures.accountRepo.EXPECT().
		FindByIdentifier(ctx, input.Identifier).
		Return(nil, repository.ErrAccountNotFound)

	// The verifier must run with the empty hash so a lookup miss costs the
	// same as a password mismatch.
	fixtures.hasher.EXPECT().Verify(ctx, input.Password, "").Return(false)

	output, err := fixtures.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrWrongCredentials)
	fixtures.hasher.AssertNumberOfCalls(t, "Verify", 1)
	fixtures.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Identifier: "test.user_01", Password: "wrong_password1"}

	account := &entity.Account{ID: 42, Username: "test.user_01", PasswordHash: "stored_hash"}

	fixtures.accountRepo.EXPECT().FindByIdentifier(ctx, input.Identifier).Return(account, nil)
	fixtures.hasher.EXPECT().Verify(ctx, input.Password, "stored_hash").Return(false)

	output, err := fixtures.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrWrongCredentials)
	fixtures.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAccountService_Login_SameOutcomeForMissAndMismatch(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()

	fixtures.accountRepo.EXPECT().
		FindByIdentifier(ctx, "ghost_user1").
		Return(nil, repository.ErrAccountNotFound)
	fixtures.hasher.EXPECT().Verify(ctx, "Password123!", "").Return(false)

	_, missErr := fixtures.service.Login(ctx, &usecase.LoginInput{Identifier: "ghost_user1", Password: "Password123!"})

	account := &entity.Account{ID: 7, Username: "real_user01", PasswordHash: "stored_hash"}
	fixtures.accountRepo.EXPECT().FindByIdentifier(ctx, "real_user01").Return(account, nil)
	fixtures.hasher.EXPECT().Verify(ctx, "Password123!", "stored_hash").Return(false)

	_, mismatchErr := fixtures.service.Login(ctx, &usecase.LoginInput{Identifier: "real_user01", Password: "Password123!"})

	// Neither path may reveal whether the account exists.
	assert.ErrorIs(t, missErr, domainerrors.ErrWrongCredentials)
	assert.ErrorIs(t, mismatchErr, domainerrors.ErrWrongCredentials)
}

func TestAccountService_Login_TokenIssueFailure(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Identifier: "test.user_01", Password: "Password123!"}

	account := &entity.Account{ID: 42, Username: "test.user_01", PasswordHash: "stored_hash"}

	fixtures.accountRepo.EXPECT().FindByIdentifier(ctx, input.Identifier).Return(account, nil)
	fixtures.hasher.EXPECT().Verify(ctx, input.Password, "stored_hash").Return(true)
	fixtures.tokenService.EXPECT().Issue(uint64(42)).Return("", errors.New("signing failed"))

	output, err := fixtures.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenCreation)
}

func TestAccountService_Login_StorageError(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Identifier: "test.user_01", Password: "Password123!"}

	fixtures.accountRepo.EXPECT().
		FindByIdentifier(ctx, input.Identifier).
		Return(nil, errors.New("connection refused"))

	output, err := fixtures.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}
