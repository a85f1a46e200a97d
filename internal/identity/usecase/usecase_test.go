package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"keymarket/internal/identity"
	"keymarket/internal/identity/mocks"
	models "keymarket/internal/identity/model"
	appErrors "keymarket/pkg/errors"
	"keymarket/pkg/logger"
)

func TestAccountUsecase_Register(t *testing.T) {
	t.Run("happy path - provider registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockAccountRepository(ctrl)
		uc := NewAccountUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().UsernameExists(gomock.Any(), "keysmith").Return(false, nil)
		mockRepo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)

		dto, err := uc.Register(context.Background(), identity.RegisterCommand{
			Username:   "keysmith",
			Credential: "correct horse battery staple",
			Role:       models.RoleProvider,
		})
		require.NoError(t, err)
		assert.Equal(t, "keysmith", dto.Username)
		assert.Equal(t, models.RoleProvider, dto.Role)
	})

	t.Run("sad path - username taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockAccountRepository(ctrl)
		uc := NewAccountUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().UsernameExists(gomock.Any(), "keysmith").Return(true, nil)

		_, err := uc.Register(context.Background(), identity.RegisterCommand{
			Username:   "keysmith",
			Credential: "pw",
			Role:       models.RoleClient,
		})
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeAlreadyExists, appErrors.CodeOf(err))
	})

	t.Run("sad path - invalid username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewAccountUsecase(mocks.NewMockAccountRepository(ctrl), logger.Logger{})

		_, err := uc.Register(context.Background(), identity.RegisterCommand{
			Username:   "No Spaces Allowed",
			Credential: "pw",
			Role:       models.RoleClient,
		})
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})

	t.Run("sad path - bad role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewAccountUsecase(mocks.NewMockAccountRepository(ctrl), logger.Logger{})

		_, err := uc.Register(context.Background(), identity.RegisterCommand{
			Username:   "keysmith",
			Credential: "pw",
			Role:       models.Role("admin"),
		})
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})
}

func TestAccountUsecase_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	account := &models.Account{
		Username:       "buyer",
		Role:           models.RoleClient,
		CredentialHash: string(hash),
	}

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockAccountRepository(ctrl)
		uc := NewAccountUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().GetAccountByUsername(gomock.Any(), "buyer").Return(account, nil)

		dto, err := uc.Authenticate(context.Background(), "buyer", "hunter2hunter2")
		require.NoError(t, err)
		assert.Equal(t, "buyer", dto.Username)
	})

	t.Run("sad path - wrong credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockAccountRepository(ctrl)
		uc := NewAccountUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().GetAccountByUsername(gomock.Any(), "buyer").Return(account, nil)

		_, err := uc.Authenticate(context.Background(), "buyer", "wrong")
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeUnauthenticated, appErrors.CodeOf(err))
	})

	t.Run("sad path - unknown username reports the same error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockAccountRepository(ctrl)
		uc := NewAccountUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().GetAccountByUsername(gomock.Any(), "ghost").Return(nil, appErrors.ErrAccountNotFound)

		_, err := uc.Authenticate(context.Background(), "ghost", "pw")
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeUnauthenticated, appErrors.CodeOf(err))
	})
}
