package authenticating

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visibly/ai-visibility-api/infrastructure/repository/mocks"
	"github.com/visibly/ai-visibility-api/internal/config"
	"github.com/visibly/ai-visibility-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{SecretKey: "test-secret"}
	service := NewService(userRepo, cfg).(*Service)

	return service, userRepo
}

func TestRegisterUser_ShortPasswordNeverReachesRepository(t *testing.T) {
	service, _ := newTestService(t)

	// no expectations registered: any repository call fails the test
	user, err := service.RegisterUser(&domain.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "short",
	})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, IsValidationError(err))

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "VAL_004", authErr.Code)
}

func TestRegisterUser_MissingFields(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.RegisterUser(&domain.User{Email: "ana@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestRegisterUser_Success(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().
		GetUserByEmail("ana@example.com").
		Return(nil, nil)

	userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, "ana@example.com", user.Email)
			assert.True(t, user.Active)
			assert.Equal(t, defaultRoleID, user.RoleID)

			// stored hash must verify against the original password
			err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("long-enough-password"))
			assert.NoError(t, err)

			user.ID = 1
			return user, nil
		})

	user, err := service.RegisterUser(&domain.User{
		Name:         "Ana",
		Email:        "  Ana@Example.com ",
		PasswordHash: "long-enough-password",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().
		GetUserByEmail("ana@example.com").
		Return(&domain.User{ID: 7, Email: "ana@example.com"}, nil)

	_, err := service.RegisterUser(&domain.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "long-enough-password",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	storedUser := &domain.User{
		ID:           3,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       2,
	}

	t.Run("valid credentials return a parsable token", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByEmail("ana@example.com").
			Return(storedUser, nil)

		token, err := service.LoginUser("ana@example.com", "right-password")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 3, claims.UserID)
		assert.Equal(t, "ana@example.com", claims.UserEmail)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByEmail("ana@example.com").
			Return(storedUser, nil)

		_, err := service.LoginUser("ana@example.com", "wrong-password")
		require.Error(t, err)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("disabled user", func(t *testing.T) {
		service, userRepo := newTestService(t)

		disabled := *storedUser
		disabled.Active = false

		userRepo.EXPECT().
			GetUserByEmail("ana@example.com").
			Return(&disabled, nil)

		_, err := service.LoginUser("ana@example.com", "right-password")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("unknown user", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByEmail("ghost@example.com").
			Return(nil, nil)

		_, err := service.LoginUser("ghost@example.com", "whatever-password")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	service, _ := newTestService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": 1})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid password", "Abcdef1!", false},
		{"too short", "Ab1!", true},
		{"no uppercase", "abcdef1!", true},
		{"no lowercase", "ABCDEF1!", true},
		{"no number", "Abcdefg!", true},
		{"no special character", "Abcdefg1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	currentHash, err := bcrypt.GenerateFromPassword([]byte("OldPass1!"), bcrypt.DefaultCost)
	require.NoError(t, err)

	storedUser := func() *domain.User {
		return &domain.User{ID: 7, PasswordHash: string(currentHash), Active: true}
	}

	t.Run("success rehashes and persists", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(7).Return(storedUser(), nil)
		userRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("NewPass1!")))
				return nil
			})

		require.NoError(t, service.ChangePassword(7, "OldPass1!", "NewPass1!"))
	})

	t.Run("wrong current password", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(7).Return(storedUser(), nil)

		err := service.ChangePassword(7, "wrong", "NewPass1!")
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("weak new password never persisted", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(7).Return(storedUser(), nil)

		err := service.ChangePassword(7, "OldPass1!", "alllowercase")
		require.Error(t, err)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "VAL_004", authErr.Code)
		assert.Equal(t, 7, authErr.UserID)
	})

	t.Run("unknown user", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		err := service.ChangePassword(99, "OldPass1!", "NewPass1!")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
