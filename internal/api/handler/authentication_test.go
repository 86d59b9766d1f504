package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visibly/ai-visibility-api/infrastructure/repository/mocks"
	"github.com/visibly/ai-visibility-api/internal/api/handler/router"
	"github.com/visibly/ai-visibility-api/internal/config"
	"github.com/visibly/ai-visibility-api/internal/domain"
	"github.com/visibly/ai-visibility-api/internal/usecases/authenticating"
	"github.com/visibly/ai-visibility-api/pkg/middleware"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthRouter(t *testing.T) (router.Router, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	service := authenticating.NewService(userRepo, &config.Config{SecretKey: "test-secret"})

	rt := router.New(router.WithRoutes(Authentication(service)...))
	return rt, userRepo
}

func asUser(req *http.Request, userID int) *http.Request {
	claims := &domain.Claims{UserID: userID, UserRoleID: middleware.RoleViewer}
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func TestChangePassword_Success(t *testing.T) {
	rt, userRepo := newAuthRouter(t)

	currentHash, err := bcrypt.GenerateFromPassword([]byte("OldPass1!"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRepo.EXPECT().
		GetUserByID(7).
		Return(&domain.User{ID: 7, PasswordHash: string(currentHash), Active: true}, nil)

	userRepo.EXPECT().
		UpdateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("NewPass1!")))
			return nil
		})

	body := strings.NewReader(`{"current_password":"OldPass1!","new_password":"NewPass1!"}`)
	req := asUser(httptest.NewRequest(http.MethodPost, "/v1/users/7/change-password", body), 7)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestChangePassword_WeakNewPassword(t *testing.T) {
	rt, userRepo := newAuthRouter(t)

	currentHash, err := bcrypt.GenerateFromPassword([]byte("OldPass1!"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRepo.EXPECT().
		GetUserByID(7).
		Return(&domain.User{ID: 7, PasswordHash: string(currentHash), Active: true}, nil)

	body := strings.NewReader(`{"current_password":"OldPass1!","new_password":"alllowercase"}`)
	req := asUser(httptest.NewRequest(http.MethodPost, "/v1/users/7/change-password", body), 7)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VAL_004", resp.Error.Code)
}

func TestChangePassword_OtherUserForbidden(t *testing.T) {
	rt, _ := newAuthRouter(t)

	body := strings.NewReader(`{"current_password":"OldPass1!","new_password":"NewPass1!"}`)
	req := asUser(httptest.NewRequest(http.MethodPost, "/v1/users/8/change-password", body), 7)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestChangePassword_Unauthenticated(t *testing.T) {
	rt, _ := newAuthRouter(t)

	body := strings.NewReader(`{"current_password":"OldPass1!","new_password":"NewPass1!"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/users/7/change-password", body)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
