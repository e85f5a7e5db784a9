package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arsipku/arsip_backend/internal/apperrors"
	"github.com/arsipku/arsip_backend/internal/core/domain"
	portssvc "github.com/arsipku/arsip_backend/internal/core/ports/services"
	"github.com/arsipku/arsip_backend/internal/dto"
	"github.com/arsipku/arsip_backend/internal/platform/config"
	"github.com/arsipku/arsip_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	cfg             *config.Config
	user            *domain.User
	password        string
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: 7 * 24 * time.Hour,
		JWTIssuer:         "arsip-backend",
		AuthCookieName:    "auth-token",
	}

	suite.password = "rahasia-sekali"
	hash, err := utils.HashPassword(suite.password)
	suite.Require().NoError(err)
	suite.user = &domain.User{
		UserID:       uuid.NewString(),
		Name:         "Petugas Arsip",
		Email:        "petugas@example.com",
		PasswordHash: hash,
		Role:         "staff",
	}

	suite.mockUserService = new(MockUserService)
	registerAuthRoutes(suite.router, suite.cfg, suite.mockUserService)
}

func (suite *AuthHandlerTestSuite) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	suite.mockUserService.On("GetUserByEmail", mock.Anything, suite.user.Email).Return(suite.user, nil)

	w := suite.postJSON("/auth/login", dto.LoginRequest{Email: suite.user.Email, Password: suite.password})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(suite.user.UserID, resp.User.ID)
	suite.Equal(suite.user.Email, resp.User.Email)

	cookies := w.Result().Cookies()
	suite.Require().NotEmpty(cookies)
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == "auth-token" {
			session = c
		}
	}
	suite.Require().NotNil(session)
	suite.NotEmpty(session.Value)
	suite.True(session.HttpOnly)
	suite.Equal(http.SameSiteLaxMode, session.SameSite)

	claims, err := utils.ParseAndValidateJWT(session.Value, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, claims.Subject)
}

func (suite *AuthHandlerTestSuite) TestLogin_UnknownEmailIsNotFound() {
	suite.mockUserService.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(nil, apperrors.ErrNotFound)

	w := suite.postJSON("/auth/login", dto.LoginRequest{Email: "nobody@example.com", Password: "whatever123"})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Email tidak ditemukan")
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPasswordIsUnauthorized() {
	suite.mockUserService.On("GetUserByEmail", mock.Anything, suite.user.Email).Return(suite.user, nil)

	w := suite.postJSON("/auth/login", dto.LoginRequest{Email: suite.user.Email, Password: "password-salah"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Password salah")
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateEmailIsConflict() {
	suite.mockUserService.On("CreateUser", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(nil, apperrors.ErrDuplicate)

	w := suite.postJSON("/auth/register", dto.RegisterRequest{
		Name:     "Petugas",
		Email:    suite.user.Email,
		Password: "rahasia-sekali",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AuthHandlerTestSuite) TestMe_NoCookieYieldsNullUser() {
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"user":null}`, w.Body.String())
}

func (suite *AuthHandlerTestSuite) TestMe_InvalidTokenYieldsNullUser() {
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "auth-token", Value: "not-a-jwt"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"user":null}`, w.Body.String())
}

func (suite *AuthHandlerTestSuite) TestMe_ValidSessionReturnsUser() {
	token, err := utils.GenerateJWT(suite.user.UserID, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	suite.mockUserService.On("GetUserByID", mock.Anything, suite.user.UserID).Return(suite.user, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "auth-token", Value: token})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.User)
	suite.Equal(suite.user.UserID, resp.User.ID)
}

func (suite *AuthHandlerTestSuite) TestLogout_ClearsCookie() {
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	suite.Require().NotEmpty(cookies)
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == "auth-token" {
			session = c
		}
	}
	suite.Require().NotNil(session)
	suite.Empty(session.Value)
	suite.Less(session.MaxAge, 0)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
