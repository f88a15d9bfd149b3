package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/PietroSRobusti/sus-para-todos/internal/model"
	"github.com/PietroSRobusti/sus-para-todos/internal/session"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) (*model.User, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func newEchoContext(t *testing.T, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSession_ResolvesValidCookie(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	token, err := store.Create(context.Background(), "user-1")
	assert.NoError(t, err)

	c, _ := newEchoContext(t, &http.Cookie{
		Name:  session.CookieName,
		Value: session.SignToken(token, "secret"),
	})

	var seen string
	handler := Session(store, "secret")(func(c echo.Context) error {
		seen = UserID(c)
		return nil
	})
	assert.NoError(t, handler(c))
	assert.Equal(t, "user-1", seen)
}

func TestSession_IgnoresBadCookies(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	token, _ := store.Create(context.Background(), "user-1")

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "no cookie", cookie: nil},
		{name: "unsigned token", cookie: &http.Cookie{Name: session.CookieName, Value: token}},
		{name: "wrong secret", cookie: &http.Cookie{Name: session.CookieName, Value: session.SignToken(token, "other")}},
		{name: "unknown token", cookie: &http.Cookie{Name: session.CookieName, Value: session.SignToken("stale", "secret")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newEchoContext(t, tt.cookie)
			handler := Session(store, "secret")(okHandler)
			assert.NoError(t, handler(c))
			assert.Equal(t, "", UserID(c))
		})
	}
}

// failingStore simulates a session backend outage: every lookup errors.
type failingStore struct{}

func (failingStore) Create(ctx context.Context, userID string) (string, error) {
	return "", errors.New("dial tcp: connection refused")
}

func (failingStore) Get(ctx context.Context, token string) (string, error) {
	return "", errors.New("dial tcp: connection refused")
}

func (failingStore) Destroy(ctx context.Context, token string) error {
	return errors.New("dial tcp: connection refused")
}

func TestSession_StoreOutageIsAnError(t *testing.T) {
	c, rec := newEchoContext(t, &http.Cookie{
		Name:  session.CookieName,
		Value: session.SignToken("some-token", "secret"),
	})

	handler := Session(failingStore{}, "secret")(RequireAuth(okHandler))
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Erro interno do servidor")
}

func TestRequireAuth(t *testing.T) {
	t.Run("anonymous request is rejected", func(t *testing.T) {
		c, rec := newEchoContext(t, nil)
		assert.NoError(t, RequireAuth(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Não autenticado")
	})

	t.Run("authenticated request passes through", func(t *testing.T) {
		c, rec := newEchoContext(t, nil)
		SetUserID(c, "user-1")
		assert.NoError(t, RequireAuth(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		setupMock  func(*MockUserRepository)
		wantStatus int
	}{
		{
			name:       "anonymous",
			userID:     "",
			setupMock:  func(m *MockUserRepository) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "stale session, user row gone",
			userID: "ghost",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "regular user",
			userID: "user-1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "user-1").Return(&model.User{ID: "user-1", Role: model.RoleUser}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "admin",
			userID: "admin-1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "admin-1").Return(&model.User{ID: "admin-1", Role: model.RoleAdmin}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "lookup failure",
			userID: "user-1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "user-1").Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			c, rec := newEchoContext(t, nil)
			if tt.userID != "" {
				SetUserID(c, tt.userID)
			}

			handler := RequireAdmin(mockRepo)(okHandler)
			assert.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			mockRepo.AssertExpectations(t)
		})
	}
}
