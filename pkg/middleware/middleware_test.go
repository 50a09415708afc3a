package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"train-booking/internal/data/entity"
	"train-booking/internal/data/repository/mocks"
	"train-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func echoUser(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(userID.String()))
	})
}

func TestAuthSession(t *testing.T) {
	token := uuid.New().String()
	userID := uuid.New()

	tests := []struct {
		name   string
		header string
		setup  func(m *mocks.SessionRepository)
		status int
	}{
		{"missing header", "", nil, http.StatusUnauthorized},
		{"wrong scheme", "Token " + token, nil, http.StatusUnauthorized},
		{"not a uuid", "Bearer abc", nil, http.StatusUnauthorized},
		{
			"expired session", "Bearer " + token,
			func(m *mocks.SessionRepository) { m.On("FindValidSession", mock.Anything, token).Return(nil, nil) },
			http.StatusUnauthorized,
		},
		{
			"lookup failure", "Bearer " + token,
			func(m *mocks.SessionRepository) {
				m.On("FindValidSession", mock.Anything, token).Return(nil, errors.New("db down"))
			},
			http.StatusInternalServerError,
		},
		{
			"valid session", "Bearer " + token,
			func(m *mocks.SessionRepository) {
				m.On("FindValidSession", mock.Anything, token).Return(&entity.Session{UserID: userID}, nil)
			},
			http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := mocks.NewSessionRepository(t)
			if tt.setup != nil {
				tt.setup(sessions)
			}

			req := httptest.NewRequest(http.MethodGet, "/my-bookings/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthSession(sessions, zap.NewNop())(echoUser(t)).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, userID.String(), rec.Body.String())
			}
		})
	}
}

func TestAdmin_RejectsCustomer(t *testing.T) {
	users := mocks.NewUserRepository(t)
	userID := uuid.New()
	users.On("FindByID", mock.Anything, userID).Return(&entity.User{Base: entity.Base{ID: userID}, Role: entity.RoleCustomer}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/routes", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), userID, string(entity.RoleCustomer)))
	rec := httptest.NewRecorder()

	Admin(users, zap.NewNop())(http.NotFoundHandler()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWizardSession(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetWizardKeyFromContext(r.Context())
	})
	mw := WizardSession(30*time.Minute, false, zap.NewNop())(next)

	t.Run("issues a new key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, WizardCookieName, cookies[0].Name)
		assert.Equal(t, seen, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("keeps cookie key", func(t *testing.T) {
		key := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: WizardCookieName, Value: key})

		mw.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, key, seen)
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		key := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: WizardCookieName, Value: uuid.New().String()})
		req.Header.Set(WizardHeaderName, key)

		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		assert.Equal(t, key, seen)
		assert.Equal(t, key, rec.Header().Get(WizardHeaderName))
	})

	t.Run("garbage key replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: WizardCookieName, Value: "../../etc"})

		mw.ServeHTTP(httptest.NewRecorder(), req)
		assert.NotEqual(t, "../../etc", seen)
	})
}

func TestRecover(t *testing.T) {
	panicky := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })
	rec := httptest.NewRecorder()

	Recover(zap.NewNop())(panicky).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":false`)
}
