package settings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ristorante/internal/domain"
)

type MockSettingRepo struct {
	mock.Mock
}

func (m *MockSettingRepo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingRepo) GetAll(ctx context.Context) ([]domain.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Setting), args.Error(1)
}

func (m *MockSettingRepo) Upsert(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func newTestRouter(repo SettingRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(repo).RegisterAdminRoutes(r.Group("/"))
	return r
}

func TestGetAll(t *testing.T) {
	repo := new(MockSettingRepo)
	repo.On("GetAll", mock.Anything).Return([]domain.Setting{
		{Key: "restaurant_name", Value: "Ristorante Mare"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	newTestRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "restaurant_name")
}

func TestGet_UnknownKey(t *testing.T) {
	repo := new(MockSettingRepo)
	repo.On("Get", mock.Anything, "missing").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/settings/missing", nil)
	newTestRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPut_UpsertsEveryPair(t *testing.T) {
	repo := new(MockSettingRepo)
	repo.On("Upsert", mock.Anything, "opening_time", "12:00").Return(nil)
	repo.On("Upsert", mock.Anything, "closing_time", "22:00").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/settings",
		strings.NewReader(`{"opening_time":"12:00","closing_time":"22:00"}`))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestPut_RejectsEmptyBody(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter(new(MockSettingRepo)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
