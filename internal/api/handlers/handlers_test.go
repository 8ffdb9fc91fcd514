package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hweilin/memberhub/factory"
	"github.com/hweilin/memberhub/internal/config"
	"github.com/hweilin/memberhub/internal/repository"
	"github.com/hweilin/memberhub/internal/services/auth"
	"github.com/hweilin/memberhub/pkg/logger"
	"github.com/hweilin/memberhub/pkg/token"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	admin repository.Admin
}

func (f *fakeAdminRepo) Get(ctx context.Context, filter repository.AdminRepositoryFilter) (*repository.Admin, error) {
	if filter.Username != nil && *filter.Username == f.admin.Username {
		admin := f.admin
		return &admin, nil
	}
	if filter.ID != nil && *filter.ID == f.admin.ID {
		admin := f.admin
		return &admin, nil
	}
	return nil, sql.ErrNoRows
}

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()

	cfg := &config.Config{IsDev: true}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	adminRepo := &fakeAdminRepo{admin: repository.Admin{
		ID:           1,
		Username:     "admin",
		PasswordHash: string(hash),
	}}

	jwt := token.NewJWT("0123456789abcdef0123456789abcdef", time.Hour)
	nop := zerolog.Nop()

	f := &factory.Factory{
		Logger: &logger.Logger{Logger: &nop},
		Services: &factory.Services{
			Auth: auth.New(cfg, jwt, adminRepo),
		},
	}

	h, err := NewHandlers(f, cfg)
	require.NoError(t, err)
	return h
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLogin_Success(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"admin","password":"admin123"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.NotEmpty(t, body["accessToken"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "admin", user["username"])
	require.EqualValues(t, 1, user["id"])
}

func TestLogin_BadCredentialsEnvelope(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	require.EqualValues(t, http.StatusUnauthorized, body["statusCode"])
	require.Equal(t, "/api/v1/auth/login", body["path"])
	require.Equal(t, http.MethodPost, body["method"])
	require.NotEmpty(t, body["timestamp"])
	require.Contains(t, body, "requestId")
}

func TestLogin_MissingFields(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"admin"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMemberByID_InvalidID(t *testing.T) {
	h := newTestHandlers(t)

	r := chi.NewRouter()
	r.Get("/api/v1/members/{id}", h.MemberByID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members/abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	require.EqualValues(t, http.StatusBadRequest, body["statusCode"])
	require.Equal(t, "/api/v1/members/abc", body["path"])
}
