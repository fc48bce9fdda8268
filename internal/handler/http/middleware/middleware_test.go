package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/jwt"
)

func newProtectedRouter(jwtService jwt.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService))

	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(EmployeeID(r.Context())))
	})
	r.With(AdminOnly).Get("/admin", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func do(t *testing.T, h http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	jwtService := jwt.NewJWTService("middleware-secret", time.Hour)
	h := newProtectedRouter(jwtService)

	assert.Equal(t, http.StatusUnauthorized, do(t, h, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, "/me", "garbage").Code)

	token, exp, err := jwtService.GenerateAccessToken("emp-1", "11111111", false)
	require.NoError(t, err)

	rec := do(t, h, "/me", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "emp-1", rec.Body.String())

	jwtService.RevokeToken(token, exp)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, "/me", token).Code)
}

func TestAdminOnly(t *testing.T) {
	jwtService := jwt.NewJWTService("middleware-secret", time.Hour)
	h := newProtectedRouter(jwtService)

	employeeToken, _, err := jwtService.GenerateAccessToken("emp-1", "11111111", false)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, do(t, h, "/admin", employeeToken).Code)

	adminToken, _, err := jwtService.GenerateAccessToken("emp-2", "22222222", true)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, do(t, h, "/admin", adminToken).Code)
}
