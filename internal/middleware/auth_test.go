package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campushq/licensing/internal/auth"
	"github.com/campushq/licensing/internal/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	tokenManager := auth.NewTokenManager("test-secret", time.Hour)
	actorID := uuid.New()

	handler := middleware.AuthMiddleware(tokenManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, actorID, middleware.ActorID(r.Context()))
		assert.NotEmpty(t, middleware.BearerToken(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("resolves the actor from a minted token", func(t *testing.T) {
		token, err := tokenManager.Generate(actorID, "admin@stateu.edu")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("rejects a missing authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		forged, err := auth.NewTokenManager("other-secret", time.Hour).Generate(actorID, "admin@stateu.edu")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired, err := auth.NewTokenManager("test-secret", -time.Minute).Generate(actorID, "admin@stateu.edu")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
