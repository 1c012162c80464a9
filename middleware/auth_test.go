package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lawyerup/config"
	"lawyerup/models"
	"lawyerup/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.User, error) {
	return r.GetByID(ctx, id)
}

func authTestRouter(t *testing.T, repo *fakeUserRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(repo), func(c *gin.Context) {
		usr := c.MustGet("currentUser").(*models.User)
		c.JSON(http.StatusOK, gin.H{"id": usr.ID})
	})
	return r
}

func requestWith(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareSessionHash(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("user-1", models.RoleClient, time.Hour)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*models.User{
		"user-1": {
			ID:        "user-1",
			UserType:  models.RoleClient,
			TokenHash: utils.HashToken(token),
		},
	}}
	router := authTestRouter(t, repo)

	t.Run("matching session hash authenticates", func(t *testing.T) {
		w := requestWith(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-1")
	})

	t.Run("stale token for the same user is rejected", func(t *testing.T) {
		// A second, differently-signed token for the same subject still
		// carries a valid signature but no longer matches the session hash.
		stale, err := utils.GenerateToken("user-1", models.RoleClient, 2*time.Hour)
		require.NoError(t, err)
		require.NotEqual(t, token, stale)

		w := requestWith(router, "Bearer "+stale)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token mismatch")
	})

	t.Run("user without a session hash is rejected", func(t *testing.T) {
		noSession, err := utils.GenerateToken("user-2", models.RoleClient, time.Hour)
		require.NoError(t, err)
		repo.users["user-2"] = &models.User{ID: "user-2", UserType: models.RoleClient}

		w := requestWith(router, "Bearer "+noSession)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthMiddlewareRejectsBadCredentials(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	router := authTestRouter(t, &fakeUserRepo{users: map[string]*models.User{}})

	for name, header := range map[string]string{
		"missing header":  "",
		"not bearer":      "Basic abc",
		"empty token":     "Bearer ",
		"garbage token":   "Bearer not.a.jwt",
		"unknown subject": mustBearer(t, "ghost"),
	} {
		t.Run(name, func(t *testing.T) {
			w := requestWith(router, header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func mustBearer(t *testing.T, subject string) string {
	t.Helper()
	token, err := utils.GenerateToken(subject, models.RoleClient, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}
