package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pentaview/core/internal/database"
	"github.com/pentaview/core/internal/pkg/response"
	sessionpkg "github.com/pentaview/core/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	r := gin.New()
	r.GET("/protected", Auth(db), func(c *gin.Context) {
		response.OK(c, gin.H{"user_id": CurrentUserID(c)})
	})
	r.GET("/open", OptionalAuth(db), func(c *gin.Context) {
		response.OK(c, gin.H{"authenticated": IsAuthenticated(c)})
	})
	return r, db
}

func issueToken(t *testing.T, db *gorm.DB, userID string) string {
	t.Helper()
	token, _, err := sessionpkg.Issue(db, userID, "127.0.0.1", "test-agent", time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsMissingAndGarbageTokens(t *testing.T) {
	r, _ := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/protected", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/protected", "Bearer not.a.token").Code)
}

func TestAuthAcceptsValidToken(t *testing.T) {
	r, db := newTestRouter(t)
	token := issueToken(t, db, "user-1")

	w := doRequest(r, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthRejectsRevokedSession(t *testing.T) {
	r, db := newTestRouter(t)
	token := issueToken(t, db, "user-1")

	claims, err := ValidateTokenClaims(db, token)
	require.NoError(t, err)
	require.NoError(t, sessionpkg.Revoke(db, "user-1", claims.SessionID))

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/protected", "Bearer "+token).Code)
}

func TestOptionalAuthNeverBlocks(t *testing.T) {
	r, db := newTestRouter(t)

	w := doRequest(r, "/open", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "false")

	token := issueToken(t, db, "user-1")
	w = doRequest(r, "/open", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "abc", NormalizeToken("abc"))
	assert.Equal(t, "abc", NormalizeToken("  Bearer abc "))
	assert.Equal(t, "abc", NormalizeToken("bearer abc"))
	assert.Empty(t, NormalizeToken("   "))
}
