package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pentaview/core/internal/database"
	jwtpkg "github.com/pentaview/core/internal/pkg/jwt"
	sessionpkg "github.com/pentaview/core/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, *gorm.DB, *[]time.Duration) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	svc := NewService(db)
	var slept []time.Duration
	svc.sleep = func(d time.Duration) { slept = append(slept, d) }
	return svc, db, &slept
}

func TestRegisterHashesPasswordAndDefaultsName(t *testing.T) {
	svc, _, _ := newTestService(t)

	u, err := svc.Register(&RegisterDTO{Email: "Ada@Example.COM", Password: "correct horse"})
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, "ada", u.Name)
	assert.NotEqual(t, "correct horse", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("correct horse")))
}

func TestRegisterKeepsExplicitName(t *testing.T) {
	svc, _, _ := newTestService(t)

	u, err := svc.Register(&RegisterDTO{Email: "ada@example.com", Password: "correct horse", Name: "Ada Lovelace"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", u.Name)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Register(&RegisterDTO{Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.Register(&RegisterDTO{Email: " ADA@example.com ", Password: "other password"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginIssuesRevocableToken(t *testing.T) {
	svc, db, slept := newTestService(t)

	u, err := svc.Register(&RegisterDTO{Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)

	token, loggedIn, err := svc.Login(&LoginDTO{Email: "ada@example.com", Password: "correct horse"}, "127.0.0.1", "test-agent")
	require.NoError(t, err)
	assert.Equal(t, u.ID, loggedIn.ID)
	assert.Empty(t, *slept)

	claims, err := jwtpkg.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	require.NotEmpty(t, claims.SessionID)

	active, err := sessionpkg.IsActive(db, u.ID, claims.SessionID)
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, svc.SignOut(u.ID, claims.SessionID))
	active, err = sessionpkg.IsActive(db, u.ID, claims.SessionID)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestLoginFailuresAreUniformAndDelayed(t *testing.T) {
	svc, _, slept := newTestService(t)

	_, err := svc.Register(&RegisterDTO{Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)

	_, _, unknownErr := svc.Login(&LoginDTO{Email: "nobody@example.com", Password: "whatever"}, "", "")
	_, _, wrongErr := svc.Login(&LoginDTO{Email: "ada@example.com", Password: "wrong"}, "", "")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	// Same error text and the same artificial delay either way.
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, []time.Duration{failedLoginDelay, failedLoginDelay}, *slept)
}

func TestSignOutWithoutSessionIsNoop(t *testing.T) {
	svc, _, _ := newTestService(t)
	assert.NoError(t, svc.SignOut("user-1", "  "))
}

func TestGetByIDMissingUser(t *testing.T) {
	svc, _, _ := newTestService(t)

	u, err := svc.GetByID("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, u)
}
