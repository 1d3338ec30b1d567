package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtlib "github.com/nt-mdc/project-management-system-backend/internal/lib/jwt"
	"github.com/nt-mdc/project-management-system-backend/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: 7, Email: "jane@example.com"}

	token, jti, err := jwtlib.NewToken(user, "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, jti)

	claims, err := jwtlib.Parse(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, jti, claims.JTI)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: 7, Email: "jane@example.com"}

	token, _, err := jwtlib.NewToken(user, "secret", time.Hour)
	require.NoError(t, err)

	_, err = jwtlib.Parse(token, "other-secret")
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	user := &models.User{ID: 7, Email: "jane@example.com"}

	token, _, err := jwtlib.NewToken(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = jwtlib.Parse(token, "secret")
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := jwtlib.Parse("not-a-token", "secret")
	assert.Error(t, err)
}

func TestEachTokenGetsFreshJTI(t *testing.T) {
	user := &models.User{ID: 7, Email: "jane@example.com"}

	_, first, err := jwtlib.NewToken(user, "secret", time.Hour)
	require.NoError(t, err)
	_, second, err := jwtlib.NewToken(user, "secret", time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
