package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tranhart-io/api/pkg/models"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	digest, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", digest)

	assert.NoError(t, CheckPassword(digest, "correct horse battery staple"))
	assert.Error(t, CheckPassword(digest, "wrong password"))
}

func TestGenerateSecureTokenLength(t *testing.T) {
	token := GenerateSecureToken(20)
	assert.Len(t, token, 40)

	other := GenerateSecureToken(20)
	assert.NotEqual(t, token, other)
}

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("SECRET", "test-secret")

	token, expiresAt, err := GenerateJWT("64f0", "admin@example.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	claim, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f0", claim.Id)
	assert.Equal(t, "admin@example.com", claim.Email)
	assert.Equal(t, models.RoleAdmin, claim.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("SECRET", "first-secret")
	token, _, err := GenerateJWT("64f0", "admin@example.com", models.RoleAdmin)
	require.NoError(t, err)

	t.Setenv("SECRET", "second-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractBearerToken("")
	assert.Error(t, err)

	_, err = ExtractBearerToken("Basic abc123")
	assert.Error(t, err)

	_, err = ExtractBearerToken("Bearer ")
	assert.Error(t, err)
}

func TestUserSessionExpired(t *testing.T) {
	session := UserSession{}
	assert.True(t, session.Expired())
}
