package utils_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"wayfare/pkg/utils"
)

// TestToken_roundTrip verifies a freshly issued token validates and carries
// the identity it was minted for.
func TestToken_roundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := utils.CreateToken(userID, "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, userID.String(), claims.UserID)
	require.Equal(t, "user", claims.Role)
}

// TestValidateToken_garbage verifies junk input is rejected.
func TestValidateToken_garbage(t *testing.T) {
	_, err := utils.ValidateToken("not.a.token")
	require.Error(t, err)
}

// TestValidateToken_tampered verifies a modified payload fails signature
// verification.
func TestValidateToken_tampered(t *testing.T) {
	token, err := utils.CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = utils.ValidateToken(tampered)
	require.Error(t, err)
}

// TestHashPassword verifies hashing is salted and verification matches only
// the original password.
func TestHashPassword(t *testing.T) {
	first, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	second, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	require.NoError(t, utils.ComparePasswords(first, "correct horse"))
	require.Error(t, utils.ComparePasswords(first, "battery staple"))
}
