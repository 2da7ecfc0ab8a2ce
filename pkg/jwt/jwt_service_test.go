package jwt

import (
	"testing"

	"Recipe-Catalog-API/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndResolveToken(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("8b9f2a74-1f3c-4c2f-9a57-2f3a1c9d8e10", domain.RoleUser)
	require.NotEmpty(t, token)

	userID, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "8b9f2a74-1f3c-4c2f-9a57-2f3a1c9d8e10", userID)
	assert.Equal(t, domain.RoleUser, role)
}

func TestResolveMalformedToken(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestResolveEmptyToken(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
