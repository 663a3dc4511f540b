package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/savi-dev/savi/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() domain.User {
	return domain.User{
		Name:   "Jane Farmer",
		Email:  "jane@example.com",
		Role:   domain.RoleCustomer,
		Joined: time.Unix(1700000000, 0),
	}
}

func TestNewTokenRoundTrip(t *testing.T) {
	svc := New("secret", time.Hour)

	tokenStr, err := svc.NewToken(testUser())
	require.NoError(t, err)

	token, err := svc.DecodeToken(tokenStr)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwtlib.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "Jane Farmer", claims["name"])
	assert.Equal(t, "customer", claims["role"])
	assert.Equal(t, float64(1700000000), claims["joined"])
}

func TestDecodeTokenWrongKey(t *testing.T) {
	signer := New("secret", time.Hour)
	verifier := New("other", time.Hour)

	tokenStr, err := signer.NewToken(testUser())
	require.NoError(t, err)

	_, err = verifier.DecodeToken(tokenStr)
	assert.Error(t, err)
}

func TestDecodeTokenExpired(t *testing.T) {
	svc := New("secret", -time.Minute)

	tokenStr, err := svc.NewToken(testUser())
	require.NoError(t, err)

	_, err = svc.DecodeToken(tokenStr)
	assert.Error(t, err)
}
