package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestVerifier_Verify(t *testing.T) {
	valid := Claims{
		Email: "owner@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	noSubject := valid
	noSubject.Subject = ""

	tests := []struct {
		name    string
		token   string
		wantID  string
		wantErr bool
	}{
		{name: "valid", token: signToken(t, "secret", valid), wantID: "user-1"},
		{name: "wrong secret", token: signToken(t, "other", valid), wantErr: true},
		{name: "expired", token: signToken(t, "secret", expired), wantErr: true},
		{name: "missing subject", token: signToken(t, "secret", noSubject), wantErr: true},
		{name: "garbage", token: "not-a-token", wantErr: true},
	}

	verifier := NewVerifier("secret")
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			user, err := verifier.Verify(testCase.token)
			if testCase.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantID, user.ID)
			assert.Equal(t, "owner@example.com", user.Email)
		})
	}
}
