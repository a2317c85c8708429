package identity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapAuthError(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		err  error
		want string
	}{
		{name: "bad credentials", op: OpSignIn, err: &ProviderError{Message: "Invalid login credentials"}, want: msgInvalidCredentials},
		{name: "unconfirmed", op: OpSignIn, err: &ProviderError{Message: "Email not confirmed"}, want: msgEmailNotConfirmed},
		{name: "registered", op: OpSignUp, err: &ProviderError{Message: "User already registered"}, want: msgAlreadyRegistered},
		{name: "unknown sign in", op: OpSignIn, err: &ProviderError{Message: "rate limited"}, want: msgSignInFailed},
		{name: "transport sign up", op: OpSignUp, err: errors.New("dial tcp: refused"), want: msgSignUpFailed},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, MapAuthError(testCase.op, testCase.err))
		})
	}
}

func TestSignUpRequest_Validate(t *testing.T) {
	valid := SignUpRequest{
		Email:           "owner@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Username:        "shawarma-house",
		RestaurantName:  "Shawarma House",
	}

	tests := []struct {
		name   string
		mutate func(*SignUpRequest)
		want   error
	}{
		{name: "valid", mutate: func(*SignUpRequest) {}, want: nil},
		{name: "blank username", mutate: func(r *SignUpRequest) { r.Username = "  " }, want: ErrUsernameRequired},
		{name: "username with spaces", mutate: func(r *SignUpRequest) { r.Username = "my place" }, want: ErrUsernameFormat},
		{name: "arabic username", mutate: func(r *SignUpRequest) { r.Username = "مطعم" }, want: ErrUsernameFormat},
		{name: "no restaurant name", mutate: func(r *SignUpRequest) { r.RestaurantName = "" }, want: ErrRestaurantNameRequired},
		{name: "mismatch", mutate: func(r *SignUpRequest) { r.ConfirmPassword = "other" }, want: ErrPasswordMismatch},
		{name: "short", mutate: func(r *SignUpRequest) { r.Password, r.ConfirmPassword = "abc", "abc" }, want: ErrPasswordTooShort},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := valid
			testCase.mutate(&req)
			assert.Equal(t, testCase.want, req.Validate())
		})
	}
}
