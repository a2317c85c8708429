package identity

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestGoTrueClient_SignUp(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		wantConfirmation bool
		wantUserID       string
		wantTokens       bool
	}{
		{
			name:             "confirmation pending",
			body:             `{"id":"u1","email":"a@b.c","identities":[{"id":"i1","provider":"email"}]}`,
			wantConfirmation: true,
			wantUserID:       "u1",
		},
		{
			name:             "auto confirmed",
			body:             `{"access_token":"tok","refresh_token":"r","expires_in":3600,"user":{"id":"u2","email":"a@b.c","identities":[{"id":"i1","provider":"email"}]}}`,
			wantConfirmation: false,
			wantUserID:       "u2",
			wantTokens:       true,
		},
		{
			name:             "obfuscated existing user",
			body:             `{"id":"u3","email":"a@b.c","identities":[]}`,
			wantConfirmation: true,
			wantUserID:       "u3",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			client := new(mockHTTPClient)
			client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == http.MethodPost &&
					strings.HasPrefix(req.URL.String(), "http://auth.local/signup?redirect_to=") &&
					req.Header.Get("apikey") == "anon"
			})).Return(jsonResponse(http.StatusOK, testCase.body), nil).Once()

			gotrue := NewGoTrueClient("http://auth.local/", "anon", client)
			result, err := gotrue.SignUp(context.Background(), "a@b.c", "secret1", "http://menu.local/")

			require.NoError(t, err)
			assert.Equal(t, testCase.wantUserID, result.User.ID)
			assert.Equal(t, testCase.wantConfirmation, result.NeedsEmailConfirmation)
			assert.Equal(t, testCase.wantTokens, result.Tokens != nil)
			client.AssertExpectations(t)
		})
	}
}

func TestGoTrueClient_SignInError(t *testing.T) {
	client := new(mockHTTPClient)
	client.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusBadRequest, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`), nil).Once()

	gotrue := NewGoTrueClient("http://auth.local", "", client)
	tokens, err := gotrue.SignIn(context.Background(), "a@b.c", "wrong")

	assert.Nil(t, tokens)
	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "Invalid login credentials", providerErr.Message)
	assert.Equal(t, msgInvalidCredentials, MapAuthError(OpSignIn, err))
}

func TestGoTrueClient_User(t *testing.T) {
	client := new(mockHTTPClient)
	client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("Authorization") == "Bearer tok" && req.URL.Path == "/user"
	})).Return(jsonResponse(http.StatusOK, `{"id":"u1","email":"a@b.c"}`), nil).Once()

	gotrue := NewGoTrueClient("http://auth.local", "", client)
	user, err := gotrue.User(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}
