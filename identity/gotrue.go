package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// GoTrueClient talks to a GoTrue compatible auth endpoint.
type GoTrueClient struct {
	baseURL string
	apiKey  string
	client  HTTPClient
}

func NewGoTrueClient(baseURL, apiKey string, client HTTPClient) *GoTrueClient {
	return &GoTrueClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signUpResponse covers both shapes the provider returns: a bare user when
// email confirmation is pending, or a full session when it is not.
type signUpResponse struct {
	Tokens
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Identities []Identity `json:"identities"`
}

func (c *GoTrueClient) SignUp(ctx context.Context, email, password, redirectTo string) (*SignUpResult, error) {
	endpoint := c.baseURL + "/signup"
	if redirectTo != "" {
		endpoint += "?redirect_to=" + url.QueryEscape(redirectTo)
	}

	var resp signUpResponse
	if err := c.do(ctx, http.MethodPost, endpoint, "", credentials{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}

	result := &SignUpResult{}
	if resp.AccessToken != "" {
		tokens := resp.Tokens
		result.Tokens = &tokens
		result.User = resp.Tokens.User
	} else {
		result.User = User{ID: resp.ID, Email: resp.Email, Identities: resp.Identities}
	}
	result.NeedsEmailConfirmation = result.Tokens == nil || len(result.User.Identities) == 0
	return result, nil
}

func (c *GoTrueClient) SignIn(ctx context.Context, email, password string) (*Tokens, error) {
	var tokens Tokens
	endpoint := c.baseURL + "/token?grant_type=password"
	if err := c.do(ctx, http.MethodPost, endpoint, "", credentials{Email: email, Password: password}, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (c *GoTrueClient) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, c.baseURL+"/logout", accessToken, nil, nil)
}

func (c *GoTrueClient) User(ctx context.Context, accessToken string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/user", accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *GoTrueClient) do(ctx context.Context, method, endpoint, accessToken string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeProviderError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeProviderError(resp *http.Response) error {
	var payload struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	message := payload.Msg
	for _, candidate := range []string{payload.ErrorDescription, payload.Message, payload.Error} {
		if message == "" {
			message = candidate
		}
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return &ProviderError{Status: resp.StatusCode, Message: message}
}

var _ Provider = (*GoTrueClient)(nil)
