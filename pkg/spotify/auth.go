package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// tokenResponse is the body returned by the token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Authenticate performs the client-credentials exchange and returns a
// ready-to-use Client holding the resulting bearer token.
//
// The exchange happens exactly once, at construction. The returned Client
// never refreshes the token; a process that outlives the token's validity
// must call Authenticate again for a fresh session handle.
//
// Example:
//
//	client, err := spotify.Authenticate(ctx, spotify.Config{
//	    ClientID:     "your-client-id",
//	    ClientSecret: "your-client-secret",
//	})
func Authenticate(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	accountsURL := cfg.AccountsURL
	if accountsURL == "" {
		accountsURL = DefaultAccountsURL
	}

	c := &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		accountsURL: accountsURL,
		logger:      cfg.Logger,
	}

	token, err := requestToken(ctx, c, cfg.ClientID, cfg.ClientSecret)
	if err != nil {
		return nil, err
	}
	c.accessToken = token

	c.tracks = &TrackService{client: c}
	c.albums = &AlbumService{client: c}
	c.playlists = &PlaylistService{client: c}
	c.search = &SearchService{client: c}

	return c, nil
}

// requestToken exchanges the client ID and secret for a bearer token.
func requestToken(ctx context.Context, c *Client, clientID, clientSecret string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.accountsURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret))
	req.Header.Set("Authorization", "Basic "+credentials)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logDebugf("spotify: requesting client-credentials token")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &AuthError{Description: err.Error()}
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return "", &AuthError{StatusCode: resp.StatusCode, Description: "failed to read token response: " + err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		authErr := &AuthError{StatusCode: resp.StatusCode}
		// The token endpoint reports OAuth errors as
		// {"error": "...", "error_description": "..."}.
		var oauthErr struct {
			Error       string `json:"error"`
			Description string `json:"error_description"`
		}
		if err := json.Unmarshal(body, &oauthErr); err == nil {
			authErr.Code = oauthErr.Error
			authErr.Description = oauthErr.Description
		}
		return "", authErr
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", &AuthError{StatusCode: resp.StatusCode, Description: "failed to parse token response: " + err.Error()}
	}
	if token.AccessToken == "" {
		return "", &AuthError{StatusCode: resp.StatusCode, Description: "token response contained no access token"}
	}

	c.logDebugf("spotify: authentication succeeded (expires in %ds)", token.ExpiresIn)

	return token.AccessToken, nil
}
