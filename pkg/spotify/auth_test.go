package spotify

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		statusCode int
		wantErr    bool
		wantCode   string
	}{
		{
			name:       "success",
			response:   `{"access_token":"abc123","token_type":"Bearer","expires_in":3600}`,
			statusCode: http.StatusOK,
		},
		{
			name:       "invalid client",
			response:   `{"error":"invalid_client","error_description":"Invalid client secret"}`,
			statusCode: http.StatusUnauthorized,
			wantErr:    true,
			wantCode:   "invalid_client",
		},
		{
			name:       "empty token",
			response:   `{"token_type":"Bearer"}`,
			statusCode: http.StatusOK,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST request, got %s", r.Method)
				}

				// The exchange authenticates with a Basic header built
				// from id:secret.
				wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("test-id:test-secret"))
				if got := r.Header.Get("Authorization"); got != wantAuth {
					t.Errorf("expected Authorization %q, got %q", wantAuth, got)
				}

				if err := r.ParseForm(); err != nil {
					t.Fatalf("failed to parse form: %v", err)
				}
				if grant := r.FormValue("grant_type"); grant != "client_credentials" {
					t.Errorf("expected grant_type client_credentials, got %s", grant)
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				fmt.Fprint(w, tt.response)
			}))
			defer accounts.Close()

			client, err := Authenticate(context.Background(), Config{
				ClientID:     "test-id",
				ClientSecret: "test-secret",
				AccountsURL:  accounts.URL,
			})

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var authErr *AuthError
				if !errors.As(err, &authErr) {
					t.Fatalf("expected *AuthError, got %T: %v", err, err)
				}
				if tt.wantCode != "" && authErr.Code != tt.wantCode {
					t.Errorf("expected code %q, got %q", tt.wantCode, authErr.Code)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client.accessToken != "abc123" {
				t.Errorf("expected token abc123, got %q", client.accessToken)
			}
		})
	}
}

func TestAuthenticateMissingCredentials(t *testing.T) {
	if _, err := Authenticate(context.Background(), Config{ClientID: "id"}); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := Authenticate(context.Background(), Config{ClientSecret: "secret"}); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestAuthenticateNetworkError(t *testing.T) {
	accounts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	accounts.Close() // connection refused

	_, err := Authenticate(context.Background(), Config{
		ClientID:     "test-id",
		ClientSecret: "test-secret",
		AccountsURL:  accounts.URL,
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %T: %v", err, err)
	}
}
