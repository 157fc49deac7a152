// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akarpov/go-social-auth/internal/config"
	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a resty client with retries disabled so that error
// paths complete quickly.
func newTestClient() *resty.Client {
	return resty.New().SetTimeout(2 * time.Second)
}

// newFacebookTestValidator points the adapter at the given fake Graph API.
func newFacebookTestValidator(serverURL, appID, appSecret string) *facebookValidator {
	return &facebookValidator{
		client:    newTestClient(),
		baseURL:   serverURL,
		appID:     appID,
		appSecret: appSecret,
		logger:    logger.Nop(),
	}
}

func TestFacebookValidate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/debug_token":
			assert.Equal(t, "social-token", r.URL.Query().Get("input_token"))
			assert.Equal(t, "app-id|app-secret", r.URL.Query().Get("access_token"))
			w.Write([]byte(`{"data":{"is_valid":true,"app_id":"app-id","user_id":"12345","expires_at":1893456000,"scopes":["email"]}}`))
		case "/me":
			assert.Equal(t, "social-token", r.URL.Query().Get("access_token"))
			w.Write([]byte(`{"id":"12345","name":"John Doe","email":"john@example.com"}`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	v := newFacebookTestValidator(server.URL, "app-id", "app-secret")

	identity, err := v.Validate(context.Background(), "social-token")
	require.NoError(t, err)

	assert.Equal(t, "12345", identity.UID)
	assert.Equal(t, "John Doe", identity.Name)
	assert.Equal(t, "john@example.com", identity.Email)
	assert.Equal(t, int64(1893456000), identity.ExpiresAt)
	assert.Equal(t, []string{"email"}, identity.Scopes)
}

func TestFacebookValidate_InvalidToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"is_valid":false}}`))
	}))
	defer server.Close()

	v := newFacebookTestValidator(server.URL, "", "")

	_, err := v.Validate(context.Background(), "bad-token")
	require.ErrorIs(t, err, ErrValidationFailed)
}

func TestFacebookValidate_AppIDMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"is_valid":true,"app_id":"someone-else","user_id":"1"}}`))
	}))
	defer server.Close()

	v := newFacebookTestValidator(server.URL, "app-id", "app-secret")

	_, err := v.Validate(context.Background(), "token")
	require.ErrorIs(t, err, ErrValidationFailed)
}

func TestFacebookValidate_MissingUID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"is_valid":true,"app_id":"app-id"}}`))
	}))
	defer server.Close()

	v := newFacebookTestValidator(server.URL, "app-id", "app-secret")

	_, err := v.Validate(context.Background(), "token")
	require.ErrorIs(t, err, ErrValidationFailed)
}

func TestFacebookValidate_DebugRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad token"}}`))
	}))
	defer server.Close()

	v := newFacebookTestValidator(server.URL, "", "")

	_, err := v.Validate(context.Background(), "token")
	require.ErrorIs(t, err, ErrValidationFailed)
}

func TestFacebookValidate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	v := newFacebookTestValidator(server.URL, "", "")

	_, err := v.Validate(context.Background(), "token")
	require.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestFacebookValidate_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from now on

	v := newFacebookTestValidator(server.URL, "", "")

	_, err := v.Validate(context.Background(), "token")
	require.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestNewHTTPClient_RetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newHTTPClient(config.Providers{
		RequestTimeout: 2 * time.Second,
		RetryCount:     3,
		RetryWait:      time.Millisecond,
	})

	resp, err := client.R().Get(server.URL)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, 3, attempts)
}

func TestNewHTTPClient_DoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newHTTPClient(config.Providers{
		RequestTimeout: 2 * time.Second,
		RetryCount:     3,
		RetryWait:      time.Millisecond,
	})

	resp, err := client.R().Get(server.URL)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode())
	assert.Equal(t, 1, attempts)
}
