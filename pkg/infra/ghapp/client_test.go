package ghapp_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/folio-dev/folio/pkg/domain/types"
	"github.com/folio-dev/folio/pkg/infra/ghapp"
)

func newPrivateKey(t *testing.T) types.GitHubAppPrivateKey {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	gt.NoError(t, err)

	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}
	return types.GitHubAppPrivateKey(pem.EncodeToMemory(block))
}

func TestNew(t *testing.T) {
	t.Run("valid inputs", func(t *testing.T) {
		_, err := ghapp.New(12345, 67890, "test-key")
		gt.NoError(t, err)
	})

	t.Run("empty private key fails", func(t *testing.T) {
		client, err := ghapp.New(12345, 67890, "")
		gt.Error(t, err)
		gt.True(t, client == nil)
	})

	t.Run("zero app ID fails", func(t *testing.T) {
		client, err := ghapp.New(0, 67890, "test-key")
		gt.Error(t, err)
		gt.True(t, client == nil)
	})

	t.Run("zero installation ID fails", func(t *testing.T) {
		client, err := ghapp.New(12345, 0, "test-key")
		gt.Error(t, err)
		gt.True(t, client == nil)
	})
}

func TestHTTPClient(t *testing.T) {
	t.Run("invalid key is rejected", func(t *testing.T) {
		client := gt.R1(ghapp.New(12345, 67890, "invalid-key")).NoError(t)

		httpClient, err := client.HTTPClient(nil)
		gt.Error(t, err)
		gt.True(t, httpClient == nil)
	})

	t.Run("requests carry an installation token", func(t *testing.T) {
		var (
			mu         sync.Mutex
			tokenPaths []string
			authHeader string
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()

			w.Header().Set("Content-Type", "application/json")
			if r.Method == http.MethodPost {
				tokenPaths = append(tokenPaths, r.URL.Path)
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"token":"ghs_installation_token","expires_at":"2099-01-01T00:00:00Z"}`))
				return
			}

			authHeader = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		client := gt.R1(ghapp.New(12345, 67890, newPrivateKey(t), ghapp.WithBaseURL(srv.URL+"/"))).NoError(t)
		httpClient := gt.R1(client.HTTPClient(nil)).NoError(t)

		resp, err := httpClient.Get(srv.URL + "/users/octo/repos")
		gt.NoError(t, err)
		gt.NoError(t, resp.Body.Close())
		gt.V(t, resp.StatusCode).Equal(http.StatusOK)

		mu.Lock()
		defer mu.Unlock()
		gt.V(t, tokenPaths).Equal([]string{"/app/installations/67890/access_tokens"})
		gt.S(t, authHeader).Contains("ghs_installation_token")
	})
}
