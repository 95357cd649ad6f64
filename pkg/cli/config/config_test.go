package config_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/folio-dev/folio/pkg/cli/config"
	"github.com/folio-dev/folio/pkg/infra/ghapi"
)

func runFlags(flags []cli.Flag, args ...string) error {
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	return cmd.Run(context.Background(), append([]string{"test"}, args...))
}

func TestGitHub(t *testing.T) {
	t.Run("flags build a client", func(t *testing.T) {
		var gh config.GitHub
		gt.NoError(t, runFlags(gh.Flags(),
			"--github-account", "octo",
			"--github-token", "ghp_secret_value",
			"--github-timeout", "3s",
			"--github-max-retries", "2",
		))

		gt.V(t, gh.Account()).Equal("octo")
		client, err := gh.NewClient(nil, ghapi.DefaultTTL())
		gt.NoError(t, err)
		gt.True(t, client != nil)

		logged := gh.LogValue().String()
		gt.False(t, strings.Contains(logged, "ghp_secret_value"))
		gt.S(t, logged).Contains("octo")
	})

	t.Run("account from environment", func(t *testing.T) {
		t.Setenv("FOLIO_GITHUB_ACCOUNT", "env-account")

		var gh config.GitHub
		gt.NoError(t, runFlags(gh.Flags()))
		gt.V(t, gh.Account()).Equal("env-account")
	})

	t.Run("account is required", func(t *testing.T) {
		t.Setenv("FOLIO_GITHUB_ACCOUNT", "")
		gt.NoError(t, os.Unsetenv("FOLIO_GITHUB_ACCOUNT"))

		var gh config.GitHub
		gt.Error(t, runFlags(gh.Flags()))
	})

	t.Run("token and GitHub App are exclusive", func(t *testing.T) {
		var gh config.GitHub
		gt.NoError(t, runFlags(gh.Flags(),
			"--github-account", "octo",
			"--github-token", "ghp_x",
			"--github-app-id", "1",
			"--github-app-installation-id", "2",
			"--github-app-private-key", "key",
		))

		_, err := gh.NewClient(nil, ghapi.DefaultTTL())
		gt.Error(t, err)
	})

	t.Run("GitHub App with broken key", func(t *testing.T) {
		var gh config.GitHub
		gt.NoError(t, runFlags(gh.Flags(),
			"--github-account", "octo",
			"--github-app-id", "1",
			"--github-app-installation-id", "2",
			"--github-app-private-key", "not a pem",
		))
		gt.False(t, strings.Contains(gh.LogValue().String(), "not a pem"))

		_, err := gh.NewClient(nil, ghapi.DefaultTTL())
		gt.Error(t, err)
	})

	t.Run("invalid timeout is rejected by the client", func(t *testing.T) {
		var gh config.GitHub
		gt.NoError(t, runFlags(gh.Flags(), "--github-account", "octo", "--github-timeout", "0s"))

		_, err := gh.NewClient(nil, ghapi.DefaultTTL())
		gt.Error(t, err)
	})
}

func TestCache(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cache config.Cache
		gt.NoError(t, runFlags(cache.Flags()))
		gt.NoError(t, cache.Validate())
		gt.V(t, cache.TTL()).Equal(ghapi.TTL{
			Repositories: time.Hour,
			Detail:       30 * time.Minute,
			Commits:      15 * time.Minute,
		})

		repo, closer, err := cache.NewRepository(context.Background())
		gt.NoError(t, err)
		defer closer()

		ctx := context.Background()
		gt.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))
		_, ok, err := repo.Get(ctx, "k")
		gt.NoError(t, err)
		gt.True(t, ok)
	})

	t.Run("non-positive TTL", func(t *testing.T) {
		var cache config.Cache
		gt.NoError(t, runFlags(cache.Flags(), "--cache-ttl-commits", "0s"))
		gt.Error(t, cache.Validate())
	})

	t.Run("unreachable redis", func(t *testing.T) {
		var cache config.Cache
		gt.NoError(t, runFlags(cache.Flags(), "--redis-addr", "127.0.0.1:1", "--redis-password", "hunter2"))
		gt.False(t, strings.Contains(cache.LogValue().String(), "hunter2"))

		_, _, err := cache.NewRepository(context.Background())
		gt.Error(t, err)
	})
}

func TestCatalog(t *testing.T) {
	t.Run("embedded catalog by default", func(t *testing.T) {
		var c config.Catalog
		gt.NoError(t, runFlags(c.Flags()))

		entries, err := c.Load()
		gt.NoError(t, err)
		gt.A(t, entries).Longer(0)
	})

	t.Run("catalog file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		gt.NoError(t, os.WriteFile(path, []byte(`projects:
  - id: one
    title: One
    featured: true
    priority: 1
`), 0600))

		var c config.Catalog
		gt.NoError(t, runFlags(c.Flags(), "--catalog-file", path))

		entries, err := c.Load()
		gt.NoError(t, err)
		gt.A(t, entries).Length(1)
		gt.V(t, entries[0].ID).Equal("one")
	})

	t.Run("missing file", func(t *testing.T) {
		var c config.Catalog
		gt.NoError(t, runFlags(c.Flags(), "--catalog-file", filepath.Join(t.TempDir(), "none.yaml")))

		_, err := c.Load()
		gt.Error(t, err)
	})
}
