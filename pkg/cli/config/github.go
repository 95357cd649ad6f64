package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/folio-dev/folio/pkg/domain/interfaces"
	"github.com/folio-dev/folio/pkg/domain/types"
	"github.com/folio-dev/folio/pkg/infra/ghapi"
	"github.com/folio-dev/folio/pkg/infra/ghapp"
)

type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	account    string
	baseURL    string
	timeout    time.Duration
	maxRetries int64

	appID         types.GitHubAppID
	appInstallID  types.GitHubAppInstallID
	appPrivateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token (optional, raises the rate limit)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("FOLIO_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-account",
			Usage:       "GitHub account whose repositories are aggregated",
			Category:    "GitHub",
			Destination: &x.account,
			Sources:     cli.EnvVars("FOLIO_GITHUB_ACCOUNT"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("FOLIO_GITHUB_BASE_URL"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of a single GitHub API request",
			Category:    "GitHub",
			Destination: &x.timeout,
			Sources:     cli.EnvVars("FOLIO_GITHUB_TIMEOUT"),
			Value:       ghapi.DefaultTimeout,
		},
		&cli.Int64Flag{
			Name:        "github-max-retries",
			Usage:       "Retries of a GitHub API request that failed with a server error",
			Category:    "GitHub",
			Destination: &x.maxRetries,
			Sources:     cli.EnvVars("FOLIO_GITHUB_MAX_RETRIES"),
			Value:       ghapi.DefaultMaxRetries,
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used instead of a token",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("FOLIO_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "Installation ID of the GitHub App",
			Category:    "GitHub",
			Destination: (*int64)(&x.appInstallID),
			Sources:     cli.EnvVars("FOLIO_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "Private key (PEM) of the GitHub App",
			Category:    "GitHub",
			Destination: (*string)(&x.appPrivateKey),
			Sources:     cli.EnvVars("FOLIO_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x *GitHub) Account() string {
	return x.account
}

// NewClient builds the GitHub API client. cache may be nil.
func (x *GitHub) NewClient(cache interfaces.CacheRepository, ttl ghapi.TTL) (*ghapi.Client, error) {
	if x.account == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub account is required")
	}

	options := []ghapi.Option{
		ghapi.WithTimeout(x.timeout),
		ghapi.WithMaxRetries(int(x.maxRetries)),
		ghapi.WithTTL(ttl),
	}
	if x.token != "" && x.appID != 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token and GitHub App are exclusive")
	}
	if x.token != "" {
		options = append(options, ghapi.WithToken(x.token))
	}
	if x.appID != 0 {
		httpClient, err := x.appHTTPClient()
		if err != nil {
			return nil, err
		}
		options = append(options, ghapi.WithHTTPClient(httpClient))
	}
	if x.baseURL != "" {
		options = append(options, ghapi.WithBaseURL(x.baseURL))
	}
	if cache != nil {
		options = append(options, ghapi.WithCache(cache))
	}

	return ghapi.New(options...)
}

func (x *GitHub) appHTTPClient() (*http.Client, error) {
	var appOptions []ghapp.Option
	if x.baseURL != "" {
		appOptions = append(appOptions, ghapp.WithBaseURL(x.baseURL))
	}

	app, err := ghapp.New(x.appID, x.appInstallID, x.appPrivateKey, appOptions...)
	if err != nil {
		return nil, err
	}
	return app.HTTPClient(nil)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Account", x.account),
		slog.Int("Token.len", len(x.token)),
		slog.String("BaseURL", x.baseURL),
		slog.Duration("Timeout", x.timeout),
		slog.Int64("MaxRetries", x.maxRetries),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("AppInstallID", int64(x.appInstallID)),
		slog.Int("AppPrivateKey.len", len(x.appPrivateKey)),
	)
}
