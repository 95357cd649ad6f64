package ghapp

import (
	"net/http"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/m-mizutani/goerr/v2"

	"github.com/folio-dev/folio/pkg/domain/types"
)

const defaultBaseURL = "https://api.github.com"

// Client authenticates GitHub API requests as an installation of a GitHub
// App. Installation tokens have a higher rate limit than personal tokens and
// are refreshed by the transport before they expire.
type Client struct {
	appID     types.GitHubAppID
	installID types.GitHubAppInstallID
	pem       types.GitHubAppPrivateKey
	baseURL   string
}

type Option func(*Client)

// WithBaseURL sets the API endpoint that issues installation tokens.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func New(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installation ID is empty", goerr.V("appID", appID))
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty", goerr.V("appID", appID))
	}

	client := &Client{
		appID:     appID,
		installID: installID,
		pem:       pem,
		baseURL:   defaultBaseURL,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// HTTPClient returns a client whose requests carry an installation token.
func (x *Client) HTTPClient(base http.RoundTripper) (*http.Client, error) {
	if base == nil {
		base = http.DefaultTransport
	}

	itr, err := ghinstallation.New(base, int64(x.appID), int64(x.installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport",
			goerr.V("appID", x.appID),
			goerr.V("installID", x.installID),
		)
	}
	itr.BaseURL = strings.TrimRight(x.baseURL, "/")

	return &http.Client{Transport: itr}, nil
}
