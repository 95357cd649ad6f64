package ghapi

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/folio-dev/folio/pkg/domain/interfaces"
	"github.com/folio-dev/folio/pkg/domain/types"
)

const (
	// Page size ceiling of the provider. Only the first page is requested.
	repositoryPageSize = 100

	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 1
	defaultRetryWait  = 500 * time.Millisecond
)

// TTL holds the cache lifetime of each data class.
type TTL struct {
	Repositories time.Duration
	Detail       time.Duration
	Commits      time.Duration
}

func DefaultTTL() TTL {
	return TTL{
		Repositories: 3600 * time.Second,
		Detail:       1800 * time.Second,
		Commits:      900 * time.Second,
	}
}

type Client struct {
	token      types.GitHubToken
	baseURL    string
	httpClient *http.Client
	cache      interfaces.CacheRepository
	ttl        TTL
	timeout    time.Duration
	maxRetries int
	retryWait  time.Duration

	gh    *github.Client
	group singleflight.Group
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithToken sets the bearer credential. Requests are unauthenticated without it.
func WithToken(token types.GitHubToken) Option {
	return func(x *Client) {
		x.token = token
	}
}

// WithBaseURL points the client to another API endpoint, e.g. GitHub Enterprise
// or a test server.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

// WithCache enables response caching. Without it every call goes upstream.
func WithCache(cache interfaces.CacheRepository) Option {
	return func(x *Client) {
		x.cache = cache
	}
}

func WithTTL(ttl TTL) Option {
	return func(x *Client) {
		x.ttl = ttl
	}
}

// WithTimeout sets the deadline of a single upstream attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(x *Client) {
		x.timeout = timeout
	}
}

// WithMaxRetries sets how many times a ServerError is retried.
func WithMaxRetries(n int) Option {
	return func(x *Client) {
		x.maxRetries = n
	}
}

func WithRetryWait(wait time.Duration) Option {
	return func(x *Client) {
		x.retryWait = wait
	}
}

func New(options ...Option) (*Client, error) {
	x := &Client{
		httpClient: &http.Client{},
		ttl:        DefaultTTL(),
		timeout:    DefaultTimeout,
		maxRetries: DefaultMaxRetries,
		retryWait:  defaultRetryWait,
	}
	for _, opt := range options {
		opt(x)
	}

	if x.timeout <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "timeout must be positive", goerr.V("timeout", x.timeout))
	}
	if x.maxRetries < 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "max retries must not be negative", goerr.V("maxRetries", x.maxRetries))
	}

	httpClient := *x.httpClient
	if x.token != "" {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		httpClient.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(x.token)}),
			Base:   base,
		}
	}

	x.gh = github.NewClient(&httpClient)
	if x.baseURL != "" {
		u, err := url.Parse(x.baseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub base URL", goerr.V("url", x.baseURL))
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		x.gh.BaseURL = u
	}

	return x, nil
}
