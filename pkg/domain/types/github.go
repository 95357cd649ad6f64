package types

import "log/slog"

type (
	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	RequestID           string
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

// LookupStatus classifies the outcome of a single repository lookup. It is a
// plain value so that callers can choose a response code without receiving
// upstream errors.
type LookupStatus string

const (
	LookupOK          LookupStatus = "ok"
	LookupNotFound    LookupStatus = "not_found"
	LookupRateLimited LookupStatus = "rate_limited"
	LookupUnavailable LookupStatus = "unavailable"
	LookupFailed      LookupStatus = "failed"
)
