package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
)

type UpstreamErrorKind string

const (
	UpstreamRateLimited UpstreamErrorKind = "rate_limited"
	UpstreamNotFound    UpstreamErrorKind = "not_found"
	UpstreamServerError UpstreamErrorKind = "server_error"
	UpstreamClientError UpstreamErrorKind = "client_error"
	UpstreamNetwork     UpstreamErrorKind = "network_error"
)

// UpstreamError is the normalized failure of a call to the GitHub API.
// ResetAt is set only for UpstreamRateLimited when the provider sent it.
type UpstreamError struct {
	Kind    UpstreamErrorKind
	Status  int
	Message string
	ResetAt *time.Time
	cause   error
}

func NewUpstreamError(kind UpstreamErrorKind, status int, message string, cause error) *UpstreamError {
	return &UpstreamError{
		Kind:    kind,
		Status:  status,
		Message: message,
		cause:   cause,
	}
}

func (x *UpstreamError) Error() string {
	msg := string(x.Kind)
	if x.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", x.Status)
	}
	if x.Message != "" {
		msg += ": " + x.Message
	}
	return msg
}

func (x *UpstreamError) Unwrap() error {
	return x.cause
}

// UpstreamKind extracts the kind of an UpstreamError from err. The second
// return value is false when err does not wrap one.
func UpstreamKind(err error) (UpstreamErrorKind, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Kind, true
	}
	return "", false
}

// StatusOf maps an upstream failure to the lookup status reported to callers.
func StatusOf(err error) LookupStatus {
	if err == nil {
		return LookupOK
	}
	kind, ok := UpstreamKind(err)
	if !ok {
		return LookupFailed
	}
	switch kind {
	case UpstreamNotFound:
		return LookupNotFound
	case UpstreamRateLimited:
		return LookupRateLimited
	case UpstreamNetwork:
		return LookupUnavailable
	default:
		return LookupFailed
	}
}
