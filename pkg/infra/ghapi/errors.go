package ghapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/go-github/v53/github"

	"github.com/folio-dev/folio/pkg/domain/types"
)

// normalize converts any failure of a go-github call into *types.UpstreamError.
func normalize(err error, resp *github.Response, now time.Time) *types.UpstreamError {
	var upErr *types.UpstreamError
	if errors.As(err, &upErr) {
		return upErr
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		e := types.NewUpstreamError(types.UpstreamRateLimited, statusOf(rateErr.Response), rateErr.Message, err)
		if !rateErr.Rate.Reset.IsZero() {
			reset := rateErr.Rate.Reset.Time
			e.ResetAt = &reset
		} else {
			e.ResetAt = resetFromHeader(rateErr.Response, now)
		}
		return e
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		e := types.NewUpstreamError(types.UpstreamRateLimited, statusOf(abuseErr.Response), abuseErr.Message, err)
		if abuseErr.RetryAfter != nil {
			reset := now.Add(*abuseErr.RetryAfter)
			e.ResetAt = &reset
		}
		return e
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) {
		status := statusOf(errResp.Response)
		switch {
		case status == http.StatusNotFound:
			return types.NewUpstreamError(types.UpstreamNotFound, status, errResp.Message, err)
		case status == http.StatusTooManyRequests:
			e := types.NewUpstreamError(types.UpstreamRateLimited, status, errResp.Message, err)
			e.ResetAt = resetFromHeader(errResp.Response, now)
			return e
		case status >= 500:
			return types.NewUpstreamError(types.UpstreamServerError, status, errResp.Message, err)
		default:
			return types.NewUpstreamError(types.UpstreamClientError, status, errResp.Message, err)
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || (isSuccess(resp) && isTruncated(err)) {
		return types.NewUpstreamError(types.UpstreamClientError, statusOf(responseOf(resp)), "malformed response body", err)
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return types.NewUpstreamError(types.UpstreamNetwork, 0, err.Error(), err)
	}

	if r := responseOf(resp); r != nil && r.StatusCode >= 500 {
		return types.NewUpstreamError(types.UpstreamServerError, r.StatusCode, err.Error(), err)
	}
	return types.NewUpstreamError(types.UpstreamNetwork, 0, err.Error(), err)
}

func isSuccess(resp *github.Response) bool {
	r := responseOf(resp)
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// isTruncated reports a body that ended before the JSON value was complete.
func isTruncated(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}

func responseOf(resp *github.Response) *http.Response {
	if resp == nil {
		return nil
	}
	return resp.Response
}

func statusOf(r *http.Response) int {
	if r == nil {
		return 0
	}
	return r.StatusCode
}

// resetFromHeader reads the reset time from X-RateLimit-Reset (unix seconds)
// or Retry-After (seconds).
func resetFromHeader(r *http.Response, now time.Time) *time.Time {
	if r == nil {
		return nil
	}
	if v := r.Header.Get("X-RateLimit-Reset"); v != "" {
		if sec, err := strconv.ParseInt(v, 10, 64); err == nil {
			t := time.Unix(sec, 0)
			return &t
		}
	}
	if v := r.Header.Get("Retry-After"); v != "" {
		if sec, err := strconv.ParseInt(v, 10, 64); err == nil {
			t := now.Add(time.Duration(sec) * time.Second)
			return &t
		}
	}
	return nil
}

func invalidShape(err error) *types.UpstreamError {
	return types.NewUpstreamError(types.UpstreamClientError, 0, "unexpected response shape: "+err.Error(), err)
}
