package server

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/folio-dev/folio/pkg/domain/interfaces"
	"github.com/folio-dev/folio/pkg/domain/types"
	"github.com/folio-dev/folio/pkg/utils/errutil"
	"github.com/folio-dev/folio/pkg/utils/logging"
)

// GitHub owner and repository names.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,100}$`)

func handleAccountStats(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := uc.GetAccountStats(r.Context())
		if err != nil {
			errutil.HandleError(r.Context(), "failed to get account stats", err)
			writeJSON(w, http.StatusInternalServerError, &errorResponse{
				Error: errStatsFailed,
			})
			return
		}

		writeJSON(w, http.StatusOK, &dataResponse{
			Success: true,
			Data:    stats,
		})
	}
}

func handleRepositoryStats(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		owner, name, ok := parseRepositoryPath(chi.URLParam(r, "*"))
		if !ok {
			writeJSON(w, http.StatusBadRequest, &errorResponse{
				Error:   errInvalidRepo,
				Message: "repository must be given as name or owner/name",
			})
			return
		}

		stats, status := uc.GetRepositoryStats(ctx, owner, name)
		if stats != nil {
			writeJSON(w, http.StatusOK, &dataResponse{
				Success: true,
				Data:    stats,
			})
			return
		}

		logger := logging.From(ctx).With("owner", owner, "repo", name, "status", status)
		switch status {
		case types.LookupNotFound:
			writeJSON(w, http.StatusNotFound, &errorResponse{Error: errRepoNotFound})

		case types.LookupRateLimited:
			logger.Warn("repository lookup rate limited")
			writeJSON(w, http.StatusTooManyRequests, &errorResponse{Error: errRateLimited})

		case types.LookupUnavailable:
			logger.Warn("repository lookup unavailable")
			writeJSON(w, http.StatusServiceUnavailable, &errorResponse{Error: errUnavailable})

		default:
			errutil.HandleError(ctx, "failed to get repository stats",
				goerr.New("repository lookup failed",
					goerr.V("owner", owner),
					goerr.V("repo", name),
					goerr.V("status", status),
				))
			writeJSON(w, http.StatusInternalServerError, &errorResponse{Error: errRepoStatsFailed})
		}
	}
}

// parseRepositoryPath accepts "name" and "owner/name". An empty owner means
// the configured account.
func parseRepositoryPath(path string) (owner, name string, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch len(parts) {
	case 1:
		name = parts[0]
	case 2:
		owner, name = parts[0], parts[1]
		if !namePattern.MatchString(owner) {
			return "", "", false
		}
	default:
		return "", "", false
	}

	if !namePattern.MatchString(name) || name == "." || name == ".." {
		return "", "", false
	}
	return owner, name, true
}
