package server

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/folio-dev/folio/pkg/domain/interfaces"
	"github.com/folio-dev/folio/pkg/domain/model"
	"github.com/folio-dev/folio/pkg/domain/types"
	"github.com/folio-dev/folio/pkg/utils/errutil"
	"github.com/folio-dev/folio/pkg/utils/logging"
)

func handleProjects(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// Bad parameters fall back to their defaults.
		query, ignored := parseProjectQuery(r.URL.Query())
		if fixed := query.Normalize(); len(ignored) > 0 || len(fixed) > 0 {
			logging.From(ctx).Info("project query adjusted",
				slog.Any("ignored", ignored),
				slog.Any("defaulted", fixed),
			)
		}

		list, err := uc.ListProjects(ctx, query)
		if err != nil {
			errutil.HandleError(ctx, "failed to list projects", err)
			writeJSON(w, http.StatusInternalServerError, &errorResponse{
				Error:    errInternal,
				Message:  "Failed to fetch projects",
				Fallback: uc.StaticCatalog(),
			})
			return
		}

		entries := list.Entries
		if entries == nil {
			entries = []*model.ProjectEntry{}
		}

		writeJSON(w, http.StatusOK, &projectsResponse{
			Success:   true,
			Data:      entries,
			Type:      list.Type,
			Count:     len(entries),
			Source:    list.Source,
			Timestamp: logging.CtxTime(ctx).UTC(),
		})
	}
}

// parseProjectQuery converts URL parameters into a query and returns the
// names of parameters that could not be parsed. Range checks are left to
// ProjectQuery.Normalize.
func parseProjectQuery(v url.Values) (*model.ProjectQuery, []string) {
	q := &model.ProjectQuery{
		Type:          types.CatalogType(v.Get("type")),
		Topics:        splitList(v.Get("topics")),
		ExcludeTopics: splitList(v.Get("excludeTopics")),
		SortBy:        types.SortKey(v.Get("sortBy")),
		Order:         types.SortOrder(strings.ToLower(v.Get("order"))),
	}
	var ignored []string

	ints := []struct {
		key string
		dst *int
	}{
		{"limit", &q.Limit},
		{"minStars", &q.MinStars},
		{"minForks", &q.MinForks},
		{"maxAgeDays", &q.MaxAgeDays},
	}
	for _, p := range ints {
		raw := v.Get(p.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			ignored = append(ignored, p.key)
			continue
		}
		*p.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"excludeForks", &q.ExcludeForks},
		{"includeArchived", &q.IncludeArchived},
	}
	for _, p := range bools {
		raw := v.Get(p.key)
		if raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			ignored = append(ignored, p.key)
			continue
		}
		*p.dst = b
	}

	return q, ignored
}

func splitList(raw string) []string {
	var resp []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			resp = append(resp, s)
		}
	}
	return resp
}
