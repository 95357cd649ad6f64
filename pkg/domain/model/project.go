package model

import (
	"net/url"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/folio-dev/folio/pkg/domain/types"
)

// ProjectEntry is one showcase item. Lower Priority sorts first; entries
// without a priority sort after every entry that has one.
type ProjectEntry struct {
	ID           string              `json:"id" yaml:"id"`
	Title        string              `json:"title" yaml:"title"`
	Description  string              `json:"description" yaml:"description"`
	Technologies []string            `json:"technologies" yaml:"technologies"`
	GitHubURL    *string             `json:"githubUrl,omitempty" yaml:"github_url"`
	LiveURL      *string             `json:"liveUrl,omitempty" yaml:"live_url"`
	Featured     bool                `json:"featured" yaml:"featured"`
	Priority     *int                `json:"priority,omitempty" yaml:"priority"`
	Source       types.ProjectSource `json:"source" yaml:"-"`
	Stats        *RepositoryStats    `json:"stats,omitempty" yaml:"-"`
}

func (x *ProjectEntry) Validate() error {
	if x.ID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "project id is empty", goerr.V("title", x.Title))
	}
	if x.Title == "" {
		return goerr.Wrap(types.ErrValidationFailed, "project title is empty", goerr.V("id", x.ID))
	}
	return nil
}

// Clone returns a copy that shares no mutable state with x except Stats,
// which is treated as immutable.
func (x *ProjectEntry) Clone() *ProjectEntry {
	c := *x
	c.Technologies = append([]string{}, x.Technologies...)
	if x.GitHubURL != nil {
		v := *x.GitHubURL
		c.GitHubURL = &v
	}
	if x.LiveURL != nil {
		v := *x.LiveURL
		c.LiveURL = &v
	}
	if x.Priority != nil {
		v := *x.Priority
		c.Priority = &v
	}
	return &c
}

// RepositoryName resolves the repository name from GitHubURL. It accepts
// "https://github.com/owner/name", an optional ".git" suffix and trailing
// path segments.
func (x *ProjectEntry) RepositoryName() (string, bool) {
	if x.GitHubURL == nil || *x.GitHubURL == "" {
		return "", false
	}

	u, err := url.Parse(*x.GitHubURL)
	if err != nil {
		return "", false
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}
	return strings.TrimSuffix(parts[1], ".git"), true
}

func CloneEntries(entries []*ProjectEntry) []*ProjectEntry {
	resp := make([]*ProjectEntry, len(entries))
	for i, e := range entries {
		resp[i] = e.Clone()
	}
	return resp
}

// SortByPriority orders entries by ascending priority in place.
func SortByPriority(entries []*ProjectEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Priority, entries[j].Priority
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}

type ProjectList struct {
	Type    types.CatalogType   `json:"type"`
	Source  types.ProjectSource `json:"source"`
	Entries []*ProjectEntry     `json:"entries"`
}

const MaxProjectLimit = 100

// ProjectQuery selects and orders catalog entries. Zero values mean "no
// constraint" except Type, which defaults to featured.
type ProjectQuery struct {
	Type            types.CatalogType
	Limit           int
	MinStars        int
	MinForks        int
	MaxAgeDays      int
	Topics          []string
	ExcludeTopics   []string
	ExcludeForks    bool
	IncludeArchived bool
	SortBy          types.SortKey
	Order           types.SortOrder
}

func (x *ProjectQuery) Validate() error {
	if x.Type != "" && !x.Type.Valid() {
		return goerr.Wrap(types.ErrInvalidOption, "invalid project type", goerr.V("type", x.Type))
	}
	if x.SortBy != "" && !x.SortBy.Valid() {
		return goerr.Wrap(types.ErrInvalidOption, "invalid sort key", goerr.V("sortBy", x.SortBy))
	}
	if x.Order != "" && x.Order != types.OrderAsc && x.Order != types.OrderDesc {
		return goerr.Wrap(types.ErrInvalidOption, "invalid sort order", goerr.V("order", x.Order))
	}
	if x.Limit < 0 || x.Limit > MaxProjectLimit {
		return goerr.Wrap(types.ErrInvalidOption, "limit out of range",
			goerr.V("limit", x.Limit),
			goerr.V("max", MaxProjectLimit),
		)
	}
	if x.MinStars < 0 || x.MinForks < 0 || x.MaxAgeDays < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "negative filter value",
			goerr.V("minStars", x.MinStars),
			goerr.V("minForks", x.MinForks),
			goerr.V("maxAgeDays", x.MaxAgeDays),
		)
	}
	return nil
}

// Normalize replaces every out-of-range field with its default, clamping
// Limit to MaxProjectLimit, and returns the names of the fields it changed.
// A normalized query always passes Validate.
func (x *ProjectQuery) Normalize() []string {
	var fixed []string
	if x.Type != "" && !x.Type.Valid() {
		x.Type = types.CatalogFeatured
		fixed = append(fixed, "type")
	}
	if x.SortBy != "" && !x.SortBy.Valid() {
		x.SortBy = ""
		fixed = append(fixed, "sortBy")
	}
	if x.Order != "" && x.Order != types.OrderAsc && x.Order != types.OrderDesc {
		x.Order = ""
		fixed = append(fixed, "order")
	}
	switch {
	case x.Limit < 0:
		x.Limit = 0
		fixed = append(fixed, "limit")
	case x.Limit > MaxProjectLimit:
		x.Limit = MaxProjectLimit
		fixed = append(fixed, "limit")
	}

	floors := []struct {
		name string
		v    *int
	}{
		{"minStars", &x.MinStars},
		{"minForks", &x.MinForks},
		{"maxAgeDays", &x.MaxAgeDays},
	}
	for _, f := range floors {
		if *f.v < 0 {
			*f.v = 0
			fixed = append(fixed, f.name)
		}
	}
	return fixed
}

func (x *ProjectQuery) CatalogType() types.CatalogType {
	if x.Type == "" {
		return types.CatalogFeatured
	}
	return x.Type
}

// SortOrder returns the requested order, defaulting to ascending for name and
// priority and descending otherwise.
func (x *ProjectQuery) SortOrder() types.SortOrder {
	if x.Order != "" {
		return x.Order
	}
	switch x.SortBy {
	case types.SortByName, types.SortByPriority:
		return types.OrderAsc
	}
	return types.OrderDesc
}
