package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/folio-dev/folio/pkg/domain/types"
)

// Repository mirrors the GitHub repository resource. It is read-only and is
// refreshed wholesale when its cache entry expires.
type Repository struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	FullName        string     `json:"full_name"`
	Owner           string     `json:"owner"`
	Description     *string    `json:"description"`
	Language        *string    `json:"language"`
	StargazersCount int        `json:"stargazers_count"`
	ForksCount      int        `json:"forks_count"`
	WatchersCount   int        `json:"watchers_count"`
	OpenIssuesCount int        `json:"open_issues_count"`
	Size            int        `json:"size"`
	DefaultBranch   string     `json:"default_branch"`
	Topics          []string   `json:"topics"`
	HTMLURL         string     `json:"html_url"`
	Homepage        string     `json:"homepage,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	PushedAt        *time.Time `json:"pushed_at,omitempty"`
	Archived        bool       `json:"archived"`
	Disabled        bool       `json:"disabled"`
	Fork            bool       `json:"fork"`
}

func (x *Repository) Validate() error {
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name is empty", goerr.V("id", x.ID))
	}
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository owner is empty", goerr.V("name", x.Name))
	}
	if x.StargazersCount < 0 || x.ForksCount < 0 {
		return goerr.Wrap(types.ErrValidationFailed, "negative repository counter",
			goerr.V("name", x.Name),
			goerr.V("stars", x.StargazersCount),
			goerr.V("forks", x.ForksCount),
		)
	}
	return nil
}

// Visible reports whether the repository may appear in any aggregate view.
func (x *Repository) Visible() bool {
	return !x.Archived && !x.Disabled
}
