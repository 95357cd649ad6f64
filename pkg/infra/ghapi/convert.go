package ghapi

import (
	"github.com/google/go-github/v53/github"

	"github.com/folio-dev/folio/pkg/domain/model"
)

func toRepository(r *github.Repository) *model.Repository {
	repo := &model.Repository{
		ID:              r.GetID(),
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		Owner:           r.GetOwner().GetLogin(),
		Description:     r.Description,
		Language:        r.Language,
		StargazersCount: r.GetStargazersCount(),
		ForksCount:      r.GetForksCount(),
		WatchersCount:   r.GetWatchersCount(),
		OpenIssuesCount: r.GetOpenIssuesCount(),
		Size:            r.GetSize(),
		DefaultBranch:   r.GetDefaultBranch(),
		Topics:          r.Topics,
		HTMLURL:         r.GetHTMLURL(),
		Homepage:        r.GetHomepage(),
		CreatedAt:       r.GetCreatedAt().Time,
		UpdatedAt:       r.GetUpdatedAt().Time,
		Archived:        r.GetArchived(),
		Disabled:        r.GetDisabled(),
		Fork:            r.GetFork(),
	}
	if r.PushedAt != nil {
		pushed := r.PushedAt.Time
		repo.PushedAt = &pushed
	}
	if repo.Topics == nil {
		repo.Topics = []string{}
	}
	return repo
}

func toCommit(c *github.RepositoryCommit) *model.Commit {
	commit := &model.Commit{
		SHA: c.GetSHA(),
		Author: model.CommitSignature{
			Name:  c.GetCommit().GetAuthor().GetName(),
			Email: c.GetCommit().GetAuthor().GetEmail(),
			Date:  c.GetCommit().GetAuthor().GetDate().Time,
		},
		Committer: model.CommitSignature{
			Name:  c.GetCommit().GetCommitter().GetName(),
			Email: c.GetCommit().GetCommitter().GetEmail(),
			Date:  c.GetCommit().GetCommitter().GetDate().Time,
		},
		Message: c.GetCommit().GetMessage(),
		HTMLURL: c.GetHTMLURL(),
		Parents: make([]string, 0, len(c.Parents)),
	}
	for _, p := range c.Parents {
		commit.Parents = append(commit.Parents, p.GetSHA())
	}
	if login := c.GetAuthor().GetLogin(); login != "" {
		commit.AuthorLogin = &login
	}
	return commit
}
