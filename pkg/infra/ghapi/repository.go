package ghapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/go-github/v53/github"

	"github.com/folio-dev/folio/pkg/domain/model"
	"github.com/folio-dev/folio/pkg/utils/logging"
)

// ListRepositories returns the first page of repositories owned by account,
// most recently updated first.
func (x *Client) ListRepositories(ctx context.Context, account string) ([]*model.Repository, error) {
	opt := &github.RepositoryListOptions{
		Type:        "owner",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: repositoryPageSize},
	}
	query := url.Values{
		"type":      {opt.Type},
		"sort":      {opt.Sort},
		"direction": {opt.Direction},
		"per_page":  {strconv.Itoa(repositoryPageSize)},
	}

	key := cacheKey(account, "users/repos", query)
	return cached(ctx, x, key, x.ttl.Repositories, func(ctx context.Context) ([]*model.Repository, error) {
		// https://docs.github.com/en/rest/repos/repos#list-repositories-for-a-user
		repos, err := request(ctx, x, func(ctx context.Context) ([]*github.Repository, *github.Response, error) {
			return x.gh.Repositories.List(ctx, account, opt)
		})
		if err != nil {
			return nil, err
		}

		resp := make([]*model.Repository, 0, len(repos))
		for _, r := range repos {
			repo := toRepository(r)
			if err := repo.Validate(); err != nil {
				return nil, invalidShape(err)
			}
			resp = append(resp, repo)
		}

		logging.From(ctx).Debug("listed repositories",
			slog.String("account", account),
			slog.Int("count", len(resp)),
		)
		return resp, nil
	})
}

func (x *Client) GetRepository(ctx context.Context, owner, name string) (*model.Repository, error) {
	key := cacheKey(owner, "repos/"+name, nil)
	return cached(ctx, x, key, x.ttl.Detail, func(ctx context.Context) (*model.Repository, error) {
		// https://docs.github.com/en/rest/repos/repos#get-a-repository
		r, err := request(ctx, x, func(ctx context.Context) (*github.Repository, *github.Response, error) {
			return x.gh.Repositories.Get(ctx, owner, name)
		})
		if err != nil {
			return nil, err
		}

		repo := toRepository(r)
		if err := repo.Validate(); err != nil {
			return nil, invalidShape(err)
		}
		return repo, nil
	})
}

func (x *Client) ListLanguages(ctx context.Context, owner, name string) (model.LanguageBreakdown, error) {
	key := cacheKey(owner, "repos/"+name+"/languages", nil)
	return cached(ctx, x, key, x.ttl.Detail, func(ctx context.Context) (model.LanguageBreakdown, error) {
		// https://docs.github.com/en/rest/repos/repos#list-repository-languages
		// Decoded without go-github's map type so that the reported order survives.
		resp, err := request(ctx, x, func(ctx context.Context) (model.LanguageBreakdown, *github.Response, error) {
			req, err := x.gh.NewRequest(http.MethodGet, fmt.Sprintf("repos/%v/%v/languages", owner, name), nil)
			if err != nil {
				return nil, nil, invalidShape(err)
			}
			var langs model.LanguageBreakdown
			r, err := x.gh.Do(ctx, req, &langs)
			return langs, r, err
		})
		if err != nil {
			return nil, err
		}

		if resp == nil {
			resp = model.LanguageBreakdown{}
		}
		if err := resp.Validate(); err != nil {
			return nil, invalidShape(err)
		}
		return resp, nil
	})
}

// ListCommits returns at most limit commits of the default branch ordered by
// author date, newest first.
func (x *Client) ListCommits(ctx context.Context, owner, name string, limit int) ([]*model.Commit, error) {
	if limit <= 0 {
		return []*model.Commit{}, nil
	}
	if limit > repositoryPageSize {
		limit = repositoryPageSize
	}

	query := url.Values{"per_page": {strconv.Itoa(limit)}}
	key := cacheKey(owner, "repos/"+name+"/commits", query)
	return cached(ctx, x, key, x.ttl.Commits, func(ctx context.Context) ([]*model.Commit, error) {
		opt := &github.CommitsListOptions{
			ListOptions: github.ListOptions{PerPage: limit},
		}

		// https://docs.github.com/en/rest/commits/commits#list-commits
		commits, err := request(ctx, x, func(ctx context.Context) ([]*github.RepositoryCommit, *github.Response, error) {
			return x.gh.Repositories.ListCommits(ctx, owner, name, opt)
		})
		if err != nil {
			return nil, err
		}

		resp := make([]*model.Commit, 0, len(commits))
		for _, c := range commits {
			commit := toCommit(c)
			if err := commit.Validate(); err != nil {
				return nil, invalidShape(err)
			}
			resp = append(resp, commit)
		}

		model.SortCommitsByAuthorDate(resp)
		if len(resp) > limit {
			resp = resp[:limit]
		}
		return resp, nil
	})
}
