package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/folio-dev/folio/pkg/domain/model"
	"github.com/folio-dev/folio/pkg/domain/types"
	"github.com/folio-dev/folio/pkg/utils/logging"
	"github.com/folio-dev/folio/pkg/utils/parallel"
)

const (
	repositoryCommitLimit = 5

	topLanguages         = 10
	activityRepositories = 5
	activityCommitsEach  = 3
	activityFeedSize     = 10
)

// GetRepositoryStats fetches a repository, its languages and its recent
// commits concurrently. It returns nil only when the repository itself cannot
// be resolved; the status tells why. An empty owner means the configured
// account.
func (x *UseCase) GetRepositoryStats(ctx context.Context, owner, name string) (*model.RepositoryStats, types.LookupStatus) {
	if owner == "" {
		owner = x.account
	}

	var (
		repo    *model.Repository
		status  types.LookupStatus
		langs   model.LanguageBreakdown
		commits []*model.Commit
	)

	errs := parallel.Run(ctx, x.taskTimeout,
		func(ctx context.Context) error {
			repo, status = x.lookupRepository(ctx, owner, name)
			return nil
		},
		func(ctx context.Context) error {
			langs = x.GetLanguages(ctx, owner, name)
			return nil
		},
		func(ctx context.Context) error {
			commits = x.GetCommits(ctx, owner, name, repositoryCommitLimit)
			return nil
		},
	)

	// A task that timed out or panicked may still be running, so its result
	// variable must not be read.
	if errs[0] != nil {
		logging.From(ctx).Warn("repository lookup did not complete",
			slog.String("owner", owner),
			slog.String("repo", name),
			slog.Any("error", errs[0]),
		)
		return nil, types.LookupFailed
	}
	if repo == nil {
		return nil, status
	}

	var (
		resolvedLangs   model.LanguageBreakdown
		resolvedCommits []*model.Commit
	)
	if errs[1] == nil {
		resolvedLangs = langs
	}
	if errs[2] == nil {
		resolvedCommits = commits
	}

	return model.NewRepositoryStats(repo, resolvedLangs, resolvedCommits), types.LookupOK
}

// GetAccountStats computes account-wide statistics. Upstream failures fold
// into zero values; an error is returned only when no account is configured.
func (x *UseCase) GetAccountStats(ctx context.Context) (*model.AccountStats, error) {
	if x.account == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub account is not configured")
	}

	ctx = logging.WithAttrs(ctx, slog.String("account", x.account))
	stats := model.NewAccountStats(x.account, logging.CtxTime(ctx))

	repos := x.ListRepositories(ctx, x.account)
	if len(repos) == 0 {
		return stats, nil
	}

	var (
		merged   = model.LanguageBreakdown{}
		activity []*model.ActivityCommit
	)

	recent := repos
	if len(recent) > activityRepositories {
		recent = recent[:activityRepositories]
	}

	// Both fan-outs bound their own tasks, so the outer join needs no deadline.
	parallel.Run(ctx, 0,
		func(ctx context.Context) error {
			results := parallel.Map(ctx, repos, x.taskTimeout, func(ctx context.Context, repo *model.Repository) (model.LanguageBreakdown, error) {
				return x.GetLanguages(ctx, ownerOf(repo, x.account), repo.Name), nil
			})
			for _, r := range results {
				if r.Err == nil {
					merged.Merge(r.Value)
				}
			}
			return nil
		},
		func(ctx context.Context) error {
			results := parallel.Map(ctx, recent, x.taskTimeout, func(ctx context.Context, repo *model.Repository) ([]*model.ActivityCommit, error) {
				commits := x.GetCommits(ctx, ownerOf(repo, x.account), repo.Name, activityCommitsEach)
				resp := make([]*model.ActivityCommit, len(commits))
				for i, c := range commits {
					resp[i] = &model.ActivityCommit{Commit: c, Repository: repo.Name}
				}
				return resp, nil
			})
			for _, r := range results {
				if r.Err == nil {
					activity = append(activity, r.Value...)
				}
			}
			return nil
		},
	)

	stats.Repositories = repos
	stats.TotalRepositories = len(repos)
	for _, repo := range repos {
		stats.TotalStars += repo.StargazersCount
		stats.TotalForks += repo.ForksCount
	}

	stats.MostUsedLanguages = model.RankLanguages(merged, topLanguages)

	stats.TotalCommits = len(activity)
	model.SortCommitsByAuthorDate(activity)
	if len(activity) > activityFeedSize {
		activity = activity[:activityFeedSize]
	}
	if activity != nil {
		stats.RecentActivity = activity
	}

	return stats, nil
}

func ownerOf(repo *model.Repository, fallback string) string {
	if repo.Owner != "" {
		return repo.Owner
	}
	return fallback
}
