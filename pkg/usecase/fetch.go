package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/folio-dev/folio/pkg/domain/model"
	"github.com/folio-dev/folio/pkg/domain/types"
	"github.com/folio-dev/folio/pkg/utils/logging"
)

// logUpstreamFailure logs NotFound at debug level since it is an expected
// outcome, and everything else as a warning.
func logUpstreamFailure(ctx context.Context, msg string, err error, attrs ...any) {
	logger := logging.From(ctx).With(attrs...)
	if kind, _ := types.UpstreamKind(err); kind == types.UpstreamNotFound {
		logger.Debug(msg, slog.Any("error", err))
		return
	}
	logger.Warn(msg, slog.Any("error", err))
}

// ListRepositories returns non-archived, non-disabled repositories of account
// ordered by last update, newest first. It never fails; an upstream error
// yields an empty list.
func (x *UseCase) ListRepositories(ctx context.Context, account string) []*model.Repository {
	gh := x.clients.GitHub()
	if gh == nil {
		return []*model.Repository{}
	}

	repos, err := gh.ListRepositories(ctx, account)
	if err != nil {
		logUpstreamFailure(ctx, "failed to list repositories", err, slog.String("account", account))
		return []*model.Repository{}
	}

	resp := make([]*model.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo == nil || !repo.Visible() {
			continue
		}
		resp = append(resp, repo)
	}

	sort.SliceStable(resp, func(i, j int) bool {
		return resp[i].UpdatedAt.After(resp[j].UpdatedAt)
	})

	return resp
}

// GetRepository returns nil when the repository does not exist or cannot be
// fetched.
func (x *UseCase) GetRepository(ctx context.Context, account, name string) *model.Repository {
	repo, _ := x.lookupRepository(ctx, account, name)
	return repo
}

func (x *UseCase) lookupRepository(ctx context.Context, account, name string) (*model.Repository, types.LookupStatus) {
	gh := x.clients.GitHub()
	if gh == nil {
		return nil, types.LookupUnavailable
	}

	repo, err := gh.GetRepository(ctx, account, name)
	if err != nil {
		logUpstreamFailure(ctx, "failed to get repository", err,
			slog.String("account", account),
			slog.String("repo", name),
		)
		return nil, types.StatusOf(err)
	}
	if repo == nil {
		return nil, types.LookupNotFound
	}

	return repo, types.LookupOK
}

// GetLanguages returns an empty breakdown on any failure.
func (x *UseCase) GetLanguages(ctx context.Context, account, name string) model.LanguageBreakdown {
	gh := x.clients.GitHub()
	if gh == nil {
		return model.LanguageBreakdown{}
	}

	langs, err := gh.ListLanguages(ctx, account, name)
	if err != nil {
		logUpstreamFailure(ctx, "failed to get languages", err,
			slog.String("account", account),
			slog.String("repo", name),
		)
		return model.LanguageBreakdown{}
	}
	if langs == nil {
		return model.LanguageBreakdown{}
	}

	return langs
}

// GetCommits returns at most limit commits, newest first, or an empty list
// on any failure.
func (x *UseCase) GetCommits(ctx context.Context, account, name string, limit int) []*model.Commit {
	gh := x.clients.GitHub()
	if gh == nil || limit <= 0 {
		return []*model.Commit{}
	}

	commits, err := gh.ListCommits(ctx, account, name, limit)
	if err != nil {
		logUpstreamFailure(ctx, "failed to get commits", err,
			slog.String("account", account),
			slog.String("repo", name),
		)
		return []*model.Commit{}
	}

	resp := make([]*model.Commit, 0, len(commits))
	for _, c := range commits {
		if c != nil {
			resp = append(resp, c)
		}
	}
	model.SortCommitsByAuthorDate(resp)
	if len(resp) > limit {
		resp = resp[:limit]
	}

	return resp
}
