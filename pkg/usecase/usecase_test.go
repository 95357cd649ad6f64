package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/folio-dev/folio/pkg/domain/mock"
	"github.com/folio-dev/folio/pkg/domain/model"
	"github.com/folio-dev/folio/pkg/domain/types"
	"github.com/folio-dev/folio/pkg/infra"
	"github.com/folio-dev/folio/pkg/usecase"
)

const testAccount = "octo"

var baseTime = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func newRepo(name string, stars int, updated time.Time) *model.Repository {
	return &model.Repository{
		ID:              int64(len(name)),
		Name:            name,
		FullName:        testAccount + "/" + name,
		Owner:           testAccount,
		StargazersCount: stars,
		HTMLURL:         "https://github.com/" + testAccount + "/" + name,
		CreatedAt:       updated.Add(-24 * time.Hour),
		UpdatedAt:       updated,
	}
}

func newCommit(sha string, date time.Time) *model.Commit {
	return &model.Commit{
		SHA:     sha,
		Author:  model.CommitSignature{Name: "octo", Date: date},
		Message: "commit " + sha,
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func notFound() error {
	return types.NewUpstreamError(types.UpstreamNotFound, 404, "Not Found", nil)
}

func newUseCase(gh *mock.GitHubMock, options ...usecase.Option) *usecase.UseCase {
	options = append([]usecase.Option{usecase.WithAccount(testAccount)}, options...)
	return usecase.New(infra.New(infra.WithGitHub(gh)), options...)
}

func TestNew(t *testing.T) {
	uc := usecase.New(infra.New(), usecase.WithAccount(testAccount))
	gt.V(t, uc.Account()).Equal(testAccount)
	gt.A(t, uc.StaticCatalog()).Length(0)
}

func TestListRepositories(t *testing.T) {
	ctx := context.Background()

	t.Run("archived and disabled repositories are excluded", func(t *testing.T) {
		archived := newRepo("archived", 1, baseTime)
		archived.Archived = true
		disabled := newRepo("disabled", 1, baseTime)
		disabled.Disabled = true

		gh := &mock.GitHubMock{
			ListRepositoriesFunc: func(ctx context.Context, account string) ([]*model.Repository, error) {
				gt.V(t, account).Equal(testAccount)
				return []*model.Repository{
					newRepo("alive", 1, baseTime),
					archived,
					disabled,
				}, nil
			},
		}

		repos := newUseCase(gh).ListRepositories(ctx, testAccount)
		gt.A(t, repos).Length(1)
		for _, repo := range repos {
			gt.False(t, repo.Archived)
			gt.False(t, repo.Disabled)
		}
	})

	t.Run("ordered by update time, newest first", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ListRepositoriesFunc: func(ctx context.Context, account string) ([]*model.Repository, error) {
				return []*model.Repository{
					newRepo("old", 0, baseTime.Add(-48*time.Hour)),
					newRepo("new", 0, baseTime),
					newRepo("mid", 0, baseTime.Add(-24*time.Hour)),
				}, nil
			},
		}

		repos := newUseCase(gh).ListRepositories(ctx, testAccount)
		gt.A(t, repos).Length(3)
		for i := 0; i+1 < len(repos); i++ {
			gt.False(t, repos[i].UpdatedAt.Before(repos[i+1].UpdatedAt))
		}
		gt.V(t, repos[0].Name).Equal("new")
	})

	t.Run("upstream failure yields empty list", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ListRepositoriesFunc: func(ctx context.Context, account string) ([]*model.Repository, error) {
				return nil, types.NewUpstreamError(types.UpstreamNetwork, 0, "connection refused", nil)
			},
		}

		repos := newUseCase(gh).ListRepositories(ctx, testAccount)
		gt.True(t, repos != nil)
		gt.A(t, repos).Length(0)
	})

	t.Run("no GitHub client", func(t *testing.T) {
		uc := usecase.New(infra.New(), usecase.WithAccount(testAccount))
		gt.A(t, uc.ListRepositories(ctx, testAccount)).Length(0)
	})
}

func TestDetailNotFoundTolerance(t *testing.T) {
	ctx := context.Background()
	gh := &mock.GitHubMock{
		GetRepositoryFunc: func(ctx context.Context, owner, name string) (*model.Repository, error) {
			return nil, notFound()
		},
		ListLanguagesFunc: func(ctx context.Context, owner, name string) (model.LanguageBreakdown, error) {
			return nil, notFound()
		},
		ListCommitsFunc: func(ctx context.Context, owner, name string, limit int) ([]*model.Commit, error) {
			return nil, notFound()
		},
	}
	uc := newUseCase(gh)

	langs := uc.GetLanguages(ctx, testAccount, "ghost")
	gt.True(t, langs != nil)
	gt.V(t, len(langs)).Equal(0)

	commits := uc.GetCommits(ctx, testAccount, "ghost", 5)
	gt.True(t, commits != nil)
	gt.A(t, commits).Length(0)

	gt.True(t, uc.GetRepository(ctx, testAccount, "ghost") == nil)
}

func TestGetCommits(t *testing.T) {
	ctx := context.Background()
	gh := &mock.GitHubMock{
		ListCommitsFunc: func(ctx context.Context, owner, name string, limit int) ([]*model.Commit, error) {
			var commits []*model.Commit
			for i := 0; i < 8; i++ {
				commits = append(commits, newCommit(fmt.Sprintf("sha%d", i), baseTime.Add(time.Duration(i)*time.Hour)))
			}
			return commits, nil
		},
	}

	commits := newUseCase(gh).GetCommits(ctx, testAccount, "repo", 3)
	gt.A(t, commits).Length(3)
	gt.V(t, commits[0].SHA).Equal("sha7")
	gt.V(t, commits[1].SHA).Equal("sha6")
	gt.V(t, commits[2].SHA).Equal("sha5")
}
