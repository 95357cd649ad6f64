package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub

import (
	"context"

	"github.com/folio-dev/folio/pkg/domain/model"
)

// GitHub is the upstream client. Every failure it returns wraps a
// *types.UpstreamError.
type GitHub interface {
	ListRepositories(ctx context.Context, account string) ([]*model.Repository, error)
	GetRepository(ctx context.Context, owner, name string) (*model.Repository, error)
	ListLanguages(ctx context.Context, owner, name string) (model.LanguageBreakdown, error)
	ListCommits(ctx context.Context, owner, name string, limit int) ([]*model.Commit, error)
}
