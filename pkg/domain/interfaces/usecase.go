package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/folio-dev/folio/pkg/domain/model"
	"github.com/folio-dev/folio/pkg/domain/types"
)

type UseCase interface {
	ListProjects(ctx context.Context, query *model.ProjectQuery) (*model.ProjectList, error)
	StaticCatalog() []*model.ProjectEntry
	GetAccountStats(ctx context.Context) (*model.AccountStats, error)
	GetRepositoryStats(ctx context.Context, owner, name string) (*model.RepositoryStats, types.LookupStatus)
	Account() string
}
