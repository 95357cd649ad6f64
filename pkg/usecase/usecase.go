package usecase

import (
	"time"

	"github.com/folio-dev/folio/pkg/domain/interfaces"
	"github.com/folio-dev/folio/pkg/domain/model"
	"github.com/folio-dev/folio/pkg/infra"
)

const (
	// Upper bound of a single joined task. It is larger than one upstream
	// attempt with its retry so the client's own timeout normally fires first.
	DefaultTaskTimeout = 25 * time.Second
)

type UseCase struct {
	clients     *infra.Clients
	account     string
	catalog     []*model.ProjectEntry
	taskTimeout time.Duration
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithAccount sets the GitHub account whose repositories are aggregated.
func WithAccount(account string) Option {
	return func(x *UseCase) {
		x.account = account
	}
}

// WithCatalog sets the static project catalog used as fallback.
func WithCatalog(entries []*model.ProjectEntry) Option {
	return func(x *UseCase) {
		x.catalog = model.CloneEntries(entries)
		model.SortByPriority(x.catalog)
	}
}

// WithTaskTimeout bounds every task of a concurrent fan-out.
func WithTaskTimeout(d time.Duration) Option {
	return func(x *UseCase) {
		x.taskTimeout = d
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	x := &UseCase{
		clients:     clients,
		catalog:     []*model.ProjectEntry{},
		taskTimeout: DefaultTaskTimeout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *UseCase) Account() string {
	return x.account
}
