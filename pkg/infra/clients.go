package infra

import (
	"github.com/folio-dev/folio/pkg/domain/interfaces"
)

type Clients struct {
	gitHub interfaces.GitHub
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

// GitHub returns the upstream client. It is nil when the service runs with the
// static catalog only.
func (x *Clients) GitHub() interfaces.GitHub {
	return x.gitHub
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.gitHub = client
	}
}
