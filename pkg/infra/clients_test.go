package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/folio-dev/folio/pkg/domain/mock"
	"github.com/folio-dev/folio/pkg/infra"
)

func TestNew(t *testing.T) {
	t.Run("no GitHub client without option", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.GitHub()).Equal(nil)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})
}
