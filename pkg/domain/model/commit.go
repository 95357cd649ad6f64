package model

import (
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/folio-dev/folio/pkg/domain/types"
)

type CommitSignature struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

type Commit struct {
	SHA         string          `json:"sha"`
	Author      CommitSignature `json:"author"`
	Committer   CommitSignature `json:"committer"`
	Message     string          `json:"message"`
	Parents     []string        `json:"parents"`
	HTMLURL     string          `json:"html_url"`
	AuthorLogin *string         `json:"author_login,omitempty"`
}

func (x *Commit) Validate() error {
	if x.SHA == "" {
		return goerr.Wrap(types.ErrValidationFailed, "commit sha is empty")
	}
	return nil
}

// SortCommitsByAuthorDate orders commits newest first. Equal dates keep their
// relative order.
func SortCommitsByAuthorDate[T interface{ AuthorDate() time.Time }](commits []T) {
	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].AuthorDate().After(commits[j].AuthorDate())
	})
}

func (x *Commit) AuthorDate() time.Time {
	return x.Author.Date
}
