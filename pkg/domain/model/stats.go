package model

import (
	"sort"
	"time"
)

// RepositoryStats is the derived snapshot of one repository.
type RepositoryStats struct {
	Name          string            `json:"name"`
	FullName      string            `json:"fullName"`
	URL           string            `json:"url"`
	Description   *string           `json:"description"`
	Stars         int               `json:"stars"`
	Forks         int               `json:"forks"`
	Issues        int               `json:"issues"`
	Watchers      int               `json:"watchers"`
	Size          int               `json:"size"`
	Language      *string           `json:"language"`
	Languages     LanguageBreakdown `json:"languages"`
	Topics        []string          `json:"topics"`
	LastUpdated   time.Time         `json:"lastUpdated"`
	CreatedAt     time.Time         `json:"createdAt"`
	RecentCommits []*Commit         `json:"recentCommits"`
}

// NewRepositoryStats combines a repository with its language breakdown and
// commits. The primary language is resolved from langs only.
func NewRepositoryStats(repo *Repository, langs LanguageBreakdown, commits []*Commit) *RepositoryStats {
	if langs == nil {
		langs = LanguageBreakdown{}
	}
	if commits == nil {
		commits = []*Commit{}
	}
	topics := repo.Topics
	if topics == nil {
		topics = []string{}
	}

	return &RepositoryStats{
		Name:          repo.Name,
		FullName:      repo.FullName,
		URL:           repo.HTMLURL,
		Description:   repo.Description,
		Stars:         repo.StargazersCount,
		Forks:         repo.ForksCount,
		Issues:        repo.OpenIssuesCount,
		Watchers:      repo.WatchersCount,
		Size:          repo.Size,
		Language:      langs.PrimaryLanguage(),
		Languages:     langs,
		Topics:        topics,
		LastUpdated:   repo.UpdatedAt,
		CreatedAt:     repo.CreatedAt,
		RecentCommits: commits,
	}
}

type LanguageShare struct {
	Name       string  `json:"name"`
	Bytes      int64   `json:"bytes"`
	Percentage float64 `json:"percentage"`
}

// RankLanguages converts a merged breakdown into shares ordered by bytes
// descending, truncated to limit. Percentages are all 0 when the total is 0.
func RankLanguages(langs LanguageBreakdown, limit int) []LanguageShare {
	total := langs.Total()
	shares := make([]LanguageShare, 0, len(langs))
	for _, lang := range langs {
		share := LanguageShare{Name: lang.Name, Bytes: lang.Bytes}
		if total > 0 {
			share.Percentage = float64(share.Bytes) / float64(total) * 100
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Bytes != shares[j].Bytes {
			return shares[i].Bytes > shares[j].Bytes
		}
		return shares[i].Name < shares[j].Name
	})

	if len(shares) > limit {
		shares = shares[:limit]
	}
	return shares
}

// ActivityCommit is a commit in the account-wide activity feed.
type ActivityCommit struct {
	*Commit
	Repository string `json:"repository"`
}

type AccountStats struct {
	Account           string            `json:"account"`
	TotalRepositories int               `json:"totalRepositories"`
	TotalStars        int               `json:"totalStars"`
	TotalForks        int               `json:"totalForks"`
	TotalCommits      int               `json:"totalCommits"`
	MostUsedLanguages []LanguageShare   `json:"mostUsedLanguages"`
	RecentActivity    []*ActivityCommit `json:"recentActivity"`
	Repositories      []*Repository     `json:"repositories"`
	GeneratedAt       time.Time         `json:"generatedAt"`
}

// NewAccountStats returns the zero state of an account: no totals and empty
// (non-nil) collections.
func NewAccountStats(account string, now time.Time) *AccountStats {
	return &AccountStats{
		Account:           account,
		MostUsedLanguages: []LanguageShare{},
		RecentActivity:    []*ActivityCommit{},
		Repositories:      []*Repository{},
		GeneratedAt:       now,
	}
}
