package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/folio-dev/folio/pkg/domain/model"
	"github.com/folio-dev/folio/pkg/domain/types"
	"github.com/folio-dev/folio/pkg/utils/logging"
	"github.com/folio-dev/folio/pkg/utils/parallel"
)

const (
	defaultRecentLimit = 6
	maxTopicTechs      = 4
	featuredTopic      = "featured"
)

// Topics that say nothing about the technology of a repository.
var genericTopics = map[string]struct{}{
	"featured":      {},
	"portfolio":     {},
	"showcase":      {},
	"project":       {},
	"projects":      {},
	"personal":      {},
	"demo":          {},
	"hacktoberfest": {},
	"github":        {},
	"website":       {},
}

// StaticCatalog returns a copy of the hand-curated catalog ordered by
// priority. It never touches the network.
func (x *UseCase) StaticCatalog() []*model.ProjectEntry {
	return model.CloneEntries(x.catalog)
}

// GetCatalog returns the static catalog with live statistics attached to
// entries whose repository exists in the account. Each entry is enhanced
// independently; if nothing can be enhanced the static catalog is returned
// unchanged.
func (x *UseCase) GetCatalog(ctx context.Context) []*model.ProjectEntry {
	static := x.StaticCatalog()
	if len(static) == 0 {
		return static
	}

	repos := x.ListRepositories(ctx, x.account)
	if len(repos) == 0 {
		return static
	}

	index := make(map[string]*model.Repository, len(repos))
	for _, repo := range repos {
		index[strings.ToLower(repo.Name)] = repo
	}

	results := parallel.Map(ctx, static, x.taskTimeout, func(ctx context.Context, entry *model.ProjectEntry) (*model.ProjectEntry, error) {
		return x.enhanceEntry(ctx, entry, index)
	})

	enhanced := make([]*model.ProjectEntry, 0, len(static))
	var failed int
	for i, r := range results {
		if r.Err != nil || r.Value == nil {
			failed++
			logging.From(ctx).Warn("failed to enhance project entry",
				slog.String("id", static[i].ID),
				slog.Any("error", r.Err),
			)
			enhanced = append(enhanced, static[i])
			continue
		}
		enhanced = append(enhanced, r.Value)
	}

	if failed == len(static) || len(enhanced) == 0 {
		return x.StaticCatalog()
	}

	model.SortByPriority(enhanced)
	return enhanced
}

func (x *UseCase) enhanceEntry(ctx context.Context, entry *model.ProjectEntry, index map[string]*model.Repository) (*model.ProjectEntry, error) {
	resp := entry.Clone()

	name, ok := entry.RepositoryName()
	if !ok {
		return resp, nil
	}
	repo, ok := index[strings.ToLower(name)]
	if !ok {
		return resp, nil
	}

	stats, status := x.GetRepositoryStats(ctx, ownerOf(repo, x.account), repo.Name)
	if stats == nil {
		return nil, goerr.New("repository stats unavailable",
			goerr.V("repo", repo.Name),
			goerr.V("status", status),
		)
	}

	resp.Stats = stats
	return resp, nil
}

// ListProjects dispatches a query to the catalog mode it names.
func (x *UseCase) ListProjects(ctx context.Context, query *model.ProjectQuery) (*model.ProjectList, error) {
	if query == nil {
		query = &model.ProjectQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list := &model.ProjectList{Type: query.CatalogType()}

	switch list.Type {
	case types.CatalogFeatured:
		var featured []*model.ProjectEntry
		for _, e := range x.GetCatalog(ctx) {
			if e.Featured {
				featured = append(featured, e)
			}
		}
		list.Entries = featured

	case types.CatalogAll:
		list.Entries = x.GetCatalog(ctx)

	case types.CatalogRecent:
		q := *query
		q.SortBy = types.SortByUpdated
		q.Order = types.OrderDesc
		q.ExcludeForks = true
		if q.Limit == 0 {
			q.Limit = defaultRecentLimit
		}
		query = &q
		list.Entries, list.Source = x.dynamicProjects(ctx, query)

	case types.CatalogDynamic:
		list.Entries, list.Source = x.dynamicProjects(ctx, query)
	}

	if list.Source == "" {
		list.Source = sourceOf(list.Entries)
	}
	if query.SortBy != "" {
		sortEntries(list.Entries, query.SortBy, query.SortOrder())
	}
	if query.Limit > 0 && len(list.Entries) > query.Limit {
		list.Entries = list.Entries[:query.Limit]
	}
	if list.Entries == nil {
		list.Entries = []*model.ProjectEntry{}
	}

	return list, nil
}

func sourceOf(entries []*model.ProjectEntry) types.ProjectSource {
	for _, e := range entries {
		if e.Stats != nil {
			return types.SourceGitHub
		}
	}
	return types.SourceStatic
}

// dynamicProjects builds entries from live repositories. Without live data
// it falls back to the static catalog.
func (x *UseCase) dynamicProjects(ctx context.Context, query *model.ProjectQuery) ([]*model.ProjectEntry, types.ProjectSource) {
	repos := x.ListRepositories(ctx, x.account)
	if len(repos) == 0 {
		return x.StaticCatalog(), types.SourceStatic
	}

	ranks := engagementRanks(repos)
	now := logging.CtxTime(ctx)

	entries := make([]*model.ProjectEntry, 0, len(repos))
	for _, repo := range repos {
		if !matchQuery(repo, query, now) {
			continue
		}
		entries = append(entries, toProjectEntry(repo, ranks[repo.Name]))
	}

	model.SortByPriority(entries)
	return entries, types.SourceGitHub
}

func engagementScore(repo *model.Repository) int {
	return repo.StargazersCount*10 + repo.ForksCount*5
}

// engagementRanks assigns 1 to the most engaging repository, 2 to the next
// and so on, so that ascending priority order puts engagement first.
func engagementRanks(repos []*model.Repository) map[string]int {
	ordered := append([]*model.Repository{}, repos...)
	sort.SliceStable(ordered, func(i, j int) bool {
		si, sj := engagementScore(ordered[i]), engagementScore(ordered[j])
		if si != sj {
			return si > sj
		}
		return strings.ToLower(ordered[i].Name) < strings.ToLower(ordered[j].Name)
	})

	ranks := make(map[string]int, len(ordered))
	for i, repo := range ordered {
		ranks[repo.Name] = i + 1
	}
	return ranks
}

func toProjectEntry(repo *model.Repository, rank int) *model.ProjectEntry {
	priority := rank
	entry := &model.ProjectEntry{
		ID:           strings.ToLower(repo.Name),
		Title:        repo.Name,
		Technologies: technologies(repo),
		Featured:     repo.StargazersCount > 0 || hasTopic(repo, featuredTopic),
		Priority:     &priority,
		Source:       types.SourceGitHub,
		Stats:        model.NewRepositoryStats(repo, nil, nil),
	}
	entry.Stats.Language = repo.Language

	if repo.Description != nil {
		entry.Description = *repo.Description
	}
	if repo.HTMLURL != "" {
		u := repo.HTMLURL
		entry.GitHubURL = &u
	}
	if repo.Homepage != "" {
		u := repo.Homepage
		entry.LiveURL = &u
	}

	return entry
}

// technologies lists the primary language followed by up to four topics that
// are not generic.
func technologies(repo *model.Repository) []string {
	techs := []string{}
	seen := map[string]struct{}{}

	if repo.Language != nil && *repo.Language != "" {
		techs = append(techs, *repo.Language)
		seen[strings.ToLower(*repo.Language)] = struct{}{}
	}

	var added int
	for _, topic := range repo.Topics {
		if added >= maxTopicTechs {
			break
		}
		key := strings.ToLower(topic)
		if _, ok := genericTopics[key]; ok {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		techs = append(techs, topic)
		added++
	}

	return techs
}

func hasTopic(repo *model.Repository, topic string) bool {
	for _, t := range repo.Topics {
		if strings.EqualFold(t, topic) {
			return true
		}
	}
	return false
}

// topicContains reports whether any topic of repo contains substr, ignoring case.
func topicContains(repo *model.Repository, substr string) bool {
	substr = strings.ToLower(substr)
	for _, t := range repo.Topics {
		if strings.Contains(strings.ToLower(t), substr) {
			return true
		}
	}
	return false
}

func matchQuery(repo *model.Repository, q *model.ProjectQuery, now time.Time) bool {
	if repo.Archived && !q.IncludeArchived {
		return false
	}
	if repo.Fork && q.ExcludeForks {
		return false
	}
	if repo.StargazersCount < q.MinStars || repo.ForksCount < q.MinForks {
		return false
	}
	if q.MaxAgeDays > 0 && now.Sub(repo.UpdatedAt) > time.Duration(q.MaxAgeDays)*24*time.Hour {
		return false
	}
	for _, required := range q.Topics {
		if !topicContains(repo, required) {
			return false
		}
	}
	for _, excluded := range q.ExcludeTopics {
		if topicContains(repo, excluded) {
			return false
		}
	}
	return true
}

func sortEntries(entries []*model.ProjectEntry, key types.SortKey, order types.SortOrder) {
	if key == types.SortByPriority {
		model.SortByPriority(entries)
		if order == types.OrderDesc {
			reverse(entries)
		}
		return
	}

	less := func(a, b *model.ProjectEntry) bool {
		switch key {
		case types.SortByStars:
			return statsOf(a).Stars < statsOf(b).Stars
		case types.SortByUpdated:
			return statsOf(a).LastUpdated.Before(statsOf(b).LastUpdated)
		case types.SortByCreated:
			return statsOf(a).CreatedAt.Before(statsOf(b).CreatedAt)
		default:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if order == types.OrderDesc {
			return less(entries[j], entries[i])
		}
		return less(entries[i], entries[j])
	})
}

var emptyStats = &model.RepositoryStats{}

func statsOf(e *model.ProjectEntry) *model.RepositoryStats {
	if e.Stats == nil {
		return emptyStats
	}
	return e.Stats
}

func reverse(entries []*model.ProjectEntry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}
