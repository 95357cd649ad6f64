package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/folio-dev/folio/pkg/domain/model"
	"github.com/folio-dev/folio/pkg/domain/types"
)

func ptr[T any](v T) *T { return &v }

func TestSortByPriority(t *testing.T) {
	entries := []*model.ProjectEntry{
		{ID: "none-1"},
		{ID: "p3", Priority: ptr(3)},
		{ID: "p1", Priority: ptr(1)},
		{ID: "none-2"},
		{ID: "p1-b", Priority: ptr(1)},
	}
	model.SortByPriority(entries)

	var ids []string
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	gt.V(t, ids).Equal([]string{"p1", "p1-b", "p3", "none-1", "none-2"})
}

func TestProjectEntryRepositoryName(t *testing.T) {
	testCases := map[string]struct {
		url  *string
		name string
		ok   bool
	}{
		"plain":          {url: ptr("https://github.com/octo/folio"), name: "folio", ok: true},
		"git suffix":     {url: ptr("https://github.com/octo/folio.git"), name: "folio", ok: true},
		"trailing path":  {url: ptr("https://github.com/octo/folio/tree/main"), name: "folio", ok: true},
		"owner only":     {url: ptr("https://github.com/octo"), ok: false},
		"no url":         {url: nil, ok: false},
		"empty url":      {url: ptr(""), ok: false},
		"trailing slash": {url: ptr("https://github.com/octo/folio/"), name: "folio", ok: true},
	}

	for title, tc := range testCases {
		t.Run(title, func(t *testing.T) {
			entry := &model.ProjectEntry{GitHubURL: tc.url}
			name, ok := entry.RepositoryName()
			gt.V(t, ok).Equal(tc.ok)
			gt.V(t, name).Equal(tc.name)
		})
	}
}

func TestProjectEntryClone(t *testing.T) {
	orig := &model.ProjectEntry{
		ID:           "a",
		Technologies: []string{"Go"},
		Priority:     ptr(1),
	}
	c := orig.Clone()
	c.Technologies[0] = "Rust"
	*c.Priority = 9

	gt.V(t, orig.Technologies[0]).Equal("Go")
	gt.V(t, *orig.Priority).Equal(1)
}

func TestProjectQueryValidate(t *testing.T) {
	t.Run("zero query is valid", func(t *testing.T) {
		q := &model.ProjectQuery{}
		gt.NoError(t, q.Validate())
		gt.V(t, q.CatalogType()).Equal(types.CatalogFeatured)
		gt.V(t, q.SortOrder()).Equal(types.OrderDesc)
	})

	t.Run("name sorts ascending by default", func(t *testing.T) {
		q := &model.ProjectQuery{SortBy: types.SortByName}
		gt.V(t, q.SortOrder()).Equal(types.OrderAsc)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		gt.Error(t, (&model.ProjectQuery{Type: "popular"}).Validate())
		gt.Error(t, (&model.ProjectQuery{SortBy: "size"}).Validate())
		gt.Error(t, (&model.ProjectQuery{Order: "up"}).Validate())
		gt.Error(t, (&model.ProjectQuery{Limit: 101}).Validate())
		gt.Error(t, (&model.ProjectQuery{MinStars: -1}).Validate())
	})
}

func TestProjectQueryNormalize(t *testing.T) {
	t.Run("valid query is left alone", func(t *testing.T) {
		q := &model.ProjectQuery{Type: types.CatalogRecent, Limit: 6, SortBy: types.SortByStars, Order: types.OrderAsc}
		gt.A(t, q.Normalize()).Length(0)
		gt.V(t, q.Type).Equal(types.CatalogRecent)
		gt.V(t, q.Limit).Equal(6)
	})

	t.Run("out-of-range values fall back to defaults", func(t *testing.T) {
		q := &model.ProjectQuery{
			Type:       "popular",
			SortBy:     "size",
			Order:      "up",
			Limit:      1000,
			MinStars:   -1,
			MinForks:   -2,
			MaxAgeDays: -3,
		}
		fixed := q.Normalize()
		gt.V(t, fixed).Equal([]string{"type", "sortBy", "order", "limit", "minStars", "minForks", "maxAgeDays"})
		gt.NoError(t, q.Validate())

		gt.V(t, q.Type).Equal(types.CatalogFeatured)
		gt.V(t, q.SortBy).Equal(types.SortKey(""))
		gt.V(t, q.Order).Equal(types.SortOrder(""))
		gt.V(t, q.Limit).Equal(model.MaxProjectLimit)
		gt.V(t, q.MinStars).Equal(0)
		gt.V(t, q.MinForks).Equal(0)
		gt.V(t, q.MaxAgeDays).Equal(0)
	})

	t.Run("negative limit means no limit", func(t *testing.T) {
		q := &model.ProjectQuery{Limit: -5}
		gt.V(t, q.Normalize()).Equal([]string{"limit"})
		gt.V(t, q.Limit).Equal(0)
	})
}
