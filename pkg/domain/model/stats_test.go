package model_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/folio-dev/folio/pkg/domain/model"
)

func TestRankLanguages(t *testing.T) {
	t.Run("percentages are bytes over total", func(t *testing.T) {
		langs := model.LanguageBreakdown{{"Go", 600}, {"TypeScript", 300}, {"Shell", 100}}
		shares := model.RankLanguages(langs, 10)
		gt.A(t, shares).Length(3)
		gt.V(t, shares[0].Name).Equal("Go")
		gt.V(t, shares[1].Name).Equal("TypeScript")
		gt.V(t, shares[2].Name).Equal("Shell")

		for _, s := range shares {
			expected := float64(s.Bytes) / 1000 * 100
			gt.True(t, math.Abs(s.Percentage-expected) < 1e-9)
			gt.True(t, s.Percentage >= 0 && s.Percentage <= 100)
		}
	})

	t.Run("truncated to limit", func(t *testing.T) {
		langs := model.LanguageBreakdown{}
		for i, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"} {
			langs = append(langs, model.LanguageBytes{Name: name, Bytes: int64(i + 1)})
		}
		shares := model.RankLanguages(langs, 10)
		gt.A(t, shares).Length(10)
		gt.V(t, shares[0].Name).Equal("L")
	})

	t.Run("zero total yields zero percentages", func(t *testing.T) {
		shares := model.RankLanguages(model.LanguageBreakdown{{"Go", 0}, {"C", 0}}, 10)
		gt.A(t, shares).Length(2)
		for _, s := range shares {
			gt.V(t, s.Percentage).Equal(0.0)
		}
	})

	t.Run("equal bytes ordered by name", func(t *testing.T) {
		shares := model.RankLanguages(model.LanguageBreakdown{{"Zig", 5}, {"Ada", 5}}, 10)
		gt.V(t, shares[0].Name).Equal("Ada")
		gt.V(t, shares[1].Name).Equal("Zig")
	})
}

func TestNewAccountStats(t *testing.T) {
	stats := model.NewAccountStats("octo", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	raw := gt.R1(json.Marshal(stats)).NoError(t)

	var decoded map[string]any
	gt.NoError(t, json.Unmarshal(raw, &decoded))
	gt.V(t, decoded["totalRepositories"]).Equal(float64(0))
	gt.V(t, decoded["mostUsedLanguages"]).Equal([]any{})
	gt.V(t, decoded["recentActivity"]).Equal([]any{})
}

func TestNewRepositoryStats(t *testing.T) {
	repo := &model.Repository{
		Name:            "folio",
		FullName:        "octo/folio",
		StargazersCount: 3,
		ForksCount:      1,
		UpdatedAt:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("missing details still produce stats", func(t *testing.T) {
		stats := model.NewRepositoryStats(repo, nil, nil)
		gt.V(t, stats.Name).Equal("folio")
		gt.V(t, stats.Stars).Equal(3)
		gt.True(t, stats.Language == nil)
		gt.A(t, stats.RecentCommits).Length(0)
		gt.V(t, stats.Languages).Equal(model.LanguageBreakdown{})
	})

	t.Run("primary language comes from breakdown", func(t *testing.T) {
		stats := model.NewRepositoryStats(repo, model.LanguageBreakdown{{"Go", 10}}, nil)
		gt.V(t, *stats.Language).Equal("Go")
	})
}
