package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/folio-dev/folio/pkg/domain/model"
)

func TestPrimaryLanguage(t *testing.T) {
	t.Run("largest byte count wins", func(t *testing.T) {
		langs := model.LanguageBreakdown{{"Go", 500}, {"TypeScript", 1500}}
		primary := langs.PrimaryLanguage()
		gt.True(t, primary != nil)
		gt.V(t, *primary).Equal("TypeScript")
	})

	t.Run("empty breakdown has no primary language", func(t *testing.T) {
		gt.True(t, model.LanguageBreakdown{}.PrimaryLanguage() == nil)
	})

	t.Run("zero bytes has no primary language", func(t *testing.T) {
		gt.True(t, model.LanguageBreakdown{{"Go", 0}}.PrimaryLanguage() == nil)
	})

	t.Run("ties resolve to the language listed first", func(t *testing.T) {
		langs := model.LanguageBreakdown{{"Rust", 100}, {"Go", 100}, {"C", 10}}
		gt.V(t, *langs.PrimaryLanguage()).Equal("Rust")

		var decoded model.LanguageBreakdown
		gt.NoError(t, json.Unmarshal([]byte(`{"Zig": 7, "Ada": 7}`), &decoded))
		gt.V(t, *decoded.PrimaryLanguage()).Equal("Zig")
	})
}

func TestLanguageBreakdownValidate(t *testing.T) {
	gt.NoError(t, model.LanguageBreakdown{{"Go", 1}}.Validate())
	gt.Error(t, model.LanguageBreakdown{{"Go", -1}}.Validate())
}

func TestLanguageBreakdownMerge(t *testing.T) {
	merged := model.LanguageBreakdown{}
	merged.Merge(model.LanguageBreakdown{{"Go", 10}, {"Shell", 1}})
	merged.Merge(model.LanguageBreakdown{{"Go", 5}})
	merged.Merge(model.LanguageBreakdown{{"C", 2}})
	gt.V(t, merged).Equal(model.LanguageBreakdown{{"Go", 15}, {"Shell", 1}, {"C", 2}})
	gt.V(t, merged.Total()).Equal(int64(18))
}

func TestLanguageBreakdownJSON(t *testing.T) {
	t.Run("object keys keep their order", func(t *testing.T) {
		var langs model.LanguageBreakdown
		gt.NoError(t, json.Unmarshal([]byte(`{"TypeScript": 30, "Go": 50, "Shell": 2}`), &langs))
		gt.V(t, langs).Equal(model.LanguageBreakdown{{"TypeScript", 30}, {"Go", 50}, {"Shell", 2}})

		raw := gt.R1(json.Marshal(langs)).NoError(t)
		gt.V(t, string(raw)).Equal(`{"TypeScript":30,"Go":50,"Shell":2}`)
	})

	t.Run("empty object and empty breakdown", func(t *testing.T) {
		var langs model.LanguageBreakdown
		gt.NoError(t, json.Unmarshal([]byte(`{}`), &langs))
		gt.True(t, langs != nil)
		gt.A(t, langs).Length(0)

		raw := gt.R1(json.Marshal(model.LanguageBreakdown{})).NoError(t)
		gt.V(t, string(raw)).Equal(`{}`)
	})

	t.Run("repeated key keeps the last value in its first position", func(t *testing.T) {
		var langs model.LanguageBreakdown
		gt.NoError(t, json.Unmarshal([]byte(`{"Go": 1, "C": 2, "Go": 3}`), &langs))
		gt.V(t, langs).Equal(model.LanguageBreakdown{{"Go", 3}, {"C", 2}})
	})

	t.Run("non-object is a type error", func(t *testing.T) {
		var langs model.LanguageBreakdown
		err := json.Unmarshal([]byte(`["Go"]`), &langs)
		var typeErr *json.UnmarshalTypeError
		gt.True(t, errors.As(err, &typeErr))
	})

	t.Run("non-numeric count is a type error", func(t *testing.T) {
		var langs model.LanguageBreakdown
		err := json.Unmarshal([]byte(`{"Go": "many"}`), &langs)
		var typeErr *json.UnmarshalTypeError
		gt.True(t, errors.As(err, &typeErr))
	})
}
