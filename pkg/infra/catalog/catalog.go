// Package catalog loads the hand-curated list of showcase projects.
package catalog

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/folio-dev/folio/pkg/domain/model"
	"github.com/folio-dev/folio/pkg/domain/types"
)

//go:embed default.yaml
var defaultCatalog []byte

type file struct {
	Projects []*model.ProjectEntry `yaml:"projects"`
}

// Default returns the catalog embedded in the binary.
func Default() ([]*model.ProjectEntry, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from a YAML file.
func Load(path string) ([]*model.ProjectEntry, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V("path", path))
	}

	entries, err := Parse(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog file", goerr.V("path", path))
	}
	return entries, nil
}

// Parse decodes and validates a YAML catalog. Every entry is marked as static.
func Parse(data []byte) ([]*model.ProjectEntry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "invalid catalog YAML", goerr.V("error", err.Error()))
	}

	seen := make(map[string]struct{}, len(f.Projects))
	for _, p := range f.Projects {
		if p == nil {
			return nil, goerr.Wrap(types.ErrValidationFailed, "empty catalog entry")
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[p.ID]; ok {
			return nil, goerr.Wrap(types.ErrValidationFailed, "duplicated project id", goerr.V("id", p.ID))
		}
		seen[p.ID] = struct{}{}

		p.Source = types.SourceStatic
		if p.Technologies == nil {
			p.Technologies = []string{}
		}
	}

	return f.Projects, nil
}
