package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/folio-dev/folio/pkg/domain/model"
	"github.com/folio-dev/folio/pkg/infra/catalog"
)

type Catalog struct {
	path string
}

func (x *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog-file",
			Usage:       "YAML file of the static project catalog (embedded catalog if empty)",
			Category:    "Catalog",
			Destination: &x.path,
			Sources:     cli.EnvVars("FOLIO_CATALOG_FILE"),
		},
	}
}

func (x *Catalog) Load() ([]*model.ProjectEntry, error) {
	if x.path == "" {
		return catalog.Default()
	}
	return catalog.Load(x.path)
}

func (x Catalog) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Path", x.path),
	)
}
