package cli

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func statsCommand(stdout io.Writer) *cli.Command {
	var (
		repo string
		app  appConfig
	)

	return &cli.Command{
		Name:  "stats",
		Usage: "Print account statistics, or statistics of one repository, as JSON",
		Flags: slice.Flatten(
			[]cli.Flag{
				&cli.StringFlag{
					Name:        "repo",
					Usage:       "Repository as name or owner/name",
					Sources:     cli.EnvVars("FOLIO_REPO"),
					Destination: &repo,
				},
			},
			app.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closeCache, err := app.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			var out any
			if repo == "" {
				stats, err := uc.GetAccountStats(ctx)
				if err != nil {
					return err
				}
				out = stats
			} else {
				owner, name := "", repo
				if i := strings.Index(repo, "/"); i >= 0 {
					owner, name = repo[:i], repo[i+1:]
				}

				stats, status := uc.GetRepositoryStats(ctx, owner, name)
				if stats == nil {
					return goerr.New("failed to get repository stats",
						goerr.V("repo", repo),
						goerr.V("status", status),
					)
				}
				out = stats
			}

			enc := json.NewEncoder(stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return goerr.Wrap(err, "failed to write stats")
			}
			return nil
		},
	}
}
