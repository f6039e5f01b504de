package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/constrisk/pkg/cli/config"
	"github.com/secmon-lab/constrisk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var scoringCfg config.Scoring

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a scoring profile file",
		Flags:   scoringCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if scoringCfg.Path() == "" {
				return goerr.New("--scoring-config is required")
			}

			profile, err := config.LoadScoringProfile(scoringCfg.Path())
			if err != nil {
				return goerr.Wrap(err, "scoring profile validation failed")
			}

			logging.Default().Info("Scoring profile validation passed",
				"path", scoringCfg.Path(),
				"medium_threshold", profile.Classification.MediumThreshold,
				"high_threshold", profile.Classification.HighThreshold,
			)
			return nil
		},
	}
}
