package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/constrisk/pkg/cli/config"
	"github.com/secmon-lab/constrisk/pkg/domain/model"
	"github.com/secmon-lab/constrisk/pkg/domain/types"
	"github.com/secmon-lab/constrisk/pkg/usecase"
	"github.com/urfave/cli/v3"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func cmdPredict() *cli.Command {
	defaults := model.DefaultPredictionInput()

	var (
		projectSize  string
		duration     int
		workforce    int
		supplyChain  string
		materialCost string
		complexity   string
		format       string
		scoringCfg   config.Scoring
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "project-size",
			Usage:       "Project size (" + model.ProjectSizeDomain() + ")",
			Value:       defaults.ProjectSize.String(),
			Sources:     cli.EnvVars("CONSTRISK_PROJECT_SIZE"),
			Destination: &projectSize,
		},
		&cli.IntFlag{
			Name:        "duration",
			Usage:       "Project duration in months",
			Value:       defaults.Duration,
			Sources:     cli.EnvVars("CONSTRISK_DURATION"),
			Destination: &duration,
		},
		&cli.IntFlag{
			Name:        "workforce",
			Usage:       "Workforce availability in percent (0..100)",
			Value:       defaults.WorkforceAvailability,
			Sources:     cli.EnvVars("CONSTRISK_WORKFORCE"),
			Destination: &workforce,
		},
		&cli.StringFlag{
			Name:        "supply-chain",
			Usage:       "Supply chain stability (" + model.LevelDomain() + ")",
			Value:       defaults.SupplyChainStability.String(),
			Sources:     cli.EnvVars("CONSTRISK_SUPPLY_CHAIN"),
			Destination: &supplyChain,
		},
		&cli.StringFlag{
			Name:        "material-cost",
			Usage:       "Material cost volatility (" + model.LevelDomain() + ")",
			Value:       defaults.MaterialCostVolatility.String(),
			Sources:     cli.EnvVars("CONSTRISK_MATERIAL_COST"),
			Destination: &materialCost,
		},
		&cli.StringFlag{
			Name:        "complexity",
			Usage:       "Project complexity (" + model.LevelDomain() + ")",
			Value:       defaults.ProjectComplexity.String(),
			Sources:     cli.EnvVars("CONSTRISK_COMPLEXITY"),
			Destination: &complexity,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output format (text, json)",
			Value:       formatText,
			Sources:     cli.EnvVars("CONSTRISK_FORMAT"),
			Destination: &format,
		},
	}
	flags = append(flags, scoringCfg.Flags()...)

	return &cli.Command{
		Name:    "predict",
		Aliases: []string{"p"},
		Usage:   "Predict the risk of a single project",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if format != formatText && format != formatJSON {
				return goerr.New("unsupported output format", goerr.V("format", format))
			}

			s, err := scoringCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure scorer")
			}

			input := model.PredictionInput{
				ProjectSize:            types.ProjectSize(projectSize),
				Duration:               duration,
				WorkforceAvailability:  workforce,
				SupplyChainStability:   types.Level(supplyChain),
				MaterialCostVolatility: types.Level(materialCost),
				ProjectComplexity:      types.Level(complexity),
			}

			uc := usecase.New(usecase.WithScorer(s))
			result, err := uc.Prediction.Predict(ctx, input)
			if err != nil {
				return err
			}

			return renderAssessment(c.Root().Writer, result, format)
		},
	}
}

func renderAssessment(w io.Writer, a *model.Assessment, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(a); err != nil {
			return goerr.Wrap(err, "failed to encode prediction")
		}
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Risk Level:  %s\n", riskColor(a.RiskLevel).Sprint(a.RiskLevel.Label()))
	fmt.Fprintf(&b, "Probability: %d%%\n", a.Probability)
	fmt.Fprintf(&b, "Score:       %.1f\n", a.Score)
	b.WriteString("Recommendations:\n")
	for _, rec := range a.Recommendations {
		fmt.Fprintf(&b, "  - %s\n", rec)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write prediction")
	}
	return nil
}

func riskColor(level types.RiskLevel) *color.Color {
	switch level {
	case types.RiskLevelHigh:
		return color.New(color.FgRed, color.Bold)
	case types.RiskLevelMedium:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgGreen, color.Bold)
	}
}
