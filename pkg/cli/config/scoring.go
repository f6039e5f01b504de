package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/constrisk/pkg/service/scorer"
	"github.com/secmon-lab/constrisk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Scoring holds the optional scoring profile file location
type Scoring struct {
	path string
}

// Flags returns CLI flags for scoring configuration
func (s *Scoring) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "scoring-config",
			Usage:       "Path to a TOML scoring profile; built-in weights are used when empty",
			Sources:     cli.EnvVars("CONSTRISK_SCORING_CONFIG"),
			Destination: &s.path,
		},
	}
}

// Path returns the configured profile path
func (s *Scoring) Path() string {
	return s.path
}

// Configure builds a scorer from the configured profile, or from the
// built-in profile when no path is set.
func (s *Scoring) Configure() (*scorer.Scorer, error) {
	if s.path == "" {
		return scorer.Default(), nil
	}

	profile, err := LoadScoringProfile(s.path)
	if err != nil {
		return nil, err
	}
	logging.Default().Info("Using custom scoring profile", "path", s.path)

	return scorer.New(profile), nil
}

// LoadScoringProfile reads a TOML profile. Keys absent from the file keep
// their built-in values; unknown keys are rejected.
func LoadScoringProfile(path string) (scorer.Profile, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return scorer.Profile{}, goerr.Wrap(ErrConfigNotFound, "scoring profile not found", goerr.V(ConfigPathKey, path))
		}
		return scorer.Profile{}, goerr.Wrap(err, "failed to read scoring profile", goerr.V(ConfigPathKey, path))
	}

	return ParseScoringProfile(data, path)
}

// ParseScoringProfile decodes and validates a TOML profile. path is only
// used for error context.
func ParseScoringProfile(data []byte, path string) (scorer.Profile, error) {
	profile := scorer.DefaultProfile()

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&profile); err != nil {
		return scorer.Profile{}, goerr.Wrap(ErrInvalidConfig, "failed to parse scoring profile",
			goerr.V(ConfigPathKey, path), goerr.V("cause", err.Error()))
	}

	if err := profile.Validate(); err != nil {
		return scorer.Profile{}, goerr.Wrap(ErrInvalidConfig, "scoring profile validation failed",
			goerr.V(ConfigPathKey, path), goerr.V("cause", err.Error()))
	}

	return profile, nil
}
