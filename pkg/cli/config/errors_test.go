package config_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/constrisk/pkg/cli/config"
)

func TestConfigErrors_SentinelIdentification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		sentinelError error
		wantMatch     bool
	}{
		{
			name:          "ErrConfigNotFound can be identified",
			err:           goerr.Wrap(config.ErrConfigNotFound, "failed to load config"),
			sentinelError: config.ErrConfigNotFound,
			wantMatch:     true,
		},
		{
			name:          "ErrInvalidConfig can be identified",
			err:           goerr.Wrap(config.ErrInvalidConfig, "validation failed"),
			sentinelError: config.ErrInvalidConfig,
			wantMatch:     true,
		},
		{
			name:          "Different sentinel errors do not match",
			err:           goerr.Wrap(config.ErrConfigNotFound, "failed to load config"),
			sentinelError: config.ErrInvalidConfig,
			wantMatch:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := errors.Is(tt.err, tt.sentinelError)
			gt.Value(t, matched).Equal(tt.wantMatch)
		})
	}
}

func TestConfigErrors_ContextExtraction(t *testing.T) {
	err := goerr.Wrap(config.ErrConfigNotFound, "config not found",
		goerr.V(config.ConfigPathKey, "/path/to/scoring.toml"))

	var ge *goerr.Error
	gt.Bool(t, errors.As(err, &ge)).True()
	gt.Value(t, ge.Values()[config.ConfigPathKey]).Equal(any("/path/to/scoring.toml"))
}
