package cli

import "github.com/urfave/cli/v3"

// NewAppForTest exposes the root command so tests can capture its output
func NewAppForTest(version string) *cli.Command {
	return newApp(version)
}

// RenderAssessment is exported for testing
var RenderAssessment = renderAssessment
