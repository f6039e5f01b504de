package config

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewScoringForTest creates a Scoring config for testing purposes
func NewScoringForTest(path string) *Scoring {
	return &Scoring{path: path}
}

// NewSentryForTest creates a Sentry config for testing purposes
func NewSentryForTest(dsn, env string) *Sentry {
	return &Sentry{dsn: dsn, env: env}
}
