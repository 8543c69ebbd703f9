package logging

import (
	"go.uber.org/zap"
)

var logger = zap.NewNop().Sugar()

// Init configures the package logger. In verbose mode it uses a development
// config at debug level; otherwise a production config that only surfaces
// warnings, so skip diagnostics stay out of normal CLI output.
func Init(verbose bool) error {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l.Sugar()
	return nil
}

// L returns the shared sugared logger. Before Init is called it is a no-op
// logger, so library consumers that never configure logging pay nothing.
func L() *zap.SugaredLogger {
	return logger
}
