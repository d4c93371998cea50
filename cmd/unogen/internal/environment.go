package internal

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/unotools/unogen/internal/config"
	"github.com/unotools/unogen/internal/office"
)

// newLogger builds the CLI logger. Verbose mode lowers the level to
// debug so discovery diagnostics become visible.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

// newEnvironment builds the installation locator from the config file,
// the process environment and the override flags.
func newEnvironment(logger *log.Logger) (*office.Environment, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	env := office.New(
		office.WithLogger(logger),
		office.WithProperties(cfg.Properties()),
	)

	if officeHomeFlag != "" {
		if err := env.SetOfficeHome(officeHomeFlag); err != nil {
			return nil, err
		}
	}
	if sdkHomeFlag != "" {
		if err := env.SetSDKHome(sdkHomeFlag); err != nil {
			return nil, err
		}
	}
	return env, nil
}
