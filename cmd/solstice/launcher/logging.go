package launcher

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// setupLogging configures both logging stacks the node carries: logrus for
// launcher-level operational messages, and the go-ethereum logger the ledger
// packages emit through. Both follow the same verbosity knob.
func setupLogging(cfg LoggingConfig) error {
	var format log.Format
	switch cfg.Format {
	case "json":
		format = log.JSONFormat()
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		format = log.TerminalFormat(cfg.Color)
		logrus.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Color})
	default:
		return fmt.Errorf("unknown log format %q", cfg.Format)
	}

	if cfg.Verbosity < 0 || cfg.Verbosity > 5 {
		return fmt.Errorf("log verbosity %d out of range [0..5]", cfg.Verbosity)
	}
	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(cfg.Verbosity), log.StreamHandler(os.Stderr, format)))
	logrus.SetLevel(logrusLevel(cfg.Verbosity))

	if cfg.SentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.SentryDSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return fmt.Errorf("attach sentry hook: %w", err)
		}
		logrus.AddHook(hook)
	}
	return nil
}

// logrusLevel maps the geth-style verbosity scale onto logrus levels.
func logrusLevel(verbosity int) logrus.Level {
	switch verbosity {
	case 0:
		return logrus.FatalLevel
	case 1:
		return logrus.ErrorLevel
	case 2:
		return logrus.WarnLevel
	case 3:
		return logrus.InfoLevel
	case 4:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
