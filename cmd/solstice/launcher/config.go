package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "gopkg.in/urfave/cli.v1"
)

// Config aggregates every subsystem's configuration the launcher needs.
type Config struct {
	Node    NodeConfig
	Chain   ChainConfig
	Logging LoggingConfig
}

// NodeConfig holds the local node instance settings.
type NodeConfig struct {
	DataDir string
	Name    string
}

// ChainConfig selects the deployment and the epoch the launcher synchronizes
// the state up to.
type ChainConfig struct {
	// Network is the canonical deployment name (main|test|devnet|dev).
	Network string

	// TargetEpoch is the epoch the state is synchronized to after genesis.
	TargetEpoch uint64

	// Replay makes the launcher step through every epoch up to TargetEpoch
	// as live transitions; otherwise it jumps there with restore semantics.
	Replay bool

	// Validators is the size of the generated development validator set.
	Validators int
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Verbosity int
	Format    string
	Color     bool
	SentryDSN string
}

func defaultConfig() Config {
	return Config{
		Node: NodeConfig{
			DataDir: filepath.Join(GuessHomeDir(), ".solstice"),
			Name:    "solstice",
		},
		Chain: ChainConfig{
			Network:    "dev",
			Validators: 3,
		},
		Logging: LoggingConfig{
			Verbosity: 3,
			Format:    "text",
		},
	}
}

// MakeAllConfigs merges defaults and CLI flag overrides into a single config
// struct.
func MakeAllConfigs(ctx *cli.Context) Config {
	cfg := defaultConfig()
	applyCLIOverrides(ctx, &cfg)
	return cfg
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet("datadir") {
		cfg.Node.DataDir = resolvePath(ctx.String("datadir"))
	}
	if ctx.IsSet("identity") {
		cfg.Node.Name = ctx.String("identity")
	}

	if ctx.IsSet("network") {
		cfg.Chain.Network = ctx.String("network")
	}
	if ctx.IsSet("epoch.target") {
		cfg.Chain.TargetEpoch = ctx.Uint64("epoch.target")
	}
	if ctx.IsSet("epoch.replay") {
		cfg.Chain.Replay = ctx.Bool("epoch.replay")
	}
	if ctx.IsSet("genesis.validators") {
		cfg.Chain.Validators = ctx.Int("genesis.validators")
	}

	if ctx.IsSet("log.format") {
		cfg.Logging.Format = ctx.String("log.format")
	}
	if ctx.IsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.Int("log.verbosity")
	}
	if ctx.IsSet("log.color") {
		cfg.Logging.Color = ctx.Bool("log.color")
	}
	if ctx.IsSet("log.sentry.dsn") {
		cfg.Logging.SentryDSN = ctx.String("log.sentry.dsn")
	}
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create datadir %s: %w", dir, err)
	}
	return nil
}

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
