package launcher

import (
	"testing"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/solstice-labs/go-solstice/flags"
)

// runConfigFromArgs runs MakeAllConfigs against a synthetic CLI context.
func runConfigFromArgs(t *testing.T, args []string) Config {
	t.Helper()

	app := cli.NewApp()
	app.HideHelp = true
	app.HideVersion = true
	app.Flags = append(app.Flags, flags.CommonFlags()...)
	app.Flags = append(app.Flags, flags.NetworkFlags()...)

	var got Config
	app.Action = func(c *cli.Context) error {
		got = MakeAllConfigs(c)
		return nil
	}

	if err := app.Run(append([]string{"solstice"}, args...)); err != nil {
		t.Fatalf("app.Run failed: %v", err)
	}
	return got
}

func TestConfigDefaults(t *testing.T) {
	cfg := runConfigFromArgs(t, nil)

	if cfg.Chain.Network != "dev" {
		t.Errorf("default network = %q, want dev", cfg.Chain.Network)
	}
	if cfg.Chain.TargetEpoch != 0 {
		t.Errorf("default target epoch = %d, want 0", cfg.Chain.TargetEpoch)
	}
	if cfg.Logging.Verbosity != 3 || cfg.Logging.Format != "text" {
		t.Errorf("default logging = %+v", cfg.Logging)
	}
}

func TestConfigCLIOverrides(t *testing.T) {
	cfg := runConfigFromArgs(t, []string{
		"--network", "main",
		"--epoch.target", "74",
		"--epoch.replay",
		"--identity", "node-1",
		"--log.verbosity", "4",
		"--log.format", "json",
	})

	if cfg.Chain.Network != "main" {
		t.Errorf("network = %q, want main", cfg.Chain.Network)
	}
	if cfg.Chain.TargetEpoch != 74 {
		t.Errorf("target epoch = %d, want 74", cfg.Chain.TargetEpoch)
	}
	if !cfg.Chain.Replay {
		t.Error("replay flag not applied")
	}
	if cfg.Node.Name != "node-1" {
		t.Errorf("node name = %q, want node-1", cfg.Node.Name)
	}
	if cfg.Logging.Verbosity != 4 || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}
