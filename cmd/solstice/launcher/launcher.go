package launcher

import (
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/solstice-labs/go-solstice/flags"
	"github.com/solstice-labs/go-solstice/inter"
	"github.com/solstice-labs/go-solstice/ledgercore"
	"github.com/solstice-labs/go-solstice/solstice"
	"github.com/solstice-labs/go-solstice/solstice/genesis"
)

// maxReplayEpochs bounds --epoch.replay: stepping through more live
// transitions than this is almost certainly a typo for the jump path.
const maxReplayEpochs = 1000000

// initialSupply is the token supply minted at genesis, used for the
// issuance projection in the state dump.
var initialSupply = new(big.Int).Mul(big.NewInt(1000000000), big.NewInt(1e9))

// Launch runs the solstice command with the given arguments.
func Launch(args []string) error {
	app := flags.NewApp()
	app.Flags = append(app.Flags, flags.CommonFlags()...)
	app.Flags = append(app.Flags, flags.NetworkFlags()...)
	app.Action = run
	return app.Run(args)
}

func run(ctx *cli.Context) error {
	cfg := MakeAllConfigs(ctx)
	if err := setupLogging(cfg.Logging); err != nil {
		return err
	}
	if err := ensureDir(cfg.Node.DataDir); err != nil {
		return err
	}

	net, err := solstice.NetworkByName(cfg.Chain.Network)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"node":    cfg.Node.Name,
		"network": net.Name(),
		"chainID": net.ID(),
	}).Info("starting solstice node")

	g := genesis.DefaultConfig(net)
	if net == solstice.Development {
		g.Validators = genesis.FakeValidators(cfg.Chain.Validators)
	}
	state, err := ledgercore.ApplyGenesis(g)
	if err != nil {
		return err
	}

	if err := syncToEpoch(state, net, inter.Epoch(cfg.Chain.TargetEpoch), cfg.Chain.Replay); err != nil {
		return err
	}
	return dumpState(ctx, state, g.Rules)
}

// syncToEpoch brings the state from its current epoch to target. Replay
// steps through every epoch as a live transition; the default path jumps
// straight to the target with the same catch-up semantics a snapshot restore
// uses.
func syncToEpoch(state *ledgercore.LedgerState, net solstice.Network, target inter.Epoch, replay bool) error {
	if target <= state.Epoch() {
		return nil
	}
	callback := solstice.GetEnteredEpochCallback(net)
	if !replay {
		state.SetEpoch(target)
		callback(state, true)
		return nil
	}
	if target-state.Epoch() > maxReplayEpochs {
		return fmt.Errorf("refusing to replay to epoch %s one by one; drop --epoch.replay to jump", target)
	}
	for epoch := state.Epoch() + 1; epoch <= target; epoch++ {
		state.SetEpoch(epoch)
		callback(state, false)
	}
	return nil
}

func dumpState(ctx *cli.Context, state *ledgercore.LedgerState, rules solstice.Rules) error {
	record := state.Record()
	out, err := json.MarshalIndent(&record, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, string(out))

	epochsPerYear := float64(365*24*time.Hour) / float64(rules.Epochs.MaxEpochDuration)
	year := float64(state.Epoch()) / epochsPerYear
	issuance := ledgercore.EpochIssuance(state.Inflation(), initialSupply, year, epochsPerYear)
	fmt.Fprintf(ctx.App.Writer, "epoch %s issuance: validators=%s foundation=%s\n",
		state.Epoch(), issuance.Validator, issuance.Foundation)
	return nil
}
