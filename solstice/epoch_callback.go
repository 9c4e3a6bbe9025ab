package solstice

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/solstice-labs/go-solstice/inter"
)

// EpochState is the slice of mutable ledger state the entered-epoch callback
// writes into. The concrete state is owned by the runtime (see ledgercore);
// this package never constructs or destroys one.
//
// Both registration calls must be idempotent: registering a module that is
// already present replaces it with the same identity and is not an error.
type EpochState interface {
	// Epoch returns the epoch the state currently sits in.
	Epoch() inter.Epoch

	// SetInflation overwrites the active inflation policy.
	SetInflation(Inflation)

	// AddNativeModule registers a natively linked built-in module.
	AddNativeModule(name string, addr common.Address)

	// AddLoaderModule registers a loader-hosted built-in module together
	// with its instruction entry point.
	AddLoaderModule(name string, addr common.Address, entry inter.ProcessInstruction)
}

// EnteredEpochCallback synchronizes a ledger state with the activation
// schedule of one deployment. The runtime invokes it whenever it enters or
// re-enters an epoch context. initial distinguishes a cold start (or a
// restore from a persisted state) from a live epoch transition.
type EnteredEpochCallback func(state EpochState, initial bool)

// GetEnteredEpochCallback returns the entered-epoch callback for the given
// deployment.
//
// The callback must stay idempotent and safe to run at arbitrary points
// within an epoch, not only at true boundaries: the runtime re-runs it
// immediately after restoring persisted state, before it has otherwise
// touched the epoch. In particular it re-binds the loader entry points,
// which never survive serialization.
func GetEnteredEpochCallback(net Network) EnteredEpochCallback {
	return func(state EpochState, initial bool) {
		epoch := state.Epoch()

		if inflation, ok := GetInflation(net, epoch); ok {
			log.Info("Entering new epoch with inflation", "network", net, "epoch", epoch, "inflation", inflation)
			state.SetInflation(inflation)
		}

		for _, entry := range getModules(net) {
			// A cold start has to catch up on everything that should already
			// be active; a live transition activates exactly the modules due
			// this epoch.
			shouldPopulate := initial && epoch >= entry.start ||
				!initial && epoch == entry.start
			if !shouldPopulate {
				continue
			}
			switch m := entry.mod.(type) {
			case NativeModule:
				log.Debug("Activating native module", "epoch", epoch, "module", m)
				state.AddNativeModule(m.Name, m.Address)
			case LoaderModule:
				log.Debug("Activating loader module", "epoch", epoch, "module", m)
				state.AddLoaderModule(m.Name, m.Address, m.Entry)
			}
		}
	}
}
