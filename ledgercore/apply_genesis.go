package ledgercore

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/solstice-labs/go-solstice/inter"
	"github.com/solstice-labs/go-solstice/solstice"
	"github.com/solstice-labs/go-solstice/solstice/genesis"
)

// ApplyGenesis materializes the initial ledger state of a brand-new chain.
//
// The genesis-epoch native modules are registered directly because the
// genesis block itself must contain their accounts; everything else,
// including the loaders active from genesis, flows through the deployment's
// entered-epoch callback like at any other epoch. Running the callback here
// is what keeps genesis from being a special case of the activation logic.
func ApplyGenesis(g genesis.Config) (*LedgerState, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	state := NewLedgerState(inter.GenesisEpoch)
	for _, m := range solstice.NativeModulesForGenesis(g.Network) {
		state.AddNativeModule(m.Name, m.Address)
	}
	solstice.GetEnteredEpochCallback(g.Network)(state, true)

	log.Info("Applied genesis state",
		"network", g.Network,
		"epoch", state.Epoch(),
		"validators", len(g.Validators),
		"modules", len(state.Modules()))
	return state, nil
}
