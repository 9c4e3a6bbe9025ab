// Package genesis defines the configuration for materializing a brand-new
// Solstice ledger. The genesis configuration pins down the deployment, its
// rules and the initial validator set; the actual construction of the
// initial state (including registration of the genesis-epoch built-in
// modules) is done by ledgercore.ApplyGenesis.
package genesis

import (
	"fmt"
	"math/big"
	"time"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"

	"github.com/solstice-labs/go-solstice/inter"
	"github.com/solstice-labs/go-solstice/solstice"
)

// DefaultGenesisTime is the timestamp stamped into generated development
// genesis configs. A fixed value keeps locally built chains deterministic.
var DefaultGenesisTime = inter.Timestamp(1714521600 * time.Second)

// Validator is one entry of the initial validator set.
type Validator struct {
	// ID is the validator's index in the initial set.
	ID idx.ValidatorID

	// Weight is the validator's initial voting power (staked tokens).
	Weight *big.Int
}

// Config is the complete genesis definition of one deployment.
type Config struct {
	// Network selects the deployment whose schedules apply to this chain.
	Network solstice.Network

	// Rules are the consensus rules the chain launches with.
	Rules solstice.Rules

	// Time is the timestamp of the genesis state.
	Time inter.Timestamp

	// Validators is the initial validator set.
	Validators []Validator
}

// DefaultConfig returns the canonical genesis configuration of the given
// deployment.
func DefaultConfig(net solstice.Network) Config {
	return Config{
		Network: net,
		Rules:   solstice.RulesByNetwork(net),
		Time:    DefaultGenesisTime,
	}
}

// FakeValidators generates a deterministic validator set of the given size
// for development networks; every validator gets the same weight.
func FakeValidators(num int) []Validator {
	validators := make([]Validator, 0, num)
	for i := 1; i <= num; i++ {
		validators = append(validators, Validator{
			ID:     idx.ValidatorID(i),
			Weight: big.NewInt(1000000),
		})
	}
	return validators
}

// Validate checks the internal consistency of the config. A genesis config
// whose rules point at a different deployment than Network is a
// configuration bug, not something ApplyGenesis can repair.
func (c Config) Validate() error {
	if c.Rules.NetworkID != c.Network.ID() {
		return fmt.Errorf("genesis rules network ID 0x%x does not match network %q (0x%x)",
			c.Rules.NetworkID, c.Network, c.Network.ID())
	}
	if c.Rules.Epochs.SlotsPerEpoch == 0 {
		return fmt.Errorf("genesis rules define an empty epoch")
	}
	return nil
}
