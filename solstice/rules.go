package solstice

import (
	"encoding/json"
	"time"

	"github.com/solstice-labs/go-solstice/inter"
)

// Rules describes the consensus-critical configuration of a Solstice network
// deployment. Rules are immutable once a chain launches; changes require a
// coordinated network upgrade.
type Rules struct {
	// Name is the canonical network name (e.g. "main", "test").
	Name string

	// NetworkID is the chain ID used to keep transactions and peers from
	// crossing between deployments.
	NetworkID uint64

	// Epochs holds the epoch sizing parameters.
	Epochs EpochsRules
}

// EpochsRules defines how large an epoch is. An epoch closes when either the
// slot budget is spent or the wall-clock bound is reached, whichever comes
// first.
type EpochsRules struct {
	// SlotsPerEpoch is the number of leader slots in one epoch.
	SlotsPerEpoch uint64

	// MaxEpochDuration is the wall-clock upper bound of an epoch.
	MaxEpochDuration inter.Timestamp
}

// MainNetRules returns the production network configuration.
func MainNetRules() Rules {
	return Rules{
		Name:      MainNet.Name(),
		NetworkID: MainNetworkID,
		Epochs:    DefaultEpochsRules(),
	}
}

// TestNetRules returns the public test network configuration. It mirrors
// mainnet so that testing stays realistic.
func TestNetRules() Rules {
	return Rules{
		Name:      TestNet.Name(),
		NetworkID: TestNetworkID,
		Epochs:    DefaultEpochsRules(),
	}
}

// DevNetRules returns the early public development network configuration.
func DevNetRules() Rules {
	return Rules{
		Name:      DevNet.Name(),
		NetworkID: DevNetworkID,
		Epochs:    DefaultEpochsRules(),
	}
}

// DevelopmentRules returns the configuration for local and CI networks.
// Epochs are shrunk aggressively so that epoch-gated behaviour (inflation
// changes, module activation) can be exercised in minutes.
func DevelopmentRules() Rules {
	return Rules{
		Name:      Development.Name(),
		NetworkID: DevelopmentNetworkID,
		Epochs:    FastEpochsRules(),
	}
}

// RulesByNetwork returns the rules of the given deployment.
func RulesByNetwork(n Network) Rules {
	switch n {
	case Development:
		return DevelopmentRules()
	case DevNet:
		return DevNetRules()
	case TestNet:
		return TestNetRules()
	case MainNet:
		return MainNetRules()
	default:
		panic("solstice: rules requested for unknown network")
	}
}

// DefaultEpochsRules returns the epoch sizing used by public networks.
func DefaultEpochsRules() EpochsRules {
	return EpochsRules{
		SlotsPerEpoch:    432000, // ~2 days of slots at mainnet slot time
		MaxEpochDuration: inter.Timestamp(72 * time.Hour),
	}
}

// FastEpochsRules returns accelerated epoch sizing for development networks.
func FastEpochsRules() EpochsRules {
	cfg := DefaultEpochsRules()
	cfg.SlotsPerEpoch = 8192
	cfg.MaxEpochDuration = inter.Timestamp(10 * time.Minute)
	return cfg
}

// String returns a JSON representation of Rules for logs and config dumps.
func (r Rules) String() string {
	b, _ := json.Marshal(&r)
	return string(b)
}
