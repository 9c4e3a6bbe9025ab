// Package solstice defines the network-level configuration of the Solstice
// ledger: which deployments exist, the consensus rules of each, the monetary
// inflation schedule, and the epoch-gated activation table of built-in
// execution modules.
//
// This package provides:
//   - Network identification constants (MainNet, TestNet, DevNet, Development)
//   - Per-network Rules with epoch parameters
//   - The inflation schedule: GetInflation(network, epoch)
//   - The built-in module activation table and its genesis projection
//   - The entered-epoch callback that synchronizes a ledger state with the
//     schedule (GetEnteredEpochCallback)
//
// The deployment identity is fixed for the lifetime of a running node and is
// passed explicitly into every lookup so the schedule stays a pure function
// of its arguments.
package solstice

import "fmt"

// Chain ID constants per network deployment.
const (
	// MainNetworkID is the chain ID of the Solstice production network.
	MainNetworkID uint64 = 0x50731

	// TestNetworkID is the chain ID of the public test network.
	TestNetworkID uint64 = 0x50732

	// DevNetworkID is the chain ID of the early public development network.
	DevNetworkID uint64 = 0x50733

	// DevelopmentNetworkID is the chain ID used by local and CI networks.
	DevelopmentNetworkID uint64 = 0x50734
)

// Network identifies which deployment a node belongs to. The set is closed:
// schedules in this package enumerate exactly these four deployments.
type Network uint8

const (
	// Development is a local or throwaway network used for testing.
	Development Network = iota

	// DevNet is the early public development network.
	DevNet

	// TestNet is the long-lived public test network.
	TestNet

	// MainNet is the production network.
	MainNet
)

// Networks lists every known deployment, in schedule order.
func Networks() []Network {
	return []Network{Development, DevNet, TestNet, MainNet}
}

// Name returns the canonical short name used in flags, logs and config dumps.
func (n Network) Name() string {
	switch n {
	case Development:
		return "dev"
	case DevNet:
		return "devnet"
	case TestNet:
		return "test"
	case MainNet:
		return "main"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(n))
	}
}

// ID returns the chain ID of the deployment.
func (n Network) ID() uint64 {
	switch n {
	case Development:
		return DevelopmentNetworkID
	case DevNet:
		return DevNetworkID
	case TestNet:
		return TestNetworkID
	case MainNet:
		return MainNetworkID
	default:
		return 0
	}
}

func (n Network) String() string {
	return n.Name()
}

// NetworkByName resolves a canonical short name (as accepted by the
// --network flag) back into a Network.
func NetworkByName(name string) (Network, error) {
	for _, n := range Networks() {
		if n.Name() == name {
			return n, nil
		}
	}
	return 0, fmt.Errorf("unknown network name %q", name)
}
