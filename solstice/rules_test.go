package solstice

import (
	"strings"
	"testing"
)

// TestNetworkConstants verifies the chain ID constants. These are embedded
// in transactions and genesis configs, so they must never drift.
func TestNetworkConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant uint64
		want     uint64
	}{
		{"MainNetworkID", MainNetworkID, 0x50731},
		{"TestNetworkID", TestNetworkID, 0x50732},
		{"DevNetworkID", DevNetworkID, 0x50733},
		{"DevelopmentNetworkID", DevelopmentNetworkID, 0x50734},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.want {
				t.Errorf("%s = %d, want %d", tt.name, tt.constant, tt.want)
			}
		})
	}
}

// TestNetworkByName checks the flag-name round trip for every deployment and
// the error on unknown names.
func TestNetworkByName(t *testing.T) {
	for _, net := range Networks() {
		got, err := NetworkByName(net.Name())
		if err != nil {
			t.Fatalf("NetworkByName(%q) returned error: %v", net.Name(), err)
		}
		if got != net {
			t.Errorf("NetworkByName(%q) = %v, want %v", net.Name(), got, net)
		}
	}

	if _, err := NetworkByName("ropsten"); err == nil {
		t.Error("NetworkByName(\"ropsten\") did not fail")
	}
}

// TestRulesByNetwork verifies that the per-deployment rules carry the
// matching identity and sensible epoch sizing.
func TestRulesByNetwork(t *testing.T) {
	for _, net := range Networks() {
		rules := RulesByNetwork(net)

		if rules.Name != net.Name() {
			t.Errorf("rules for %s carry name %q", net, rules.Name)
		}
		if rules.NetworkID != net.ID() {
			t.Errorf("rules for %s carry network ID 0x%x, want 0x%x", net, rules.NetworkID, net.ID())
		}
		if rules.Epochs.SlotsPerEpoch == 0 {
			t.Errorf("rules for %s define an empty epoch", net)
		}
		if !strings.Contains(rules.String(), rules.Name) {
			t.Errorf("rules String() does not mention the network name: %s", rules.String())
		}
	}

	// Development epochs are shrunk so schedule behaviour is testable fast.
	if DevelopmentRules().Epochs.SlotsPerEpoch >= MainNetRules().Epochs.SlotsPerEpoch {
		t.Error("development epochs are not smaller than mainnet epochs")
	}
	if DevelopmentRules().Epochs.MaxEpochDuration >= MainNetRules().Epochs.MaxEpochDuration {
		t.Error("development epoch duration is not shorter than mainnet")
	}
}
