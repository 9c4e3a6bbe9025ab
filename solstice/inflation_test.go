package solstice

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solstice-labs/go-solstice/inter"
)

// TestDevelopmentInflation verifies that development networks get the full
// issuance curve from the first block and no further schedule changes.
func TestDevelopmentInflation(t *testing.T) {
	inflation, ok := GetInflation(Development, 0)
	require.True(t, ok)
	require.Equal(t, DefaultInflation(), inflation)

	_, ok = GetInflation(Development, 1)
	require.False(t, ok)
}

// TestTestNetInflation walks the full breakpoint history of the public test
// network: disabled at genesis, enabled at 44, disabled again at 68 while
// the issuance defect was remediated, and re-enabled at 74.
func TestTestNetInflation(t *testing.T) {
	tests := []struct {
		epoch   inter.Epoch
		defined bool
		want    Inflation
	}{
		{0, true, DisabledInflation()},
		{1, false, Inflation{}},
		{43, false, Inflation{}},
		{44, true, DefaultInflation()},
		{45, false, Inflation{}},
		{68, true, DisabledInflation()},
		{74, true, DefaultInflation()},
		{75, false, Inflation{}},
	}

	for _, tt := range tests {
		inflation, ok := GetInflation(TestNet, tt.epoch)
		if ok != tt.defined {
			t.Errorf("GetInflation(TestNet, %d) defined = %v, want %v", tt.epoch, ok, tt.defined)
			continue
		}
		if ok && inflation != tt.want {
			t.Errorf("GetInflation(TestNet, %d) = %+v, want %+v", tt.epoch, inflation, tt.want)
		}
	}
}

// TestMainNetSoftLaunchInflation verifies that mainnet launches with
// issuance disabled and keeps the switch to the full curve parked on the
// MaxEpoch placeholder.
func TestMainNetSoftLaunchInflation(t *testing.T) {
	inflation, ok := GetInflation(MainNet, 0)
	require.True(t, ok)
	require.Equal(t, DisabledInflation(), inflation)

	_, ok = GetInflation(MainNet, 1)
	require.False(t, ok)

	inflation, ok = GetInflation(MainNet, inter.MaxEpoch)
	require.True(t, ok)
	require.Equal(t, DefaultInflation(), inflation)
}

// TestInflationLookupDeterminism checks that the schedule is a pure function
// of its arguments.
func TestInflationLookupDeterminism(t *testing.T) {
	for _, net := range Networks() {
		for _, epoch := range []inter.Epoch{0, 1, 44, 68, 74, 400, inter.MaxEpoch} {
			first, okFirst := GetInflation(net, epoch)
			second, okSecond := GetInflation(net, epoch)
			require.Equal(t, okFirst, okSecond, "net %s epoch %s", net, epoch)
			require.Equal(t, first, second, "net %s epoch %s", net, epoch)
		}
	}
}

// TestInflationRates exercises the issuance curve math.
func TestInflationRates(t *testing.T) {
	require := require.New(t)

	inf := DefaultInflation()
	require.InDelta(0.08, inf.TotalRate(0), 1e-12)
	require.InDelta(0.08*0.05, inf.FoundationRate(0), 1e-12)
	require.InDelta(inf.TotalRate(0)-inf.FoundationRate(0), inf.ValidatorRate(0), 1e-12)

	// The curve tapers down to the terminal rate and stays there.
	require.InDelta(0.015, inf.TotalRate(100), 1e-12)
	require.True(inf.TotalRate(1) < inf.TotalRate(0))

	// Foundation issuance ends after the foundation term.
	require.Equal(0.0, inf.FoundationRate(inf.FoundationTerm))
	require.InDelta(inf.TotalRate(8), inf.ValidatorRate(8), 1e-12)

	disabled := DisabledInflation()
	for _, year := range []float64{0, 1, 10} {
		require.Equal(0.0, disabled.TotalRate(year))
		require.Equal(0.0, disabled.ValidatorRate(year))
		require.Equal(0.0, disabled.FoundationRate(year))
	}
}
