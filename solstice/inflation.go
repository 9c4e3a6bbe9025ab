package solstice

import (
	"math"

	"github.com/solstice-labs/go-solstice/inter"
)

// Inflation holds the parameters of the token issuance curve. Values are
// annual rates as fractions (0.08 means 8%). Inflation is a plain value
// object: compare with ==, copy freely.
type Inflation struct {
	// Initial is the issuance rate at year 0.
	Initial float64

	// Terminal is the long-run issuance rate the curve tapers down to.
	Terminal float64

	// Taper is the yearly decay factor applied to the rate until it reaches
	// Terminal.
	Taper float64

	// Foundation is the portion of total issuance routed to the foundation
	// pool during the foundation term.
	Foundation float64

	// FoundationTerm is the duration, in years, of foundation issuance.
	FoundationTerm float64
}

// DefaultInflation returns the full issuance curve used once inflation is
// enabled on a network.
func DefaultInflation() Inflation {
	return Inflation{
		Initial:        0.08,
		Terminal:       0.015,
		Taper:          0.15,
		Foundation:     0.05,
		FoundationTerm: 7.0,
	}
}

// DisabledInflation returns the zero-issuance policy used before a network
// formally enables inflation.
func DisabledInflation() Inflation {
	return Inflation{}
}

// TotalRate returns the overall issuance rate at the given year since
// genesis. The rate decays by Taper each year and is floored at Terminal.
func (inf Inflation) TotalRate(year float64) float64 {
	tapered := inf.Initial * math.Pow(1.0-inf.Taper, year)
	if tapered > inf.Terminal {
		return tapered
	}
	return inf.Terminal
}

// FoundationRate returns the portion of total issuance routed to the
// foundation pool. Foundation issuance stops entirely after FoundationTerm
// years.
func (inf Inflation) FoundationRate(year float64) float64 {
	if year < inf.FoundationTerm {
		return inf.TotalRate(year) * inf.Foundation
	}
	return 0.0
}

// ValidatorRate returns the portion of total issuance paid to validators.
func (inf Inflation) ValidatorRate(year float64) float64 {
	return inf.TotalRate(year) - inf.FoundationRate(year)
}

// GetInflation returns the inflation policy that becomes active at exactly
// the given epoch on the given deployment, if the schedule defines one.
// A miss does not mean "no inflation": it means nothing changes this epoch
// and the caller must leave whatever policy is already active untouched.
func GetInflation(net Network, epoch inter.Epoch) (Inflation, bool) {
	switch net {
	case Development:
		if epoch == inter.GenesisEpoch {
			return DefaultInflation(), true
		}
	case DevNet:
		if epoch == inter.GenesisEpoch {
			return DefaultInflation(), true
		}
	case TestNet:
		switch epoch {
		// No inflation at genesis.
		case inter.GenesisEpoch:
			return DisabledInflation(), true
		// Testnet first enabled inflation at epoch 44.
		case 44:
			return DefaultInflation(), true
		// Fully disabled again at 68 while the issuance defect was fixed.
		case 68:
			return DisabledInflation(), true
		// Re-enabled at 74 once the fix had shipped.
		case 74:
			return DefaultInflation(), true
		}
	case MainNet:
		switch epoch {
		// No inflation at genesis.
		case inter.GenesisEpoch:
			return DisabledInflation(), true
		// MaxEpoch is a placeholder; a future network upgrade assigns the
		// real activation epoch.
		case inter.MaxEpoch:
			return DefaultInflation(), true
		}
	}
	return Inflation{}, false
}
