package ledgercore

import (
	"math/big"

	"github.com/solstice-labs/go-solstice/solstice"
)

// Issuance is one epoch's newly minted tokens, split between the validator
// reward pool and the foundation pool.
type Issuance struct {
	Validator  *big.Int
	Foundation *big.Int
}

// EpochIssuance computes the tokens minted for a single epoch under the
// given inflation policy. supply is the current total supply, year the time
// since genesis in years, and epochsPerYear how many epochs one year holds.
// A disabled policy yields zero issuance for both pools.
func EpochIssuance(inf solstice.Inflation, supply *big.Int, year float64, epochsPerYear float64) Issuance {
	mint := func(annualRate float64) *big.Int {
		if annualRate <= 0 || epochsPerYear <= 0 {
			return new(big.Int)
		}
		amount := new(big.Float).SetInt(supply)
		amount.Mul(amount, big.NewFloat(annualRate/epochsPerYear))
		out, _ := amount.Int(nil)
		return out
	}
	return Issuance{
		Validator:  mint(inf.ValidatorRate(year)),
		Foundation: mint(inf.FoundationRate(year)),
	}
}
