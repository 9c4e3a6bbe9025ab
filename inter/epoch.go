// Package inter defines Solstice's core scalar types shared by every layer
// of the node: the epoch logical clock, consensus timestamps, and the entry
// point reference for loader-hosted modules.
//
// Key concepts:
//   - Epoch: the monotonically increasing logical time unit of the ledger.
//     Epoch-scoped transitions (inflation changes, built-in module
//     activation) are keyed by it.
//   - GenesisEpoch: epoch 0, the ledger's initial state.
//   - MaxEpoch: a deliberate placeholder meaning "scheduled, but the concrete
//     epoch will be fixed by a future network update".

package inter

import (
	"math"
	"strconv"
)

// Epoch is the ledger's logical clock. It only ever moves forward; the
// runtime decides when a boundary occurs, this package only names the unit.
type Epoch uint64

const (
	// GenesisEpoch is the epoch of the very first block.
	GenesisEpoch Epoch = 0

	// MaxEpoch is the sentinel used by activation schedules for entries that
	// are agreed upon but not yet assigned a concrete epoch. A future hard
	// fork replaces it with a real value; nothing may infer one earlier.
	MaxEpoch Epoch = math.MaxUint64
)

// String renders the epoch for logs. The sentinel prints as "max" so that
// schedule dumps stay readable.
func (e Epoch) String() string {
	if e == MaxEpoch {
		return "max"
	}
	return strconv.FormatUint(uint64(e), 10)
}
