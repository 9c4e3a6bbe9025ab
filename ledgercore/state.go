// Package ledgercore provides the minimal mutable ledger state the Solstice
// schedule layer writes into: the current epoch, the active inflation policy
// and the registry of built-in execution modules. It also materializes
// genesis states and serializable epoch records.
//
// The state is exclusively owned by the single goroutine driving the ledger;
// it takes no locks of its own. Safety against accidental re-invocation of
// the entered-epoch callback comes from idempotent registration, not from
// concurrency control.
package ledgercore

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/solstice-labs/go-solstice/inter"
	"github.com/solstice-labs/go-solstice/solstice"
)

// RegisteredModule is one built-in module currently live in the runtime.
type RegisteredModule struct {
	// Name is the module's unique canonical name.
	Name string

	// Address is the module's reserved address.
	Address common.Address

	// Loader reports whether the module is loader-hosted.
	Loader bool

	// Entry is the instruction entry point of a loader-hosted module. It is
	// nil for native modules and nil right after a restore, until the
	// entered-epoch callback re-binds it.
	Entry inter.ProcessInstruction
}

// LedgerState is the bank-like state object the entered-epoch callback
// mutates. It implements solstice.EpochState.
type LedgerState struct {
	epoch     inter.Epoch
	lastBlock idx.Block
	inflation solstice.Inflation

	// modules is keyed by name; order preserves first registration so that
	// listings and records stay deterministic.
	modules map[string]*RegisteredModule
	order   []string
}

// NewLedgerState returns an empty state sitting in the given epoch.
func NewLedgerState(epoch inter.Epoch) *LedgerState {
	return &LedgerState{
		epoch:   epoch,
		modules: make(map[string]*RegisteredModule),
	}
}

// Epoch returns the epoch the state currently sits in.
func (s *LedgerState) Epoch() inter.Epoch {
	return s.epoch
}

// SetEpoch moves the state into the given epoch. Epochs only move forward
// over the life of the ledger; the runtime driving the state owns that
// guarantee.
func (s *LedgerState) SetEpoch(epoch inter.Epoch) {
	s.epoch = epoch
}

// LastBlock returns the height of the last applied block.
func (s *LedgerState) LastBlock() idx.Block {
	return s.lastBlock
}

// SetLastBlock records the height of the last applied block.
func (s *LedgerState) SetLastBlock(block idx.Block) {
	s.lastBlock = block
}

// Inflation returns the active inflation policy.
func (s *LedgerState) Inflation() solstice.Inflation {
	return s.inflation
}

// SetInflation overwrites the active inflation policy.
func (s *LedgerState) SetInflation(inflation solstice.Inflation) {
	s.inflation = inflation
}

// AddNativeModule registers a natively linked built-in module.
func (s *LedgerState) AddNativeModule(name string, addr common.Address) {
	s.register(RegisteredModule{Name: name, Address: addr})
}

// AddLoaderModule registers a loader-hosted built-in module and binds its
// instruction entry point.
func (s *LedgerState) AddLoaderModule(name string, addr common.Address, entry inter.ProcessInstruction) {
	s.register(RegisteredModule{Name: name, Address: addr, Loader: true, Entry: entry})
}

// register inserts or refreshes a module. Re-registration is routine: the
// entered-epoch callback may run more than once per epoch, and after a
// restore it re-binds entry points that never survive serialization. The
// module keeps its original position in the listing order.
func (s *LedgerState) register(m RegisteredModule) {
	if existing, ok := s.modules[m.Name]; ok {
		log.Trace("Module already registered, refreshing", "module", m.Name)
		*existing = m
		return
	}
	log.Debug("Registered module", "module", m.Name, "address", m.Address.Hex(), "loader", m.Loader)
	s.modules[m.Name] = &m
	s.order = append(s.order, m.Name)
}

// HasModule reports whether a module with the given name is registered.
func (s *LedgerState) HasModule(name string) bool {
	_, ok := s.modules[name]
	return ok
}

// Module returns the registered module with the given name, if any.
func (s *LedgerState) Module(name string) (RegisteredModule, bool) {
	m, ok := s.modules[name]
	if !ok {
		return RegisteredModule{}, false
	}
	return *m, true
}

// Modules lists the registered modules in first-registration order.
func (s *LedgerState) Modules() []RegisteredModule {
	out := make([]RegisteredModule, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, *s.modules[name])
	}
	return out
}
