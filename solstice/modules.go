package solstice

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/solstice-labs/go-solstice/inter"
	"github.com/solstice-labs/go-solstice/solstice/builtin"
)

// builtinModule is one kind of built-in program. The set of kinds is closed:
// either the module's logic is linked natively into the runtime, or it is a
// loader hosting externally deployed code. The entered-epoch callback
// dispatches on the concrete type to pick the right registration call.
type builtinModule interface {
	moduleName() string
	moduleAddress() common.Address
}

// NativeModule identifies a built-in module whose logic is compiled into the
// runtime binary.
type NativeModule struct {
	Name    string
	Address common.Address
}

func (m NativeModule) moduleName() string            { return m.Name }
func (m NativeModule) moduleAddress() common.Address { return m.Address }

func (m NativeModule) String() string {
	return fmt.Sprintf("native{%s %s}", m.Name, m.Address.Hex())
}

// LoaderModule identifies a built-in loader, a module that itself executes
// dynamically supplied code. Its entry point is an opaque handle that the
// schedule forwards to registration and never calls.
type LoaderModule struct {
	Name    string
	Address common.Address
	Entry   inter.ProcessInstruction
}

func (m LoaderModule) moduleName() string            { return m.Name }
func (m LoaderModule) moduleAddress() common.Address { return m.Address }

func (m LoaderModule) String() string {
	return fmt.Sprintf("loader{%s %s entry=%p}", m.Name, m.Address.Hex(), m.Entry)
}

// moduleEntry pairs a built-in module with the epoch at which it becomes
// part of the live runtime.
type moduleEntry struct {
	mod   builtinModule
	start inter.Epoch
}

func wasmLoader() LoaderModule {
	return LoaderModule{
		Name:    builtin.WasmLoaderName,
		Address: builtin.WasmLoaderAddress,
		Entry:   builtin.WasmLoaderProcessInstruction,
	}
}

func legacyLoader() LoaderModule {
	return LoaderModule{
		Name:    builtin.LegacyLoaderName,
		Address: builtin.LegacyLoaderAddress,
		Entry:   builtin.LegacyLoaderProcessInstruction,
	}
}

func vestModule() NativeModule {
	return NativeModule{Name: builtin.VestName, Address: builtin.VestAddress}
}

func budgetModule() NativeModule {
	return NativeModule{Name: builtin.BudgetName, Address: builtin.BudgetAddress}
}

func exchangeModule() NativeModule {
	return NativeModule{Name: builtin.ExchangeName, Address: builtin.ExchangeAddress}
}

// getModules returns every built-in module the deployment knows, paired with
// its activation epoch. Entries are listed in non-decreasing activation
// order, and names and addresses are unique across each table; both
// invariants are asserted by tests, not recomputed here.
func getModules(net Network) []moduleEntry {
	switch net {
	case Development:
		// Everything is live from the first block, including the modules
		// that only exist for testing.
		return []moduleEntry{
			{wasmLoader(), inter.GenesisEpoch},
			{legacyLoader(), inter.GenesisEpoch},
			{vestModule(), inter.GenesisEpoch},
			{budgetModule(), inter.GenesisEpoch},
			{exchangeModule(), inter.GenesisEpoch},
		}

	case DevNet:
		return []moduleEntry{
			{legacyLoader(), inter.GenesisEpoch},
			{vestModule(), inter.GenesisEpoch},
			{budgetModule(), inter.GenesisEpoch},
			{exchangeModule(), inter.GenesisEpoch},
			{wasmLoader(), 400},
		}

	case TestNet:
		return []moduleEntry{
			{legacyLoader(), inter.GenesisEpoch},
			{wasmLoader(), 89},
		}

	case MainNet:
		return []moduleEntry{
			{legacyLoader(), 34},
			// MaxEpoch is a placeholder; a future network upgrade assigns
			// the real activation epoch.
			{wasmLoader(), inter.MaxEpoch},
		}

	default:
		panic(fmt.Sprintf("solstice: module table requested for unknown network %d", net))
	}
}

// NativeModulesForGenesis returns the native modules that are present from
// the very first block of the deployment. The genesis builder materializes
// these directly into the initial state; every later activation (and every
// loader, regardless of epoch) flows through the entered-epoch callback
// instead.
func NativeModulesForGenesis(net Network) []NativeModule {
	var natives []NativeModule
	for _, entry := range getModules(net) {
		if native, ok := entry.mod.(NativeModule); ok && entry.start == inter.GenesisEpoch {
			natives = append(natives, native)
		}
	}
	return natives
}
