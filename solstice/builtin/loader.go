// Package builtin declares the identities of Solstice's built-in execution
// modules: the reserved address, the canonical name, and (for loader-hosted
// modules) the instruction entry point that gets bound into the runtime.
//
// Addresses live in the 0x5073... reserved range, which ordinary accounts can
// never occupy. The schedule in package solstice decides at which epoch each
// of these modules becomes part of the live runtime; this package only names
// them.
package builtin

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// WasmLoaderName is the canonical name of the current code loader, the
	// module that executes dynamically deployed wasm programs.
	WasmLoaderName = "wasm_loader"

	// LegacyLoaderName is the canonical name of the deprecated first
	// generation loader, kept live for programs deployed against it.
	LegacyLoaderName = "wasm_loader_deprecated"
)

var (
	// WasmLoaderAddress is the reserved address of the current code loader.
	WasmLoaderAddress = common.HexToAddress("0x5073000000000000000000000000000000000101")

	// LegacyLoaderAddress is the reserved address of the deprecated loader.
	LegacyLoaderAddress = common.HexToAddress("0x5073000000000000000000000000000000000102")

	// ErrEmptyInstruction is returned when a loader is invoked with no
	// instruction payload at all.
	ErrEmptyInstruction = errors.New("builtin loader: empty instruction data")
)

// WasmLoaderProcessInstruction is the entry point bound for the current code
// loader. Actual verification and execution of hosted bytecode belongs to
// the runtime's executor; the entry point only rejects calls that cannot be
// routed there.
func WasmLoaderProcessInstruction(program common.Address, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyInstruction
	}
	return fmt.Errorf("wasm loader: no executor bound for program %s", program.Hex())
}

// LegacyLoaderProcessInstruction is the entry point bound for the deprecated
// loader. Same routing contract as WasmLoaderProcessInstruction.
func LegacyLoaderProcessInstruction(program common.Address, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyInstruction
	}
	return fmt.Errorf("deprecated wasm loader: no executor bound for program %s", program.Hex())
}
