package builtin

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestLoaderEntryPoints(t *testing.T) {
	require := require.New(t)

	program := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	require.Equal(ErrEmptyInstruction, WasmLoaderProcessInstruction(program, nil))
	require.Equal(ErrEmptyInstruction, LegacyLoaderProcessInstruction(program, nil))

	// With no executor bound, a routable instruction is still an error, but
	// one that names the program.
	err := WasmLoaderProcessInstruction(program, []byte{0x01})
	require.Error(err)
	require.Contains(err.Error(), program.Hex())
}

func TestReservedAddressesDistinct(t *testing.T) {
	addrs := []common.Address{
		WasmLoaderAddress,
		LegacyLoaderAddress,
		VestAddress,
		BudgetAddress,
		ExchangeAddress,
	}
	seen := make(map[common.Address]bool)
	for _, a := range addrs {
		if seen[a] {
			t.Fatalf("reserved address %s used twice", a.Hex())
		}
		seen[a] = true
	}
}
