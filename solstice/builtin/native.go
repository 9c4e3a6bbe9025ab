package builtin

import "github.com/ethereum/go-ethereum/common"

// Native modules are linked straight into the runtime binary, so their
// identity is just (name, reserved address). Their instruction processors
// are resolved by the runtime from the name, not forwarded through the
// activation schedule.

const (
	// VestName identifies the token vesting module.
	VestName = "vest"

	// BudgetName identifies the conditional payment (budget) module.
	BudgetName = "budget"

	// ExchangeName identifies the on-ledger token exchange module.
	ExchangeName = "exchange"
)

var (
	// VestAddress is the reserved address of the vesting module.
	VestAddress = common.HexToAddress("0x5073000000000000000000000000000000000201")

	// BudgetAddress is the reserved address of the budget module.
	BudgetAddress = common.HexToAddress("0x5073000000000000000000000000000000000202")

	// ExchangeAddress is the reserved address of the exchange module.
	ExchangeAddress = common.HexToAddress("0x5073000000000000000000000000000000000203")
)
