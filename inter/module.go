package inter

import "github.com/ethereum/go-ethereum/common"

// ProcessInstruction is the entry point of a loader-hosted built-in module.
// The value is supplied by the module's package at registration time and is
// invoked by the runtime's executor, never by the schedule layer itself; the
// schedule only forwards it. Being a func value it stays debug-printable
// via %p, which is all the schedule ever does with it.
type ProcessInstruction func(program common.Address, data []byte) error
