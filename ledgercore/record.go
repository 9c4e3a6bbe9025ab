package ledgercore

import (
	"io"
	"math"

	"github.com/Fantom-foundation/lachesis-base/hash"
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/solstice-labs/go-solstice/inter"
	"github.com/solstice-labs/go-solstice/solstice"
)

// ModuleRecord is the serializable identity of a registered module. Entry
// points are deliberately absent: they are process-local func values that
// the entered-epoch callback re-binds after a restore.
type ModuleRecord struct {
	Name    string
	Address common.Address
	Loader  bool
}

// EpochRecord is the serializable summary of a LedgerState at some point in
// an epoch. Restoring one and re-running the entered-epoch callback with
// initial=true reproduces the full live state.
type EpochRecord struct {
	Epoch     inter.Epoch
	LastBlock idx.Block
	Inflation solstice.Inflation
	Modules   []ModuleRecord
}

// inflationRLP carries the inflation curve through RLP, which has no float
// encoding; the fields hold IEEE-754 bit patterns.
type inflationRLP struct {
	Initial        uint64
	Terminal       uint64
	Taper          uint64
	Foundation     uint64
	FoundationTerm uint64
}

type epochRecordRLP struct {
	Epoch     uint64
	LastBlock uint64
	Inflation inflationRLP
	Modules   []ModuleRecord
}

// EncodeRLP implements rlp.Encoder.
func (r *EpochRecord) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &epochRecordRLP{
		Epoch:     uint64(r.Epoch),
		LastBlock: uint64(r.LastBlock),
		Inflation: inflationRLP{
			Initial:        math.Float64bits(r.Inflation.Initial),
			Terminal:       math.Float64bits(r.Inflation.Terminal),
			Taper:          math.Float64bits(r.Inflation.Taper),
			Foundation:     math.Float64bits(r.Inflation.Foundation),
			FoundationTerm: math.Float64bits(r.Inflation.FoundationTerm),
		},
		Modules: r.Modules,
	})
}

// DecodeRLP implements rlp.Decoder.
func (r *EpochRecord) DecodeRLP(s *rlp.Stream) error {
	var dec epochRecordRLP
	if err := s.Decode(&dec); err != nil {
		return err
	}
	r.Epoch = inter.Epoch(dec.Epoch)
	r.LastBlock = idx.Block(dec.LastBlock)
	r.Inflation = solstice.Inflation{
		Initial:        math.Float64frombits(dec.Inflation.Initial),
		Terminal:       math.Float64frombits(dec.Inflation.Terminal),
		Taper:          math.Float64frombits(dec.Inflation.Taper),
		Foundation:     math.Float64frombits(dec.Inflation.Foundation),
		FoundationTerm: math.Float64frombits(dec.Inflation.FoundationTerm),
	}
	r.Modules = dec.Modules
	return nil
}

// Hash returns a deterministic fingerprint of the record.
func (r *EpochRecord) Hash() hash.Hash {
	b, err := rlp.EncodeToBytes(r)
	if err != nil {
		panic(err) // the record is always encodable; a failure is a bug
	}
	return hash.Of(b)
}

// Record captures the state's serializable summary.
func (s *LedgerState) Record() EpochRecord {
	modules := make([]ModuleRecord, 0, len(s.order))
	for _, name := range s.order {
		m := s.modules[name]
		modules = append(modules, ModuleRecord{
			Name:    m.Name,
			Address: m.Address,
			Loader:  m.Loader,
		})
	}
	return EpochRecord{
		Epoch:     s.epoch,
		LastBlock: s.lastBlock,
		Inflation: s.inflation,
		Modules:   modules,
	}
}

// RestoreLedgerState rebuilds a state from its record. Loader entry points
// come back nil; the caller must run the deployment's entered-epoch callback
// with initial=true immediately afterwards to re-bind them, exactly as the
// runtime does after restoring a snapshot.
func RestoreLedgerState(rec EpochRecord) *LedgerState {
	state := NewLedgerState(rec.Epoch)
	state.SetLastBlock(rec.LastBlock)
	state.SetInflation(rec.Inflation)
	for _, m := range rec.Modules {
		if m.Loader {
			state.AddLoaderModule(m.Name, m.Address, nil)
		} else {
			state.AddNativeModule(m.Name, m.Address)
		}
	}
	return state
}
