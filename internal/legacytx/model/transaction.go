// Package model defines the legacy transaction domain types.
package model

import (
	"bytes"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// OutPoint identifies a previously created output being spent.
type OutPoint struct {
	TxID chainhash.Hash
	Vout uint32
}

// NewOutPoint returns an outpoint referencing output vout of txid.
func NewOutPoint(txid chainhash.Hash, vout uint32) OutPoint {
	return OutPoint{TxID: txid, Vout: vout}
}

// String returns the outpoint in the conventional txid:vout form.
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID, o.Vout)
}

// TxInput spends a previous output. ScriptSig is opaque.
type TxInput struct {
	PreviousOutput OutPoint
	ScriptSig      []byte
	Sequence       uint32
}

// Equal reports whether both inputs carry the same outpoint, script and sequence.
func (in TxInput) Equal(other TxInput) bool {
	return in.PreviousOutput == other.PreviousOutput &&
		in.Sequence == other.Sequence &&
		bytes.Equal(in.ScriptSig, other.ScriptSig)
}

// Clone returns a copy that shares no memory with in.
func (in TxInput) Clone() TxInput {
	in.ScriptSig = cloneBytes(in.ScriptSig)
	return in
}

// TxOutput carries Value in the smallest currency unit. ScriptPubKey is opaque.
type TxOutput struct {
	Value        uint64
	ScriptPubKey []byte
}

// Equal reports whether both outputs carry the same value and script.
func (out TxOutput) Equal(other TxOutput) bool {
	return out.Value == other.Value && bytes.Equal(out.ScriptPubKey, other.ScriptPubKey)
}

// Clone returns a copy that shares no memory with out.
func (out TxOutput) Clone() TxOutput {
	out.ScriptPubKey = cloneBytes(out.ScriptPubKey)
	return out
}

// Transaction is a legacy (non-witness) transaction. Input and output order is significant.
type Transaction struct {
	Version  int32
	Inputs   []TxInput
	Outputs  []TxOutput
	LockTime uint32
}

// Equal reports structural equality: same header fields and pairwise equal inputs and outputs in the same order.
// A nil script or slice equals an empty one.
func (tx Transaction) Equal(other Transaction) bool {
	if tx.Version != other.Version || tx.LockTime != other.LockTime {
		return false
	}
	if len(tx.Inputs) != len(other.Inputs) || len(tx.Outputs) != len(other.Outputs) {
		return false
	}
	for i := range tx.Inputs {
		if !tx.Inputs[i].Equal(other.Inputs[i]) {
			return false
		}
	}
	for i := range tx.Outputs {
		if !tx.Outputs[i].Equal(other.Outputs[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of tx.
func (tx Transaction) Clone() Transaction {
	out := Transaction{Version: tx.Version, LockTime: tx.LockTime}
	if tx.Inputs != nil {
		out.Inputs = make([]TxInput, len(tx.Inputs))
		for i, in := range tx.Inputs {
			out.Inputs[i] = in.Clone()
		}
	}
	if tx.Outputs != nil {
		out.Outputs = make([]TxOutput, len(tx.Outputs))
		for i, o := range tx.Outputs {
			out.Outputs[i] = o.Clone()
		}
	}
	return out
}

// TotalOutputValue sums all output values, failing instead of wrapping on overflow.
func (tx Transaction) TotalOutputValue() (uint64, error) {
	var total uint64
	for idx, out := range tx.Outputs {
		if out.Value > math.MaxUint64-total {
			return 0, fmt.Errorf("output %d value %d overflows total %d", idx, out.Value, total)
		}
		total += out.Value
	}
	return total, nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append(make([]byte, 0, len(b)), b...)
}
