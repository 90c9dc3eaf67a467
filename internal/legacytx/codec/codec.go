// Package codec converts legacy transactions to and from their binary layout.
//
// All integers are little-endian. Scripts carry a 4-byte length prefix.
//
//	version        int32
//	input count    uint32
//	  txid [32] | vout uint32 | script_sig len uint32 | script_sig | sequence uint32
//	output count   uint32
//	  value uint64 | script_pubkey len uint32 | script_pubkey
//	lock_time      uint32
package codec

import (
	"github.com/goodnatureofminers/legacytx/internal/legacytx/model"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/txerr"
	"github.com/goodnatureofminers/legacytx/pkg/safe"
	"github.com/pkg/errors"
)

const (
	versionSize  = 4
	countSize    = 4
	lockTimeSize = 4
	lengthSize   = 4
	outPointSize = 32 + 4
	sequenceSize = 4
	valueSize    = 8

	// MinTransactionSize is the length of a transaction with no inputs and no outputs.
	MinTransactionSize = versionSize + countSize + countSize + lockTimeSize

	minInputSize  = outPointSize + lengthSize + sequenceSize
	minOutputSize = valueSize + lengthSize
)

var (
	errShortBuffer   = errors.New("unexpected end of data")
	errCountTooLarge = errors.New("count exceeds remaining data")
	errTrailingBytes = errors.New("trailing bytes after lock time")
	errTooLong       = errors.New("length exceeds 32-bit prefix")
)

// Decode parses data as exactly one transaction. Trailing bytes are rejected.
// Every failure matches txerr.ErrInvalidTransaction.
func Decode(data []byte) (model.Transaction, error) {
	tx, n, err := DecodePrefix(data)
	if err != nil {
		return model.Transaction{}, err
	}
	if n != len(data) {
		return model.Transaction{}, txerr.InvalidTransaction(
			errors.Wrapf(errTrailingBytes, "%d of %d bytes unread", len(data)-n, len(data)))
	}
	return tx, nil
}

// DecodePrefix parses one transaction from the start of data and returns it with
// the number of bytes consumed. Bytes after the lock time are left alone.
// The returned transaction does not reference data.
func DecodePrefix(data []byte) (model.Transaction, int, error) {
	if len(data) < MinTransactionSize {
		return model.Transaction{}, 0, txerr.InvalidTransaction(
			errors.Wrapf(errShortBuffer, "need at least %d bytes, got %d", MinTransactionSize, len(data)))
	}

	r := &reader{buf: data}
	tx, err := readTransaction(r)
	if err != nil {
		return model.Transaction{}, 0, txerr.InvalidTransaction(err)
	}
	return tx, r.off, nil
}

func readTransaction(r *reader) (model.Transaction, error) {
	var tx model.Transaction

	version, err := r.uint32("version")
	if err != nil {
		return tx, err
	}
	tx.Version = int32(version)

	inputCount, err := r.count("input", minInputSize)
	if err != nil {
		return tx, err
	}
	tx.Inputs = make([]model.TxInput, 0, inputCount)
	for i := 0; i < inputCount; i++ {
		in, err := readInput(r)
		if err != nil {
			return tx, errors.Wrapf(err, "input %d", i)
		}
		tx.Inputs = append(tx.Inputs, in)
	}

	outputCount, err := r.count("output", minOutputSize)
	if err != nil {
		return tx, err
	}
	tx.Outputs = make([]model.TxOutput, 0, outputCount)
	for i := 0; i < outputCount; i++ {
		out, err := readOutput(r)
		if err != nil {
			return tx, errors.Wrapf(err, "output %d", i)
		}
		tx.Outputs = append(tx.Outputs, out)
	}

	if tx.LockTime, err = r.uint32("lock time"); err != nil {
		return tx, err
	}
	return tx, nil
}

func readInput(r *reader) (model.TxInput, error) {
	var in model.TxInput
	var err error

	if err = r.hash(&in.PreviousOutput.TxID); err != nil {
		return in, err
	}
	if in.PreviousOutput.Vout, err = r.uint32("vout"); err != nil {
		return in, err
	}
	if in.ScriptSig, err = r.script("script_sig"); err != nil {
		return in, err
	}
	if in.Sequence, err = r.uint32("sequence"); err != nil {
		return in, err
	}
	return in, nil
}

func readOutput(r *reader) (model.TxOutput, error) {
	var out model.TxOutput
	var err error

	if out.Value, err = r.uint64("value"); err != nil {
		return out, err
	}
	if out.ScriptPubKey, err = r.script("script_pubkey"); err != nil {
		return out, err
	}
	return out, nil
}

// Encode serializes tx. It fails only when a count or script length does not fit
// its 32-bit prefix; the error then matches txerr.ErrInvalidTransaction.
func Encode(tx model.Transaction) ([]byte, error) {
	w := &writer{buf: make([]byte, 0, SerializeSize(tx))}

	w.uint32(uint32(tx.Version))

	if err := w.count("input", len(tx.Inputs)); err != nil {
		return nil, txerr.InvalidTransaction(err)
	}
	for i, in := range tx.Inputs {
		w.hash(in.PreviousOutput.TxID)
		w.uint32(in.PreviousOutput.Vout)
		if err := w.script(in.ScriptSig); err != nil {
			return nil, txerr.InvalidTransaction(errors.Wrapf(err, "input %d script_sig", i))
		}
		w.uint32(in.Sequence)
	}

	if err := w.count("output", len(tx.Outputs)); err != nil {
		return nil, txerr.InvalidTransaction(err)
	}
	for i, out := range tx.Outputs {
		w.uint64(out.Value)
		if err := w.script(out.ScriptPubKey); err != nil {
			return nil, txerr.InvalidTransaction(errors.Wrapf(err, "output %d script_pubkey", i))
		}
	}

	w.uint32(tx.LockTime)
	return w.buf, nil
}

// SerializeSize returns the number of bytes Encode produces for tx.
func SerializeSize(tx model.Transaction) int {
	n := MinTransactionSize
	for _, in := range tx.Inputs {
		n += minInputSize + len(in.ScriptSig)
	}
	for _, out := range tx.Outputs {
		n += minOutputSize + len(out.ScriptPubKey)
	}
	return n
}

func checkedUint32(field string, v int) (uint32, error) {
	n, err := safe.Uint32(v)
	if err != nil {
		return 0, errors.Wrapf(errTooLong, "%s: %v", field, err)
	}
	return n, nil
}
