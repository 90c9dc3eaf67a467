package bitcoin

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/model"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/txerr"
	"github.com/goodnatureofminers/legacytx/pkg/safe"
)

var errWitness = errors.New("witness data is not part of a legacy transaction")

// ToMsgTx maps tx onto a btcd wire transaction. Values above the wire's int64 range fail.
func ToMsgTx(tx model.Transaction) (*wire.MsgTx, error) {
	msg := wire.NewMsgTx(tx.Version)
	msg.LockTime = tx.LockTime

	for _, in := range tx.Inputs {
		txid := in.PreviousOutput.TxID
		txIn := wire.NewTxIn(wire.NewOutPoint(&txid, in.PreviousOutput.Vout), cloneScript(in.ScriptSig), nil)
		txIn.Sequence = in.Sequence
		msg.AddTxIn(txIn)
	}
	for idx, out := range tx.Outputs {
		value, err := safe.Int64(out.Value)
		if err != nil {
			return nil, txerr.InvalidTransaction(fmt.Errorf("output %d value: %w", idx, err))
		}
		msg.AddTxOut(wire.NewTxOut(value, cloneScript(out.ScriptPubKey)))
	}
	return msg, nil
}

// FromMsgTx maps a btcd wire transaction back to the domain type. Negative values and witness data fail.
func FromMsgTx(msg *wire.MsgTx) (model.Transaction, error) {
	tx := model.Transaction{
		Version:  msg.Version,
		Inputs:   make([]model.TxInput, 0, len(msg.TxIn)),
		Outputs:  make([]model.TxOutput, 0, len(msg.TxOut)),
		LockTime: msg.LockTime,
	}
	for idx, in := range msg.TxIn {
		if len(in.Witness) > 0 {
			return model.Transaction{}, txerr.InvalidTransaction(fmt.Errorf("input %d: %w", idx, errWitness))
		}
		tx.Inputs = append(tx.Inputs, model.TxInput{
			PreviousOutput: model.NewOutPoint(in.PreviousOutPoint.Hash, in.PreviousOutPoint.Index),
			ScriptSig:      cloneScript(in.SignatureScript),
			Sequence:       in.Sequence,
		})
	}
	for idx, out := range msg.TxOut {
		value, err := safe.Uint64(out.Value)
		if err != nil {
			return model.Transaction{}, txerr.InvalidTransaction(fmt.Errorf("output %d value: %w", idx, err))
		}
		tx.Outputs = append(tx.Outputs, model.TxOutput{
			Value:        value,
			ScriptPubKey: cloneScript(out.PkScript),
		})
	}
	return tx, nil
}

// TxHash returns the Bitcoin transaction id of tx, computed over the standard legacy serialization.
func TxHash(tx model.Transaction) (chainhash.Hash, error) {
	msg, err := ToMsgTx(tx)
	if err != nil {
		return chainhash.Hash{}, err
	}
	return msg.TxHash(), nil
}

// SatoshisToAmount converts a value field into a btcutil.Amount, failing above the int64 range.
func SatoshisToAmount(value uint64) (btcutil.Amount, error) {
	v, err := safe.Int64(value)
	if err != nil {
		return 0, err
	}
	return btcutil.Amount(v), nil
}

func cloneScript(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return append(make([]byte, 0, len(b)), b...)
}
