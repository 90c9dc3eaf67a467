// Package builder assembles legacy transactions through chained calls.
package builder

import "github.com/goodnatureofminers/legacytx/internal/legacytx/model"

const (
	defaultVersion  int32  = 1
	defaultLockTime uint32 = 0
)

// Builder accumulates transaction fields. Every setter returns the same *Builder,
// which remains valid after Build.
type Builder struct {
	version  int32
	inputs   []model.TxInput
	outputs  []model.TxOutput
	lockTime uint32
}

// New returns a builder preset to version 1, lock time 0 and no inputs or outputs.
func New() *Builder {
	return &Builder{
		version:  defaultVersion,
		lockTime: defaultLockTime,
	}
}

// Version overwrites the transaction version.
func (b *Builder) Version(version int32) *Builder {
	b.version = version
	return b
}

// AddInput appends input after any previously added inputs.
func (b *Builder) AddInput(input model.TxInput) *Builder {
	b.inputs = append(b.inputs, input.Clone())
	return b
}

// AddOutput appends output after any previously added outputs.
func (b *Builder) AddOutput(output model.TxOutput) *Builder {
	b.outputs = append(b.outputs, output.Clone())
	return b
}

// LockTime overwrites the transaction lock time.
func (b *Builder) LockTime(lockTime uint32) *Builder {
	b.lockTime = lockTime
	return b
}

// Build returns the assembled transaction. No validation is performed.
// The result shares no memory with the builder.
func (b *Builder) Build() model.Transaction {
	tx := model.Transaction{
		Version:  b.version,
		Inputs:   []model.TxInput{},
		Outputs:  []model.TxOutput{},
		LockTime: b.lockTime,
	}
	for _, in := range b.inputs {
		tx.Inputs = append(tx.Inputs, in.Clone())
	}
	for _, out := range b.outputs {
		tx.Outputs = append(tx.Outputs, out.Clone())
	}
	return tx
}
