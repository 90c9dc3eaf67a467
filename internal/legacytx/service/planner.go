package service

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/bitcoin"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/builder"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/command"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/model"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/txerr"
	"go.uber.org/zap"
)

// Funding is the single output a Planner spends from.
type Funding struct {
	OutPoint model.OutPoint
	Value    uint64
}

// Planner turns send commands into unsigned transactions spending one funding output.
type Planner struct {
	validator     AddressValidator
	funding       Funding
	changeAddress string
	logger        *zap.Logger
}

// NewPlanner constructs a Planner. An empty changeAddress leaves any remainder unassigned.
func NewPlanner(validator AddressValidator, funding Funding, changeAddress string, logger *zap.Logger) *Planner {
	return &Planner{
		validator:     validator,
		funding:       funding,
		changeAddress: changeAddress,
		logger:        logger,
	}
}

// Balance returns the value of the funding output.
func (p *Planner) Balance() (btcutil.Amount, error) {
	return bitcoin.SatoshisToAmount(p.funding.Value)
}

// Plan builds an unsigned transaction paying cmd.Amount to cmd.Address, with the remainder
// sent to the change address when one is configured.
func (p *Planner) Plan(cmd command.Send) (model.Transaction, error) {
	payTo, err := p.payToScript(cmd.Address)
	if err != nil {
		return model.Transaction{}, err
	}
	if cmd.Amount > p.funding.Value {
		return model.Transaction{}, txerr.InsufficientFunds(cmd.Amount, p.funding.Value)
	}

	b := builder.New().
		AddInput(model.TxInput{
			PreviousOutput: p.funding.OutPoint,
			Sequence:       wire.MaxTxInSequenceNum,
		}).
		AddOutput(model.TxOutput{Value: cmd.Amount, ScriptPubKey: payTo})

	change := p.funding.Value - cmd.Amount
	if change > 0 && p.changeAddress != "" {
		changeScript, err := p.payToScript(p.changeAddress)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("change address: %w", err)
		}
		b.AddOutput(model.TxOutput{Value: change, ScriptPubKey: changeScript})
	}

	tx := b.Build()
	p.logger.Debug("send planned",
		zap.Stringer("funding", p.funding.OutPoint),
		zap.Uint64("amount", cmd.Amount),
		zap.Uint64("change", change),
		zap.Int("outputs", len(tx.Outputs)))
	return tx, nil
}

func (p *Planner) payToScript(address string) ([]byte, error) {
	addr, err := p.validator.Validate(address)
	if err != nil {
		return nil, err
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, txerr.InvalidAddress(err)
	}
	return script, nil
}
