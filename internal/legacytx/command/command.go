// Package command turns command-line tokens into typed wallet commands.
package command

import (
	"strconv"

	"github.com/goodnatureofminers/legacytx/internal/legacytx/txerr"
)

const (
	sendName    = "send"
	balanceName = "balance"
)

const (
	msgNoCommand     = "No command provided"
	msgSendArgs      = "send requires amount and address"
	msgInvalidAmount = "Invalid amount for send"
	msgUnknown       = "Unknown command"
)

// Command is either Send or Balance.
type Command interface {
	isCommand()
}

// Send transfers Amount smallest units to Address.
type Send struct {
	Amount  uint64
	Address string
}

// Balance asks for the spendable balance.
type Balance struct{}

func (Send) isCommand()    {}
func (Balance) isCommand() {}

// Parse translates args into a Command. Failures match txerr.ErrParse.
//
//	send <amount> <address>
//	balance
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, txerr.Parse(msgNoCommand)
	}

	switch args[0] {
	case sendName:
		if len(args) != 3 {
			return nil, txerr.Parse(msgSendArgs)
		}
		amount, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return nil, txerr.Parse(msgInvalidAmount)
		}
		return Send{Amount: amount, Address: args[2]}, nil
	case balanceName:
		return Balance{}, nil
	default:
		return nil, txerr.Parse(msgUnknown)
	}
}
