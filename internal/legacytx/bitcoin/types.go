// Package bitcoin bridges legacy transactions to btcd types and Bitcoin network rules.
package bitcoin

import "github.com/btcsuite/btcd/btcutil"

type (
	ScriptDecoder interface {
		Decode(script []byte) (ScriptInfo, error)
	}
	AddressValidator interface {
		Validate(address string) (btcutil.Address, error)
	}
)

// ScriptInfo is a human-readable view of an output script.
type ScriptInfo struct {
	Class     string
	Asm       string
	Addresses []string
}
