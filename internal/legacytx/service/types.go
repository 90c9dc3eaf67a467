// Package service composes the codec, builder and Bitcoin helpers into wallet-facing operations.
package service

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/bitcoin"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TransactionDecoder interface {
		Decode(data []byte) (model.Transaction, error)
	}
	ScriptDecoder interface {
		Decode(script []byte) (bitcoin.ScriptInfo, error)
	}
	AddressValidator interface {
		Validate(address string) (btcutil.Address, error)
	}
)
