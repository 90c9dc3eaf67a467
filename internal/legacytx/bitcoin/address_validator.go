package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/model"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/txerr"
)

type addressValidator struct {
	params *chaincfg.Params
}

// NewAddressValidator returns a validator accepting only addresses of the given network.
func NewAddressValidator(network model.Network) (AddressValidator, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &addressValidator{params: params}, nil
}

// Validate decodes address. Failures match txerr.ErrInvalidAddress.
func (v *addressValidator) Validate(address string) (btcutil.Address, error) {
	addr, err := btcutil.DecodeAddress(address, v.params)
	if err != nil {
		return nil, txerr.InvalidAddress(fmt.Errorf("decode %q: %w", address, err))
	}
	if !addr.IsForNet(v.params) {
		return nil, txerr.InvalidAddress(fmt.Errorf("%q is not a %s address", address, v.params.Name))
	}
	return addr, nil
}
