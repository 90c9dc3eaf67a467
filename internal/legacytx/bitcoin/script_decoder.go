package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/model"
)

// scriptDecoder classifies scripts and extracts addresses they pay to.
type scriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder using params of the provided network.
func NewScriptDecoder(network model.Network) (ScriptDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &scriptDecoder{params: params}, nil
}

// Decode never fails on non-standard scripts; they come back with class "nonstandard" and no addresses.
// Scripts that do not parse keep the partial disassembly, which ends in "[error]".
func (d *scriptDecoder) Decode(script []byte) (ScriptInfo, error) {
	nonStandard := ScriptInfo{Class: txscript.NonStandardTy.String()}
	if len(script) == 0 {
		return nonStandard, nil
	}

	asm, err := txscript.DisasmString(script)
	if err != nil {
		nonStandard.Asm = asm
		return nonStandard, nil
	}
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(script, d.params)
	if err != nil {
		nonStandard.Asm = asm
		return nonStandard, nil
	}

	info := ScriptInfo{Class: class.String(), Asm: asm}
	if len(addrs) > 0 {
		info.Addresses = make([]string, 0, len(addrs))
		for _, addr := range addrs {
			info.Addresses = append(info.Addresses, addr.EncodeAddress())
		}
	}
	return info, nil
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
