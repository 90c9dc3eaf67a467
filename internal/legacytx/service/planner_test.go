package service

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/bitcoin"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/command"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/model"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/txerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	genesisAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	genesisP2PKH   = "76a91462e907b15cbf27d5425399ebf6f0fb50ebb88f1888ac"
	bech32Address  = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	bech32Script   = "0014751e76e8199196d454941c45d1b3a323f1433bd6"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestPlanner_Plan(t *testing.T) {
	validator, err := bitcoin.NewAddressValidator(model.Mainnet)
	require.NoError(t, err)

	funding := Funding{OutPoint: model.NewOutPoint(chainhash.Hash{0xf0}, 1), Value: 10_000}

	tests := []struct {
		name          string
		changeAddress string
		cmd           command.Send
		wantOutputs   []model.TxOutput
		wantErr       error
	}{
		{
			name:          "pays amount and returns change",
			changeAddress: bech32Address,
			cmd:           command.Send{Amount: 4_000, Address: genesisAddress},
			wantOutputs: []model.TxOutput{
				{Value: 4_000, ScriptPubKey: mustHex(t, genesisP2PKH)},
				{Value: 6_000, ScriptPubKey: mustHex(t, bech32Script)},
			},
		},
		{
			name:        "no change address leaves remainder",
			cmd:         command.Send{Amount: 4_000, Address: genesisAddress},
			wantOutputs: []model.TxOutput{{Value: 4_000, ScriptPubKey: mustHex(t, genesisP2PKH)}},
		},
		{
			name:          "exact amount has no change output",
			changeAddress: bech32Address,
			cmd:           command.Send{Amount: 10_000, Address: bech32Address},
			wantOutputs:   []model.TxOutput{{Value: 10_000, ScriptPubKey: mustHex(t, bech32Script)}},
		},
		{
			name:    "insufficient funds",
			cmd:     command.Send{Amount: 10_001, Address: genesisAddress},
			wantErr: txerr.ErrInsufficientFunds,
		},
		{
			name:    "invalid address",
			cmd:     command.Send{Amount: 5000, Address: "1A2b3C"},
			wantErr: txerr.ErrInvalidAddress,
		},
		{
			name:          "invalid change address",
			changeAddress: "nope",
			cmd:           command.Send{Amount: 1, Address: genesisAddress},
			wantErr:       txerr.ErrInvalidAddress,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlanner(validator, funding, tt.changeAddress, zap.NewNop())
			got, err := p.Plan(tt.cmd)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "Plan() error = %v, want %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, int32(1), got.Version)
			assert.Equal(t, uint32(0), got.LockTime)
			require.Len(t, got.Inputs, 1)
			assert.Equal(t, funding.OutPoint, got.Inputs[0].PreviousOutput)
			assert.Equal(t, uint32(wire.MaxTxInSequenceNum), got.Inputs[0].Sequence)
			assert.Empty(t, got.Inputs[0].ScriptSig)
			assert.Equal(t, tt.wantOutputs, got.Outputs)
		})
	}
}

func TestPlanner_ValidatorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	validator := NewMockAddressValidator(ctrl)
	validator.EXPECT().Validate("addr").Return(nil, txerr.InvalidAddress(errors.New("rejected")))

	_, err := NewPlanner(validator, Funding{Value: 1}, "", zap.NewNop()).Plan(command.Send{Amount: 1, Address: "addr"})
	assert.ErrorIs(t, err, txerr.ErrInvalidAddress)
}

func TestPlanner_Balance(t *testing.T) {
	got, err := NewPlanner(nil, Funding{Value: 250_000_000}, "", zap.NewNop()).Balance()
	require.NoError(t, err)
	assert.Equal(t, btcutil.Amount(250_000_000), got)
	assert.Equal(t, "2.5 BTC", got.String())
}
