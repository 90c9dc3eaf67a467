package service

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/bitcoin"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/model"
	"github.com/goodnatureofminers/legacytx/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultInspectWorkers = 4

// Inspection is the outcome for one payload. Err is set only when the payload could not be decoded.
// A decoded transaction that cannot be fully described keeps TxID or TotalValue at zero and lists why in Issues.
type Inspection struct {
	Index       int
	Transaction model.Transaction
	TxID        chainhash.Hash
	TotalValue  uint64
	Outputs     []bitcoin.ScriptInfo
	Issues      []error
	Err         error
}

// Inspector decodes raw transactions concurrently and describes their outputs.
type Inspector struct {
	decoder TransactionDecoder
	scripts ScriptDecoder
	workers int
	logger  *zap.Logger
}

// NewInspector constructs an Inspector. workers below one fall back to a small default.
func NewInspector(decoder TransactionDecoder, scripts ScriptDecoder, workers int, logger *zap.Logger) *Inspector {
	if workers < 1 {
		workers = defaultInspectWorkers
	}
	return &Inspector{
		decoder: decoder,
		scripts: scripts,
		workers: workers,
		logger:  logger,
	}
}

// Inspect returns one Inspection per payload, in payload order. A malformed payload only
// sets that entry's Err; the returned error is reserved for cancellation.
func (i *Inspector) Inspect(ctx context.Context, payloads [][]byte) ([]Inspection, error) {
	results := make([]Inspection, len(payloads))

	err := workerpool.Process(ctx, i.workers, payloads, func(_ context.Context, idx int, payload []byte) error {
		results[idx] = i.inspect(idx, payload)
		if results[idx].Err != nil {
			i.logger.Warn("payload rejected",
				zap.Int("index", idx),
				zap.Int("size", len(payload)),
				zap.Error(results[idx].Err))
		} else if len(results[idx].Issues) > 0 {
			i.logger.Debug("payload partially described",
				zap.Int("index", idx),
				zap.Errors("issues", results[idx].Issues))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (i *Inspector) inspect(idx int, payload []byte) Inspection {
	res := Inspection{Index: idx}

	tx, err := i.decoder.Decode(payload)
	if err != nil {
		res.Err = fmt.Errorf("decode payload %d: %w", idx, err)
		return res
	}
	res.Transaction = tx

	if total, err := tx.TotalOutputValue(); err != nil {
		res.Issues = append(res.Issues, fmt.Errorf("total value: %w", err))
	} else {
		res.TotalValue = total
	}
	// btcd carries values as int64, so anything above math.MaxInt64 has no legacy txid here.
	if txid, err := bitcoin.TxHash(tx); err != nil {
		res.Issues = append(res.Issues, fmt.Errorf("txid: %w", err))
	} else {
		res.TxID = txid
	}

	res.Outputs = make([]bitcoin.ScriptInfo, 0, len(tx.Outputs))
	for outIdx, out := range tx.Outputs {
		info, err := i.scripts.Decode(out.ScriptPubKey)
		if err != nil {
			res.Issues = append(res.Issues, fmt.Errorf("output %d script: %w", outIdx, err))
		}
		res.Outputs = append(res.Outputs, info)
	}
	return res
}
