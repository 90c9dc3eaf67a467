package codec

import (
	"time"

	"github.com/goodnatureofminers/legacytx/internal/legacytx/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	CodecMetrics interface {
		Observe(operation string, size int, err error, started time.Time)
	}
)

// ObservedCodec reports every Decode and Encode call to a CodecMetrics sink.
type ObservedCodec struct {
	metrics CodecMetrics
}

func NewObservedCodec(metrics CodecMetrics) *ObservedCodec {
	return &ObservedCodec{metrics: metrics}
}

func (c *ObservedCodec) Decode(data []byte) (tx model.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("decode", len(data), err, started)
	}()
	return Decode(data)
}

func (c *ObservedCodec) Encode(tx model.Transaction) (data []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("encode", len(data), err, started)
	}()
	return Encode(tx)
}
