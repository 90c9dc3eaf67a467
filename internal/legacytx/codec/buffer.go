package codec

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
)

// reader walks buf and never indexes past its end.
type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) next(field string, n int) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, errors.Wrapf(errShortBuffer, "read %s: need %d bytes at offset %d, have %d", field, n, r.off, r.remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) uint32(field string) (uint32, error) {
	b, err := r.next(field, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) uint64(field string) (uint64, error) {
	b, err := r.next(field, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) hash(dst *chainhash.Hash) error {
	b, err := r.next("txid", chainhash.HashSize)
	if err != nil {
		return err
	}
	copy(dst[:], b)
	return nil
}

// count reads an element count and rejects it when count elements of at least
// minSize bytes each cannot fit in the remaining data, before anything is allocated.
func (r *reader) count(field string, minSize int) (int, error) {
	n, err := r.uint32(field + " count")
	if err != nil {
		return 0, err
	}
	if uint64(n)*uint64(minSize) > uint64(r.remaining()) {
		return 0, errors.Wrapf(errCountTooLarge, "%s count %d needs at least %d bytes, have %d",
			field, n, uint64(n)*uint64(minSize), r.remaining())
	}
	return int(n), nil
}

// script reads a length-prefixed script and returns a copy, or nil when empty.
func (r *reader) script(field string) ([]byte, error) {
	n, err := r.uint32(field + " length")
	if err != nil {
		return nil, err
	}
	if uint64(n) > uint64(r.remaining()) {
		return nil, errors.Wrapf(errShortBuffer, "%s length %d exceeds remaining %d bytes", field, n, r.remaining())
	}
	if n == 0 {
		return nil, nil
	}
	b, err := r.next(field, int(n))
	if err != nil {
		return nil, err
	}
	return append(make([]byte, 0, n), b...), nil
}

type writer struct {
	buf []byte
}

func (w *writer) uint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *writer) uint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *writer) hash(h chainhash.Hash) {
	w.buf = append(w.buf, h[:]...)
}

func (w *writer) count(field string, n int) error {
	v, err := checkedUint32(field+" count", n)
	if err != nil {
		return err
	}
	w.uint32(v)
	return nil
}

func (w *writer) script(b []byte) error {
	n, err := checkedUint32("length", len(b))
	if err != nil {
		return err
	}
	w.uint32(n)
	w.buf = append(w.buf, b...)
	return nil
}
