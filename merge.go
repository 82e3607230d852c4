package hugegraph

import (
	"bytes"
	"io"

	"github.com/cockroachdb/pebble"
	"github.com/zyoo/hugegraph/keys"
)

// merger dispatches on the partition byte of the key. Counter keys sum
// their 8-byte native-endian operands, which is what makes the
// allocator's fire-and-forget "merge add 1" work without an atomic
// read-modify-write. Every other partition resolves merge as
// last-writer-wins.
func merger(key, value []byte) (pebble.ValueMerger, error) {
	if len(key) > 0 && key[0] == keys.Counter.Code() {
		return &counterMerger{sum: keys.DecodeCounter(value)}, nil
	}
	return &lastValueMerger{value: bytes.Clone(value)}, nil
}

type counterMerger struct {
	sum int64
}

func (m *counterMerger) MergeNewer(value []byte) error {
	m.sum += keys.DecodeCounter(value)
	return nil
}

func (m *counterMerger) MergeOlder(value []byte) error {
	m.sum += keys.DecodeCounter(value)
	return nil
}

func (m *counterMerger) Finish(includesBase bool) ([]byte, io.Closer, error) {
	return keys.EncodeCounter(m.sum), nil, nil
}

type lastValueMerger struct {
	value []byte
}

func (m *lastValueMerger) MergeNewer(value []byte) error {
	m.value = bytes.Clone(value)
	return nil
}

func (m *lastValueMerger) MergeOlder(value []byte) error {
	// current value is already the newer one
	return nil
}

func (m *lastValueMerger) Finish(includesBase bool) ([]byte, io.Closer, error) {
	return m.value, nil, nil
}
