package keys

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrIncreaseOverflow = errors.New("hugegraph: no successor for all-0xff key")

// EncodeCounter renders a counter value as the fixed 8-byte
// native-endian form the store's additive merge operates on. The byte
// order must stay the same for the lifetime of a deployment; changing
// it corrupts existing counters.
func EncodeCounter(v int64) []byte {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], uint64(v))
	return b[:]
}

func DecodeCounter(b []byte) int64 {
	if len(b) != 8 {
		return 0
	}
	return int64(binary.NativeEndian.Uint64(b))
}

// CounterOne is the merge delta that advances a counter by one.
func CounterOne() []byte {
	return EncodeCounter(1)
}

// Increase returns the immediate lexicographic successor of key among
// byte strings of the same length: the trailing byte is incremented,
// carrying over 0xff bytes. Used to turn inclusive bounds into the
// half-open [begin, end) form the store's scan wants. An all-0xff key
// has no same-length successor.
func Increase(key []byte) ([]byte, error) {
	next := bytes.Clone(key)
	for i := len(next) - 1; i >= 0; i-- {
		next[i]++
		if next[i] != 0 {
			return next, nil
		}
	}
	return nil, fmt.Errorf("%w: %x", ErrIncreaseOverflow, key)
}
