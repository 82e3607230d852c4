package keys

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash"
)

// Id is an ordered opaque identifier. Two Ids are equal iff their byte
// encodings are equal, and byte-lexicographic order of the encodings is
// the logical order of the Ids. That equivalence is what makes range
// scans over index keys correct.
type Id []byte

var ErrUnsupportedValue = errors.New("hugegraph: unsupported index value type")

// Secondary index values longer than this are folded through a hash so
// the composite key stays bounded. Equality lookups survive the fold,
// ordering does not, which is why range index values are never folded.
const MaxStringIndexLen = 256

func (id Id) Bytes() []byte {
	return id
}

func (id Id) Compare(other Id) int {
	return bytes.Compare(id, other)
}

func (id Id) Equal(other Id) bool {
	return bytes.Equal(id, other)
}

func (id Id) String() string {
	return hex.EncodeToString(id)
}

// NumberID encodes a signed integer so that byte order equals numeric
// order: flip the sign bit, then big-endian.
func NumberID(v int64) Id {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v)^(1<<63))
	return Id(b[:])
}

// AsLong is the inverse of NumberID.
func (id Id) AsLong() (int64, error) {
	if len(id) != 8 {
		return 0, fmt.Errorf("hugegraph: not a number id: %x", []byte(id))
	}
	return int64(binary.BigEndian.Uint64(id) ^ (1 << 63)), nil
}

// IndexID builds the composite index key for one indexed value:
// fixed-width index-label bytes followed by the order-preserving value
// encoding. The entity type selects the encoding rules; the type's code
// byte itself is applied as the partition prefix at the table boundary,
// so the full stored key is code + label + value.
func IndexID(t EntityType, label Id, value any) (Id, error) {
	if len(label) != 8 {
		return nil, fmt.Errorf("hugegraph: index label must be a number id, got %x", []byte(label))
	}
	var enc []byte
	var err error
	switch t {
	case RangeIndex:
		enc, err = sortableValue(value)
	case SecondaryIndex:
		enc, err = stringValue(value)
	default:
		return nil, fmt.Errorf("%w: type %s has no index key format", ErrUnsupportedValue, t)
	}
	if err != nil {
		return nil, err
	}
	id := make(Id, 0, len(label)+len(enc))
	id = append(id, label...)
	id = append(id, enc...)
	return id, nil
}

// sortableValue encodes a value so byte order matches its natural
// order. Integers and floats become fixed 8-byte encodings; strings and
// byte slices compare lexicographically as-is.
func sortableValue(value any) ([]byte, error) {
	switch v := value.(type) {
	case int:
		return NumberID(int64(v)).Bytes(), nil
	case int8:
		return NumberID(int64(v)).Bytes(), nil
	case int16:
		return NumberID(int64(v)).Bytes(), nil
	case int32:
		return NumberID(int64(v)).Bytes(), nil
	case int64:
		return NumberID(v).Bytes(), nil
	case uint8:
		return NumberID(int64(v)).Bytes(), nil
	case uint16:
		return NumberID(int64(v)).Bytes(), nil
	case uint32:
		return NumberID(int64(v)).Bytes(), nil
	case float32:
		return sortableFloat(float64(v)), nil
	case float64:
		return sortableFloat(v), nil
	case string:
		return []byte(v), nil
	case []byte:
		return bytes.Clone(v), nil
	case Id:
		return bytes.Clone(v.Bytes()), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
}

// IEEE 754 monotone transform: non-negative floats get the sign bit
// set, negative floats are bitwise inverted.
func sortableFloat(f float64) []byte {
	u := math.Float64bits(f)
	if f >= 0 {
		u ^= 1 << 63
	} else {
		u = ^u
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u)
	return b[:]
}

// stringValue renders the value in its string form for equality
// lookups. Oversized values are folded to a fixed-width hash.
func stringValue(value any) ([]byte, error) {
	var b []byte
	switch v := value.(type) {
	case string:
		b = []byte(v)
	case []byte:
		b = v
	case int:
		b = strconv.AppendInt(nil, int64(v), 10)
	case int32:
		b = strconv.AppendInt(nil, int64(v), 10)
	case int64:
		b = strconv.AppendInt(nil, v, 10)
	case float32:
		b = strconv.AppendFloat(nil, float64(v), 'g', -1, 64)
	case float64:
		b = strconv.AppendFloat(nil, v, 'g', -1, 64)
	case bool:
		b = strconv.AppendBool(nil, v)
	case Id:
		b = []byte(v.String())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
	if len(b) > MaxStringIndexLen {
		var h [8]byte
		binary.BigEndian.PutUint64(h[:], xxhash.Sum64(b))
		return h[:], nil
	}
	return bytes.Clone(b), nil
}
