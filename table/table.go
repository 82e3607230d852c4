package table

import (
	"errors"
	"fmt"

	"github.com/zyoo/hugegraph"
	"github.com/zyoo/hugegraph/keys"
	"github.com/zyoo/hugegraph/query"
)

var (
	ErrInvalidQuery        = errors.New("hugegraph: invalid query")
	ErrUnsupportedQuery    = errors.New("hugegraph: query by condition unsupported")
	ErrUnsupportedRelation = errors.New("hugegraph: unsupported relation")
	ErrAllocationExhausted = errors.New("hugegraph: id allocation did not converge")
)

// BackendTable is the closed set of table behaviors: every entity type
// maps to exactly one of them via New.
type BackendTable interface {
	Type() keys.EntityType
	Name() string
	Get(s *hugegraph.Session, key []byte) ([]byte, error)
	Put(s *hugegraph.Session, key, value []byte) error
	Merge(s *hugegraph.Session, key, delta []byte) error
	Commit(s *hugegraph.Session) error
	QueryByID(s *hugegraph.Session, id keys.Id) (hugegraph.ColumnIterator, error)
	QueryByCondition(s *hugegraph.Session, q *query.Query) (*Entries, error)
}

// New binds an entity type to its table. Index and counter types get
// their specialized translators, everything else gets plain point
// access.
func New(t keys.EntityType) BackendTable {
	switch t {
	case keys.SecondaryIndex:
		return NewSecondaryIndex()
	case keys.RangeIndex:
		return NewRangeIndex()
	case keys.Counter:
		return NewCounters()
	case keys.IndexLabel:
		return NewIndexLabels()
	default:
		return &Table{typ: t}
	}
}

// Table binds an entity type to its keyspace partition. It holds no
// session state; every call acts through the caller's session.
type Table struct {
	typ keys.EntityType
}

func (t *Table) Type() keys.EntityType {
	return t.typ
}

func (t *Table) Name() string {
	return t.typ.TableName()
}

// key prefixes a within-table key with the partition byte.
func (t *Table) key(k []byte) []byte {
	full := make([]byte, 0, 1+len(k))
	full = append(full, t.typ.Code())
	return append(full, k...)
}

func (t *Table) Get(s *hugegraph.Session, key []byte) ([]byte, error) {
	return s.Get(t.key(key))
}

func (t *Table) Put(s *hugegraph.Session, key, value []byte) error {
	return s.Put(t.key(key), value)
}

func (t *Table) Merge(s *hugegraph.Session, key, delta []byte) error {
	return s.Merge(t.key(key), delta)
}

func (t *Table) Commit(s *hugegraph.Session) error {
	return s.Commit()
}

// QueryByID is a point lookup: zero or one columns for the id.
func (t *Table) QueryByID(s *hugegraph.Session, id keys.Id) (hugegraph.ColumnIterator, error) {
	value, err := t.Get(s, id.Bytes())
	if err != nil {
		return nil, err
	}
	if value == nil {
		return hugegraph.NewColumnList(), nil
	}
	return hugegraph.NewColumnList(hugegraph.Column{Key: id.Bytes(), Value: value}), nil
}

// QueryByCondition has no default translation; the index tables shadow
// this with their own.
func (t *Table) QueryByCondition(s *hugegraph.Session, q *query.Query) (*Entries, error) {
	return nil, fmt.Errorf("%w: table %s", ErrUnsupportedQuery, t.Name())
}

// scan walks [begin, end) within this partition. A nil end runs to the
// end of the partition, never into the next one.
func (t *Table) scan(s *hugegraph.Session, begin, end []byte) (hugegraph.ColumnIterator, error) {
	var fullEnd []byte
	if end == nil {
		var err error
		fullEnd, err = keys.Increase([]byte{t.typ.Code()})
		if err != nil {
			return nil, err
		}
	} else {
		fullEnd = t.key(end)
	}
	cols := s.Scan(t.key(begin), fullEnd)
	return &strippedColumns{inner: cols, strip: 1}, nil
}

// strippedColumns removes the partition prefix so callers see
// within-table keys, the way a real column family would.
type strippedColumns struct {
	inner hugegraph.ColumnIterator
	strip int
	cur   hugegraph.Column
}

func (c *strippedColumns) Next() bool {
	if !c.inner.Next() {
		return false
	}
	col := c.inner.Column()
	c.cur = hugegraph.Column{Key: col.Key[c.strip:], Value: col.Value}
	return true
}

func (c *strippedColumns) Column() hugegraph.Column {
	return c.cur
}

func (c *strippedColumns) Err() error {
	return c.inner.Err()
}

func (c *strippedColumns) Close() error {
	return c.inner.Close()
}
