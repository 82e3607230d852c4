package hugegraph

import (
	"bytes"

	"github.com/cockroachdb/pebble"
)

// Column is one raw key/value pair as stored.
type Column struct {
	Key   []byte
	Value []byte
}

// ColumnIterator streams columns in ascending key order. Err must be
// checked after Next returns false.
type ColumnIterator interface {
	Next() bool
	Column() Column
	Err() error
	Close() error
}

// Columns walks a pebble iterator. Key and value bytes are copied out,
// so a Column stays valid after the iterator advances or closes.
type Columns struct {
	iter    *pebble.Iterator
	cur     Column
	started bool
}

func (c *Columns) Next() bool {
	var ok bool
	if !c.started {
		ok = c.iter.First()
		c.started = true
	} else {
		ok = c.iter.Next()
	}
	if !ok {
		return false
	}
	c.cur = Column{
		Key:   bytes.Clone(c.iter.Key()),
		Value: bytes.Clone(c.iter.Value()),
	}
	return true
}

func (c *Columns) Column() Column {
	return c.cur
}

func (c *Columns) Err() error {
	return c.iter.Error()
}

func (c *Columns) Close() error {
	return c.iter.Close()
}

// ColumnList is the point-lookup result: zero or one columns, already
// materialized.
type ColumnList struct {
	cols []Column
	pos  int
	cur  Column
}

func NewColumnList(cols ...Column) *ColumnList {
	return &ColumnList{cols: cols}
}

func (c *ColumnList) Next() bool {
	if c.pos >= len(c.cols) {
		return false
	}
	c.cur = c.cols[c.pos]
	c.pos++
	return true
}

func (c *ColumnList) Column() Column {
	return c.cur
}

func (c *ColumnList) Err() error {
	return nil
}

func (c *ColumnList) Close() error {
	return nil
}
