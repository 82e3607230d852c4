package table

import (
	"github.com/zyoo/hugegraph"
	"github.com/zyoo/hugegraph/keys"
)

// Entry is one stored record: the columns grouped under a single
// logical id. Index queries produce one entry per column, keyed by the
// stored id, in ascending byte order — which by construction of the
// index keys is ascending field-value order.
type Entry struct {
	ID      keys.Id
	Columns []hugegraph.Column
}

// Entries assembles a column stream into entries.
type Entries struct {
	cols hugegraph.ColumnIterator
	cur  Entry
}

func newEntries(cols hugegraph.ColumnIterator) *Entries {
	return &Entries{cols: cols}
}

func (e *Entries) Next() bool {
	if !e.cols.Next() {
		return false
	}
	col := e.cols.Column()
	e.cur = Entry{
		ID:      keys.Id(col.Key),
		Columns: []hugegraph.Column{col},
	}
	return true
}

func (e *Entries) Entry() Entry {
	return e.cur
}

func (e *Entries) Err() error {
	return e.cols.Err()
}

func (e *Entries) Close() error {
	return e.cols.Close()
}
