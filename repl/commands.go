package repl

import (
	"errors"
	"fmt"
	"strconv"

	hugegraph "github.com/zyoo/hugegraph"
	"github.com/zyoo/hugegraph/keys"
	"github.com/zyoo/hugegraph/query"
	"github.com/zyoo/hugegraph/table"
)

var ErrBadArgs = errors.New("bad arguments")

func (r *REPL) commandOpen(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: open <dir>", ErrBadArgs)
	}
	if r.store != nil {
		return errors.New("a store is already open")
	}
	store, err := hugegraph.Open(args[0], hugegraph.Options{})
	if err != nil {
		return err
	}
	r.store = store
	r.session = store.NewSession()
	r.tables = make(map[keys.EntityType]table.BackendTable)
	for _, t := range tableNames {
		r.tables[t] = table.New(t)
	}
	fmt.Printf("session %s\n", r.session.ID())
	return nil
}

func (r *REPL) commandClose() error {
	if r.store == nil {
		return ErrNoStore
	}
	_ = r.session.Close()
	err := r.store.Close()
	r.store, r.session, r.tables = nil, nil, nil
	return err
}

func (r *REPL) commandNext(args []string) error {
	if r.store == nil {
		return ErrNoStore
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: next <table>", ErrBadArgs)
	}
	t, err := parseTable(args[0])
	if err != nil {
		return err
	}
	counters := r.tables[keys.Counter].(*table.Counters)
	id, err := counters.NextID(r.session, t)
	if err != nil {
		return err
	}
	v, err := id.AsLong()
	if err != nil {
		return err
	}
	fmt.Printf("%d\n", v)
	return nil
}

func (r *REPL) commandPut(args []string) error {
	if r.store == nil {
		return ErrNoStore
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: put <table> <key> <value>", ErrBadArgs)
	}
	t, err := parseTable(args[0])
	if err != nil {
		return err
	}
	tbl := r.tables[t]
	if err := tbl.Put(r.session, []byte(args[1]), []byte(args[2])); err != nil {
		return err
	}
	return tbl.Commit(r.session)
}

func (r *REPL) commandGet(args []string) error {
	if r.store == nil {
		return ErrNoStore
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get <table> <key>", ErrBadArgs)
	}
	t, err := parseTable(args[0])
	if err != nil {
		return err
	}
	value, err := r.tables[t].Get(r.session, []byte(args[1]))
	if err != nil {
		return err
	}
	if value == nil {
		fmt.Println("(absent)")
		return nil
	}
	fmt.Printf("%q\n", value)
	return nil
}

func (r *REPL) commandScan(args []string) error {
	if r.store == nil {
		return ErrNoStore
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: scan <table>", ErrBadArgs)
	}
	t, err := parseTable(args[0])
	if err != nil {
		return err
	}
	begin := []byte{t.Code()}
	end, err := keys.Increase(begin)
	if err != nil {
		return err
	}
	cols := r.session.Scan(begin, end)
	defer cols.Close()
	n := 0
	for cols.Next() {
		col := cols.Column()
		fmt.Printf("%x\t%q\n", col.Key[1:], col.Value)
		n++
	}
	if err := cols.Err(); err != nil {
		return err
	}
	fmt.Printf("(%d rows)\n", n)
	return nil
}

func (r *REPL) commandEq(args []string) error {
	if r.store == nil {
		return ErrNoStore
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: eq <label> <value>", ErrBadArgs)
	}
	label, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return err
	}
	q := query.New(keys.SecondaryIndex).Where(
		query.NewRelation(query.IndexLabelID, query.Eq, keys.NumberID(label)),
		query.NewRelation(query.FieldValues, query.Eq, args[1]),
	)
	return r.printEntries(r.tables[keys.SecondaryIndex].QueryByCondition(r.session, q))
}

func (r *REPL) commandRange(args []string) error {
	if r.store == nil {
		return ErrNoStore
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: range <label> <min> <max>", ErrBadArgs)
	}
	label, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return err
	}
	min, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return err
	}
	max, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return err
	}
	q := query.New(keys.RangeIndex).Where(
		query.NewRelation(query.IndexLabelID, query.Eq, keys.NumberID(label)),
		query.NewAnd(
			query.NewRelation(query.FieldValues, query.Gte, min),
			query.NewRelation(query.FieldValues, query.Lt, max),
		),
	)
	return r.printEntries(r.tables[keys.RangeIndex].QueryByCondition(r.session, q))
}

func (r *REPL) printEntries(entries *table.Entries, err error) error {
	if err != nil {
		return err
	}
	defer entries.Close()
	n := 0
	for entries.Next() {
		entry := entries.Entry()
		fmt.Printf("%s\t%q\n", entry.ID, entry.Columns[0].Value)
		n++
	}
	if err := entries.Err(); err != nil {
		return err
	}
	fmt.Printf("(%d entries)\n", n)
	return nil
}
