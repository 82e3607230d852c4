package table

import (
	"fmt"

	"github.com/zyoo/hugegraph"
	"github.com/zyoo/hugegraph/keys"
	"github.com/zyoo/hugegraph/query"
)

// SecondaryIndex resolves exact-match index queries: one composite key
// per (label, value), one point lookup.
type SecondaryIndex struct {
	Table
}

func NewSecondaryIndex() *SecondaryIndex {
	return &SecondaryIndex{Table{typ: keys.SecondaryIndex}}
}

func (t *SecondaryIndex) QueryByCondition(s *hugegraph.Session, q *query.Query) (*Entries, error) {
	if !q.AllSysprop() || q.ConditionCount() != 2 {
		return nil, fmt.Errorf("%w: secondary index query needs exactly INDEX_LABEL_ID and FIELD_VALUES conditions", ErrInvalidQuery)
	}

	labelValue, ok := q.EqValue(query.IndexLabelID)
	if !ok {
		return nil, fmt.Errorf("%w: please specify the index label", ErrInvalidQuery)
	}
	label, ok := labelValue.(keys.Id)
	if !ok {
		return nil, fmt.Errorf("%w: index label must be an id, got %T", ErrInvalidQuery, labelValue)
	}
	value, ok := q.EqValue(query.FieldValues)
	if !ok {
		return nil, fmt.Errorf("%w: please specify the index key", ErrInvalidQuery)
	}

	id, err := keys.IndexID(q.ResultType(), label, value)
	if err != nil {
		return nil, err
	}
	IndexLookups.WithLabelValues(t.Name(), "point").Inc()
	cols, err := t.QueryByID(s, id)
	if err != nil {
		return nil, err
	}
	return newEntries(cols), nil
}
