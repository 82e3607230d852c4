package table

import (
	"fmt"

	"github.com/zyoo/hugegraph"
	"github.com/zyoo/hugegraph/keys"
	"github.com/zyoo/hugegraph/query"
)

// RangeIndex resolves equality and range conditions over one field
// into a point lookup or a bounded scan. Index keys order by field
// value, so the scan's byte range is exactly the value range.
type RangeIndex struct {
	Table
}

func NewRangeIndex() *RangeIndex {
	return &RangeIndex{Table{typ: keys.RangeIndex}}
}

func (t *RangeIndex) QueryByCondition(s *hugegraph.Session, q *query.Query) (*Entries, error) {
	if q.ConditionCount() == 0 {
		return nil, fmt.Errorf("%w: empty range index query", ErrInvalidQuery)
	}

	labelValue, ok := q.EqValue(query.IndexLabelID)
	if !ok {
		return nil, fmt.Errorf("%w: please specify the index label", ErrInvalidQuery)
	}
	label, ok := labelValue.(keys.Id)
	if !ok {
		return nil, fmt.Errorf("%w: index label must be an id, got %T", ErrInvalidQuery, labelValue)
	}

	relations, err := fieldRelations(q)
	if err != nil {
		return nil, err
	}

	// classify into eq / (min, minEq) / (max, maxEq)
	var eq, min, max any
	var minEq, maxEq bool
	for _, r := range relations {
		if r.Key != query.FieldValues {
			return nil, fmt.Errorf("%w: expect FIELD_VALUES relation, got %s", ErrInvalidQuery, r.Key)
		}
		switch r.Op {
		case query.Eq:
			eq = r.Value
		case query.Gte:
			min, minEq = r.Value, true
		case query.Gt:
			min, minEq = r.Value, false
		case query.Lte:
			max, maxEq = r.Value, true
		case query.Lt:
			max, maxEq = r.Value, false
		default:
			return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedRelation, r.Op)
		}
	}

	if eq != nil {
		id, err := keys.IndexID(q.ResultType(), label, eq)
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

	// the scan primitive is [begin, end): an exclusive lower bound and
	// an inclusive upper bound both get pushed one key forward
	if min == nil {
		min, minEq = int64(0), true
	}
	minID, err := keys.IndexID(q.ResultType(), label, min)
	if err != nil {
		return nil, err
	}
	begin := minID.Bytes()
	if !minEq {
		if begin, err = keys.Increase(begin); err != nil {
			return nil, err
		}
	}

	var end []byte
	if max != nil {
		maxID, err := keys.IndexID(q.ResultType(), label, max)
		if err != nil {
			return nil, err
		}
		end = maxID.Bytes()
		if maxEq {
			if end, err = keys.Increase(end); err != nil {
				return nil, err
			}
		}
	}

	IndexLookups.WithLabelValues(t.Name(), "range").Inc()
	cols, err := t.scan(s, begin, end)
	if err != nil {
		return nil, err
	}
	return newEntries(cols), nil
}

// fieldRelations collects the FIELD_VALUES relations: either a single
// top-level relation next to the label condition, or one AND node
// carrying both bounds (18 < age AND age < 20). Anything else,
// including three or more bounds on one field, is malformed.
func fieldRelations(q *query.Query) ([]query.Relation, error) {
	if r, ok := q.Relation(query.FieldValues); ok {
		if q.ConditionCount() != 2 {
			return nil, fmt.Errorf("%w: expect one FIELD_VALUES relation beside the index label", ErrInvalidQuery)
		}
		return []query.Relation{r}, nil
	}

	and, ok := q.FirstAnd()
	if !ok {
		return nil, fmt.Errorf("%w: expect a FIELD_VALUES relation or AND condition", ErrInvalidQuery)
	}
	if q.ConditionCount() != 2 {
		return nil, fmt.Errorf("%w: expect one AND condition beside the index label", ErrInvalidQuery)
	}
	left, lok := and.Left.(query.Relation)
	right, rok := and.Right.(query.Relation)
	if !lok || !rok {
		return nil, fmt.Errorf("%w: expect relations in AND condition", ErrInvalidQuery)
	}
	return []query.Relation{left, right}, nil
}
