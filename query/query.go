package query

import "github.com/zyoo/hugegraph/keys"

// Query is a condition query against one result entity type. Queries
// are built per call and discarded once the scan completes; they carry
// no session state.
type Query struct {
	resultType keys.EntityType
	conditions []Condition
}

func New(resultType keys.EntityType) *Query {
	return &Query{resultType: resultType}
}

func (q *Query) ResultType() keys.EntityType {
	return q.resultType
}

func (q *Query) Where(conds ...Condition) *Query {
	q.conditions = append(q.conditions, conds...)
	return q
}

func (q *Query) Conditions() []Condition {
	return q.conditions
}

func (q *Query) ConditionCount() int {
	return len(q.conditions)
}

// EqValue returns the value of the top-level EQ relation on key, if any.
func (q *Query) EqValue(key ColumnKey) (any, bool) {
	for _, c := range q.conditions {
		if r, ok := c.(Relation); ok && r.Key == key && r.Op == Eq {
			return r.Value, true
		}
	}
	return nil, false
}

// Relation returns the top-level relation on key, if any.
func (q *Query) Relation(key ColumnKey) (Relation, bool) {
	for _, c := range q.conditions {
		if r, ok := c.(Relation); ok && r.Key == key {
			return r, true
		}
	}
	return Relation{}, false
}

// FirstAnd returns the first top-level AND condition, if any.
func (q *Query) FirstAnd() (And, bool) {
	for _, c := range q.conditions {
		if a, ok := c.(And); ok {
			return a, true
		}
	}
	return And{}, false
}

// AllSysprop reports whether every relation in the query, including
// those nested under AND nodes, addresses a system key.
func (q *Query) AllSysprop() bool {
	for _, c := range q.conditions {
		if !allSysprop(c) {
			return false
		}
	}
	return true
}

func allSysprop(c Condition) bool {
	switch v := c.(type) {
	case Relation:
		_, ok := v.Key.(SystemKey)
		return ok
	case And:
		return allSysprop(v.Left) && allSysprop(v.Right)
	default:
		return false
	}
}
