package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zyoo/hugegraph/keys"
)

func TestEqValue(t *testing.T) {
	label := keys.NumberID(1)
	q := New(keys.SecondaryIndex).Where(
		NewRelation(IndexLabelID, Eq, label),
		NewRelation(FieldValues, Eq, "jackie"),
	)

	v, ok := q.EqValue(IndexLabelID)
	assert.True(t, ok)
	assert.Equal(t, label, v)

	v, ok = q.EqValue(FieldValues)
	assert.True(t, ok)
	assert.Equal(t, "jackie", v)

	_, ok = q.EqValue(ElementIDs)
	assert.False(t, ok)
}

func TestEqValueIgnoresNonEq(t *testing.T) {
	q := New(keys.RangeIndex).Where(NewRelation(FieldValues, Gt, int64(20)))
	_, ok := q.EqValue(FieldValues)
	assert.False(t, ok)

	r, ok := q.Relation(FieldValues)
	assert.True(t, ok)
	assert.Equal(t, Gt, r.Op)
}

func TestFirstAnd(t *testing.T) {
	and := NewAnd(
		NewRelation(FieldValues, Gt, int64(18)),
		NewRelation(FieldValues, Lt, int64(20)),
	)
	q := New(keys.RangeIndex).Where(
		NewRelation(IndexLabelID, Eq, keys.NumberID(1)),
		and,
	)

	got, ok := q.FirstAnd()
	assert.True(t, ok)
	assert.Equal(t, and, got)

	q2 := New(keys.RangeIndex).Where(NewRelation(FieldValues, Eq, int64(1)))
	_, ok = q2.FirstAnd()
	assert.False(t, ok)
}

func TestAllSysprop(t *testing.T) {
	q := New(keys.SecondaryIndex).Where(
		NewRelation(IndexLabelID, Eq, keys.NumberID(1)),
		NewAnd(
			NewRelation(FieldValues, Gte, int64(18)),
			NewRelation(FieldValues, Lt, int64(20)),
		),
	)
	assert.True(t, q.AllSysprop())

	q.Where(NewRelation(UserKey("age"), Eq, 18))
	assert.False(t, q.AllSysprop())
}

func TestOpStrings(t *testing.T) {
	assert.Equal(t, "EQ", Eq.String())
	assert.Equal(t, "GTE", Gte.String())
	assert.Equal(t, "NEQ", Neq.String())
}
