package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zyoo/hugegraph/keys"
	"github.com/zyoo/hugegraph/query"
	"github.com/zyoo/hugegraph/table"
)

func TestSecondaryIndexRoundTrip(t *testing.T) {
	s := openSession(t)
	si := table.NewSecondaryIndex()
	label := keys.NumberID(7)

	id, err := keys.IndexID(keys.SecondaryIndex, label, "jackie")
	assert.NoError(t, err)
	assert.NoError(t, si.Put(s, id.Bytes(), []byte("vertex:1")))

	other, err := keys.IndexID(keys.SecondaryIndex, label, "rose")
	assert.NoError(t, err)
	assert.NoError(t, si.Put(s, other.Bytes(), []byte("vertex:2")))
	assert.NoError(t, s.Commit())

	q := query.New(keys.SecondaryIndex).Where(
		query.NewRelation(query.IndexLabelID, query.Eq, label),
		query.NewRelation(query.FieldValues, query.Eq, "jackie"),
	)
	entries, err := si.QueryByCondition(s, q)
	assert.NoError(t, err)

	assert.True(t, entries.Next())
	entry := entries.Entry()
	assert.True(t, entry.ID.Equal(id))
	assert.Equal(t, []byte("vertex:1"), entry.Columns[0].Value)
	assert.False(t, entries.Next())
	assert.NoError(t, entries.Close())
}

func TestSecondaryIndexMiss(t *testing.T) {
	s := openSession(t)
	si := table.NewSecondaryIndex()

	q := query.New(keys.SecondaryIndex).Where(
		query.NewRelation(query.IndexLabelID, query.Eq, keys.NumberID(7)),
		query.NewRelation(query.FieldValues, query.Eq, "nobody"),
	)
	entries, err := si.QueryByCondition(s, q)
	assert.NoError(t, err)
	assert.False(t, entries.Next())
	assert.NoError(t, entries.Close())
}

func TestSecondaryIndexMalformedQueries(t *testing.T) {
	s := openSession(t)
	si := table.NewSecondaryIndex()
	label := keys.NumberID(7)

	// missing FIELD_VALUES
	q := query.New(keys.SecondaryIndex).Where(
		query.NewRelation(query.IndexLabelID, query.Eq, label),
	)
	_, err := si.QueryByCondition(s, q)
	assert.ErrorIs(t, err, table.ErrInvalidQuery)

	// missing index label
	q = query.New(keys.SecondaryIndex).Where(
		query.NewRelation(query.FieldValues, query.Eq, "jackie"),
		query.NewRelation(query.FieldValues, query.Eq, "rose"),
	)
	_, err = si.QueryByCondition(s, q)
	assert.ErrorIs(t, err, table.ErrInvalidQuery)

	// user-property condition is not a sysprop query
	q = query.New(keys.SecondaryIndex).Where(
		query.NewRelation(query.IndexLabelID, query.Eq, label),
		query.NewRelation(query.UserKey("name"), query.Eq, "jackie"),
	)
	_, err = si.QueryByCondition(s, q)
	assert.ErrorIs(t, err, table.ErrInvalidQuery)

	// too many conditions
	q = query.New(keys.SecondaryIndex).Where(
		query.NewRelation(query.IndexLabelID, query.Eq, label),
		query.NewRelation(query.FieldValues, query.Eq, "jackie"),
		query.NewRelation(query.FieldValues, query.Eq, "rose"),
	)
	_, err = si.QueryByCondition(s, q)
	assert.ErrorIs(t, err, table.ErrInvalidQuery)

	// label must be an id
	q = query.New(keys.SecondaryIndex).Where(
		query.NewRelation(query.IndexLabelID, query.Eq, "not-an-id"),
		query.NewRelation(query.FieldValues, query.Eq, "jackie"),
	)
	_, err = si.QueryByCondition(s, q)
	assert.ErrorIs(t, err, table.ErrInvalidQuery)
}
