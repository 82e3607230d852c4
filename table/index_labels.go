package table

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/zyoo/hugegraph"
	"github.com/zyoo/hugegraph/keys"
)

// IndexLabels keeps a small read cache in front of the label table.
// Label records sit on every index write path in the layer above and
// change rarely.
type IndexLabels struct {
	Table
	cache *lru.Cache[string, []byte]
}

func NewIndexLabels() *IndexLabels {
	cache, _ := lru.New[string, []byte](10000)
	return &IndexLabels{
		Table: Table{typ: keys.IndexLabel},
		cache: cache,
	}
}

func (t *IndexLabels) Get(s *hugegraph.Session, key []byte) ([]byte, error) {
	if value, ok := t.cache.Get(string(key)); ok {
		return value, nil
	}
	value, err := t.Table.Get(s, key)
	if err != nil {
		return nil, err
	}
	if value != nil {
		t.cache.Add(string(key), value)
	}
	return value, nil
}

func (t *IndexLabels) Put(s *hugegraph.Session, key, value []byte) error {
	t.cache.Remove(string(key))
	return t.Table.Put(s, key, value)
}
