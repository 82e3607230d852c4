package table_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zyoo/hugegraph/keys"
	"github.com/zyoo/hugegraph/table"
)

func TestNextIDMonotonic(t *testing.T) {
	s := openSession(t)
	counters := table.NewCounters()

	for want := int64(1); want <= 10; want++ {
		id, err := counters.NextID(s, keys.Vertex)
		assert.NoError(t, err)
		got, err := id.AsLong()
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNextIDPerType(t *testing.T) {
	s := openSession(t)
	counters := table.NewCounters()

	vid, err := counters.NextID(s, keys.VertexLabel)
	assert.NoError(t, err)
	eid, err := counters.NextID(s, keys.EdgeLabel)
	assert.NoError(t, err)

	v, _ := vid.AsLong()
	e, _ := eid.AsLong()
	assert.Equal(t, int64(1), v)
	assert.Equal(t, int64(1), e)
}

func TestNextIDNeverRepeats(t *testing.T) {
	s := openSession(t)
	counters := table.NewCounters()

	// the per-type allocator lock serializes access to the shared session
	const workers = 4
	const perWorker = 25

	var mu sync.Mutex
	seen := make(map[int64]bool)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id, err := counters.NextID(s, keys.Edge)
				assert.NoError(t, err)
				v, err := id.AsLong()
				assert.NoError(t, err)
				mu.Lock()
				assert.False(t, seen[v], "id %d handed out twice", v)
				seen[v] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*perWorker)
}
