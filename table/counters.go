package table

import (
	"fmt"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/zyoo/hugegraph"
	"github.com/zyoo/hugegraph/keys"
)

// MaxAllocAttempts bounds the convergence loop. Not a timeout: a
// circuit breaker against a store that keeps absorbing merges without
// ever showing us the expected value.
const MaxAllocAttempts = 1000

// Counters hands out monotonically increasing per-type ids. The store
// gives us an additive merge but no atomic read-modify-write, so the
// allocator merges +1 and re-reads until it observes its own expected
// post-increment value. Concurrent allocators converge to distinct
// values because every merge strictly advances the shared counter.
type Counters struct {
	Table
	locks *xsync.MapOf[keys.EntityType, *sync.Mutex]
}

func NewCounters() *Counters {
	return &Counters{
		Table: Table{typ: keys.Counter},
		locks: xsync.NewMapOf[keys.EntityType, *sync.Mutex](),
	}
}

// NextID allocates the next id for the entity type. Calls for the same
// type are serialized within the process; two callers computing the
// same expected value from one stale read would otherwise race their
// merges to non-deterministic final values.
func (c *Counters) NextID(s *hugegraph.Session, t keys.EntityType) (keys.Id, error) {
	lock, _ := c.locks.LoadOrStore(t, &sync.Mutex{})
	lock.Lock()
	defer lock.Unlock()

	key := []byte{t.Code()}

	// get-increase-get-compare until the counter shows the expected
	// value. expect starts at -1 so the first read always increments.
	counter := int64(0)
	expect := int64(-1)
	for i := 0; i < MaxAllocAttempts; i++ {
		AllocAttempts.WithLabelValues(t.String()).Inc()
		value, err := c.Get(s, key)
		if err != nil {
			return nil, err
		}
		if value != nil {
			counter = keys.DecodeCounter(value)
		}
		if counter == expect {
			break
		}
		expect = counter + 1
		// absent key merges against the default of zero
		if err := c.Merge(s, key, keys.CounterOne()); err != nil {
			return nil, err
		}
		if err := c.Commit(s); err != nil {
			return nil, err
		}
	}

	if counter == 0 {
		AllocFailures.WithLabelValues(t.String()).Inc()
		return nil, fmt.Errorf("%w: counter for %s stayed zero, check whether the store is ok", ErrAllocationExhausted, t)
	}
	if counter != expect {
		AllocFailures.WithLabelValues(t.String()).Inc()
		return nil, fmt.Errorf("%w: type %s did not converge in %d attempts, the store is busy", ErrAllocationExhausted, t, MaxAllocAttempts)
	}
	return keys.NumberID(counter), nil
}
