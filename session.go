package hugegraph

import (
	"bytes"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"
)

// Session is a caller-owned transactional context: mutations buffer
// into one pebble batch until Commit, reads see committed state. A
// session must not be shared across goroutines; the store hands out as
// many as callers want.
type Session struct {
	store *Store
	batch *pebble.Batch
	id    uuid.UUID
}

func (s *Store) NewSession() *Session {
	return &Session{
		store: s,
		batch: s.db.NewBatch(),
		id:    uuid.New(),
	}
}

// ID tags the session in logs.
func (se *Session) ID() string {
	return se.id.String()
}

// Get reads the committed value under key, nil when absent.
func (se *Session) Get(key []byte) ([]byte, error) {
	if se.store.db == nil {
		return nil, ErrClosed
	}
	value, closer, err := se.store.db.Get(key)
	if err == pebble.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	value = bytes.Clone(value)
	_ = closer.Close()
	return value, nil
}

func (se *Session) Put(key, value []byte) error {
	return se.batch.Set(key, value, nil)
}

// Merge buffers a merge operand; the store's merge operator decides
// what the delta means for the key's partition.
func (se *Session) Merge(key, delta []byte) error {
	return se.batch.Merge(key, delta, nil)
}

// Commit writes the batch and re-arms the session for further use.
// Failures propagate; the session never retries on the caller's behalf.
func (se *Session) Commit() error {
	if err := se.batch.Commit(&WriteOptions); err != nil {
		return err
	}
	_ = se.batch.Close()
	se.batch = se.store.db.NewBatch()
	return nil
}

// Scan iterates committed columns over [begin, end) in ascending byte
// order. A nil end means an unbounded forward scan; callers that want
// to stay inside one partition bound it themselves.
func (se *Session) Scan(begin, end []byte) *Columns {
	io := pebble.IterOptions{
		LowerBound: begin,
		UpperBound: end,
	}
	iter, _ := se.store.db.NewIter(&io)
	return &Columns{iter: iter}
}

func (se *Session) Close() error {
	if se.batch != nil {
		_ = se.batch.Close()
		se.batch = nil
	}
	return nil
}
