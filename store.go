package hugegraph

import (
	"errors"

	"github.com/cockroachdb/pebble"
	"github.com/zyoo/hugegraph/utils"
)

var (
	ErrClosed = errors.New("hugegraph: no store open")
)

// WriteOptions used for every batch commit. The layer above decides
// whether it needs sync durability.
var WriteOptions = pebble.WriteOptions{Sync: false}

type Options struct {
	Pebble pebble.Options
	Logger utils.Logger
}

func (o *Options) SetDefaults() {
	if o.Logger == nil {
		o.Logger = utils.NewDefaultLogger()
	}
}

// Store owns one pebble instance holding every table partition. Tables
// and the codec are stateless on top of it; the only cross-call state
// lives in the store itself and in caller-owned sessions.
type Store struct {
	db  *pebble.DB
	dir string
	log utils.Logger
}

// Open opens (or creates) the store at dir. The merge operator is
// installed here: counter-partition keys merge additively, everything
// else resolves to the newest value.
func Open(dir string, opts Options) (*Store, error) {
	opts.SetDefaults()
	opts.Pebble.Merger = &pebble.Merger{
		Name:  "hugegraph.partition",
		Merge: merger,
	}
	db, err := pebble.Open(dir, &opts.Pebble)
	if err != nil {
		return nil, err
	}
	opts.Logger.Info("store open", "dir", dir)
	return &Store{db: db, dir: dir, log: opts.Logger}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Log() utils.Logger {
	return s.log
}

func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil
	s.log.Info("store closed", "dir", s.dir)
	return err
}
