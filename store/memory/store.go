package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/w-h-a/textproc/processor"
	"github.com/w-h-a/textproc/store"
)

type memoryStore struct {
	options store.Options
	records []processor.Record
	index   map[string]int
	mtx     sync.RWMutex
}

func (s *memoryStore) Insert(ctx context.Context, rec processor.Record) (processor.Record, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.options.Capacity > 0 && len(s.records) >= s.options.Capacity {
		return processor.Record{}, store.ErrFull
	}

	now := time.Now().UTC()

	// keep CreatedAt non-decreasing even if the wall clock steps back
	if n := len(s.records); n > 0 && now.Before(s.records[n-1].CreatedAt) {
		now = s.records[n-1].CreatedAt
	}

	rec.CreatedAt = now

	s.index[rec.Id] = len(s.records)
	s.records = append(s.records, rec)

	return rec, nil
}

func (s *memoryStore) List(ctx context.Context) ([]processor.Record, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	cpy := make([]processor.Record, len(s.records))
	copy(cpy, s.records)

	return cpy, nil
}

func (s *memoryStore) ListSince(ctx context.Context, cutoff time.Time) ([]processor.Record, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	// timestamps are non-decreasing, so the window is a suffix
	first := sort.Search(len(s.records), func(i int) bool {
		return !s.records[i].CreatedAt.Before(cutoff)
	})

	cpy := make([]processor.Record, len(s.records)-first)
	copy(cpy, s.records[first:])

	return cpy, nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (processor.Record, bool, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return processor.Record{}, false, nil
	}

	return s.records[i], true, nil
}

func NewStore(opts ...store.Option) store.Store {
	options := store.NewOptions(opts...)

	s := &memoryStore{
		options: options,
		records: []processor.Record{},
		index:   map[string]int{},
		mtx:     sync.RWMutex{},
	}

	return s
}
