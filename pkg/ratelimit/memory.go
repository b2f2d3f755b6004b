package ratelimit

import (
	"context"
	"sync"
)

// Memory counts admissions per client and hour bucket in process memory.
// Only the current and the previous bucket are kept for a client, so a
// client may be admitted up to twice the maximum across an hour boundary.
type Memory struct {
	max   int
	clock Clock

	lock    sync.Mutex
	buckets map[string]map[int64]int
}

var _ Limiter = &Memory{}

func NewMemory(maxPerHour int, clock Clock) *Memory {
	return &Memory{
		max:     maxPerHour,
		clock:   clockOrDefault(clock),
		buckets: make(map[string]map[int64]int),
	}
}

func (m *Memory) Admit(_ context.Context, key string) (bool, error) {
	h := Bucket(m.clock())

	m.lock.Lock()
	defer m.lock.Unlock()

	counts, ok := m.buckets[key]
	if !ok {
		counts = make(map[int64]int)
		m.buckets[key] = counts
	}

	for bucket := range counts {
		if bucket < h-1 {
			delete(counts, bucket)
		}
	}

	if counts[h] >= m.max {
		return false, nil
	}

	counts[h]++
	return true, nil
}

// Counts returns a copy of the admission counts per bucket for a client.
func (m *Memory) Counts(key string) map[int64]int {
	m.lock.Lock()
	defer m.lock.Unlock()

	snapshot := make(map[int64]int, len(m.buckets[key]))
	for bucket, count := range m.buckets[key] {
		snapshot[bucket] = count
	}
	return snapshot
}
