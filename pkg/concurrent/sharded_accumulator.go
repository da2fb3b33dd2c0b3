package concurrent

import "sync"

// ShardedAccumulator aggregates per-document relevance scores across
// worker goroutines with minimal lock contention. It partitions the
// document-id space into a fixed number of independently locked shards,
// grounded on the same per-shard-mutex partitioning ShardedLRUCache used
// for its cache buckets, and on the reference ConcurrentMap<Key, Value>
// (bucket_count buckets, one mutex-guarded std::map per bucket, an
// Access handle that holds the bucket's lock for its scope, and a
// BuildOrdinaryMap that merges every bucket under its own lock).
type ShardedAccumulator struct {
	shards []shardBucket
}

type shardBucket struct {
	mu   sync.Mutex
	vals map[int]float64
}

// NewShardedAccumulator creates an accumulator with shardCount shards.
// A shardCount <= 0 is treated as 1. Placement of doc-id d is d mod
// shardCount, shifted into [0, shardCount) when d is negative, so every id
// has a well-defined shard (the index store rejects negative ids at
// insertion time, so the rankers never pass one).
func NewShardedAccumulator(shardCount int) *ShardedAccumulator {
	if shardCount <= 0 {
		shardCount = 1
	}
	shards := make([]shardBucket, shardCount)
	for i := range shards {
		shards[i].vals = make(map[int]float64)
	}
	return &ShardedAccumulator{shards: shards}
}

func (a *ShardedAccumulator) shardFor(id int) *shardBucket {
	n := len(a.shards)
	idx := id % n
	if idx < 0 {
		idx += n
	}
	return &a.shards[idx]
}

// Add acquires the shard holding id's lock for the scope of the call and
// adds delta to its accumulated value (default zero on first touch),
// mirroring the reference Access handle's lock_guard + map::operator[]
// semantics. No other shard is blocked while this runs.
func (a *ShardedAccumulator) Add(id int, delta float64) {
	shard := a.shardFor(id)
	shard.mu.Lock()
	shard.vals[id] += delta
	shard.mu.Unlock()
}

// Build merges all shards into a single map, acquiring each shard's lock
// in turn. The accumulator must not be used concurrently with Build.
func (a *ShardedAccumulator) Build() map[int]float64 {
	out := make(map[int]float64)
	for i := range a.shards {
		shard := &a.shards[i]
		shard.mu.Lock()
		for id, v := range shard.vals {
			out[id] = v
		}
		shard.mu.Unlock()
	}
	return out
}

// Quiesce blocks until every shard's lock is observably unlocked, mirroring
// ConcurrentMap's destructor (lock then immediately unlock each bucket's
// mutex) before the accumulator's storage is discarded or reused.
func (a *ShardedAccumulator) Quiesce() {
	for i := range a.shards {
		a.shards[i].mu.Lock()
		a.shards[i].mu.Unlock()
	}
}
