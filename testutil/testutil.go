package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// OpKind identifies a container operation in a generated workload.
type OpKind int

const (
	// OpPush appends Op.Value.
	OpPush OpKind = iota
	// OpPop removes the last element.
	OpPop
	// OpGet reads Op.Index.
	OpGet
	// OpSet writes Op.Value at Op.Index.
	OpSet
)

func (k OpKind) String() string {
	switch k {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpGet:
		return "get"
	case OpSet:
		return "set"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one step of a generated workload. Index may be out of range on
// purpose; callers compare against a reference model.
type Op struct {
	Kind  OpKind
	Index int
	Value int
}

// Ops generates n operations. pushRate is the probability of a push; the
// remaining probability is split evenly between pop, get and set. Indexes
// are drawn from [-2, 2*pushes+2) so that some fall outside the live range.
func (r *RNG) Ops(n int, pushRate float64) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, n)
	pushes := 0
	for i := range ops {
		u := r.rand.Float64()
		switch {
		case u < pushRate:
			ops[i] = Op{Kind: OpPush, Value: r.rand.Int()}
			pushes++
		default:
			kind := OpPop + OpKind(r.rand.Intn(3))
			ops[i] = Op{
				Kind:  kind,
				Index: r.rand.Intn(2*pushes+4) - 2,
				Value: r.rand.Int(),
			}
		}
	}
	return ops
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Compute normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Sample from uniform and use inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// ZipfKeys generates n string keys drawn from distinct candidates with a
// Zipfian distribution, so a few keys repeat often.
func (r *RNG) ZipfKeys(n, distinct int, s float64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%04d", r.zipfLocked(distinct, s))
	}
	return keys
}
