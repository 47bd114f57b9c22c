package simulate

import "math/rand"

// pcg32 is the same fast, small, statistically-good generator the teacher's
// solver package uses for its training loop, reused here as the per-worker
// Monte Carlo source (PCG-XSH-RR, 64-bit state, 32-bit output).
type pcg32 struct {
	state uint64
}

func newPCG32(seed uint64) *pcg32 {
	return &pcg32{state: seed*2 + 1}
}

func (r *pcg32) Uint32() uint32 {
	oldstate := r.state
	r.state = oldstate*6364136223846793005 + 1442695040888963407
	xorshifted := uint32(((oldstate >> 18) ^ oldstate) >> 27)
	rot := uint32(oldstate >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// pcgSource adapts pcg32 to the math/rand.Source interface so it can back a
// *rand.Rand, exactly as the teacher's wrapperSource does.
type pcgSource struct {
	rng *pcg32
}

func (w *pcgSource) Int63() int64 {
	return int64(w.rng.Uint32())<<31 | int64(w.rng.Uint32())
}

func (w *pcgSource) Seed(seed int64) {
	w.rng = newPCG32(uint64(seed))
}

// newWorkerRand builds a *rand.Rand seeded deterministically from seed. Two
// calls with the same seed always produce the same stream, independent of
// any other worker's state — the PRNG is never shared across workers.
func newWorkerRand(seed uint64) *rand.Rand {
	return rand.New(&pcgSource{rng: newPCG32(seed)})
}

// splitmix64 derives a child seed from a combination of the master seed and
// a worker index, per spec.md §5's "seed_i = splitmix64(master_seed + i)"
// contract.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// childSeed derives worker i's seed from a master seed.
func childSeed(master uint64, worker int) uint64 {
	return splitmix64(master + uint64(worker))
}
