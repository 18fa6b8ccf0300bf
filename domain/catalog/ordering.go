package catalog

import (
	"math/rand/v2"
)

// Ordering decides the published order of a catalog. It is one of
// RandomOnce, EnumerationOrder or ExplicitKeyOrder.
type Ordering interface {
	ordering()
}

// RandomOnce shuffles the catalog exactly once per load. A zero Seed picks
// one at random; the chosen seed is reported in State.Seed so later
// requests of the same mount can reproduce the order.
type RandomOnce struct {
	Seed uint64
}

// EnumerationOrder keeps the sorted order the source enumerated.
type EnumerationOrder struct{}

// ExplicitKeyOrder publishes numbered video folders in Keys order. A key is
// included only when both video/<k>/<k>.mp4 and video/<k>/<k>.jpg exist.
type ExplicitKeyOrder struct {
	Keys []int
}

func (RandomOnce) ordering()       {}
func (EnumerationOrder) ordering() {}
func (ExplicitKeyOrder) ordering() {}

// KeyRange returns the keys 1..n.
func KeyRange(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i + 1
	}
	return keys
}

// seedOrPick returns seed, or a fresh non-zero seed when seed is zero.
func seedOrPick(seed uint64) uint64 {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}

// shuffle is a seeded Fisher-Yates over items, in place.
func shuffle(items []Asset, seed uint64) {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
