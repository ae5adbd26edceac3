package tree

import (
	"io"
	"math/rand"
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/arboriq/btreeset/pkg/logger"
)

// reference mirrors a Tree[int] against a plain Go map, the way a property
// test against any reference set checks a candidate structure for
// equivalence to a trusted, simpler one.
type reference struct {
	set map[int]struct{}
}

func newReference() *reference { return &reference{set: make(map[int]struct{})} }

func (r *reference) insert(v int) bool {
	if _, ok := r.set[v]; ok {
		return false
	}
	r.set[v] = struct{}{}
	return true
}

func (r *reference) remove(v int) bool {
	if _, ok := r.set[v]; !ok {
		return false
	}
	delete(r.set, v)
	return true
}

func (r *reference) contains(v int) bool {
	_, ok := r.set[v]
	return ok
}

// TestMixedWorkloadAgainstReference runs mixed insert/remove workloads at
// a range of minimum degrees. After every operation it checks the
// operation's result and the size against a reference set and verifies the
// structure; membership of every value in range is compared at the end.
func TestMixedWorkloadAgainstReference(t *testing.T) {
	Convey("A B-tree set under a mixed random workload", t, func() {
		for degree := 2; degree <= 6; degree++ {
			degree := degree
			Convey("stays equivalent to a reference set at degree "+strconv.Itoa(degree), func() {
				rng := rand.New(rand.NewSource(int64(1000 + degree)))
				tr := NewOrderedTree[int](degree, logger.New(logger.Error, io.Discard))
				ref := newReference()

				const operations = 500
				const valueRange = 200

				for i := 0; i < operations; i++ {
					v := rng.Intn(valueRange)
					if rng.Float64() < 0.5 {
						So(tr.Insert(v), ShouldEqual, ref.insert(v))
					} else {
						So(tr.Remove(v), ShouldEqual, ref.remove(v))
					}

					So(tr.Size(), ShouldEqual, len(ref.set))
					tr.CheckStructure()
				}

				for v := -4; v < valueRange+4; v++ {
					So(tr.Contains(v), ShouldEqual, ref.contains(v))
				}
			})
		}
	})
}

// TestRoundTripEmptiesTheTree inserts a permuted run of values, then
// removes every one of them in a different random order, ending empty.
func TestRoundTripEmptiesTheTree(t *testing.T) {
	Convey("Removing every inserted value empties the tree", t, func() {
		for degree := 2; degree <= 6; degree++ {
			degree := degree
			Convey("at degree "+strconv.Itoa(degree), func() {
				rng := rand.New(rand.NewSource(int64(2000 + degree)))
				tr := NewOrderedTree[int](degree, logger.New(logger.Error, io.Discard))

				const n = 300
				values := rng.Perm(n)
				for _, v := range values {
					tr.Insert(v)
				}
				tr.CheckStructure()
				So(tr.Size(), ShouldEqual, n)

				removalOrder := rng.Perm(n)
				for _, v := range removalOrder {
					So(tr.Remove(v), ShouldBeTrue)
					tr.CheckStructure()
				}

				So(tr.Size(), ShouldEqual, 0)
				for _, v := range values {
					So(tr.Contains(v), ShouldBeFalse)
				}
			})
		}
	})
}

// TestManyTrialsNeverViolateInvariants runs many trials of mixed random
// operations at varying degrees, at a scale suitable for a unit test run
// on every commit. At the end of each trial it checks the size against a
// reference set and that the structural invariants hold.
func TestManyTrialsNeverViolateInvariants(t *testing.T) {
	Convey("Many trials of mixed operations never violate structural invariants", t, func() {
		const trials = 20
		const operationsPerTrial = 1500

		for trial := 0; trial < trials; trial++ {
			rng := rand.New(rand.NewSource(int64(trial)))
			degree := 2 + rng.Intn(5) // 2..6
			tr := NewOrderedTree[int](degree, logger.New(logger.Error, io.Discard))
			ref := newReference()

			for i := 0; i < operationsPerTrial; i++ {
				v := rng.Intn(1000)
				if rng.Float64() < 0.5 {
					tr.Insert(v)
					ref.insert(v)
				} else {
					tr.Remove(v)
					ref.remove(v)
				}
			}

			So(tr.Size(), ShouldEqual, len(ref.set))
			So(func() { tr.CheckStructure() }, ShouldNotPanic)
		}
	})
}
