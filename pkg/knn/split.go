package knn

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// stratifiedSplit partitions row indices into train and test sets while
// preserving the per-class proportions of strata. Classes are processed
// in sorted order and shuffled with the seeded source, so the split is a
// pure function of its inputs. Every class contributes at least one row
// to each side; a class with fewer than two members cannot and aborts.
func stratifiedSplit(strata []string, testSize float64, seed int64) (train, test []int, err error) {
	groups := make(map[string][]int)
	for i, class := range strata {
		groups[class] = append(groups[class], i)
	}

	rng := rand.New(rand.NewSource(seed))
	for _, class := range distinctSorted(strata) {
		idx := groups[class]
		if len(idx) < 2 {
			return nil, nil, fmt.Errorf("%w: class %q has %d member(s)", ErrClassTooSmall, class, len(idx))
		}

		rng.Shuffle(len(idx), func(a, b int) { idx[a], idx[b] = idx[b], idx[a] })

		n := int(math.Round(float64(len(idx)) * testSize))
		if n < 1 {
			n = 1
		}
		if n > len(idx)-1 {
			n = len(idx) - 1
		}
		test = append(test, idx[:n]...)
		train = append(train, idx[n:]...)
	}

	sort.Ints(train)
	sort.Ints(test)
	return train, test, nil
}
