package anonymize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// qiColumn is one quasi-identifier extracted out of the frame into a flat
// slice, either numeric or categorical.
type qiColumn struct {
	name        string
	categorical bool
	nums        []float64
	cats        []string
}

// spread reports how wide the column's values range inside the partition,
// normalized against the column's global range so dimensions with
// different scales compete fairly.
func (c *qiColumn) spread(part, all []int) float64 {
	if c.categorical {
		global := distinctCount(c.cats, all)
		if global <= 1 {
			return 0
		}
		return float64(distinctCount(c.cats, part)) / float64(global)
	}
	gmin, gmax := minMax(c.nums, all)
	if gmax == gmin {
		return 0
	}
	pmin, pmax := minMax(c.nums, part)
	return (pmax - pmin) / (gmax - gmin)
}

// generalized renders the partition's value set for this column: a single
// value stays as-is, a numeric range becomes "lo-hi", a categorical set
// becomes the sorted values joined with commas.
func (c *qiColumn) generalized(part []int) string {
	if c.categorical {
		values := distinctSorted(c.cats, part)
		return strings.Join(values, ",")
	}
	lo, hi := minMax(c.nums, part)
	if lo == hi {
		return formatNum(lo)
	}
	return formatNum(lo) + "-" + formatNum(hi)
}

// cut splits the partition on this column's median. It returns ok=false
// when no split keeps both sides at or above k.
func (c *qiColumn) cut(part []int, k int) (left, right []int, ok bool) {
	if c.categorical {
		return c.cutCategorical(part, k)
	}
	return c.cutNumeric(part, k)
}

func (c *qiColumn) cutNumeric(part []int, k int) ([]int, []int, bool) {
	sorted := append([]int(nil), part...)
	sort.SliceStable(sorted, func(i, j int) bool { return c.nums[sorted[i]] < c.nums[sorted[j]] })

	// Walk value-group boundaries; rows sharing a value must stay together.
	half := len(sorted) / 2
	best, bestDist := -1, len(sorted)
	for i := 1; i < len(sorted); i++ {
		if c.nums[sorted[i]] == c.nums[sorted[i-1]] {
			continue
		}
		if i < k || len(sorted)-i < k {
			continue
		}
		if d := abs(i - half); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return nil, nil, false
	}
	return sorted[:best], sorted[best:], true
}

func (c *qiColumn) cutCategorical(part []int, k int) ([]int, []int, bool) {
	values := distinctSorted(c.cats, part)
	if len(values) < 2 {
		return nil, nil, false
	}
	leftSet := make(map[string]bool, len(values)/2)
	for _, v := range values[:len(values)/2] {
		leftSet[v] = true
	}

	var left, right []int
	for _, idx := range part {
		if leftSet[c.cats[idx]] {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}
	if len(left) < k || len(right) < k {
		return nil, nil, false
	}
	return left, right, true
}

// partitionRows greedily cuts the row set until no quasi-identifier
// permits a split that keeps every side at or above k. Each returned
// partition therefore holds at least k rows.
func partitionRows(cols []*qiColumn, all []int, k int) [][]int {
	var done [][]int
	queue := [][]int{all}
	for len(queue) > 0 {
		part := queue[0]
		queue = queue[1:]

		left, right, ok := cutWidest(cols, part, all, k)
		if !ok {
			done = append(done, part)
			continue
		}
		queue = append(queue, left, right)
	}
	return done
}

// cutWidest tries the candidate dimensions in decreasing spread order and
// takes the first valid cut.
func cutWidest(cols []*qiColumn, part, all []int, k int) ([]int, []int, bool) {
	if len(part) < 2*k {
		return nil, nil, false
	}

	order := make([]int, len(cols))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return cols[order[a]].spread(part, all) > cols[order[b]].spread(part, all)
	})

	for _, ci := range order {
		if cols[ci].spread(part, all) == 0 {
			break
		}
		if left, right, ok := cols[ci].cut(part, k); ok {
			return left, right, true
		}
	}
	return nil, nil, false
}

func minMax(vals []float64, idx []int) (float64, float64) {
	lo, hi := vals[idx[0]], vals[idx[0]]
	for _, i := range idx[1:] {
		if vals[i] < lo {
			lo = vals[i]
		}
		if vals[i] > hi {
			hi = vals[i]
		}
	}
	return lo, hi
}

func distinctCount(vals []string, idx []int) int {
	seen := make(map[string]struct{}, len(idx))
	for _, i := range idx {
		seen[vals[i]] = struct{}{}
	}
	return len(seen)
}

func distinctSorted(vals []string, idx []int) []string {
	seen := make(map[string]struct{}, len(idx))
	for _, i := range idx {
		seen[vals[i]] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func formatNum(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%g", v)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
