// Package sampler implements a weighted random sampler using Walker's
// alias method (Vose's linear-time construction). It is the building
// block the fountain package uses to pick a part's degree from the
// 1/1, 1/2, 1/3, ... distribution.
package sampler

// Sampler draws indices in [0, n) with probability proportional to the
// weights it was built from, in O(1) per draw after an O(n)
// construction.
type Sampler struct {
	prob  []float64
	alias []int
}

// New builds a Sampler over the given positive weights, following
// Vose's alias method: weights are scaled to sum to n, partitioned into
// "small" (scaled weight < 1) and "large" (>= 1) queues, and repeatedly
// paired off — one small slot borrows probability mass from a large
// one — until every slot's probability and alias are fixed.
func New(weights []float64) *Sampler {
	n := len(weights)
	var sum float64
	for _, w := range weights {
		sum += w
	}

	scaled := make([]float64, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / sum
	}

	var small, large []int
	for i := n - 1; i >= 0; i-- {
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	prob := make([]float64, n)
	alias := make([]int, n)

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		prob[s] = scaled[s]
		alias[s] = l

		scaled[l] = scaled[l] + scaled[s] - 1
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	for len(large) > 0 {
		l := large[len(large)-1]
		large = large[:len(large)-1]
		prob[l] = 1
	}
	for len(small) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		prob[s] = 1
	}

	return &Sampler{prob: prob, alias: alias}
}

// Next draws an index using two uniform [0, 1) values from f.
func (s *Sampler) Next(f func() float64) int {
	n := len(s.prob)
	r1 := f()
	r2 := f()

	i := int(float64(n) * r1)
	if i >= n {
		i = n - 1
	}
	if r2 < s.prob[i] {
		return i
	}
	return s.alias[i]
}
