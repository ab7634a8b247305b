package selfaffine

import "math"

// MirrorIndex returns the index of the negative frequency -i on an n-point
// periodic axis: 0 for i == 0, n-i otherwise.
func MirrorIndex(i, n int) int {
	if i == 0 {
		return 0
	}
	return n - i
}

// RelativeFrequency returns sqrt((i/n)² + (j/n)²) for the wrapped indices,
// so that a bin and its mirror share the same frequency.
func RelativeFrequency(i, j, n int) float64 {
	if i > n/2 {
		i = n - i
	}
	if j > n/2 {
		j = n - j
	}
	fi := float64(i) / float64(n)
	fj := float64(j) / float64(n)
	return math.Sqrt(fi*fi + fj*fj)
}
