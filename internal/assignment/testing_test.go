package assignment

// firstPicker always picks the lowest indexes, so selections follow sorted id order.
type firstPicker struct{}

func (firstPicker) Pick(n, k int) []int {
	k = min(k, n)

	out := make([]int, k)
	for i := range out {
		out[i] = i
	}

	return out
}

// lastPicker picks from the end of the pool.
type lastPicker struct{}

func (lastPicker) Pick(n, k int) []int {
	k = min(k, n)

	out := make([]int, k)
	for i := range out {
		out[i] = n - 1 - i
	}

	return out
}
