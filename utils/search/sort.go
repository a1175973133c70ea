package search

// mergeSort is a stable bottom-up merge sort. It produces the same order as
// a stable bubble sort with the same less function.
func mergeSort[T any](xs []T, less func(a, b T) bool) []T {
	n := len(xs)
	src := xs
	dst := make([]T, n)
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			merge(dst[lo:hi], src[lo:mid], src[mid:hi], less)
		}
		src, dst = dst, src
	}
	return src
}

// merge takes from b only when strictly less, so ties keep a's order.
func merge[T any](out, a, b []T, less func(a, b T) bool) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if less(b[j], a[i]) {
			out[k] = b[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}
		k++
	}
	k += copy(out[k:], a[i:])
	copy(out[k:], b[j:])
}
