// mergesort.go

package sorting

// MergeSort sorts a in place using top-down merge sort with a single
// scratch buffer allocated up front. The merge is stable, though with
// bare int elements stability is unobservable.
func MergeSort(a []int) {
	if len(a) < 2 {
		return
	}
	buffer := make([]int, len(a))
	splitAndMerge(a, 0, len(a), buffer)
}

// splitAndMerge sorts the half-open range a[left:right].
func splitAndMerge(a []int, left, right int, buffer []int) {
	if right-left < 2 {
		return
	}
	middle := (left + right) / 2
	splitAndMerge(a, left, middle, buffer)
	splitAndMerge(a, middle, right, buffer)
	merge(a, left, middle, right, buffer)
}

// merge combines the sorted ranges a[left:middle] and a[middle:right]
// through the scratch buffer, then copies the result back.
func merge(a []int, left, middle, right int, buffer []int) {
	i, j, k := left, middle, left
	for i < middle && j < right {
		if a[i] <= a[j] {
			buffer[k] = a[i]
			i++
		} else {
			buffer[k] = a[j]
			j++
		}
		k++
	}
	for i < middle {
		buffer[k] = a[i]
		i++
		k++
	}
	for j < right {
		buffer[k] = a[j]
		j++
		k++
	}
	copy(a[left:right], buffer[left:right])
}
