package search

// selectTop partitions s so its k highest-scoring elements occupy s[:k] in
// no particular order, without fully sorting the remainder. Average O(n);
// the caller sorts the retained prefix afterwards.
func selectTop(s []scored, k int) {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := partition(s, lo, hi)
		switch {
		case p == k-1:
			return
		case p < k-1:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// partition arranges s[lo:hi+1] around a pivot so that every element before
// the returned index scores at least as high as every element after it.
func partition(s []scored, lo, hi int) int {
	mid := lo + (hi-lo)/2
	s[mid], s[hi] = s[hi], s[mid]
	pivot := s[hi].score

	i := lo
	for j := lo; j < hi; j++ {
		if s[j].score > pivot {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]
	return i
}
