package ltree

// resolveIndex maps a possibly negative index onto [0, n).
func resolveIndex(i, n int) (int, error) {
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, &IndexError{Index: i, Len: n}
	}
	return j, nil
}

// sliceBounds clamps [lo, hi) onto [0, n] the way sequence slicing does:
// negative bounds count from the end, out-of-range bounds are clipped and
// an inverted range is empty.
func sliceBounds(lo, hi, n int) (int, int) {
	clamp := func(i int) int {
		if i < 0 {
			i += n
			if i < 0 {
				return 0
			}
		}
		if i > n {
			return n
		}
		return i
	}
	lo, hi = clamp(lo), clamp(hi)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
