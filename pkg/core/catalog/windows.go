package catalog

// window reports whether a mint struck a series in a given year.
// A nil window means every year of the segment.
type window func(year int) bool

func between(from, to int) window {
	return func(y int) bool { return y >= from && y <= to }
}

func since(from int) window {
	return func(y int) bool { return y >= from }
}

func until(to int) window {
	return func(y int) bool { return y <= to }
}

func only(years ...int) window {
	return func(y int) bool {
		for _, v := range years {
			if v == y {
				return true
			}
		}
		return false
	}
}

func except(years ...int) window {
	in := only(years...)
	return func(y int) bool { return !in(y) }
}

// all requires every window to accept the year.
func all(ws ...window) window {
	return func(y int) bool {
		for _, w := range ws {
			if w != nil && !w(y) {
				return false
			}
		}
		return true
	}
}

// either accepts the year when any window does.
func either(ws ...window) window {
	return func(y int) bool {
		for _, w := range ws {
			if w == nil || w(y) {
				return true
			}
		}
		return false
	}
}

func yearsBetween(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		out = append(out, y)
	}
	return out
}
