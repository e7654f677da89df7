package angle

// SameMultiset reports whether a and b hold the same angles with the same
// multiplicities, comparing by value (Key), not by construction.
func SameMultiset(a, b []Angle) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, x := range a {
		counts[x.Key()]++
	}
	for _, y := range b {
		k := y.Key()
		if counts[k] == 0 {
			return false
		}
		counts[k]--
	}

	return true
}
