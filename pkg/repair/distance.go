package repair

// EditDistance returns the Levenshtein distance between a and b: the
// minimum number of single-character insertions, deletions, and
// substitutions needed to turn one into the other. Candidate distances
// are always recomputed with this function rather than taken from the
// search path, which may overestimate.
func EditDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Two-row DP over bytes; addresses are ASCII.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			insert := curr[j-1]
			remove := prev[j]
			replace := prev[j-1]
			curr[j] = min(insert, remove, replace) + 1
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
