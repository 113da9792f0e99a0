package repair

import "sort"

// tailWindow is the number of trailing characters compared when
// breaking ties between equally-distant candidates. Users tend to
// recognize the tail of an address they pasted, so candidates that
// preserve it rank higher.
const tailWindow = 6

// tailScore counts how many of the last tailWindow characters of a and
// b are identical at the same position relative to the end.
func tailScore(a, b string) int {
	score := 0
	for i := 1; i <= tailWindow; i++ {
		if i > len(a) || i > len(b) {
			break
		}
		if a[len(a)-i] == b[len(b)-i] {
			score++
		}
	}
	return score
}

// Rank orders candidates ascending by exact edit distance from input,
// breaking ties by trailing similarity (higher tailScore first).
// Remaining ties keep their discovery order; the sort is stable and no
// stronger ordering is guaranteed.
func Rank(input string, candidates []string) []string {
	type scored struct {
		addr string
		dist int
		tail int
	}

	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = scored{
			addr: c,
			dist: EditDistance(input, c),
			tail: tailScore(input, c),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].dist != ranked[j].dist {
			return ranked[i].dist < ranked[j].dist
		}
		return ranked[i].tail > ranked[j].tail
	})

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.addr
	}
	return out
}
