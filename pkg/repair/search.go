package repair

import (
	"fmt"

	"github.com/walletlab/addrfix/pkg/repair/ethereum"
	"github.com/walletlab/addrfix/pkg/repair/tron"
)

const (
	// ExpansionCeiling bounds the number of distinct candidate strings
	// generated during one Suggest call. Together with maxEditDepth it
	// keeps worst-case work bounded on adversarial inputs.
	ExpansionCeiling = 4096

	// maxEditDepth bounds the edit distance of any returned candidate.
	maxEditDepth = 2
)

// profile bundles the chain-specific knobs the search needs: target
// length, generation alphabet, validation, and the positions that look
// broken in a given input.
type profile struct {
	target int
	valid  func(string) bool
	badPos func(string) []int
	// symbolsAt returns the symbols worth trying at a position. For
	// Ethereum position 1 also offers 'x' so a damaged "0x" prefix can
	// be rebuilt.
	symbolsAt func(pos int) string
	// twin returns the opposite-case Base58 twin of a byte, when both
	// cases are valid symbols. Nil for case-insensitive chains.
	twin func(c byte) (byte, bool)
}

func profileFor(chain Chain) profile {
	switch chain {
	case Tron:
		return profile{
			target: tron.AddressLength,
			valid:  func(s string) bool { return tron.CheckAddress(s) == nil },
			badPos: func(s string) []int {
				bad := tron.BadSymbolPositions(s)
				if len(s) > 0 && s[0] != 'T' && tron.IsAlphabetChar(rune(s[0])) {
					bad = append([]int{0}, bad...)
				}
				return bad
			},
			symbolsAt: func(int) string { return tron.Alphabet },
			twin:      tron.CaseTwin,
		}
	case Ethereum:
		return profile{
			target: ethereum.AddressLength,
			valid:  func(s string) bool { return ethereum.CheckAddress(s) == nil },
			badPos: ethereum.BadSymbolPositions,
			symbolsAt: func(pos int) string {
				if pos == 1 {
					return "x" + ethereum.Alphabet
				}
				return ethereum.Alphabet
			},
		}
	default:
		panic(fmt.Sprintf("repair: unsupported chain %d", int(chain)))
	}
}

// Suggest proposes valid addresses within edit distance 2 of input,
// ranked best-first and truncated to limit. A valid input is returned
// as the sole candidate immediately. An empty result means the input
// is too damaged to repair automatically — that is an expected outcome,
// not an error.
//
// Suggest panics on an unsupported Chain value.
func Suggest(chain Chain, input string, limit int) []string {
	p := profileFor(chain)
	if limit <= 0 || input == "" {
		return nil
	}
	if p.valid(input) {
		return []string{input}
	}
	// Gross-damage gate: more than two edits can never reach the
	// target shape, so skip the search entirely.
	if diff := len(input) - p.target; diff > maxEditDepth || diff < -maxEditDepth {
		return nil
	}
	if len(p.badPos(input)) > maxEditDepth {
		return nil
	}

	s := &search{
		p:       p,
		input:   input,
		limit:   limit,
		genSeen: make(map[string]struct{}),
		visited: make(map[string]struct{}),
	}
	s.runFastPaths()
	if !s.done() {
		s.runBFS()
	}
	// Last resort for the one-character-short case: the fast path may
	// have been starved by the ceiling.
	if len(s.accepted) == 0 && len(input) == p.target-1 {
		s.expanded = 0
		s.tryTailAppend(input)
	}
	return s.results()
}

// frontierItem is one breadth-first search state.
type frontierItem struct {
	str   string
	depth int
}

// search holds the call-scoped state of one Suggest invocation.
// Nothing here outlives the call.
type search struct {
	p        profile
	input    string
	limit    int
	accepted []string            // valid candidates in discovery order
	genSeen  map[string]struct{} // every string generated so far
	visited  map[string]struct{} // BFS states already expanded
	expanded int                 // count of distinct strings generated
}

func (s *search) done() bool {
	return len(s.accepted) >= s.limit || s.expanded >= ExpansionCeiling
}

// try records a generated string, validating it if it has the target
// length. Duplicates are ignored and do not count against the ceiling.
func (s *search) try(cand string) {
	if s.expanded >= ExpansionCeiling {
		return
	}
	if _, ok := s.genSeen[cand]; ok {
		return
	}
	s.genSeen[cand] = struct{}{}
	s.expanded++
	if len(cand) != s.p.target {
		return
	}
	if s.p.valid(cand) {
		s.accepted = append(s.accepted, cand)
	}
}

// runFastPaths probes the statistically likely single mistakes before
// the general search: a dropped trailing character, a mistyped single
// character, and (for Tron) flipped letter case.
func (s *search) runFastPaths() {
	in := s.input
	switch {
	case len(in) == s.p.target-1:
		s.tryTailAppend(in)
	case len(in) == s.p.target:
		s.tryLastCharSwap(in)
		if !s.done() {
			s.trySingleSwaps(in)
		}
		if s.p.twin != nil && !s.done() {
			s.tryCaseFlips(in)
		}
	}
}

// tryTailAppend completes an input that is one character short by
// appending every alphabet symbol.
func (s *search) tryTailAppend(in string) {
	for _, c := range s.p.symbolsAt(len(in)) {
		if s.done() {
			return
		}
		s.try(in + string(c))
	}
}

// tryLastCharSwap replaces the final character with every other symbol.
func (s *search) tryLastCharSwap(in string) {
	pos := len(in) - 1
	for _, c := range s.p.symbolsAt(pos) {
		if s.done() {
			return
		}
		if byte(c) == in[pos] {
			continue
		}
		s.try(in[:pos] + string(c) + in[pos+1:])
	}
}

// trySingleSwaps replaces one character at a time, visiting positions
// in priority order: malformed characters first, then the tail window,
// then the quarter/mid/three-quarter marks, then everything else.
func (s *search) trySingleSwaps(in string) {
	for _, pos := range s.swapOrder(in) {
		for _, c := range s.p.symbolsAt(pos) {
			if s.done() {
				return
			}
			if byte(c) == in[pos] {
				continue
			}
			s.try(in[:pos] + string(c) + in[pos+1:])
		}
	}
}

// swapOrder returns every position of in, prioritized for substitution.
func (s *search) swapOrder(in string) []int {
	seen := make([]bool, len(in))
	order := make([]int, 0, len(in))
	add := func(pos int) {
		if pos >= 0 && pos < len(in) && !seen[pos] {
			seen[pos] = true
			order = append(order, pos)
		}
	}
	for _, pos := range s.p.badPos(in) {
		add(pos)
	}
	for pos := len(in) - tailWindow; pos < len(in); pos++ {
		add(pos)
	}
	add(len(in) / 4)
	add(len(in) / 2)
	add(3 * len(in) / 4)
	for pos := 0; pos < len(in); pos++ {
		add(pos)
	}
	return order
}

// hotPositions is the reduced substitution set used by the BFS when the
// string is not at target length: malformed characters, the tail
// window, and the quarter marks. Keeps the branching factor tractable.
func (s *search) hotPositions(in string) []int {
	seen := make([]bool, len(in))
	order := make([]int, 0, len(in))
	add := func(pos int) {
		if pos >= 0 && pos < len(in) && !seen[pos] {
			seen[pos] = true
			order = append(order, pos)
		}
	}
	for _, pos := range s.p.badPos(in) {
		add(pos)
	}
	for pos := len(in) - tailWindow; pos < len(in); pos++ {
		add(pos)
	}
	add(len(in) / 4)
	add(len(in) / 2)
	add(3 * len(in) / 4)
	return order
}

// flipAt returns in with the case of the byte at pos flipped, when the
// flipped form is itself a valid symbol.
func (s *search) flipAt(in string, pos int) (string, bool) {
	twin, ok := s.p.twin(in[pos])
	if !ok {
		return "", false
	}
	return in[:pos] + string(twin) + in[pos+1:], true
}

// tryCaseFlips repairs case mistakes in case-sensitive alphabets: the
// last character first, then every twin character, then one tail flip
// combined with one interior flip.
func (s *search) tryCaseFlips(in string) {
	if f, ok := s.flipAt(in, len(in)-1); ok {
		s.try(f)
	}
	for pos := 0; pos < len(in); pos++ {
		if s.done() {
			return
		}
		if f, ok := s.flipAt(in, pos); ok {
			s.try(f)
		}
	}
	for tail := len(in) - tailWindow; tail < len(in); tail++ {
		f1, ok := s.flipAt(in, tail)
		if !ok {
			continue
		}
		for pos := 0; pos < len(in)-tailWindow; pos++ {
			if s.done() {
				return
			}
			if f2, ok := s.flipAt(f1, pos); ok {
				s.try(f2)
			}
		}
	}
}

// runBFS explores single-character substitutions, insertions, and
// deletions breadth-first up to maxEditDepth, validating every string
// that reaches the target length. The visited set prevents expanding
// the same state twice; the expansion ceiling bounds total work.
func (s *search) runBFS() {
	frontier := []frontierItem{{s.input, 0}}
	for len(frontier) > 0 && !s.done() {
		item := frontier[0]
		frontier = frontier[1:]
		if _, ok := s.visited[item.str]; ok {
			continue
		}
		s.visited[item.str] = struct{}{}
		for _, next := range s.edits(item.str) {
			if s.done() {
				return
			}
			s.try(next)
			if item.depth+1 < maxEditDepth {
				frontier = append(frontier, frontierItem{next, item.depth + 1})
			}
		}
	}
}

// edits generates every single-edit neighbor of cur: substitutions at
// prioritized positions (all of them when cur already has the target
// length), insertions while at or below target length, and deletions at
// non-first positions while above it.
func (s *search) edits(cur string) []string {
	var out []string

	var positions []int
	if len(cur) == s.p.target {
		positions = s.swapOrder(cur)
	} else {
		positions = s.hotPositions(cur)
	}
	for _, pos := range positions {
		for _, c := range s.p.symbolsAt(pos) {
			if byte(c) == cur[pos] {
				continue
			}
			out = append(out, cur[:pos]+string(c)+cur[pos+1:])
		}
	}

	if len(cur) <= s.p.target {
		for pos := 0; pos <= len(cur); pos++ {
			for _, c := range s.p.symbolsAt(pos) {
				out = append(out, cur[:pos]+string(c)+cur[pos:])
			}
		}
	}

	if len(cur) > s.p.target {
		for pos := 1; pos < len(cur); pos++ {
			out = append(out, cur[:pos]+cur[pos+1:])
		}
	}

	return out
}

// results recomputes exact distances, drops anything beyond the bound,
// ranks, and truncates to the caller's limit.
func (s *search) results() []string {
	kept := s.accepted[:0:0]
	for _, c := range s.accepted {
		if EditDistance(s.input, c) <= maxEditDepth {
			kept = append(kept, c)
		}
	}
	kept = Rank(s.input, kept)
	if len(kept) > s.limit {
		kept = kept[:s.limit]
	}
	return kept
}
