package types

import "sort"

// A Token is a surface form and the analyses the analyzer proposed for it,
// kept in the order they appeared in the stream.
type Token struct {
	Surf        string
	Pos         int
	SpaceBefore bool
	SpaceAfter  bool
	// Leading is the literal text that preceded the token in the stream
	Leading string

	analyses []*Analysis
}

func NewToken(surf string) *Token {
	return &Token{Surf: surf}
}

func (t *Token) AddAnalysis(a *Analysis) {
	t.analyses = append(t.analyses, a)
}

// Analyses returns the stored analyses in source order.
func (t *Token) Analyses() []*Analysis {
	return append([]*Analysis(nil), t.analyses...)
}

func (t *Token) Len() int {
	return len(t.analyses)
}

// Prune removes every analysis for which keep returns false, preserving the
// order of the rest, and returns the number removed.
func (t *Token) Prune(keep func(i int, a *Analysis) bool) int {
	kept := t.analyses[:0]
	var removed int
	for i, a := range t.analyses {
		if keep(i, a) {
			kept = append(kept, a)
		} else {
			removed++
		}
	}
	for i := len(kept); i < len(t.analyses); i++ {
		t.analyses[i] = nil
	}
	t.analyses = kept
	return removed
}

// IsOOV reports whether the analyzer failed to recognise the token:
// it has no analysis other than out-of-vocabulary guesses.
func (t *Token) IsOOV() bool {
	if len(t.analyses) == 0 {
		return false
	}
	for _, a := range t.analyses {
		if !a.IsOOV() {
			return false
		}
	}
	return true
}

type candidate struct {
	index int
	anal  *Analysis
}

// NBest returns at most n analyses with the lowest weights, 0 meaning all of
// them. The stored order is left untouched.
//
// Once the working set is full an incoming analysis replaces one member of
// maximal weight, only if strictly lighter. Of several members tied at the
// maximum the one seen last in the stream is evicted, so earlier analyses win
// ties. The result is ordered by weight, then by stream position.
func (t *Token) NBest(n int) []*Analysis {
	if n <= 0 || n > len(t.analyses) {
		n = len(t.analyses)
	}
	if n == 0 {
		return nil
	}
	nbest := make([]candidate, 0, n)
	worst := -1
	for i, anal := range t.analyses {
		if len(nbest) < n {
			nbest = append(nbest, candidate{i, anal})
			if worst < 0 || anal.weight >= nbest[worst].anal.weight {
				worst = len(nbest) - 1
			}
			continue
		}
		if anal.weight < nbest[worst].anal.weight {
			nbest[worst] = candidate{i, anal}
			worst = findWorst(nbest)
		}
	}
	sort.SliceStable(nbest, func(i, j int) bool {
		if nbest[i].anal.weight != nbest[j].anal.weight {
			return nbest[i].anal.weight < nbest[j].anal.weight
		}
		return nbest[i].index < nbest[j].index
	})
	result := make([]*Analysis, len(nbest))
	for i, c := range nbest {
		result[i] = c.anal
	}
	return result
}

// findWorst scans the working set for the heaviest member, preferring the
// latest stream position among equals.
func findWorst(set []candidate) int {
	worst := 0
	for i := 1; i < len(set); i++ {
		w, cur := set[i].anal.weight, set[worst].anal.weight
		if w > cur || (w == cur && set[i].index > set[worst].index) {
			worst = i
		}
	}
	return worst
}

// Best returns the lowest-weight analysis, or nil when the token has none.
func (t *Token) Best() *Analysis {
	nbest1 := t.NBest(1)
	if len(nbest1) == 0 {
		return nil
	}
	return nbest1[0]
}
