package disambig

import (
	. "yu-val-weiss/ape2ud/nlp/types"
)

// A Disambiguator removes analyses from the tokens of a sentence. It never
// adds or reorders analyses. Disambiguate returns the number removed.
type Disambiguator interface {
	Disambiguate(*Sentence) (int, error)
}

// Identity keeps every analysis
type Identity struct{}

func (Identity) Disambiguate(sent *Sentence) (int, error) {
	return 0, nil
}

// NBestPruner keeps the N lowest-weight analyses of each token
type NBestPruner struct {
	N int
}

func (p *NBestPruner) Disambiguate(sent *Sentence) (int, error) {
	if p.N <= 0 {
		return 0, nil
	}
	var removed int
	for _, token := range sent.Tokens {
		if token.Len() <= p.N {
			continue
		}
		keep := make(map[*Analysis]bool, p.N)
		for _, anal := range token.NBest(p.N) {
			keep[anal] = true
		}
		removed += token.Prune(func(_ int, a *Analysis) bool {
			return keep[a]
		})
	}
	return removed, nil
}

// Chain applies each disambiguator in turn
type Chain []Disambiguator

func (c Chain) Disambiguate(sent *Sentence) (int, error) {
	var removed int
	for _, d := range c {
		n, err := d.Disambiguate(sent)
		removed += n
		if err != nil {
			return removed, err
		}
	}
	return removed, nil
}
