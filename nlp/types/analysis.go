package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// An Analysis is a single hypothesis of a token's morphology.
// It is not modified after construction; the With* methods return copies.
type Analysis struct {
	upos    UPOS
	feats   Features
	misc    Features
	depRel  string
	depHead int
	hasHead bool
	weight  float64
	surface string
	lemmas  []string
	oov     bool
}

// NewAnalysis builds an analysis. Pass math.Inf(1) as weight when no score is known.
func NewAnalysis(upos UPOS, lemmas []string, feats, misc Features, weight float64) *Analysis {
	a := &Analysis{
		upos:   upos,
		feats:  feats.Copy(),
		misc:   misc.Copy(),
		weight: weight,
	}
	if len(lemmas) > 0 {
		a.lemmas = append([]string(nil), lemmas...)
	}
	return a
}

// NewOOVAnalysis builds the catch-all analysis of a token the analyzer did not recognise.
func NewOOVAnalysis(lemma string) *Analysis {
	return &Analysis{
		upos:   X,
		lemmas: []string{lemma},
		weight: math.Inf(1),
		oov:    true,
	}
}

func (a *Analysis) copy() *Analysis {
	c := *a
	c.feats = a.feats.Copy()
	c.misc = a.misc.Copy()
	c.lemmas = append([]string(nil), a.lemmas...)
	return &c
}

// WithDependency returns a copy of a attached to head with relation rel.
func (a *Analysis) WithDependency(rel string, head int) *Analysis {
	c := a.copy()
	c.depRel = rel
	c.depHead = head
	c.hasHead = true
	return c
}

// WithSurface returns a copy of a carrying the analyzer's normalized spelling.
func (a *Analysis) WithSurface(form string) *Analysis {
	c := a.copy()
	c.surface = form
	return c
}

func (a *Analysis) UPOS() UPOS {
	if a.upos == NoUPOS {
		return X
	}
	return a.upos
}

// RawUPOS returns the assigned tag, NoUPOS when none was.
func (a *Analysis) RawUPOS() UPOS {
	return a.upos
}

func (a *Analysis) Lemmas() []string {
	if len(a.lemmas) == 0 {
		return []string{EMPTY_FIELD}
	}
	return append([]string(nil), a.lemmas...)
}

func (a *Analysis) Lemma() string {
	return strings.Join(a.Lemmas(), LEMMA_JOINER)
}

func (a *Analysis) Feats() Features {
	return a.feats.Copy()
}

func (a *Analysis) Misc() Features {
	return a.misc.Copy()
}

func (a *Analysis) Weight() float64 {
	return a.weight
}

func (a *Analysis) HasWeight() bool {
	return !math.IsInf(a.weight, 1)
}

func (a *Analysis) IsOOV() bool {
	return a.oov
}

func (a *Analysis) Surface() string {
	return a.surface
}

func (a *Analysis) DepRel() string {
	return a.depRel
}

// DepHead returns the head position and whether one was set.
func (a *Analysis) DepHead() (int, bool) {
	return a.depHead, a.hasHead
}

func (a *Analysis) PrintableFeats() string {
	return a.feats.Printable()
}

// MiscPairs lists the MISC column entries: the alternate surface form,
// the auxiliary features and the weight when defined.
func (a *Analysis) MiscPairs() []string {
	var miscs []string
	if len(a.surface) > 0 {
		miscs = append(miscs, "AnalysisForm"+FEATURE_SEPARATOR+a.surface)
	}
	miscs = append(miscs, a.misc.Pairs()...)
	if a.HasWeight() {
		miscs = append(miscs, "Weight"+FEATURE_SEPARATOR+FormatWeight(a.weight))
	}
	return miscs
}

func (a *Analysis) PrintableMisc() string {
	miscs := a.MiscPairs()
	if len(miscs) == 0 {
		return EMPTY_FIELD
	}
	return strings.Join(miscs, FEATURES_SEPARATOR)
}

func (a *Analysis) PrintableDepRel() string {
	if len(a.depRel) == 0 {
		return EMPTY_FIELD
	}
	return a.depRel
}

func (a *Analysis) PrintableDepHead() string {
	if !a.hasHead {
		return EMPTY_FIELD
	}
	if a.depHead == 0 {
		if a.depRel == ROOT_LABEL {
			return "0"
		}
		return EMPTY_FIELD
	}
	return strconv.Itoa(a.depHead)
}

func (a *Analysis) String() string {
	return fmt.Sprintf("%v-%v-%v-%v", a.Lemma(), a.UPOS(), a.PrintableFeats(), FormatWeight(a.weight))
}

// FormatWeight prints integral weights with a trailing .0 ("1.0"),
// which is how existing MISC columns carry them.
func FormatWeight(w float64) string {
	if math.IsInf(w, 1) {
		return "inf"
	}
	s := strconv.FormatFloat(w, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
