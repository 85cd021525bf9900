package types

import (
	"sort"
	"strings"
)

const (
	FEATURES_SEPARATOR = "|"
	FEATURE_SEPARATOR  = "="
	EMPTY_FIELD        = "_"
	LEMMA_JOINER       = "#"
	ROOT_LABEL         = "root"
)

// UPOS is a Universal Dependencies part-of-speech tag.
// The zero value means no tag was assigned and renders as X.
type UPOS int

const (
	NoUPOS UPOS = iota
	ADJ
	ADP
	ADV
	AUX
	CCONJ
	DET
	INTJ
	NOUN
	NUM
	PART
	PRON
	PROPN
	PUNCT
	SCONJ
	SYM
	VERB
	X
)

var uposNames = [...]string{
	NoUPOS: "X",
	ADJ:    "ADJ",
	ADP:    "ADP",
	ADV:    "ADV",
	AUX:    "AUX",
	CCONJ:  "CCONJ",
	DET:    "DET",
	INTJ:   "INTJ",
	NOUN:   "NOUN",
	NUM:    "NUM",
	PART:   "PART",
	PRON:   "PRON",
	PROPN:  "PROPN",
	PUNCT:  "PUNCT",
	SCONJ:  "SCONJ",
	SYM:    "SYM",
	VERB:   "VERB",
	X:      "X",
}

func (u UPOS) String() string {
	if u < 0 || int(u) >= len(uposNames) {
		return "X"
	}
	return uposNames[u]
}

// Valid reports whether u is a member of the closed tag set or NoUPOS.
func (u UPOS) Valid() bool {
	return u >= NoUPOS && u <= X
}

// ParseUPOS returns the tag named s, or false if s is not a UPOS tag.
func ParseUPOS(s string) (UPOS, bool) {
	for i := ADJ; i <= X; i++ {
		if uposNames[i] == s {
			return i, true
		}
	}
	return NoUPOS, false
}

// Features maps a feature name to its value
type Features map[string]string

func (f Features) Copy() Features {
	if f == nil {
		return nil
	}
	c := make(Features, len(f))
	for k, v := range f {
		c[k] = v
	}
	return c
}

// Keys returns the feature names sorted case-insensitively, as UD orders FEATS.
func (f Features) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := strings.ToLower(keys[i]), strings.ToLower(keys[j])
		if li == lj {
			return keys[i] < keys[j]
		}
		return li < lj
	})
	return keys
}

// Pairs returns Key=Value strings in Keys order
func (f Features) Pairs() []string {
	keys := f.Keys()
	strs := make([]string, len(keys))
	for i, k := range keys {
		strs[i] = k + FEATURE_SEPARATOR + f[k]
	}
	return strs
}

func (f Features) Printable() string {
	if len(f) == 0 {
		return EMPTY_FIELD
	}
	return strings.Join(f.Pairs(), FEATURES_SEPARATOR)
}
