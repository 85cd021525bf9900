package apertium

// Package apertium reads the apertium stream format: one sentence per line,
// tokens written as ^surface/analysis1/analysis2$ with literal text between
// them. Analyses are lemma<tag><tag> (Ape) or lemma+Tag+Tag (Giella).
//
// Known limitations:
//
//   - In compounds, the tags of every part before the last compound
//     boundary are dropped; only the lemmas of those parts are kept.

import (
	"strings"

	nlp "yu-val-weiss/ape2ud/nlp/types"
)

const (
	TOKEN_START     = '^'
	TOKEN_END       = '$'
	FIELD_SEPARATOR = '/'
	TAG_OPEN        = '<'
	TAG_CLOSE       = '>'
	TAG_JOINER      = '+'
	LEMMA_JOINER    = '#'
	OOV_MARKER      = '*'
	ESCAPE          = '\\'
)

// tagDelimiters returns the bytes that start a tag in dialect d
func tagDelimiters(d Dialect) string {
	if d == Giella {
		return string(TAG_JOINER)
	}
	return string([]byte{TAG_OPEN, TAG_JOINER})
}

// tagOpener is the delimiter before the first tag of an analysis
func tagOpener(d Dialect) byte {
	if d == Giella {
		return TAG_JOINER
	}
	return TAG_OPEN
}

// ParseAnalysis converts one analysis field of a token into an Analysis,
// mapping each tag through the dialect table. A tag the table does not know
// yields an *UnknownTagError.
func ParseAnalysis(field string, d Dialect) (*nlp.Analysis, error) {
	if len(field) > 0 && field[0] == OOV_MARKER {
		return nlp.NewOOVAnalysis(Unescape(field[1:])), nil
	}
	stripped := stripCompoundTags(field, d)
	pieces := splitUnescaped(stripped, tagDelimiters(d))
	lemmas := splitUnescaped(pieces[0], string(LEMMA_JOINER))
	for i, lemma := range lemmas {
		lemmas[i] = Unescape(lemma)
	}

	var (
		upos  nlp.UPOS
		feats = make(nlp.Features)
		misc  = make(nlp.Features)
	)
	for _, piece := range pieces[1:] {
		tag := piece
		if d == Ape {
			tag = strings.Trim(piece, string(TAG_CLOSE))
		}
		effect, known := Lookup(d, tag)
		if !known {
			return nil, &UnknownTagError{Dialect: d, Tag: tag, Field: field}
		}
		if effect.UPOS != nlp.NoUPOS {
			upos = effect.UPOS
		}
		for _, f := range effect.Feats {
			feats[f.Name] = f.Value
		}
		for _, f := range effect.Misc {
			misc[f.Name] = f.Value
		}
	}
	return nlp.NewAnalysis(upos, lemmas, feats, misc, float64(len(lemmas)-1)), nil
}

// stripCompoundTags removes the tags written between the first tag opener and
// the last compound boundary: a<n><sg>#b<n><pl> becomes a#b<n><pl>.
func stripCompoundTags(field string, d Dialect) string {
	last := lastIndexUnescaped(field, LEMMA_JOINER)
	if last < 0 {
		return field
	}
	first := indexUnescaped(field, tagOpener(d))
	if first < 0 || first > last {
		return field
	}
	return field[:first] + field[last:]
}

func isEscaped(s string, i int) bool {
	var n int
	for j := i - 1; j >= 0 && s[j] == ESCAPE; j-- {
		n++
	}
	return n%2 == 1
}

func indexUnescaped(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c && !isEscaped(s, i) {
			return i
		}
	}
	return -1
}

func lastIndexUnescaped(s string, c byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c && !isEscaped(s, i) {
			return i
		}
	}
	return -1
}

// splitUnescaped splits s around every unescaped byte in seps.
// Escapes are kept in the pieces.
func splitUnescaped(s string, seps string) []string {
	pieces := make([]string, 0, 4)
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(seps, s[i]) >= 0 && !isEscaped(s, i) {
			pieces = append(pieces, s[start:i])
			start = i + 1
		}
	}
	return append(pieces, s[start:])
}

// Unescape removes stream escapes: \^ becomes ^, \\ becomes \.
func Unescape(s string) string {
	if strings.IndexByte(s, ESCAPE) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ESCAPE && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
