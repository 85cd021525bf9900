package apertium

import (
	"errors"
	"strings"
	"testing"

	nlp "yu-val-weiss/ape2ud/nlp/types"

	"github.com/hashicorp/go-multierror"
)

func TestParseAnalysisNoun(t *testing.T) {
	a, err := ParseAnalysis("cat<n><sg>", Ape)
	if err != nil {
		t.Fatal(err.Error())
	}
	if a.UPOS() != nlp.NOUN {
		t.Errorf("Expected NOUN, got %v", a.UPOS())
	}
	if a.Lemma() != "cat" {
		t.Errorf("Expected lemma cat, got %s", a.Lemma())
	}
	if a.PrintableFeats() != "Number=Sing" {
		t.Errorf("Expected Number=Sing, got %s", a.PrintableFeats())
	}
	if a.Weight() != 0 {
		t.Errorf("Expected weight 0, got %v", a.Weight())
	}
}

func TestParseAnalysisEffects(t *testing.T) {
	tests := []struct {
		field   string
		dialect Dialect
		upos    nlp.UPOS
		feats   string
		misc    string
	}{
		{"olla<vbser><pri><p3><sg>", Ape, nlp.AUX, "Mood=Ind|Number=Sing|Person=3|Tense=Pres|VerbForm=Fin", "Weight=0.0"},
		{"Virtanen<np><cog><sg><nom>", Ape, nlp.PROPN, "Case=Nom|Number=Sing", "PropnType=Cog|Weight=0.0"},
		{"ja<cnjcoo><enc>", Ape, nlp.CCONJ, "_", "Weight=0.0"},
		{"talo<n><pl><ine><pxsg1>", Ape, nlp.NOUN, "Case=Ine|Number=Plur|Number[psor]=Sing|Person[psor]=1", "Weight=0.0"},
		{"talo+N+Pl+Ine+PxSg1", Giella, nlp.NOUN, "Case=Ine|Number=Plur|Number[psor]=Sing|Person[psor]=1", "Weight=0.0"},
		{"Helsinki+N+Prop+Plc+Sg+Nom", Giella, nlp.PROPN, "Case=Nom|Number=Sing", "PropnType=Top|Weight=0.0"},
		{"ei+V+Neg+Act+Sg3", Giella, nlp.VERB, "Number=Sing|Person=3|Polarity=Neg|Voice=Act", "Weight=0.0"},
		{"de<pr>", Ape, nlp.NoUPOS, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			a, err := ParseAnalysis(tt.field, tt.dialect)
			if tt.feats == "" {
				if err == nil {
					t.Fatalf("Expected error for %s", tt.field)
				}
				return
			}
			if err != nil {
				t.Fatal(err.Error())
			}
			if a.RawUPOS() != tt.upos {
				t.Errorf("Expected %v, got %v", tt.upos, a.RawUPOS())
			}
			if a.PrintableFeats() != tt.feats {
				t.Errorf("Expected %s, got %s", tt.feats, a.PrintableFeats())
			}
			if a.PrintableMisc() != tt.misc {
				t.Errorf("Expected %s, got %s", tt.misc, a.PrintableMisc())
			}
		})
	}
}

func TestParseAnalysisOOV(t *testing.T) {
	a, err := ParseAnalysis("*blorf", Ape)
	if err != nil {
		t.Fatal(err.Error())
	}
	if a.UPOS() != nlp.X || a.Lemma() != "blorf" || !a.IsOOV() {
		t.Errorf("Expected OOV X analysis with lemma blorf, got %v", a)
	}
	if a.HasWeight() {
		t.Errorf("Expected OOV weight to stay undefined, got %v", a.Weight())
	}
	// no tag decomposition on OOV fields
	if _, err := ParseAnalysis("*foo<zzz>", Ape); err != nil {
		t.Errorf("Expected OOV field to skip tag lookup, got %v", err)
	}
}

func TestParseAnalysisCompound(t *testing.T) {
	a, err := ParseAnalysis("koira<n><sg><nom>#kissa<n><pl><gen>", Ape)
	if err != nil {
		t.Fatal(err.Error())
	}
	lemmas := a.Lemmas()
	if len(lemmas) != 2 || lemmas[0] != "koira" || lemmas[1] != "kissa" {
		t.Errorf("Expected [koira kissa], got %v", lemmas)
	}
	if a.Lemma() != "koira#kissa" {
		t.Errorf("Expected koira#kissa, got %s", a.Lemma())
	}
	// tags of the first part are dropped
	if a.PrintableFeats() != "Case=Gen|Number=Plur" {
		t.Errorf("Expected features of the last part only, got %s", a.PrintableFeats())
	}
	if a.Weight() != 1 {
		t.Errorf("Expected weight 1, got %v", a.Weight())
	}

	g, err := ParseAnalysis("koira+N+Sg+Nom+Cmp#kala#kissa+N+Pl+Gen", Giella)
	if err != nil {
		t.Fatal(err.Error())
	}
	if g.Lemma() != "koira#kissa" || g.Weight() != 1 {
		t.Errorf("Expected koira#kissa weight 1, got %s %v", g.Lemma(), g.Weight())
	}

	// boundary before any tag keeps every lemma
	three, err := ParseAnalysis("koira#kala#kissa<n><sg>", Ape)
	if err != nil {
		t.Fatal(err.Error())
	}
	if three.Lemma() != "koira#kala#kissa" || three.Weight() != 2 {
		t.Errorf("Expected three lemmas of weight 2, got %s %v", three.Lemma(), three.Weight())
	}
}

func TestParseAnalysisUnknownTag(t *testing.T) {
	_, err := ParseAnalysis("cat<zzz>", Ape)
	var unknown *UnknownTagError
	if !errors.As(err, &unknown) {
		t.Fatalf("Expected UnknownTagError, got %v", err)
	}
	if unknown.Tag != "zzz" || unknown.Dialect != Ape {
		t.Errorf("Expected tag zzz of ape, got %s of %v", unknown.Tag, unknown.Dialect)
	}
	if _, err := ParseAnalysis("cat+n+sg", Giella); err == nil {
		t.Error("Expected ape tags to be unknown in giella")
	}
}

func TestTablesAreWellFormed(t *testing.T) {
	for _, d := range Dialects() {
		for _, tag := range Tags(d) {
			effect, known := Lookup(d, tag)
			if !known {
				t.Errorf("Listed tag %s missing from %v", tag, d)
			}
			if !effect.UPOS.Valid() {
				t.Errorf("Tag %s of %v maps to invalid UPOS %d", tag, d, effect.UPOS)
			}
			field := "x<" + tag + ">"
			if d == Giella {
				field = "x+" + tag
			}
			a, err := ParseAnalysis(field, d)
			if err != nil {
				t.Errorf("Expected %s to parse, got %v", field, err)
				continue
			}
			if a.Weight() < 0 {
				t.Errorf("Expected non-negative weight for %s", field)
			}
		}
	}
}

func TestParseToken(t *testing.T) {
	token, err := ParseToken("^kissat/kissa<n><pl><nom>/kissa<n><sg><par>$", Ape)
	if err != nil {
		t.Fatal(err.Error())
	}
	if token.Surf != "kissat" {
		t.Errorf("Expected surface kissat, got %s", token.Surf)
	}
	if token.Len() != 2 {
		t.Errorf("Expected 2 analyses, got %d", token.Len())
	}

	slash, err := ParseToken("^///<sym>$", Ape)
	if err != nil {
		t.Fatal(err.Error())
	}
	if slash.Surf != "/" || slash.Best().Lemma() != "/" {
		t.Errorf("Expected slash surface and lemma, got %s %s", slash.Surf, slash.Best().Lemma())
	}

	escaped, err := ParseToken(`^a\/b/a\/b<n>$`, Ape)
	if err != nil {
		t.Fatal(err.Error())
	}
	if escaped.Surf != "a/b" || escaped.Best().Lemma() != "a/b" {
		t.Errorf("Expected a/b, got %s %s", escaped.Surf, escaped.Best().Lemma())
	}

	bare, err := ParseToken("^xyz$", Ape)
	if err != nil {
		t.Fatal(err.Error())
	}
	if bare.Len() != 0 || bare.Best() != nil {
		t.Errorf("Expected token without analyses")
	}

	tagged, err := ParseToken("^cat<n><sg>$", Ape)
	if err != nil {
		t.Fatal(err.Error())
	}
	if tagged.Surf != "cat" || tagged.Len() != 1 || tagged.Best().UPOS() != nlp.NOUN {
		t.Errorf("Expected tagger output cat NOUN, got %s with %d analyses", tagged.Surf, tagged.Len())
	}

	for _, bad := range []string{"kissa", "^kissa", "kissa$", "^/kissa<n>$"} {
		_, err := ParseToken(bad, Ape)
		var malformed *MalformedTokenError
		if !errors.As(err, &malformed) {
			t.Errorf("Expected MalformedTokenError for %q, got %v", bad, err)
		}
	}
}

func TestParseLine(t *testing.T) {
	p := &Parser{Dialect: Ape}
	sent, skipped, err := p.ParseLine("^Kissa/kissa<n><sg><nom>$ ^nukkuu/nukkua<vblex><pri><p3><sg>$^./.<punct>$")
	if err != nil {
		t.Fatal(err.Error())
	}
	if skipped != nil {
		t.Errorf("Expected nothing skipped, got %v", skipped)
	}
	if sent.Text != "Kissa nukkuu." {
		t.Errorf("Expected text 'Kissa nukkuu.', got %q", sent.Text)
	}
	if sent.Text != sent.ReconstructText() {
		t.Errorf("Text %q does not round trip: %q", sent.Text, sent.ReconstructText())
	}
	if strings.Count(sent.Text, " ") != 1 {
		t.Errorf("Expected exactly one space, got %q", sent.Text)
	}
	if len(sent.Tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(sent.Tokens))
	}
	for i, token := range sent.Tokens {
		if token.Pos != i+1 {
			t.Errorf("Expected position %d, got %d", i+1, token.Pos)
		}
	}
	if !sent.Tokens[0].SpaceAfter || !sent.Tokens[1].SpaceBefore {
		t.Error("Expected space between first and second token")
	}
	if sent.Tokens[1].SpaceAfter || sent.Tokens[2].SpaceBefore {
		t.Error("Expected no space before the full stop")
	}
}

func TestParseLineSpacing(t *testing.T) {
	p := &Parser{Dialect: Ape}
	sent, _, err := p.ParseLine("^a/a<n>$  ^b/b<n>$ ")
	if err != nil {
		t.Fatal(err.Error())
	}
	if sent.Text != "a  b" {
		t.Errorf("Expected literal spacing preserved, got %q", sent.Text)
	}
	if !sent.Tokens[1].SpaceAfter {
		t.Error("Expected trailing whitespace to set SpaceAfter")
	}

	empty, _, err := p.ParseLine("   ")
	if err != nil {
		t.Fatal(err.Error())
	}
	if empty.Text != "" || len(empty.Tokens) != 0 {
		t.Errorf("Expected empty sentence, got %q", empty.Text)
	}
}

func TestParseLineModes(t *testing.T) {
	line := "^a/a<n>$ junk ^b/b<n>$"
	strict := &Parser{Dialect: Ape, Mode: Strict}
	if _, _, err := strict.ParseLine(line); err == nil {
		t.Error("Expected strict mode to fail on junk")
	} else {
		var malformed *MalformedTokenError
		if !errors.As(err, &malformed) {
			t.Errorf("Expected MalformedTokenError, got %v", err)
		}
	}

	lenient := &Parser{Dialect: Ape, Mode: Lenient}
	sent, skipped, err := lenient.ParseLine(line + " trailing")
	if err != nil {
		t.Fatal(err.Error())
	}
	merr, ok := skipped.(*multierror.Error)
	if !ok || len(merr.Errors) != 2 {
		t.Errorf("Expected 2 skipped segments, got %v", skipped)
	}
	if sent.Skipped != 2 {
		t.Errorf("Expected sentence to count 2 skipped segments, got %d", sent.Skipped)
	}
	if len(sent.Tokens) != 1 || sent.Tokens[0].Surf != "a" {
		t.Errorf("Expected only token a to survive, got %d tokens", len(sent.Tokens))
	}

	// unknown tags stay fatal in lenient mode
	if _, _, err := lenient.ParseLine("^a/a<zzz>$"); err == nil {
		t.Error("Expected unknown tag to fail in lenient mode")
	}
}

func TestParseLineGiella(t *testing.T) {
	p := &Parser{Dialect: Giella}
	sent, _, err := p.ParseLine("^talossa/talo+N+Sg+Ine$ ^on/olla+V+Act+Ind+Prs+Sg3$")
	if err != nil {
		t.Fatal(err.Error())
	}
	best := sent.Tokens[1].Best()
	if best.UPOS() != nlp.VERB || best.Feats()["Person"] != "3" {
		t.Errorf("Expected third person verb, got %v", best)
	}
}

func TestParseDialect(t *testing.T) {
	for _, d := range Dialects() {
		parsed, err := ParseDialect(d.String())
		if err != nil || parsed != d {
			t.Errorf("Expected %v to round trip, got %v %v", d, parsed, err)
		}
	}
	if _, err := ParseDialect("cg3"); err == nil {
		t.Error("Expected cg3 to be rejected")
	}
}
