package conllu

import (
	"bytes"
	"strings"
	"testing"

	"yu-val-weiss/ape2ud/nlp/format/apertium"
	nlp "yu-val-weiss/ape2ud/nlp/types"
)

func parse(t *testing.T, line string) *nlp.Sentence {
	t.Helper()
	p := &apertium.Parser{Dialect: apertium.Ape}
	sent, _, err := p.ParseLine(line)
	if err != nil {
		t.Fatal(err.Error())
	}
	return sent
}

func TestEndToEndNoun(t *testing.T) {
	for _, line := range []string{"^cat<n><sg>$", "^cat/cat<n><sg>$"} {
		sent := parse(t, line)
		if len(sent.Tokens) != 1 {
			t.Fatalf("Expected 1 token, got %d", len(sent.Tokens))
		}
		fields := strings.Split(AnalysisRow(sent.Tokens[0], sent.Tokens[0].Best()).String(), FIELD_SEPARATOR)
		if len(fields) != NUM_FIELDS {
			t.Fatalf("Expected %d fields, got %d", NUM_FIELDS, len(fields))
		}
		if fields[1] != "cat" || fields[2] != "cat" {
			t.Errorf("Expected FORM and LEMMA cat, got %s %s", fields[1], fields[2])
		}
		if fields[3] != "NOUN" || fields[4] != "NOUN" {
			t.Errorf("Expected UPOS NOUN twice, got %s %s", fields[3], fields[4])
		}
		if fields[5] != "Number=Sing" {
			t.Errorf("Expected FEATS Number=Sing, got %s", fields[5])
		}
		if fields[6] != "_" || fields[7] != "_" || fields[8] != "_" {
			t.Errorf("Expected empty dependency columns, got %v", fields[6:9])
		}
		if fields[9] != "Weight=0.0" {
			t.Errorf("Expected MISC Weight=0.0, got %s", fields[9])
		}
	}
}

func TestEmptyRow(t *testing.T) {
	token := nlp.NewToken("xyzzy")
	token.Pos = 4
	got := AnalysisRow(token, nil).String()
	want := "4\txyzzy\txyzzy\tX\t_\t_\t_\t_\t_\t_"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormat(t *testing.T) {
	sent := parse(t, "^Kissat/kissa<n><pl><nom>/kissa<n><sg><par>$ ^nukkuvat/nukkua<vblex><pri><p3><pl>$^./.<punct>$")
	sent.ID = "test.txt.1"
	w := &Writer{}
	want := strings.Join([]string{
		"# sent_id = test.txt.1",
		"# text = Kissat nukkuvat.",
		"1\tKissat\tkissa\tNOUN\tNOUN\tCase=Nom|Number=Plur\t_\t_\t_\tWeight=0.0",
		"2\tnukkuvat\tnukkua\tVERB\tVERB\tMood=Ind|Number=Plur|Person=3|Tense=Pres|VerbForm=Fin\t_\t_\t_\tWeight=0.0",
		"3\t.\t.\tPUNCT\tPUNCT\t_\t_\t_\t_\tWeight=0.0",
		"", "",
	}, "\n")
	if got := w.Format(sent); got != want {
		t.Errorf("Expected\n%s\ngot\n%s", want, got)
	}
}

func TestFormatAmbiguous(t *testing.T) {
	sent := parse(t, "^Kissat/kissa<n><pl><nom>/kissa<n><sg><par>$ ^zork$")
	w := &Writer{Ambiguous: true}
	lines := strings.Split(strings.TrimRight(w.Format(sent), "\n"), "\n")
	// text comment, two analyses, placeholder for the token without any
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.Contains(lines[1], "Number=Plur") || !strings.Contains(lines[2], "Number=Sing") {
		t.Errorf("Expected analyses in source order, got %v", lines[1:3])
	}
	if !strings.HasPrefix(lines[3], "2\tzork\tzork\tX\t_") {
		t.Errorf("Expected placeholder row, got %s", lines[3])
	}
}

func TestMarkSpaceAfter(t *testing.T) {
	sent := parse(t, "^Kissa/kissa<n><sg><nom>$^./.<punct>$")
	w := &Writer{MarkSpaceAfter: true}
	var buf bytes.Buffer
	if err := w.Write(&buf, []*nlp.Sentence{sent}); err != nil {
		t.Fatal(err.Error())
	}
	lines := strings.Split(buf.String(), "\n")
	if !strings.HasSuffix(lines[1], "Weight=0.0|SpaceAfter=No") {
		t.Errorf("Expected SpaceAfter=No on first token, got %s", lines[1])
	}
	if strings.Contains(lines[2], SPACE_AFTER_NO) {
		t.Errorf("Expected no SpaceAfter mark on the last token, got %s", lines[2])
	}
}
