package conllu

// Package conllu writes sentences as CoNLL-U.
// For a description see
// https://universaldependencies.org/format.html

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	nlp "yu-val-weiss/ape2ud/nlp/types"
)

const (
	FIELD_SEPARATOR = "\t"
	NUM_FIELDS      = 10
	SENT_ID_COMMENT = "# sent_id = "
	TEXT_COMMENT    = "# text = "
	SPACE_AFTER_NO  = "SpaceAfter=No"
)

// A Row is a single line of a CoNLL-U sentence
type Row struct {
	ID      int
	Form    string
	Lemma   string
	UPosTag string
	XPosTag string
	FeatStr string
	Head    string
	DepRel  string
	Deps    string
	Misc    string
}

func (r Row) String() string {
	fields := []string{
		strconv.Itoa(r.ID),
		r.Form,
		r.Lemma,
		r.UPosTag,
		r.XPosTag,
		r.FeatStr,
		r.Head,
		r.DepRel,
		r.Deps,
		r.Misc,
	}
	for i, field := range fields {
		if len(field) == 0 {
			fields[i] = nlp.EMPTY_FIELD
		}
	}
	return strings.Join(fields, FIELD_SEPARATOR)
}

// EmptyRow is the row of a token without analyses
func EmptyRow(token *nlp.Token) Row {
	return Row{
		ID:      token.Pos,
		Form:    token.Surf,
		Lemma:   token.Surf,
		UPosTag: nlp.X.String(),
	}
}

// AnalysisRow renders token under analysis anal; a nil anal gives EmptyRow.
func AnalysisRow(token *nlp.Token, anal *nlp.Analysis) Row {
	if anal == nil {
		return EmptyRow(token)
	}
	upos := anal.UPOS().String()
	return Row{
		ID:      token.Pos,
		Form:    token.Surf,
		Lemma:   anal.Lemma(),
		UPosTag: upos,
		XPosTag: upos,
		FeatStr: anal.PrintableFeats(),
		Head:    anal.PrintableDepHead(),
		DepRel:  anal.PrintableDepRel(),
		Misc:    anal.PrintableMisc(),
	}
}

// A Writer renders sentences, one block per sentence followed by an empty line.
type Writer struct {
	// Ambiguous prints every stored analysis of a token instead of the best
	Ambiguous bool
	// MarkSpaceAfter adds SpaceAfter=No to tokens directly followed by another
	MarkSpaceAfter bool
}

func (w *Writer) tokenRows(sent *nlp.Sentence, i int) []Row {
	token := sent.Tokens[i]
	var rows []Row
	if w.Ambiguous && token.Len() > 0 {
		for _, anal := range token.Analyses() {
			rows = append(rows, AnalysisRow(token, anal))
		}
	} else {
		rows = []Row{AnalysisRow(token, token.Best())}
	}
	if w.MarkSpaceAfter && !token.SpaceAfter && i < len(sent.Tokens)-1 {
		for j := range rows {
			rows[j].Misc = appendMisc(rows[j].Misc, SPACE_AFTER_NO)
		}
	}
	return rows
}

func appendMisc(misc, entry string) string {
	if len(misc) == 0 || misc == nlp.EMPTY_FIELD {
		return entry
	}
	return misc + nlp.FEATURES_SEPARATOR + entry
}

// Format returns the CoNLL-U block of sent, including the trailing empty line.
func (w *Writer) Format(sent *nlp.Sentence) string {
	var b strings.Builder
	if len(sent.ID) > 0 {
		b.WriteString(SENT_ID_COMMENT)
		b.WriteString(sent.ID)
		b.WriteByte('\n')
	}
	if len(sent.Text) > 0 {
		b.WriteString(TEXT_COMMENT)
		b.WriteString(sent.Text)
		b.WriteByte('\n')
	}
	for i := range sent.Tokens {
		for _, row := range w.tokenRows(sent, i) {
			b.WriteString(row.String())
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func (w *Writer) WriteSentence(writer io.Writer, sent *nlp.Sentence) error {
	_, err := io.WriteString(writer, w.Format(sent))
	return err
}

func (w *Writer) Write(writer io.Writer, sents []*nlp.Sentence) error {
	bufWriter := bufio.NewWriter(writer)
	for _, sent := range sents {
		if err := w.WriteSentence(bufWriter, sent); err != nil {
			return err
		}
	}
	return bufWriter.Flush()
}

func (w *Writer) WriteFile(filename string, sents []*nlp.Sentence) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return w.Write(file, sents)
}
