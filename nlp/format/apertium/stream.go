package apertium

import (
	"log"
	"strings"

	nlp "yu-val-weiss/ape2ud/nlp/types"

	"github.com/hashicorp/go-multierror"
)

// Mode selects what happens to malformed stream segments
type Mode int

const (
	// Strict fails the line on the first malformed segment
	Strict Mode = iota
	// Lenient skips malformed segments and reports them separately
	Lenient
)

func (m Mode) String() string {
	if m == Lenient {
		return "lenient"
	}
	return "strict"
}

const escapedSlashToken = `\//\/`

// ParseToken reads a single ^surface/analysis.../analysis$ token. In the Ape
// dialect a token of one tagged field, ^lemma<tags>$, is read as its own
// analysis with the lemma as surface.
func ParseToken(ape string, d Dialect) (*nlp.Token, error) {
	if len(ape) < 2 || ape[0] != TOKEN_START || ape[len(ape)-1] != TOKEN_END || isEscaped(ape, len(ape)-1) {
		return nil, &MalformedTokenError{ape, "not a token in ape stream"}
	}
	body := strings.Replace(ape[1:len(ape)-1], "///", escapedSlashToken, -1)
	fields := splitUnescaped(body, string(FIELD_SEPARATOR))
	surf := Unescape(fields[0])
	if len(surf) == 0 {
		return nil, &MalformedTokenError{ape, "empty surface form"}
	}
	if len(fields) == 1 && d == Ape && indexUnescaped(fields[0], TAG_OPEN) > 0 {
		// tagger output: ^lemma<tags>$ carries a single analysis and no surface
		analysis, err := ParseAnalysis(fields[0], d)
		if err != nil {
			return nil, err
		}
		token := nlp.NewToken(Unescape(fields[0][:indexUnescaped(fields[0], TAG_OPEN)]))
		token.AddAnalysis(analysis)
		return token, nil
	}
	token := nlp.NewToken(surf)
	for _, field := range fields[1:] {
		analysis, err := ParseAnalysis(field, d)
		if err != nil {
			return nil, err
		}
		token.AddAnalysis(analysis)
	}
	return token, nil
}

// A Parser turns stream lines into sentences. It holds no state between
// lines and may be shared by goroutines.
type Parser struct {
	Dialect Dialect
	Mode    Mode
}

// ParseLine reads one line of the stream as a sentence.
//
// In Strict mode any malformed segment is returned as err. In Lenient mode
// malformed segments are left out of the sentence, counted in its Skipped
// field and returned in skipped.
// Unknown tags are an error in both modes.
func (p *Parser) ParseLine(line string) (sent *nlp.Sentence, skipped error, err error) {
	var warnings *multierror.Error
	sent = nlp.NewSentence()
	var text strings.Builder
	segments := splitUnescaped(line, string(TOKEN_END))
	for i, segment := range segments {
		start := indexUnescaped(segment, TOKEN_START)
		if start < 0 {
			if strings.TrimSpace(segment) != "" {
				malformed := &MalformedTokenError{segment, "no token start marker"}
				if p.Mode == Strict {
					return nil, nil, malformed
				}
				warnings = multierror.Append(warnings, malformed)
				continue
			}
			if i == len(segments)-1 && len(segment) > 0 && len(sent.Tokens) > 0 {
				sent.Tokens[len(sent.Tokens)-1].SpaceAfter = true
			}
			continue
		}
		leading := segment[:start]
		if strings.TrimSpace(leading) != "" {
			malformed := &MalformedTokenError{segment, "unexpected text before token"}
			if p.Mode == Strict {
				return nil, nil, malformed
			}
			warnings = multierror.Append(warnings, malformed)
			continue
		}
		token, tokErr := ParseToken(segment[start:]+string(TOKEN_END), p.Dialect)
		if tokErr != nil {
			if _, isMalformed := tokErr.(*MalformedTokenError); isMalformed && p.Mode == Lenient {
				warnings = multierror.Append(warnings, tokErr)
				continue
			}
			return nil, nil, tokErr
		}
		token.Leading = leading
		sent.AddToken(token)
		text.WriteString(leading)
		text.WriteString(token.Surf)
	}
	sent.Text = text.String()
	if warnings != nil {
		sent.Skipped = len(warnings.Errors)
	}
	return sent, warnings.ErrorOrNil(), nil
}

// Analyze implements ma.StreamAnalyzer. Segments skipped in Lenient mode
// are logged.
func (p *Parser) Analyze(line string) (*nlp.Sentence, error) {
	sent, skipped, err := p.ParseLine(line)
	if err != nil {
		return nil, err
	}
	if skipped != nil {
		log.Println("Skipped malformed segments:", skipped)
	}
	return sent, nil
}
