package ma

import . "yu-val-weiss/ape2ud/nlp/types"

// A StreamAnalyzer reads one line of analyzer output as a sentence
type StreamAnalyzer interface {
	Analyze(line string) (*Sentence, error)
}
