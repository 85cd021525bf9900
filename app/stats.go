package app

import (
	"fmt"
	"io"
	"time"
)

// Stats are the counts of a conversion run
type Stats struct {
	Tokens    int
	Sentences int
	OOV       int
	Removed   int
	Skipped   int
	Elapsed   time.Duration
}

func (s *Stats) OOVRate() float64 {
	if s.Tokens == 0 {
		return 0
	}
	return float64(s.OOV) / float64(s.Tokens) * 100
}

func perSecond(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}

func (s *Stats) Write(writer io.Writer) error {
	_, err := fmt.Fprintf(writer,
		"Tokens: %d Sentences: %d\n"+
			"Unknowns / OOV: %d = %.2f %%\n"+
			"Analyses removed: %d\n"+
			"Malformed segments skipped: %d\n"+
			"Real time: %v\n"+
			"Tokens per second: %.1f\n"+
			"Sentences per second: %.1f\n",
		s.Tokens, s.Sentences,
		s.OOV, s.OOVRate(),
		s.Removed,
		s.Skipped,
		s.Elapsed,
		perSecond(s.Tokens, s.Elapsed),
		perSecond(s.Sentences, s.Elapsed))
	return err
}
