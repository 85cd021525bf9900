package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"yu-val-weiss/ape2ud/nlp/format/conllu"
	"yu-val-weiss/ape2ud/nlp/parser/disambig"
	"yu-val-weiss/ape2ud/nlp/parser/ma"
	nlp "yu-val-weiss/ape2ud/nlp/types"

	"golang.org/x/text/unicode/norm"
)

// Lines longer than this abort the run
const MAX_LINE_LENGTH = 16 * 1024 * 1024

// A Converter turns a stream of analyzer lines into CoNLL-U, one sentence per
// line. Lines are analyzed by Workers goroutines and written in input order.
type Converter struct {
	Analyzer      ma.StreamAnalyzer
	Disambiguator disambig.Disambiguator
	Writer        *conllu.Writer
	// Name prefixes sentence ids: <Name>.<n>
	Name      string
	Workers   int
	Normalize bool
}

type job struct {
	index int
	line  string
}

type result struct {
	index   int
	sent    *nlp.Sentence
	removed int
	err     error
}

func (c *Converter) process(j job) result {
	line := strings.TrimSpace(j.line)
	if c.Normalize {
		line = norm.NFC.String(line)
	}
	sent, err := c.Analyzer.Analyze(line)
	if err != nil {
		return result{index: j.index, err: err}
	}
	var removed int
	if c.Disambiguator != nil && len(sent.Tokens) > 0 {
		removed, err = c.Disambiguator.Disambiguate(sent)
		if err != nil {
			return result{index: j.index, err: err}
		}
	}
	return result{index: j.index, sent: sent, removed: removed}
}

func (c *Converter) emit(writer io.Writer, r result, stats *Stats) error {
	stats.Skipped += r.sent.Skipped
	if len(r.sent.Text) == 0 {
		return nil
	}
	stats.Sentences++
	stats.Tokens += len(r.sent.Tokens)
	stats.OOV += r.sent.NumOOV()
	stats.Removed += r.removed
	r.sent.ID = c.Name + "." + strconv.Itoa(stats.Sentences)
	return c.Writer.WriteSentence(writer, r.sent)
}

// Run converts every line of in and writes the sentences to out. The first
// failing line stops the run; sentences before it have been written.
// Cancelling parent stops the run with the context's error.
func (c *Converter) Run(parent context.Context, in io.Reader, out io.Writer) (*Stats, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	workers := c.Workers
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan job, workers*2)
	results := make(chan result, workers*2)

	var readErr error
	go func() {
		defer close(jobs)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), MAX_LINE_LENGTH)
		for i := 0; scanner.Scan(); i++ {
			select {
			case jobs <- job{i, scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		readErr = scanner.Err()
	}()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				select {
				case results <- c.process(j):
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	stats := &Stats{}
	startTime := time.Now()
	bufWriter := bufio.NewWriter(out)
	pending := make(map[int]result, workers*2)
	var (
		next     int
		firstErr error
	)
	for r := range results {
		if firstErr != nil {
			continue
		}
		pending[r.index] = r
		for cur, exists := pending[next]; exists; cur, exists = pending[next] {
			delete(pending, next)
			next++
			if cur.err != nil {
				firstErr = fmt.Errorf("line %d: %w", cur.index+1, cur.err)
				break
			}
			if err := c.emit(bufWriter, cur, stats); err != nil {
				firstErr = err
				break
			}
		}
		if firstErr != nil {
			cancel()
		}
	}
	stats.Elapsed = time.Since(startTime)
	if err := bufWriter.Flush(); err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr == nil && readErr != nil {
		firstErr = readErr
	}
	if firstErr == nil && parent.Err() != nil {
		firstErr = parent.Err()
	}
	return stats, firstErr
}
