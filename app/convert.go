package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"yu-val-weiss/ape2ud/nlp/format/apertium"
	"yu-val-weiss/ape2ud/nlp/format/conllu"
	"yu-val-weiss/ape2ud/nlp/parser/disambig"
	"yu-val-weiss/ape2ud/util/conf"

	"github.com/gonuts/commander"
)

var (
	inFile, outFile, statsFile string
	confFile                   string
	dialectName                string
	useGiella                  bool
	lenient, debug             bool
	nBest, workers             int
	nfc, spaceAfter            bool
	verbose                    bool
)

// Settings merges the configuration file, if any, with the flags set on cmd.
func Settings(cmd *commander.Command) (*conf.Settings, error) {
	settings := conf.Default()
	if len(confFile) > 0 {
		var err error
		if settings, err = conf.ReadFile(confFile); err != nil {
			return nil, fmt.Errorf("reading configuration %s: %w", confFile, err)
		}
	}
	cmd.Flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dialect":
			settings.Dialect = dialectName
		case "giella":
			if useGiella {
				settings.Dialect = apertium.Giella.String()
			}
		case "lenient":
			settings.Lenient = lenient
		case "debug":
			settings.Debug = debug
		case "nbest":
			settings.NBest = nBest
		case "workers":
			settings.Workers = workers
		case "nfc":
			settings.NFC = nfc
		case "spaceafter":
			settings.SpaceAfter = spaceAfter
		}
	})
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func ConvertConfigOut(settings *conf.Settings) {
	log.Println("Configuration")
	log.Printf("Dialect:\t\t%s", settings.Dialect)
	log.Printf("Lenient:\t\t%v", settings.Lenient)
	log.Printf("Ambiguous output:\t%v", settings.Debug)
	log.Printf("N-best pruning:\t%v", settings.NBest)
	log.Printf("Workers:\t\t%v", settings.Workers)
	log.Printf("NFC:\t\t\t%v", settings.NFC)
	log.Println()
	log.Printf("Input:\t\t%s", nameOr(inFile, "<stdin>"))
	log.Printf("Output:\t\t%s", nameOr(outFile, "<stdout>"))
	log.Printf("Statistics:\t\t%s", nameOr(statsFile, "<stdout>"))
	log.Println()
}

func nameOr(name, fallback string) string {
	if len(name) == 0 {
		return fallback
	}
	return name
}

// NewConverter builds the converter described by settings
func NewConverter(settings *conf.Settings, name string) (*Converter, error) {
	dialect, err := apertium.ParseDialect(settings.Dialect)
	if err != nil {
		return nil, err
	}
	parser := &apertium.Parser{Dialect: dialect, Mode: apertium.Strict}
	if settings.Lenient {
		parser.Mode = apertium.Lenient
	}
	var disambiguator disambig.Disambiguator = disambig.Identity{}
	if settings.NBest > 0 {
		disambiguator = &disambig.NBestPruner{N: settings.NBest}
	}
	return &Converter{
		Analyzer:      parser,
		Disambiguator: disambiguator,
		Writer: &conllu.Writer{
			Ambiguous:      settings.Debug,
			MarkSpaceAfter: settings.SpaceAfter,
		},
		Name:      name,
		Workers:   settings.Workers,
		Normalize: settings.NFC,
	}, nil
}

func Convert(cmd *commander.Command, args []string) error {
	settings, err := Settings(cmd)
	if err != nil {
		return err
	}
	if verbose {
		ConvertConfigOut(settings)
	}

	var (
		in    io.Reader = os.Stdin
		out   io.Writer = os.Stdout
		stats io.Writer = os.Stdout
		name            = "<stdin>"
	)
	if len(inFile) > 0 {
		file, err := os.Open(inFile)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
		name = filepath.Base(inFile)
	} else if verbose {
		log.Println("Reading from <stdin>")
	}
	if len(outFile) > 0 {
		file, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	if len(statsFile) > 0 {
		file, err := os.Create(statsFile)
		if err != nil {
			return err
		}
		defer file.Close()
		stats = file
	}

	converter, err := NewConverter(settings, name)
	if err != nil {
		return err
	}
	result, err := converter.Run(context.Background(), in, out)
	if err != nil {
		return fmt.Errorf("converting %s: %w", name, err)
	}
	if verbose {
		log.Println("Wrote", result.Sentences, "sentences of", result.Tokens, "tokens")
	}
	return result.Write(stats)
}

func ConvertCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Convert,
		UsageLine: "convert <file options> [arguments]",
		Short:     "convert morphological analyzer stream output to CoNLL-U",
		Long: `
convert morphological analyzer stream output to CoNLL-U, one sentence per line

	$ ./ape2ud convert -in <stream file> -out <conllu file> [options]

Unknown analyzer tags abort the conversion.
`,
		Flag: *flag.NewFlagSet("convert", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&inFile, "in", "", "Input analyzer stream file (default stdin)")
	cmd.Flag.StringVar(&outFile, "out", "", "Output CoNLL-U file (default stdout)")
	cmd.Flag.StringVar(&statsFile, "stats", "", "Statistics output file (default stdout)")
	cmd.Flag.StringVar(&confFile, "conf", "", "YAML configuration file")
	cmd.Flag.StringVar(&dialectName, "dialect", "ape", "Tag dialect: ape or giella")
	cmd.Flag.BoolVar(&useGiella, "giella", false, "Shorthand for -dialect giella")
	cmd.Flag.BoolVar(&lenient, "lenient", false, "Skip malformed stream segments instead of failing")
	cmd.Flag.BoolVar(&debug, "debug", false, "Print every analysis of each token")
	cmd.Flag.IntVar(&nBest, "nbest", 0, "Prune each token to its n best analyses (0 keeps all)")
	cmd.Flag.IntVar(&workers, "workers", 1, "Number of concurrent analysis workers")
	cmd.Flag.BoolVar(&nfc, "nfc", false, "NFC-normalize input lines")
	cmd.Flag.BoolVar(&spaceAfter, "spaceafter", false, "Mark SpaceAfter=No in MISC")
	cmd.Flag.BoolVar(&verbose, "v", false, "Print verbosely while processing")
	return cmd
}
