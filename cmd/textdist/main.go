// Package main is the entry point for the textdist command.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/textdist/internal/loader"
	"github.com/dshills/textdist/jarowinkler"
	"github.com/dshills/textdist/levenshtein"
	"github.com/dshills/textdist/match"
	"github.com/dshills/textdist/sequence"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	metricName   string
	threshold    float64
	maxScore     float64
	limit        int
	graphemes    bool
	prefixWeight float64
	maxPrefix    int
	candidates   string
	jsonFile     string
	selector     string
	workers      int
	jsonOut      bool
	pairwise     bool
	args         []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	metric, err := buildMetric(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.pairwise {
		return runPairwise(opts, metric)
	}
	return runRank(opts, metric)
}

// runPairwise prints the distance and similarity of two operands.
func runPairwise(opts options, metric match.Metric) int {
	if len(opts.args) != 2 {
		fmt.Fprintf(os.Stderr, "Error: -pair requires exactly two arguments\n")
		return 1
	}
	a, b := opts.args[0], opts.args[1]

	similarity := metric.Similarity(a, b)
	switch metric.(type) {
	case match.Levenshtein:
		fmt.Printf("distance: %d\n", pairDistance(a, b, opts.graphemes))
	default:
		fmt.Printf("distance: %.4f\n", 1.0-similarity)
	}
	fmt.Printf("similarity: %.4f\n", similarity)
	return 0
}

func pairDistance(a, b string, graphemes bool) int {
	if graphemes {
		return levenshtein.DistanceOf(sequence.Graphemes(a), sequence.Graphemes(b))
	}
	return levenshtein.Distance(a, b)
}

// runRank ranks candidates against the query argument.
func runRank(opts options, metric match.Metric) int {
	if len(opts.args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing query argument\n")
		flag.Usage()
		return 1
	}
	query := opts.args[0]

	candidates, err := loadCandidates(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	m, err := match.New(candidates, match.Options{
		Metric:    metric,
		Threshold: opts.threshold,
		MaxScore:  opts.maxScore,
		Limit:     opts.limit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var results []match.Match
	if opts.workers > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		results, err = match.NewParallel(m, opts.workers).Find(ctx, query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	} else {
		results = m.Find(query)
	}

	if opts.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}
	for _, r := range results {
		fmt.Printf("%.4f\t%s\n", r.Score, r.Candidate)
	}
	return 0
}

// loadCandidates gathers candidates from inline arguments, a candidates
// file, or a JSON document, in that order of precedence.
func loadCandidates(opts options) ([]string, error) {
	if len(opts.args) > 1 {
		return opts.args[1:], nil
	}
	if opts.candidates != "" {
		return loader.Lines(opts.candidates)
	}
	if opts.jsonFile != "" {
		return loader.JSON(opts.jsonFile, opts.selector)
	}
	return nil, fmt.Errorf("no candidates: pass them as arguments or use -candidates/-json")
}

func buildMetric(opts options) (match.Metric, error) {
	switch opts.metricName {
	case "levenshtein", "lev":
		return match.Levenshtein{Graphemes: opts.graphemes}, nil
	case "jaro-winkler", "jw":
		if opts.prefixWeight < 0 || opts.prefixWeight > 0.25 {
			return nil, fmt.Errorf("prefix weight %v outside [0, 0.25]", opts.prefixWeight)
		}
		return match.JaroWinkler{
			Params: jarowinkler.Params{
				PrefixWeight: opts.prefixWeight,
				MaxPrefix:    opts.maxPrefix,
			},
			Graphemes: opts.graphemes,
		}, nil
	default:
		return nil, fmt.Errorf("unknown metric %q (use levenshtein or jaro-winkler)", opts.metricName)
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.metricName, "metric", "levenshtein", "Similarity metric (levenshtein, jaro-winkler)")
	flag.StringVar(&opts.metricName, "m", "levenshtein", "Similarity metric (shorthand)")
	flag.Float64Var(&opts.threshold, "threshold", 0, "Minimum similarity score kept (0..1)")
	flag.Float64Var(&opts.threshold, "t", 0, "Minimum similarity score kept (shorthand)")
	flag.Float64Var(&opts.maxScore, "max", 1, "Maximum similarity score kept (0..1)")
	flag.IntVar(&opts.limit, "limit", 0, "Maximum number of results (0 = unlimited)")
	flag.IntVar(&opts.limit, "n", 0, "Maximum number of results (shorthand)")
	flag.BoolVar(&opts.graphemes, "graphemes", false, "Compare grapheme clusters instead of code points")
	flag.Float64Var(&opts.prefixWeight, "prefix-weight", jarowinkler.DefaultPrefixWeight, "Jaro-Winkler prefix boost weight (0..0.25)")
	flag.IntVar(&opts.maxPrefix, "max-prefix", jarowinkler.DefaultMaxPrefix, "Jaro-Winkler common-prefix cap")
	flag.StringVar(&opts.candidates, "candidates", "", "File of newline-delimited candidates (- for stdin)")
	flag.StringVar(&opts.candidates, "c", "", "File of newline-delimited candidates (shorthand)")
	flag.StringVar(&opts.jsonFile, "json", "", "JSON file of candidates (- for stdin)")
	flag.StringVar(&opts.selector, "path", "@this", "gjson path selecting candidate values in -json input")
	flag.IntVar(&opts.workers, "workers", 0, "Score candidates on N worker goroutines (0 = sequential)")
	flag.BoolVar(&opts.jsonOut, "out-json", false, "Emit results as JSON")
	flag.BoolVar(&opts.pairwise, "pair", false, "Compare exactly two strings instead of ranking")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "textdist - approximate string similarity\n\n")
		fmt.Fprintf(os.Stderr, "Usage: textdist [options] query [candidates...]\n")
		fmt.Fprintf(os.Stderr, "       textdist -pair [options] string1 string2\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  textdist aple apple banana pear             Rank inline candidates\n")
		fmt.Fprintf(os.Stderr, "  textdist -m jw -t 0.8 -c words.txt aple     Rank a word list, cutoff 0.8\n")
		fmt.Fprintf(os.Stderr, "  textdist -json users.json -path '#.name' jon\n")
		fmt.Fprintf(os.Stderr, "  textdist -pair -m jw martha marhta          Compare two strings\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("textdist %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.args = flag.Args()
	return opts
}
