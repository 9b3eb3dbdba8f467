package processor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/repodiac/espeak-ng-german-loan-words/internal/cli"
	"github.com/repodiac/espeak-ng-german-loan-words/internal/dictionary"
	"github.com/repodiac/espeak-ng-german-loan-words/internal/espeak"
	"github.com/repodiac/espeak-ng-german-loan-words/internal/phoneme"
	"github.com/repodiac/espeak-ng-german-loan-words/internal/wiktionary"
)

// progressInterval is the page count between progress updates.
const progressInterval = 10000

// Stats collects the counters printed in the final summary.
type Stats struct {
	Pages      int
	Skipped    int
	Candidates int
	Duplicates int
	Included   int
	Flagged    int
	Excluded   int
	ByOrigin   map[string]int
}

// Processor runs the dump-to-dictionary pipeline
type Processor struct {
	flags  *cli.Flags
	mapper *phoneme.Mapper
}

// NewProcessor creates a new pipeline processor. Additional IPA
// corrections are loaded here so a broken corrections file fails the
// run before the dump is touched.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	var extra [][2]string
	if flags.CorrectionsFile != "" {
		pairs, err := phoneme.LoadCorrectionsFile(flags.CorrectionsFile)
		if err != nil {
			return nil, err
		}
		extra = pairs
		fmt.Printf("Loaded %d additional IPA corrections from %s\n", len(pairs), flags.CorrectionsFile)
	}

	return &Processor{
		flags:  flags,
		mapper: phoneme.NewWithCorrections(extra),
	}, nil
}

// Run consumes the dump in a single pass and writes both output files.
// Per-entry anomalies become rows in the issue report; only an
// unreadable dump or one yielding no pages at all is an error.
func (p *Processor) Run() error {
	reader, closer, err := wiktionary.OpenDump(p.flags.InputFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	gen := dictionary.NewGenerator(&dictionary.GeneratorOptions{
		OutputDir:  p.flags.OutputDir,
		DictName:   p.flags.DictName,
		ReportName: p.flags.ReportName,
		SourceName: filepath.Base(p.flags.InputFile),
	})

	stats := Stats{ByOrigin: make(map[string]int)}

	if !p.flags.Quiet {
		fmt.Printf("EXTRACTING loan words from %s...\n", p.flags.InputFile)
	}

	for {
		page, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		stats.Pages++
		if !p.flags.Quiet && stats.Pages%progressInterval == 0 {
			fmt.Fprintf(os.Stderr, "\rScanning... pages: %d (loan words: %d)", stats.Pages, stats.Candidates)
		}

		candidate := wiktionary.ExtractLoanword(page)
		if candidate == nil {
			continue
		}

		res := p.mapper.Map(candidate.IPA)
		rec := dictionary.Decide(candidate.Label, candidate.Origin, candidate.IPA, res)
		if !gen.Add(rec) {
			stats.Duplicates++
			continue
		}

		stats.Candidates++
		stats.ByOrigin[candidate.Origin]++
		switch rec.Status {
		case dictionary.StatusIncluded:
			stats.Included++
			if rec.Flagged() {
				stats.Flagged++
			}
		case dictionary.StatusExcluded:
			stats.Excluded++
		}
	}
	stats.Skipped = reader.Skipped()

	if !p.flags.Quiet && stats.Pages >= progressInterval {
		fmt.Fprintln(os.Stderr)
	}

	if stats.Pages == 0 {
		return fmt.Errorf("no pages could be read from %s", p.flags.InputFile)
	}

	dictPath, reportPath, err := gen.WriteFiles()
	if err != nil {
		return err
	}

	if p.flags.Compile {
		if err := p.compileDictionary(); err != nil {
			return err
		}
	}

	p.printSummary(stats, dictPath, reportPath)
	return nil
}

// compileDictionary runs the espeak-ng compiler on the output
// directory.
func (p *Processor) compileDictionary() error {
	fmt.Printf("Compiling dictionary with %s...\n", p.flags.ESpeakBinary)

	compiler, err := espeak.NewCompiler(&espeak.Config{
		Binary:   p.flags.ESpeakBinary,
		Language: "de",
	})
	if err != nil {
		return err
	}

	if err := compiler.Compile(p.flags.OutputDir); err != nil {
		return fmt.Errorf("dictionary compilation failed: %w", err)
	}
	return nil
}

func (p *Processor) printSummary(stats Stats, dictPath, reportPath string) {
	fmt.Printf("\n=== Extraction Summary ===\n")
	fmt.Printf("Pages scanned: %d\n", stats.Pages)
	if stats.Skipped > 0 {
		fmt.Printf("Pages skipped (parse errors): %d\n", stats.Skipped)
	}
	fmt.Printf("Loan words found: %d\n", stats.Candidates)
	if stats.Duplicates > 0 {
		fmt.Printf("Duplicates dropped: %d\n", stats.Duplicates)
	}
	fmt.Printf("Included: %d\n", stats.Included)
	if stats.Flagged > 0 {
		fmt.Printf("Included but flagged: %d\n", stats.Flagged)
	}
	fmt.Printf("Excluded: %d\n", stats.Excluded)
	if !p.flags.Quiet && len(stats.ByOrigin) > 0 {
		fmt.Printf("By origin language:\n")
		for _, origin := range sortedKeys(stats.ByOrigin) {
			fmt.Printf("  %s: %d\n", origin, stats.ByOrigin[origin])
		}
	}
	fmt.Printf("==========================\n")
	fmt.Printf("Dictionary: %s\n", dictPath)
	fmt.Printf("Issue report: %s\n", reportPath)
}
