package dictionary

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// notAvailable is written to the report when an entry carried no IPA
// transcription.
const notAvailable = "not available"

// GeneratorOptions configures the dictionary export
type GeneratorOptions struct {
	OutputDir  string           // directory both artifacts are written to
	DictName   string           // import file name, espeak-ng expects "de_extra"
	ReportName string           // issue report file name
	SourceName string           // input dump name, recorded in the header
	Now        func() time.Time // creation date source, tests pin this
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputDir:  ".",
		DictName:   "de_extra",
		ReportName: "issue_terms.tab",
		Now:        time.Now,
	}
}

// Generator accumulates output records and writes the espeak-ng import
// file and the issue report from the same record set.
type Generator struct {
	options *GeneratorOptions
	records []Record
	seen    map[string]bool
}

// NewGenerator creates a new dictionary generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	return &Generator{
		options: options,
		records: make([]Record, 0),
		seen:    make(map[string]bool),
	}
}

// Add appends a record to the accumulation. Labels are de-duplicated
// first-seen-wins; Add reports whether the record was kept.
func (g *Generator) Add(rec Record) bool {
	if g.seen[rec.Label] {
		return false
	}
	g.seen[rec.Label] = true
	g.records = append(g.records, rec)
	return true
}

// Records returns the accumulated records in encounter order.
func (g *Generator) Records() []Record {
	return g.records
}

// IncludedCount returns the number of records that will appear in the
// import file.
func (g *Generator) IncludedCount() int {
	n := 0
	for _, rec := range g.records {
		if rec.Status == StatusIncluded {
			n++
		}
	}
	return n
}

// WriteFiles writes both artifacts and returns their paths. The import
// file holds one line per included record, the report one row per
// record. Both are produced from the same accumulation, so they always
// reflect the same entry set.
func (g *Generator) WriteFiles() (string, string, error) {
	if err := os.MkdirAll(g.options.OutputDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory: %w", err)
	}

	dictPath := filepath.Join(g.options.OutputDir, g.options.DictName)
	if err := g.writeDictFile(dictPath); err != nil {
		return "", "", err
	}

	reportPath := filepath.Join(g.options.OutputDir, g.options.ReportName)
	if err := g.writeReportFile(reportPath); err != nil {
		return "", "", err
	}

	return dictPath, reportPath, nil
}

// writeDictFile writes the espeak-ng import file: a comment header
// followed by one "label<TAB>phonemes" line per included record.
func (g *Generator) writeDictFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dictionary file: %w", err)
	}
	defer file.Close()

	header := fmt.Sprintf(`//
// This work/these contents are derived from/based on Wiktionary contents, input file: %s
// (see https://github.com/repodiac for information how to provide attribution to this work)
//
// DATE OF CREATION: %s
//

`, g.options.SourceName, g.options.Now().Format("02.01.2006"))

	if _, err := file.WriteString(header); err != nil {
		return fmt.Errorf("failed to write dictionary header: %w", err)
	}

	for _, rec := range g.records {
		if rec.Status != StatusIncluded {
			continue
		}
		if _, err := fmt.Fprintf(file, "%s\t%s\n", rec.Label, rec.Phonemes); err != nil {
			return fmt.Errorf("failed to write dictionary entry: %w", err)
		}
	}

	return nil
}

// writeReportFile writes the tab-separated issue report with one row
// per accumulated record.
func (g *Generator) writeReportFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = '\t'
	defer writer.Flush()

	if err := writer.Write([]string{"loan_word", "IPA_code", "status", "reason"}); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, rec := range g.records {
		ipa := rec.IPA
		if ipa == "" {
			ipa = notAvailable
		}
		row := []string{rec.Label, ipa, string(rec.Status), string(rec.Reason)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
