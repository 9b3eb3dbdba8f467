package dictionary

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)
}

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	return NewGenerator(&GeneratorOptions{
		OutputDir:  t.TempDir(),
		DictName:   "de_extra",
		ReportName: "issue_terms.tab",
		SourceName: "dewiktionary-test.xml",
		Now:        fixedNow,
	})
}

func TestAdd_FirstSeenWins(t *testing.T) {
	gen := testGenerator(t)

	first := Record{Label: "straße", Phonemes: "'Stra:s@", Status: StatusIncluded}
	second := Record{Label: "straße", Phonemes: "Stras@", Status: StatusIncluded}

	assert.True(t, gen.Add(first))
	assert.False(t, gen.Add(second), "duplicate label must be rejected")

	records := gen.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "'Stra:s@", records[0].Phonemes, "first record must win")
}

func TestIncludedCount(t *testing.T) {
	gen := testGenerator(t)

	gen.Add(Record{Label: "a", Phonemes: "a", Status: StatusIncluded})
	gen.Add(Record{Label: "b", Status: StatusExcluded, Reason: ReasonNoIPA})
	gen.Add(Record{Label: "c", Phonemes: "k", Status: StatusIncluded})

	assert.Equal(t, 2, gen.IncludedCount())
}

func TestWriteFiles(t *testing.T) {
	gen := testGenerator(t)

	gen.Add(Record{
		Label: "straße", IPA: "ˈʃtʁaːsə", Phonemes: "'Stra:s@",
		Status: StatusIncluded, Reason: ReasonNone,
	})
	gen.Add(Record{
		Label: "beispiel",
		Status: StatusExcluded, Reason: ReasonNoIPA,
	})
	gen.Add(Record{
		Label: "curry", IPA: "ˈkœʀi", Phonemes: "'k9i", Unmapped: []string{"ʀ"},
		Status: StatusIncluded, Reason: ReasonUnmappable,
	})

	dictPath, reportPath, err := gen.WriteFiles()
	require.NoError(t, err)

	dict, err := os.ReadFile(dictPath)
	require.NoError(t, err)
	dictContent := string(dict)

	assert.Contains(t, dictContent, "input file: dewiktionary-test.xml")
	assert.Contains(t, dictContent, "DATE OF CREATION: 01.05.2020")
	assert.Contains(t, dictContent, "straße\t'Stra:s@\n")
	assert.Contains(t, dictContent, "curry\t'k9i\n")
	assert.NotContains(t, dictContent, "beispiel", "excluded entries must not reach the import file")

	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(string(report)))
	reader.Comma = '\t'
	rows, err := reader.ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 4, "header plus one row per record")
	assert.Equal(t, []string{"loan_word", "IPA_code", "status", "reason"}, rows[0])
	assert.Equal(t, []string{"straße", "ˈʃtʁaːsə", "INCLUDED", ""}, rows[1])
	assert.Equal(t, []string{"beispiel", "not available", "EXCLUDED", "NO_IPA_AVAILABLE"}, rows[2])
	assert.Equal(t, []string{"curry", "ˈkœʀi", "INCLUDED", "UNMAPPABLE_SYMBOLS"}, rows[3])
}

func TestWriteFiles_RoundTrip(t *testing.T) {
	gen := testGenerator(t)

	gen.Add(Record{Label: "anorak", IPA: "ˈanoʁak", Phonemes: "'anorak", Status: StatusIncluded})
	gen.Add(Record{Label: "balkon", Status: StatusExcluded, Reason: ReasonNoIPA})
	gen.Add(Record{Label: "chance", IPA: "ˈʃɑ̃ːsə", Phonemes: "'SA~:s@", Status: StatusIncluded})

	dictPath, reportPath, err := gen.WriteFiles()
	require.NoError(t, err)

	// collect labels from the import file
	dict, err := os.ReadFile(dictPath)
	require.NoError(t, err)

	imported := map[string]int{}
	for _, line := range strings.Split(string(dict), "\n") {
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		require.Len(t, fields, 2, "import line must be label<TAB>phonemes")
		imported[fields[0]]++
	}

	// collect included labels from the report
	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(string(report)))
	reader.Comma = '\t'
	rows, err := reader.ReadAll()
	require.NoError(t, err)

	reported := map[string]int{}
	for _, row := range rows[1:] {
		if row[2] == string(StatusIncluded) {
			reported[row[0]]++
		}
	}

	assert.Equal(t, reported, imported,
		"every import-file label must appear exactly once as INCLUDED in the report")
}

func TestWriteFiles_Deterministic(t *testing.T) {
	write := func(dir string) (string, string) {
		gen := NewGenerator(&GeneratorOptions{
			OutputDir:  dir,
			DictName:   "de_extra",
			ReportName: "issue_terms.tab",
			SourceName: "dump.xml",
			Now:        fixedNow,
		})
		gen.Add(Record{Label: "straße", IPA: "ˈʃtʁaːsə", Phonemes: "'Stra:s@", Status: StatusIncluded})
		gen.Add(Record{Label: "beispiel", Status: StatusExcluded, Reason: ReasonNoIPA})

		dictPath, reportPath, err := gen.WriteFiles()
		require.NoError(t, err)

		dict, err := os.ReadFile(dictPath)
		require.NoError(t, err)
		report, err := os.ReadFile(reportPath)
		require.NoError(t, err)
		return string(dict), string(report)
	}

	dict1, report1 := write(t.TempDir())
	dict2, report2 := write(t.TempDir())

	assert.Equal(t, dict1, dict2)
	assert.Equal(t, report1, report2)
}

func TestNewGenerator_NilOptions(t *testing.T) {
	gen := NewGenerator(nil)
	require.NotNil(t, gen)
	assert.Equal(t, "de_extra", gen.options.DictName)
	assert.Equal(t, "issue_terms.tab", gen.options.ReportName)
}
